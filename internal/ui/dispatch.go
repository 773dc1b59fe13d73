package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"alertdeck/internal/board"
)

// handleKey routes a key press. An open modal takes every key; otherwise the
// keybind registry runs first and Esc falls through to the board.
func (m *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if top, ok := m.Overlays.Peek(); ok {
		if top.IsDismissKey(msg.String()) {
			m.Overlays.Pop()
			return nil
		}
		cmd, _ := m.Overlays.UpdateTop(msg)
		return cmd
	}
	if m.KeyHandler != nil {
		if consumed, cmd := m.KeyHandler.Handle(msg); consumed {
			return cmd
		}
	}
	if msg.String() == "esc" {
		m.Board.Escape()
	}
	return nil
}

// dispatchClick routes a left click at (x, y) through the hit map of the
// last render. A click on no region is a background click.
func (m *AppModel) dispatchClick(x, y int) {
	t, ok := m.hits.At(x, y)
	if !ok {
		m.Board.ClickBackground()
		return
	}
	m.log.Debug("click", zap.Int("x", x), zap.Int("y", y), zap.Stringer("target", t.Kind))
	switch t.Kind {
	case TargetStack:
		m.Board.ClickStack(t.Stack)
	case TargetCard:
		m.Board.ClickCard(t.Card)
	case TargetIcon:
		m.Board.ActivateIcon(t.Card)
	case TargetSwitch:
		m.Board.ActivateStack(t.Stack)
	case TargetLogo:
		m.Board.Logo()
	case TargetHiddenToggle:
		m.Board.ToggleHiddenView()
	case TargetManagerToggle:
		m.Board.ToggleManager()
	}
}

// dispatchIntent applies the messages produced by key bindings.
func (m *AppModel) dispatchIntent(msg tea.Msg) {
	switch msg := msg.(type) {
	case ActivateStackMsg:
		m.Board.ActivateStack(msg.Index)
	case NeighborMsg:
		m.Board.ActivateNeighbor(msg.Dir)
	case RotateMsg:
		m.Board.Rotate(msg.Direction)
	case IconMsg:
		if m.Board.Mode() == board.ModeHidden {
			m.Board.ActivateHiddenCursor()
		} else {
			m.Board.ActivateFrontIcon()
		}
	case HiddenCursorMsg:
		m.Board.MoveHiddenCursor(msg.Delta)
	case ToggleHiddenMsg:
		m.Board.ToggleHiddenView()
	case ToggleManagerMsg:
		m.Board.ToggleManager()
	case LogoMsg:
		m.Board.Logo()
	}
}
