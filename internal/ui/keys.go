package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"alertdeck/internal/board"
	"alertdeck/internal/deck"
)

// KeyMap holds the board key bindings. Register turns them into registry
// entries; ForMode exposes them to bubbles/help.
type KeyMap struct {
	Stack       key.Binding
	Next        key.Binding
	Prev        key.Binding
	RotateLeft  key.Binding
	RotateRight key.Binding
	Icon        key.Binding
	Down        key.Binding
	Up          key.Binding
	Hidden      key.Binding
	Manager     key.Binding
	Escape      key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Stack:       key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "zoom stack")),
		Next:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next stack")),
		Prev:        key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev stack")),
		RotateLeft:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left card")),
		RotateRight: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right card")),
		Icon:        key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hide")),
		Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/k", "select")),
		Up:          key.NewBinding(key.WithKeys("k", "up")),
		Hidden:      key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "hidden")),
		Manager:     key.NewBinding(key.WithKeys("M"), key.WithHelp("M", "manager")),
		Escape:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Register binds every key of the map, plus the SPC leader sequences.
func (k KeyMap) Register(reg *KeybindRegistry) {
	for i, s := range k.Stack.Keys() {
		idx := i
		reg.BindWithDescForMode(s, func() tea.Msg { return ActivateStackMsg{Index: idx} },
			k.Stack.Help().Desc, []board.Mode{board.ModeGrid, board.ModeZoom})
	}

	bind := func(b key.Binding, msg tea.Msg, modes ...board.Mode) {
		for _, s := range b.Keys() {
			reg.BindWithDescForMode(s, func() tea.Msg { return msg }, b.Help().Desc, modes)
		}
	}
	bind(k.Next, NeighborMsg{Dir: 1}, board.ModeZoom)
	bind(k.Prev, NeighborMsg{Dir: -1}, board.ModeZoom)
	bind(k.RotateLeft, RotateMsg{Direction: deck.BringLeft}, board.ModeZoom)
	bind(k.RotateRight, RotateMsg{Direction: deck.BringRight}, board.ModeZoom)
	bind(k.Icon, IconMsg{}, board.ModeZoom, board.ModeHidden)
	bind(k.Down, HiddenCursorMsg{Delta: 1}, board.ModeHidden)
	bind(k.Up, HiddenCursorMsg{Delta: -1}, board.ModeHidden)
	bind(k.Hidden, ToggleHiddenMsg{})
	bind(k.Manager, ToggleManagerMsg{})
	for _, s := range k.Quit.Keys() {
		reg.BindWithDesc(s, tea.Quit, "Quit")
	}

	reg.BindWithDesc("SPC h", func() tea.Msg { return ToggleHiddenMsg{} }, "Hidden cards")
	reg.BindWithDesc("SPC m", func() tea.Msg { return ToggleManagerMsg{} }, "Manager mode")
	reg.BindWithDescForMode("SPC g", func() tea.Msg { return LogoMsg{} }, "Grid",
		[]board.Mode{board.ModeZoom, board.ModeHidden})
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
}

// ForMode returns a help.KeyMap listing the bindings that act in mode.
func (k KeyMap) ForMode(mode board.Mode, manager bool) help.KeyMap {
	return modeKeyMap{keys: k, mode: mode, manager: manager}
}

type modeKeyMap struct {
	keys    KeyMap
	mode    board.Mode
	manager bool
}

func (m modeKeyMap) ShortHelp() []key.Binding {
	k := m.keys
	icon := k.Icon
	switch {
	case m.manager:
		icon.SetHelp("x", "delete")
	case m.mode == board.ModeHidden:
		icon.SetHelp("x", "restore")
	}
	switch m.mode {
	case board.ModeZoom:
		return []key.Binding{k.Stack, k.Next, k.RotateLeft, k.RotateRight, icon, k.Escape, k.Quit}
	case board.ModeHidden:
		return []key.Binding{k.Down, icon, k.Escape, k.Quit}
	default:
		return []key.Binding{k.Stack, k.Hidden, k.Manager, k.Quit}
	}
}

func (m modeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.ShortHelp()}
}
