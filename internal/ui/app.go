package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"alertdeck/internal/board"
	"alertdeck/internal/deck"
)

// AppConfig carries the settings the UI needs from the command line.
type AppConfig struct {
	Manager       bool
	MarkdownStyle string
	Logger        *zap.Logger
	Tracer        trace.Tracer
}

// AppModel is the root model. It owns the board controller, draws its
// snapshot and turns keys and clicks into controller calls.
type AppModel struct {
	Board      *board.Controller
	KeyHandler *KeyHandler
	Keys       KeyMap
	Overlays   OverlayStack
	Markdown   *MarkdownRenderer

	help   help.Model
	hits   HitMap
	width  int
	height int
	log    *zap.Logger

	// tick schedules fade continuations; tea.Tick outside tests.
	tick func(time.Duration, func(time.Time) tea.Msg) tea.Cmd
	// queued holds commands produced by the controller during one Update.
	queued []tea.Cmd
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

var (
	_ board.Deferrer  = (*AppModel)(nil)
	_ board.Confirmer = (*AppModel)(nil)
)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model over d.
func NewAppModel(d *deck.Deck, cfg AppConfig) *AppModel {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	m := &AppModel{
		Keys:     DefaultKeyMap(),
		Markdown: NewMarkdownRenderer(cfg.MarkdownStyle),
		help:     newHelpModel(),
		log:      log,
		tick:     tea.Tick,
	}
	m.Board = board.New(d, m, m,
		board.WithManager(cfg.Manager),
		board.WithLogger(log),
		board.WithTracer(cfg.Tracer),
	)
	reg := NewKeybindRegistry()
	m.Keys.Register(reg)
	m.KeyHandler = NewKeyHandler(reg)
	return m
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Defer implements board.Deferrer with a tea.Tick that hands fn back to Update.
func (m *AppModel) Defer(d time.Duration, fn func()) {
	m.queued = append(m.queued, m.tick(d, func(time.Time) tea.Msg {
		return FadeDoneMsg{commit: fn}
	}))
}

// Confirm implements board.Confirmer with a modal overlay.
func (m *AppModel) Confirm(prompt string, onAccept func()) {
	m.Overlays.Push(Overlay{View: newDeleteConfirmModal(prompt, onAccept), Dismiss: "esc"})
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	cmds := append(a.queued, cmd)
	a.queued = nil
	return a, tea.Batch(cmds...)
}

func (m *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return nil
	case FadeDoneMsg:
		if msg.commit != nil {
			msg.commit()
		}
		return nil
	case ConfirmAcceptedMsg:
		top, ok := m.Overlays.Peek()
		if !ok || top.View != View(msg.modal) {
			m.log.Debug("stale confirmation dropped")
			return nil
		}
		m.Overlays.Pop()
		if msg.accept != nil {
			msg.accept()
		}
		return nil
	case DismissModalMsg:
		m.Overlays.Pop()
		return nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.Overlays.Len() > 0 {
			return nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.dispatchClick(msg.X, msg.Y)
		}
		return nil
	}
	m.dispatchIntent(msg)
	return nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	base := a.render()
	if top, ok := a.Overlays.Peek(); ok {
		return Compose(base, top.View.View(), a.width, a.height)
	}
	return base
}
