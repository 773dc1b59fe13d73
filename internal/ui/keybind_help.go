package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"alertdeck/internal/board"
)

// RenderKeybindHelp produces the transient help bar shown after SPC.
// It lists the SPC-prefixed bindings that apply to mode.
func RenderKeybindHelp(h *KeyHandler, mode board.Mode) string {
	if h == nil || !h.LeaderWaiting {
		return ""
	}
	currentSeq := h.CurrentSeq()
	hints := h.Registry.LeaderHints(currentSeq, mode)
	if len(hints) == 0 {
		return ""
	}

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	bindings = append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))

	content := Styles.Hint.Render(currentSeq) + " " + newHelpModel().ShortHelpView(bindings)
	return Styles.LeaderBox.Render(content)
}

// newHelpModel returns a bubbles/help model with the app's colors.
func newHelpModel() help.Model {
	m := help.New()
	m.Styles.ShortKey = Styles.HelpKey
	m.Styles.ShortDesc = Styles.Hint
	m.Styles.ShortSeparator = Styles.Hint
	return m
}
