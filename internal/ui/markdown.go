package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders card bodies with glamour. The term renderer is
// rebuilt only when the wrap width changes.
type MarkdownRenderer struct {
	style    string
	width    int
	renderer *glamour.TermRenderer
}

// NewMarkdownRenderer uses one of glamour's standard styles ("dark", "light",
// "notty").
func NewMarkdownRenderer(style string) *MarkdownRenderer {
	if style == "" {
		style = "dark"
	}
	return &MarkdownRenderer{style: style}
}

// Render returns body wrapped to width. On any glamour error the raw body is
// returned.
func (m *MarkdownRenderer) Render(body string, width int) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	r := m.ensure(width)
	if r == nil {
		return body
	}
	out, err := r.Render(body)
	if err != nil {
		return body
	}
	return strings.Trim(out, "\n")
}

func (m *MarkdownRenderer) ensure(width int) *glamour.TermRenderer {
	if width < 0 {
		width = 0
	}
	if m.renderer != nil && m.width == width {
		return m.renderer
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		m.renderer = nil
		return nil
	}
	m.renderer = r
	m.width = width
	return r
}
