package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModal is a yes/no confirmation modal.
// Enter or y confirms; Esc or n cancels.
type ConfirmModal struct {
	Title     string
	Label     string
	OnConfirm func() tea.Msg
}

// Ensure ConfirmModal implements View.
var _ View = (*ConfirmModal)(nil)

// NewConfirmModal creates a confirmation modal.
func NewConfirmModal(title, label string, onConfirm func() tea.Msg) *ConfirmModal {
	return &ConfirmModal{
		Title:     title,
		Label:     label,
		OnConfirm: onConfirm,
	}
}

// newDeleteConfirmModal asks before a card is permanently deleted. accept runs
// back on the Update loop via ConfirmAcceptedMsg.
func newDeleteConfirmModal(prompt string, accept func()) *ConfirmModal {
	m := NewConfirmModal("Delete card?", prompt, nil)
	m.OnConfirm = func() tea.Msg {
		return ConfirmAcceptedMsg{modal: m, accept: accept}
	}
	return m
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "n":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter", "y":
			if m.OnConfirm != nil {
				return m, m.OnConfirm
			}
		}
	}
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	content := Styles.ModalTitle.Render(m.Title) + "\n\n"
	content += Styles.ModalLabel.Render(m.Label)
	content += "\n\n" + Styles.Hint.Render("y/Enter: confirm  Esc: cancel")
	return Styles.ModalBox.Render(content)
}
