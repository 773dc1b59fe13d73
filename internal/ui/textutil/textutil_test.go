package textutil

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 8, "this is…"},
		{"日本語テキスト", 5, "日本…"},
		{"anything", 0, ""},
		{"ab", 1, "…"},
	}
	for _, tt := range tests {
		got := Truncate(tt.in, tt.max)
		assert.Equal(t, tt.want, got, "Truncate(%q, %d)", tt.in, tt.max)
		assert.LessOrEqual(t, VisualWidth(got), max(tt.max, 0))
	}
}

func TestPadRightVisual(t *testing.T) {
	assert.Equal(t, "ab   ", PadRightVisual("ab", 5))
	assert.Equal(t, "abcd…", PadRightVisual("abcdefgh", 5))
	assert.Equal(t, 6, VisualWidth(PadRightVisual("日本", 6)))
}

func TestFit_StyledText(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("critical alert")

	assert.Equal(t, 20, lipgloss.Width(Fit(styled, 20)))
	assert.Equal(t, 8, lipgloss.Width(Fit(styled, 8)))
	assert.Equal(t, "", Fit(styled, 0))
}
