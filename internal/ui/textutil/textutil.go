// Package textutil fits card text into fixed-width terminal cells.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns plain s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate cuts plain s to at most maxWidth columns, ending in … when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	avail := maxWidth - VisualWidth(TruncateEllipsis)
	if avail < 0 {
		return TruncateEllipsis
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if used+w > avail {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String() + TruncateEllipsis
}

// PadRightVisual pads plain s with spaces to exactly targetWidth columns,
// truncating when it is wider.
func PadRightVisual(s string, targetWidth int) string {
	w := VisualWidth(s)
	if w >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return s + runewidth.FillRight("", targetWidth-w)
}

// Fit is PadRightVisual for strings that already carry ANSI styling, such
// as rendered markdown.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) > width {
		s = ansi.Truncate(s, width, TruncateEllipsis)
	}
	if w := lipgloss.Width(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
