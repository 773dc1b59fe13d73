package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"alertdeck/internal/board"
	"alertdeck/internal/deck"
	"alertdeck/internal/ui/textutil"
)

// Layout, in terminal cells. Box widths are inner widths; borders add 2.
const (
	headerHeight  = 2 // header line plus a blank line
	stackInner    = 26
	sideInner     = 18
	minFrontInner = 24
	maxFrontInner = 64
	columnGap     = 2
	bodyLines     = 8
	iconCols      = 3
	defaultWidth  = 100
)

// iconOffset is the column of the icon within a card line of width inner.
func iconOffset(inner int) int {
	return inner - iconCols - 1
}

// render draws the snapshot and rebuilds the hit map to match.
func (m *AppModel) render() string {
	m.hits.Reset()
	snap := m.Board.Snapshot()
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	sections := []string{m.renderHeader(snap), ""}
	switch snap.Mode {
	case board.ModeZoom:
		sections = append(sections, m.renderZoom(snap, width, headerHeight))
	case board.ModeHidden:
		sections = append(sections, m.renderHidden(snap, width, headerHeight))
	default:
		sections = append(sections, m.renderGrid(snap, width, headerHeight))
	}
	sections = append(sections, "", m.renderFooter(snap))
	return strings.Join(sections, "\n")
}

func (m *AppModel) renderHeader(snap board.Snapshot) string {
	manager := Styles.Toggle.Render("manager off")
	if snap.Manager {
		manager = Styles.ToggleOn.Render("manager ON")
	}
	items := []struct {
		text   string
		target Target
	}{
		{Styles.Logo.Render("◆ alertdeck"), Target{Kind: TargetLogo}},
		{Styles.Badge.Render(fmt.Sprintf("hidden %d", snap.HiddenCount)), Target{Kind: TargetHiddenToggle}},
		{manager, Target{Kind: TargetManagerToggle}},
	}
	parts := make([]string, 0, len(items)+1)
	x := 0
	for _, it := range items {
		w := lipgloss.Width(it.text)
		m.hits.Add(x, 0, w, 1, it.target)
		x += w + columnGap
		parts = append(parts, it.text)
	}
	parts = append(parts, Styles.Mode.Render(strings.ToLower(snap.Mode.String())))
	return strings.Join(parts, strings.Repeat(" ", columnGap))
}

func (m *AppModel) renderGrid(snap board.Snapshot, width, top int) string {
	icon := iconLabel(snap)
	boxes := make([]string, 0, len(snap.Stacks))
	for _, sv := range snap.Stacks {
		boxes = append(boxes, stackBox(sv, icon))
	}
	return layoutBoxes(boxes, width, top, func(i, x, y, w, h int) {
		sv := snap.Stacks[i]
		m.hits.Add(x, y, w, h, Target{Kind: TargetStack, Stack: sv.Index})
		if !sv.Empty {
			m.hits.Add(x+1+iconOffset(stackInner), y+2, iconCols, 1, Target{Kind: TargetIcon, Card: sv.Cards[0].ID})
		}
	})
}

func stackBox(sv board.StackView, icon string) string {
	name := Styles.StackName.Render(textutil.PadRightVisual(sv.Icon+"  "+sv.Name, stackInner-1))
	lines := []string{" " + name}
	if sv.Empty {
		lines = append(lines,
			Styles.Empty.Render(textutil.PadRightVisual(" (empty)", stackInner)),
			blank(stackInner))
	} else {
		more := ""
		if n := len(sv.Cards) - 1; n > 0 {
			more = fmt.Sprintf(" +%d more", n)
		}
		lines = append(lines,
			cardLine(sv.Cards[0], stackInner, icon),
			Styles.Muted.Render(textutil.PadRightVisual(more, stackInner)))
	}
	return Styles.StackBox.Render(strings.Join(lines, "\n"))
}

func (m *AppModel) renderZoom(snap board.Snapshot, width, top int) string {
	if snap.Focus < 0 || snap.Focus >= len(snap.Stacks) {
		return ""
	}
	sv := snap.Stacks[snap.Focus]
	title := Styles.Title.Render(sv.Icon+"  "+sv.Name) +
		Styles.Muted.Render(fmt.Sprintf("  %d/%d", snap.Focus+1, len(snap.Stacks)))

	var slots [3]*board.CardView // left, front, right as drawn
	for i := range sv.Cards {
		switch sv.Cards[i].Slot {
		case deck.SlotLeft:
			slots[0] = &sv.Cards[i]
		case deck.SlotFront:
			slots[1] = &sv.Cards[i]
		case deck.SlotRight:
			slots[2] = &sv.Cards[i]
		}
	}

	icon := iconLabel(snap)
	frontInner := min(max(width-2*(sideInner+2)-2*columnGap-2, minFrontInner), maxFrontInner)
	inners := [3]int{sideInner, frontInner, sideInner}
	blocks := [3]string{
		sideCard(slots[0], icon),
		m.frontCard(slots[1], frontInner, icon),
		sideCard(slots[2], icon),
	}

	cardsTop := top + 1
	rowW, rowH := 2*columnGap, 0
	for _, b := range blocks {
		rowW += lipgloss.Width(b)
		rowH = max(rowH, lipgloss.Height(b))
	}
	// The zoomed stack's own area is not background.
	m.hits.Add(0, top, rowW, rowH+1, Target{Kind: TargetStack, Stack: sv.Index})
	x := 0
	for i, b := range blocks {
		w, h := lipgloss.Width(b), lipgloss.Height(b)
		if c := slots[i]; c != nil {
			m.hits.Add(x, cardsTop, w, h, Target{Kind: TargetCard, Card: c.ID})
			m.hits.Add(x+1+iconOffset(inners[i]), cardsTop+1, iconCols, 1, Target{Kind: TargetIcon, Card: c.ID})
		}
		x += w + columnGap
	}

	gap := blank(columnGap)
	row := lipgloss.JoinHorizontal(lipgloss.Top, blocks[0], gap, blocks[1], gap, blocks[2])
	switcher := m.renderSwitch(snap, cardsTop+rowH+1)
	return strings.Join([]string{title, row, "", switcher}, "\n")
}

func sideCard(c *board.CardView, icon string) string {
	if c == nil {
		return blank(sideInner + 2)
	}
	lines := []string{
		cardLine(*c, sideInner, icon),
		severityLine(*c, sideInner),
		blank(sideInner),
		Styles.Muted.Render(textutil.PadRightVisual(" bring forward", sideInner)),
	}
	return Styles.CardBox.Render(strings.Join(lines, "\n"))
}

func (m *AppModel) frontCard(c *board.CardView, inner int, icon string) string {
	if c == nil {
		return blank(inner + 2)
	}
	lines := []string{
		cardLine(*c, inner, icon),
		severityLine(*c, inner),
		blank(inner),
	}
	var body []string
	if rendered := m.Markdown.Render(c.Body, inner-2); rendered != "" {
		body = strings.Split(rendered, "\n")
	}
	for i := 0; i < bodyLines; i++ {
		line := ""
		if i < len(body) {
			line = body[i]
		}
		if c.Pending {
			line = Styles.Faded.Render(ansi.Strip(line))
		}
		lines = append(lines, " "+textutil.Fit(line, inner-1))
	}
	return Styles.FrontBox.Render(strings.Join(lines, "\n"))
}

func (m *AppModel) renderSwitch(snap board.Snapshot, y int) string {
	var parts []string
	x := 0
	for _, s := range snap.Switch {
		if !s.Visible {
			continue
		}
		style := Styles.Switch
		if snap.Stacks[s.Index].Empty {
			style = Styles.Muted
		}
		label := style.Render("[" + s.Icon + "]")
		w := lipgloss.Width(label)
		m.hits.Add(x, y, w, 1, Target{Kind: TargetSwitch, Stack: s.Index})
		parts = append(parts, label)
		x += w + 1
	}
	return strings.Join(parts, " ")
}

func (m *AppModel) renderHidden(snap board.Snapshot, width, top int) string {
	title := Styles.Title.Render(fmt.Sprintf("Hidden cards (%d)", snap.HiddenCount))
	if len(snap.Hidden) == 0 {
		return title + "\n" + Styles.Empty.Render("Nothing hidden. Esc to go back.")
	}
	icon := iconLabel(snap)
	boxes := make([]string, 0, len(snap.Hidden))
	for i, c := range snap.Hidden {
		origin := ""
		if c.Origin >= 0 && c.Origin < len(snap.Stacks) {
			origin = snap.Stacks[c.Origin].Name
		}
		lines := []string{
			Styles.Muted.Render(textutil.PadRightVisual(" from "+origin, stackInner)),
			cardLine(c, stackInner, icon),
			blank(stackInner),
		}
		style := Styles.StackBox
		if i == snap.HiddenCursor {
			style = Styles.Selected
		}
		boxes = append(boxes, style.Render(strings.Join(lines, "\n")))
	}
	grid := layoutBoxes(boxes, width, top+1, func(i, x, y, w, h int) {
		m.hits.Add(x, y, w, h, Target{Kind: TargetNone})
		m.hits.Add(x+1+iconOffset(stackInner), y+2, iconCols, 1, Target{Kind: TargetIcon, Card: snap.Hidden[i].ID})
	})
	return title + "\n" + grid
}

func (m *AppModel) renderFooter(snap board.Snapshot) string {
	if m.KeyHandler != nil && m.KeyHandler.LeaderWaiting {
		return RenderKeybindHelp(m.KeyHandler, snap.Mode)
	}
	return m.help.View(m.Keys.ForMode(snap.Mode, snap.Manager))
}

// layoutBoxes lays boxes out left to right, wrapping at width. place is
// called with each box's screen rectangle.
func layoutBoxes(boxes []string, width, top int, place func(i, x, y, w, h int)) string {
	var rows, row []string
	x, y, rowH := 0, top, 0
	flush := func() {
		if len(row) == 0 {
			return
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
		y += rowH
		row, x, rowH = nil, 0, 0
	}
	for i, box := range boxes {
		w, h := lipgloss.Width(box), lipgloss.Height(box)
		if len(row) > 0 {
			if x+columnGap+w > width {
				flush()
			} else {
				row = append(row, blank(columnGap))
				x += columnGap
			}
		}
		place(i, x, y, w, h)
		row = append(row, box)
		x += w
		rowH = max(rowH, h)
	}
	flush()
	return strings.Join(rows, "\n")
}

// cardLine is " ● title [-] " padded to exactly inner columns.
func cardLine(c board.CardView, inner int, icon string) string {
	dot := severityStyle(c.Severity).Render("●")
	title := textutil.PadRightVisual(c.Title, inner-iconCols-5)
	if c.Pending {
		dot = Styles.Faded.Render("●")
		title = Styles.Faded.Render(title)
	}
	return " " + dot + " " + title + " " + icon + " "
}

func severityLine(c board.CardView, inner int) string {
	style := severityStyle(c.Severity)
	if c.Pending {
		style = Styles.Faded
	}
	return style.Render(textutil.PadRightVisual(" "+string(c.Severity), inner))
}

// iconLabel is the icon drawn on every card for the current mode.
func iconLabel(snap board.Snapshot) string {
	switch {
	case snap.Manager:
		return Styles.IconDanger.Render("[x]")
	case snap.Mode == board.ModeHidden:
		return Styles.Icon.Render("[+]")
	default:
		return Styles.Icon.Render("[-]")
	}
}

func blank(n int) string {
	return strings.Repeat(" ", n)
}
