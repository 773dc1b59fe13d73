package board

import "alertdeck/internal/deck"

// Snapshot is everything a renderer needs to draw the widget.
type Snapshot struct {
	Mode    Mode
	Focus   int // zoomed stack, -1 when none
	Manager bool

	Stacks []StackView

	// SwitchVisible is set while zoomed; the switch icon of the zoomed stack is hidden.
	SwitchVisible bool
	Switch        []SwitchIcon

	HiddenCount  int
	Hidden       []CardView // hide order, filled in hidden view only
	HiddenCursor int
}

// StackView is a stack as rendered.
type StackView struct {
	Index    int
	Name     string
	Icon     string
	Active   bool
	Inactive bool
	Empty    bool
	Cards    []CardView // slot order
}

// CardView is a card as rendered.
type CardView struct {
	ID         string
	Title      string
	Severity   deck.Severity
	Body       string
	Slot       deck.Slot
	StackIndex int
	Origin     int // stack a hidden card came from, -1 otherwise
	Pending    bool
}

// SwitchIcon is one entry of the stack switcher.
type SwitchIcon struct {
	Index   int
	Icon    string
	Visible bool
}

// Snapshot derives the render state.
func (c *Controller) Snapshot() Snapshot {
	focus, zoomed := c.Focus()
	snap := Snapshot{
		Mode:          c.mode,
		Focus:         focus,
		Manager:       c.manager,
		SwitchVisible: zoomed,
		HiddenCount:   c.registry.Count(),
	}
	for _, s := range c.deck.Stacks {
		sv := StackView{
			Index:    s.Index,
			Name:     s.Name,
			Icon:     s.Icon,
			Active:   zoomed && s.Index == focus,
			Inactive: zoomed && s.Index != focus,
			Empty:    s.Empty(),
		}
		for _, card := range s.Cards() {
			sv.Cards = append(sv.Cards, c.cardView(card))
		}
		snap.Stacks = append(snap.Stacks, sv)
		snap.Switch = append(snap.Switch, SwitchIcon{
			Index:   s.Index,
			Icon:    s.Icon,
			Visible: !zoomed || s.Index != focus,
		})
	}
	if c.mode == ModeHidden {
		for _, card := range c.registry.Hidden() {
			snap.Hidden = append(snap.Hidden, c.cardView(card))
		}
		snap.HiddenCursor = c.hiddenCursor
	}
	return snap
}

func (c *Controller) cardView(card *deck.Card) CardView {
	origin := -1
	if s, ok := c.registry.Origin(card.ID); ok {
		origin = s.Index
	}
	return CardView{
		ID:         card.ID,
		Title:      card.Title,
		Severity:   card.Severity,
		Body:       card.Body,
		Slot:       card.Slot,
		StackIndex: card.StackIndex,
		Origin:     origin,
		Pending:    c.registry.Pending(card.ID),
	}
}
