// Package deck holds the alert cards, the stacks they are grouped into, and the
// registry that tracks which cards are hidden or deleted.
//
// Stacks keep their cards in slot order: index 0 is the front card, index 1 the
// left card, index 2 the right card. Every structural change rewrites each card's
// Slot so the assignment is always a prefix of [front, left, right].
package deck

import "fmt"

// Slot is a card's position within its stack.
type Slot int

const (
	SlotFront Slot = iota
	SlotLeft
	SlotRight
)

// MaxCards is the number of slots a stack has.
const MaxCards = 3

func (s Slot) String() string {
	switch s {
	case SlotFront:
		return "front"
	case SlotLeft:
		return "left"
	case SlotRight:
		return "right"
	default:
		return fmt.Sprintf("Slot(%d)", int(s))
	}
}

// Visibility is the lifecycle state of a card.
type Visibility int

const (
	Visible Visibility = iota
	Hidden
	Deleted
)

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Hidden:
		return "hidden"
	case Deleted:
		return "deleted"
	default:
		return fmt.Sprintf("Visibility(%d)", int(v))
	}
}

// Severity labels an alert. Unknown strings are kept as-is.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Card is a single alert.
type Card struct {
	ID       string
	Title    string
	Severity Severity
	Body     string // markdown

	// StackIndex is the hosting stack, or -1 when the card is hidden or deleted.
	StackIndex int
	Slot       Slot
	State      Visibility
}

// NewCard returns a visible card that is not yet in a stack.
func NewCard(id, title string, severity Severity, body string) *Card {
	return &Card{
		ID:         id,
		Title:      title,
		Severity:   severity,
		Body:       body,
		StackIndex: -1,
		State:      Visible,
	}
}

func (c *Card) String() string {
	return fmt.Sprintf("%s(%s)", c.ID, c.Slot)
}
