package deck

import "errors"

var (
	// ErrStackFull is returned when inserting into a stack that already has MaxCards cards.
	ErrStackFull = errors.New("stack is full")
	// ErrNotInStack is returned when removing a card the stack does not hold.
	ErrNotInStack = errors.New("card not in stack")
)

// Rotation directions.
const (
	// BringLeft moves the left card to front: [A,B,C] -> [B,C,A].
	BringLeft = 1
	// BringRight moves the right card to front: [A,B,C] -> [C,A,B].
	BringRight = -1
)

// Stack is an ordered group of up to MaxCards cards.
type Stack struct {
	Index int
	Name  string
	Icon  string // short label for the stack switcher

	cards []*Card // slot order
}

// NewStack creates a stack at the given position holding cards in slot order.
// Cards beyond MaxCards are dropped; Deck.Validate reports them before this point.
func NewStack(index int, name, icon string, cards ...*Card) *Stack {
	if len(cards) > MaxCards {
		cards = cards[:MaxCards]
	}
	s := &Stack{Index: index, Name: name, Icon: icon}
	s.cards = append(s.cards, cards...)
	s.reorganize()
	return s
}

// Cards returns the cards in slot order. The slice is a copy.
func (s *Stack) Cards() []*Card {
	out := make([]*Card, len(s.cards))
	copy(out, s.cards)
	return out
}

// Len returns the number of cards in the stack.
func (s *Stack) Len() int { return len(s.cards) }

// Empty reports whether the stack holds no cards.
func (s *Stack) Empty() bool { return len(s.cards) == 0 }

// Front returns the front card, or nil for an empty stack.
func (s *Stack) Front() *Card {
	return s.At(SlotFront)
}

// At returns the card in the given slot, or nil.
func (s *Stack) At(slot Slot) *Card {
	i := int(slot)
	if i < 0 || i >= len(s.cards) {
		return nil
	}
	return s.cards[i]
}

// Contains reports whether the stack holds the card with the given ID.
func (s *Stack) Contains(id string) bool {
	return s.indexOf(id) >= 0
}

// Rotate cycles the slot order. See BringLeft and BringRight.
// With fewer than two cards, or a direction other than ±1, it does nothing.
func (s *Stack) Rotate(direction int) {
	n := len(s.cards)
	if n < 2 {
		return
	}
	switch direction {
	case BringLeft:
		first := s.cards[0]
		copy(s.cards, s.cards[1:])
		s.cards[n-1] = first
	case BringRight:
		last := s.cards[n-1]
		copy(s.cards[1:], s.cards[:n-1])
		s.cards[0] = last
	default:
		return
	}
	s.reorganize()
}

// RotateToward brings the card in slot to the front.
// It returns false when the slot is front or empty.
func (s *Stack) RotateToward(slot Slot) bool {
	if slot == SlotFront || s.At(slot) == nil {
		return false
	}
	switch slot {
	case SlotLeft:
		s.Rotate(BringLeft)
	case SlotRight:
		s.Rotate(BringRight)
	}
	return true
}

// RemoveCard takes the card out of the stack. The remaining cards keep their
// relative order and are packed from the front slot.
func (s *Stack) RemoveCard(c *Card) error {
	i := s.indexOf(c.ID)
	if i < 0 {
		return ErrNotInStack
	}
	s.cards = append(s.cards[:i], s.cards[i+1:]...)
	c.StackIndex = -1
	s.reorganize()
	return nil
}

// InsertCard puts the card back into the stack, after the others when atEnd is
// set and at the front otherwise.
func (s *Stack) InsertCard(c *Card, atEnd bool) error {
	if len(s.cards) >= MaxCards {
		return ErrStackFull
	}
	if atEnd {
		s.cards = append(s.cards, c)
	} else {
		s.cards = append([]*Card{c}, s.cards...)
	}
	s.reorganize()
	return nil
}

func (s *Stack) indexOf(id string) int {
	for i, c := range s.cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// reorganize rewrites slot and stack assignment from the slot order.
func (s *Stack) reorganize() {
	for i, c := range s.cards {
		c.Slot = Slot(i)
		c.StackIndex = s.Index
	}
}
