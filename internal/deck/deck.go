package deck

import (
	"errors"
	"fmt"
	"strings"
)

// Deck is the full set of stacks shown by the widget.
type Deck struct {
	Stacks []*Stack

	cards map[string]*Card
}

// New builds a deck from stacks, indexing every card by ID. Stack indexes are
// rewritten to match their position.
func New(stacks ...*Stack) *Deck {
	d := &Deck{cards: make(map[string]*Card)}
	for i, s := range stacks {
		s.Index = i
		s.reorganize()
		d.Stacks = append(d.Stacks, s)
		for _, c := range s.cards {
			d.cards[c.ID] = c
		}
	}
	return d
}

// Len returns the number of stacks.
func (d *Deck) Len() int { return len(d.Stacks) }

// Stack returns the stack at index i, or nil when i is out of range.
func (d *Deck) Stack(i int) *Stack {
	if i < 0 || i >= len(d.Stacks) {
		return nil
	}
	return d.Stacks[i]
}

// Card looks up a card by ID, including hidden and deleted cards.
func (d *Deck) Card(id string) *Card {
	return d.cards[id]
}

// HostOf returns the stack currently holding the card, or nil.
func (d *Deck) HostOf(c *Card) *Stack {
	if c == nil {
		return nil
	}
	s := d.Stack(c.StackIndex)
	if s == nil || !s.Contains(c.ID) {
		return nil
	}
	return s
}

// ValidationError lists every problem found in a deck.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid deck: " + strings.Join(e.Problems, "; ")
}

// ErrNoStacks is reported when a deck has nothing to show.
var ErrNoStacks = errors.New("deck has no stacks")

// Validate checks a deck file before it is built.
func (f *File) Validate() error {
	if len(f.Stacks) == 0 {
		return ErrNoStacks
	}
	var problems []string
	seen := make(map[string]string)
	for i, s := range f.Stacks {
		label := s.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}
		if len(s.Cards) > MaxCards {
			problems = append(problems, fmt.Sprintf("stack %s has %d cards (max %d)", label, len(s.Cards), MaxCards))
		}
		for j, c := range s.Cards {
			if strings.TrimSpace(c.ID) == "" {
				problems = append(problems, fmt.Sprintf("stack %s card %d has no id", label, j+1))
				continue
			}
			if strings.TrimSpace(c.Title) == "" {
				problems = append(problems, fmt.Sprintf("card %s has no title", c.ID))
			}
			if prev, ok := seen[c.ID]; ok {
				problems = append(problems, fmt.Sprintf("card id %s used in stack %s and stack %s", c.ID, prev, label))
				continue
			}
			seen[c.ID] = label
		}
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
