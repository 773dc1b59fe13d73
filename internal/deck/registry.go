package deck

import "errors"

var (
	ErrAlreadyHidden = errors.New("card already hidden")
	ErrNotHidden     = errors.New("card not hidden")
	ErrDeleted       = errors.New("card deleted")
)

type hiddenEntry struct {
	card   *Card
	origin *Stack
}

// Registry tracks hidden and deleted cards and which cards have a fade in flight.
type Registry struct {
	hidden  []hiddenEntry // hide order
	deleted map[string]bool
	pending map[string]bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		deleted: make(map[string]bool),
		pending: make(map[string]bool),
	}
}

// Hide records the card as hidden from origin.
func (r *Registry) Hide(c *Card, origin *Stack) error {
	if r.deleted[c.ID] || c.State == Deleted {
		return ErrDeleted
	}
	if r.indexOf(c.ID) >= 0 {
		return ErrAlreadyHidden
	}
	r.hidden = append(r.hidden, hiddenEntry{card: c, origin: origin})
	c.State = Hidden
	return nil
}

// Restore takes the card out of the hidden set and returns the stack it was
// hidden from.
func (r *Registry) Restore(c *Card) (*Card, *Stack, error) {
	i := r.indexOf(c.ID)
	if i < 0 {
		return nil, nil, ErrNotHidden
	}
	e := r.hidden[i]
	r.hidden = append(r.hidden[:i], r.hidden[i+1:]...)
	e.card.State = Visible
	return e.card, e.origin, nil
}

// Delete marks the card deleted. Deletion is terminal.
func (r *Registry) Delete(c *Card) error {
	if r.deleted[c.ID] {
		return ErrDeleted
	}
	if i := r.indexOf(c.ID); i >= 0 {
		r.hidden = append(r.hidden[:i], r.hidden[i+1:]...)
	}
	r.deleted[c.ID] = true
	delete(r.pending, c.ID)
	c.State = Deleted
	c.StackIndex = -1
	return nil
}

// Count returns the number of hidden cards.
func (r *Registry) Count() int { return len(r.hidden) }

// Hidden returns the hidden cards in the order they were hidden.
func (r *Registry) Hidden() []*Card {
	out := make([]*Card, len(r.hidden))
	for i, e := range r.hidden {
		out[i] = e.card
	}
	return out
}

// Origin returns the stack a hidden card came from.
func (r *Registry) Origin(id string) (*Stack, bool) {
	i := r.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return r.hidden[i].origin, true
}

// IsDeleted reports whether the card with the given ID was deleted.
func (r *Registry) IsDeleted(id string) bool { return r.deleted[id] }

// MarkPending flags a card as fading. It returns false if it already was.
func (r *Registry) MarkPending(id string) bool {
	if r.pending[id] {
		return false
	}
	r.pending[id] = true
	return true
}

// ClearPending drops the fading flag.
func (r *Registry) ClearPending(id string) { delete(r.pending, id) }

// Pending reports whether a fade is in flight for the card.
func (r *Registry) Pending(id string) bool { return r.pending[id] }

func (r *Registry) indexOf(id string) int {
	for i, e := range r.hidden {
		if e.card.ID == id {
			return i
		}
	}
	return -1
}
