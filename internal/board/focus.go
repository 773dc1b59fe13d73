package board

// FocusManager tracks the zoomed stack and rotates focus across stacks.
type FocusManager struct {
	Current  int // stack index, -1 when nothing is focused
	Count    int // number of stacks
	Skip     func(i int) bool
	OnChange func(from, to int)
}

// Focused reports whether a stack holds focus.
func (f *FocusManager) Focused() bool {
	return f.Current >= 0 && f.Current < f.Count
}

// Neighbor returns the next focusable stack in direction dir (+1 or -1),
// wrapping around both ends and passing over stacks Skip rejects.
// It returns false when nothing is focused or no other stack qualifies.
func (f *FocusManager) Neighbor(dir int) (int, bool) {
	if !f.Focused() || (dir != 1 && dir != -1) {
		return 0, false
	}
	idx := f.Current
	for range f.Count - 1 {
		idx += dir
		if idx < 0 {
			idx = f.Count - 1
		}
		if idx >= f.Count {
			idx = 0
		}
		if f.Skip == nil || !f.Skip(idx) {
			return idx, true
		}
	}
	return 0, false
}

// SetFocus moves focus to stack i. Returns false when i is out of range.
func (f *FocusManager) SetFocus(i int) bool {
	if i < 0 || i >= f.Count {
		return false
	}
	from := f.Current
	f.Current = i
	if f.OnChange != nil && from != i {
		f.OnChange(from, i)
	}
	return true
}

// Clear drops focus.
func (f *FocusManager) Clear() {
	from := f.Current
	f.Current = -1
	if f.OnChange != nil && from != -1 {
		f.OnChange(from, -1)
	}
}
