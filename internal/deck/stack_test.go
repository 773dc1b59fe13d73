package deck

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStack(ids ...string) *Stack {
	cards := make([]*Card, len(ids))
	for i, id := range ids {
		cards[i] = NewCard(id, id, SeverityInfo, "")
	}
	return NewStack(0, "test", "T", cards...)
}

func order(s *Stack) []string {
	var ids []string
	for _, c := range s.Cards() {
		ids = append(ids, c.ID)
	}
	return ids
}

// assertSlots checks that slots form a prefix of [front, left, right] and
// every card points back at the stack.
func assertSlots(t *testing.T, s *Stack) {
	t.Helper()
	seen := make(map[Slot]bool)
	fronts := 0
	for i, c := range s.Cards() {
		assert.Equal(t, Slot(i), c.Slot, "card %s", c.ID)
		assert.False(t, seen[c.Slot], "slot %s used twice", c.Slot)
		seen[c.Slot] = true
		assert.Equal(t, s.Index, c.StackIndex)
		if c.Slot == SlotFront {
			fronts++
		}
	}
	if s.Len() > 0 {
		assert.Equal(t, 1, fronts)
	}
	assert.LessOrEqual(t, s.Len(), MaxCards)
}

func TestStack_Rotate(t *testing.T) {
	tests := []struct {
		name      string
		ids       []string
		direction int
		want      []string
	}{
		{"three bring left", []string{"A", "B", "C"}, BringLeft, []string{"B", "C", "A"}},
		{"three bring right", []string{"A", "B", "C"}, BringRight, []string{"C", "A", "B"}},
		{"two bring left swaps", []string{"A", "B"}, BringLeft, []string{"B", "A"}},
		{"two bring right swaps", []string{"A", "B"}, BringRight, []string{"B", "A"}},
		{"one is no-op", []string{"A"}, BringLeft, []string{"A"}},
		{"empty is no-op", nil, BringRight, nil},
		{"bad direction is no-op", []string{"A", "B", "C"}, 2, []string{"A", "B", "C"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testStack(tt.ids...)
			s.Rotate(tt.direction)
			assert.Equal(t, tt.want, order(s))
			assertSlots(t, s)
		})
	}
}

func TestStack_RotateToward(t *testing.T) {
	s := testStack("A", "B", "C")

	assert.False(t, s.RotateToward(SlotFront), "front click must not rotate")
	assert.Equal(t, []string{"A", "B", "C"}, order(s))

	assert.True(t, s.RotateToward(SlotLeft))
	assert.Equal(t, []string{"B", "C", "A"}, order(s))
	assert.Equal(t, SlotRight, s.At(SlotRight).Slot)

	assert.True(t, s.RotateToward(SlotRight))
	assert.Equal(t, []string{"A", "B", "C"}, order(s))

	two := testStack("A", "B")
	assert.False(t, two.RotateToward(SlotRight), "no card in right slot")
}

func TestStack_RemoveCardPacksFromFront(t *testing.T) {
	s := testStack("A", "B", "C")
	s.Rotate(BringLeft) // B, C, A
	b := s.Front()

	require.NoError(t, s.RemoveCard(b))
	assert.Equal(t, []string{"C", "A"}, order(s))
	assert.Equal(t, SlotFront, s.At(SlotFront).Slot)
	assert.Equal(t, -1, b.StackIndex)
	assertSlots(t, s)

	assert.ErrorIs(t, s.RemoveCard(b), ErrNotInStack)
}

func TestStack_RemoveLastCardEmpties(t *testing.T) {
	s := testStack("A")
	require.NoError(t, s.RemoveCard(s.Front()))
	assert.True(t, s.Empty())
	assert.Nil(t, s.Front())
}

func TestStack_InsertCard(t *testing.T) {
	s := testStack("A", "B")
	c := NewCard("C", "C", SeverityInfo, "")
	require.NoError(t, s.InsertCard(c, true))
	assert.Equal(t, []string{"A", "B", "C"}, order(s))
	assert.Equal(t, SlotRight, c.Slot)

	assert.ErrorIs(t, s.InsertCard(NewCard("D", "D", SeverityInfo, ""), true), ErrStackFull)

	front := testStack("A")
	require.NoError(t, front.InsertCard(NewCard("Z", "Z", SeverityInfo, ""), false))
	assert.Equal(t, []string{"Z", "A"}, order(front))
	assertSlots(t, front)
}

func TestStack_SlotInvariantUnderRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for k := 0; k <= MaxCards; k++ {
		ids := []string{"A", "B", "C"}[:k]
		s := testStack(ids...)
		var out []*Card
		for step := 0; step < 500; step++ {
			switch rng.Intn(3) {
			case 0:
				s.Rotate([]int{BringLeft, BringRight}[rng.Intn(2)])
			case 1:
				if s.Len() > 0 {
					c := s.Cards()[rng.Intn(s.Len())]
					require.NoError(t, s.RemoveCard(c))
					out = append(out, c)
				}
			case 2:
				if len(out) > 0 {
					c := out[len(out)-1]
					out = out[:len(out)-1]
					require.NoError(t, s.InsertCard(c, rng.Intn(2) == 0))
				}
			}
			assertSlots(t, s)
		}
	}
}
