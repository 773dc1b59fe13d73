package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"alertdeck/internal/deck"
)

// manualDeferrer queues continuations until Flush.
type manualDeferrer struct {
	queued []func()
	delays []time.Duration
}

func (m *manualDeferrer) Defer(d time.Duration, fn func()) {
	m.delays = append(m.delays, d)
	m.queued = append(m.queued, fn)
}

func (m *manualDeferrer) Flush() {
	q := m.queued
	m.queued = nil
	for _, fn := range q {
		fn()
	}
}

// scriptedConfirmer answers every prompt with accept.
type scriptedConfirmer struct {
	accept  bool
	prompts []string
}

func (s *scriptedConfirmer) Confirm(prompt string, onAccept func()) {
	s.prompts = append(s.prompts, prompt)
	if s.accept {
		onAccept()
	}
}

func card(id string) *deck.Card {
	return deck.NewCard(id, "title "+id, deck.SeverityInfo, "")
}

// testDeck builds three stacks: [A,B,C], [D,E], [F].
func testDeck() *deck.Deck {
	return deck.New(
		deck.NewStack(0, "zero", "0", card("A"), card("B"), card("C")),
		deck.NewStack(0, "one", "1", card("D"), card("E")),
		deck.NewStack(0, "two", "2", card("F")),
	)
}

type harness struct {
	c       *Controller
	clock   *manualDeferrer
	confirm *scriptedConfirmer
}

func newHarness(opts ...Option) *harness {
	h := &harness{clock: &manualDeferrer{}, confirm: &scriptedConfirmer{accept: true}}
	h.c = New(testDeck(), h.confirm, h.clock, opts...)
	return h
}

func ids(cards []CardView) []string {
	var out []string
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}

func stackIDs(c *Controller, i int) []string {
	return ids(c.Snapshot().Stacks[i].Cards)
}

func TestController_StartsInGrid(t *testing.T) {
	h := newHarness()
	snap := h.c.Snapshot()
	assert.Equal(t, ModeGrid, snap.Mode)
	assert.Equal(t, -1, snap.Focus)
	assert.False(t, snap.SwitchVisible)
	for _, s := range snap.Stacks {
		assert.False(t, s.Active)
		assert.False(t, s.Inactive)
	}
}

func TestController_ActivateThenSwitch(t *testing.T) {
	h := newHarness()
	require.True(t, h.c.ActivateStack(0))
	require.True(t, h.c.ActivateStack(2), "switching while zoomed is direct")

	snap := h.c.Snapshot()
	assert.Equal(t, ModeZoom, snap.Mode)
	assert.Equal(t, 2, snap.Focus)
	assert.True(t, snap.SwitchVisible)
	for _, s := range snap.Stacks {
		assert.Equal(t, s.Index == 2, s.Active, "stack %d active", s.Index)
		assert.Equal(t, s.Index != 2, s.Inactive, "stack %d inactive", s.Index)
	}
	for _, icon := range snap.Switch {
		assert.Equal(t, icon.Index != 2, icon.Visible, "switch icon %d", icon.Index)
	}
}

func TestController_ActivateGuards(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := newHarness(WithLogger(zap.New(core)))

	assert.False(t, h.c.ActivateStack(-1))
	assert.False(t, h.c.ActivateStack(3))
	assert.Equal(t, ModeGrid, h.c.Mode())
	assert.Equal(t, 2, logs.FilterMessage("activate stack out of range").Len())

	h.c.ToggleHiddenView()
	assert.False(t, h.c.ActivateStack(0))
	assert.Equal(t, ModeHidden, h.c.Mode())
	assert.Equal(t, 1, logs.FilterMessage("activate stack blocked in hidden view").Len())
}

func TestController_NeighborWraps(t *testing.T) {
	h := newHarness()
	require.True(t, h.c.ActivateStack(2))
	require.True(t, h.c.ActivateNeighbor(1))
	i, _ := h.c.Focus()
	assert.Equal(t, 0, i, "+1 from the last stack wraps to 0")

	require.True(t, h.c.ActivateNeighbor(-1))
	i, _ = h.c.Focus()
	assert.Equal(t, 2, i, "-1 from 0 wraps to the last stack")

	require.True(t, h.c.ActivateNeighbor(-1))
	i, _ = h.c.Focus()
	assert.Equal(t, 1, i)
}

func TestController_NeighborRequiresZoom(t *testing.T) {
	h := newHarness()
	assert.False(t, h.c.ActivateNeighbor(1))
	assert.Equal(t, ModeGrid, h.c.Mode())
}

func TestController_NeighborPassesOverEmptyStacks(t *testing.T) {
	h := newHarness()
	require.True(t, h.c.ActivateStack(2))
	require.True(t, h.c.ActivateIcon("F"))
	h.clock.Flush()
	require.Equal(t, ModeGrid, h.c.Mode())

	require.True(t, h.c.ActivateStack(1))
	require.True(t, h.c.ActivateNeighbor(1))
	i, _ := h.c.Focus()
	assert.Equal(t, 0, i, "stack 2 is empty and is passed over")
}

func TestController_ClickCardRotatesTowardSideCards(t *testing.T) {
	h := newHarness()

	// Grid click zooms the card's stack without rotating.
	require.True(t, h.c.ClickCard("B"))
	assert.Equal(t, ModeZoom, h.c.Mode())
	assert.Equal(t, []string{"A", "B", "C"}, stackIDs(h.c, 0))

	assert.False(t, h.c.ClickCard("A"), "front card click is a no-op")
	assert.Equal(t, []string{"A", "B", "C"}, stackIDs(h.c, 0))
	assert.Equal(t, ModeZoom, h.c.Mode())

	require.True(t, h.c.ClickCard("B"))
	assert.Equal(t, []string{"B", "C", "A"}, stackIDs(h.c, 0))

	require.True(t, h.c.ClickCard("A"), "A is now on the right")
	assert.Equal(t, []string{"A", "B", "C"}, stackIDs(h.c, 0))

	require.True(t, h.c.ClickCard("E"), "card of another stack switches focus")
	i, _ := h.c.Focus()
	assert.Equal(t, 1, i)
	assert.Equal(t, []string{"D", "E"}, stackIDs(h.c, 1))
}

func TestController_ManagerDeleteExample(t *testing.T) {
	h := newHarness(WithManager(true))
	require.True(t, h.c.ActivateStack(0))
	require.True(t, h.c.ClickCard("B"))
	require.Equal(t, []string{"B", "C", "A"}, stackIDs(h.c, 0))

	require.True(t, h.c.ActivateIcon("B"))
	require.Len(t, h.confirm.prompts, 1)
	assert.Contains(t, h.confirm.prompts[0], "title B")
	assert.Equal(t, []string{"B", "C", "A"}, stackIDs(h.c, 0), "nothing changes during the fade")
	assert.True(t, h.c.Snapshot().Stacks[0].Cards[0].Pending)

	h.clock.Flush()
	b := h.c.Deck().Card("B")
	assert.Equal(t, deck.Deleted, b.State)
	assert.Equal(t, []string{"C", "A"}, stackIDs(h.c, 0))
	snap := h.c.Snapshot()
	assert.Equal(t, deck.SlotFront, snap.Stacks[0].Cards[0].Slot)
	assert.Equal(t, deck.SlotLeft, snap.Stacks[0].Cards[1].Slot)
	assert.Equal(t, 0, snap.HiddenCount)

	assert.False(t, h.c.ActivateIcon("B"), "deleted is terminal")
}

func TestController_ManagerDeleteCancelled(t *testing.T) {
	h := newHarness(WithManager(true))
	h.confirm.accept = false
	require.True(t, h.c.ActivateStack(0))
	h.c.ActivateIcon("A")
	assert.Empty(t, h.clock.queued)
	assert.Equal(t, deck.Visible, h.c.Deck().Card("A").State)
	assert.Equal(t, []string{"A", "B", "C"}, stackIDs(h.c, 0))
}

func TestController_HidingLastCardOfZoomedStack(t *testing.T) {
	h := newHarness()
	require.True(t, h.c.ActivateStack(2))
	require.True(t, h.c.ActivateFrontIcon())
	assert.Equal(t, ModeZoom, h.c.Mode(), "still zoomed while fading")
	assert.Equal(t, []time.Duration{FadeDuration}, h.clock.delays)

	h.clock.Flush()
	snap := h.c.Snapshot()
	assert.Equal(t, ModeGrid, snap.Mode)
	assert.True(t, snap.Stacks[2].Empty)
	assert.Equal(t, 1, snap.HiddenCount)
	assert.False(t, h.c.ActivateStack(2), "empty stacks cannot be zoomed")
}

func TestController_SecondIconClickDuringFadeIgnored(t *testing.T) {
	h := newHarness()
	require.True(t, h.c.ActivateStack(0))
	require.True(t, h.c.ActivateIcon("A"))
	assert.False(t, h.c.ActivateIcon("A"))
	assert.Len(t, h.clock.queued, 1)

	h.clock.Flush()
	assert.Equal(t, 1, h.c.HiddenCount())
	assert.Equal(t, []string{"B", "C"}, stackIDs(h.c, 0))
}

func TestController_EscapeDuringFadeOnlyChangesMode(t *testing.T) {
	h := newHarness()
	require.True(t, h.c.ActivateStack(0))
	require.True(t, h.c.ActivateIcon("A"))
	require.True(t, h.c.Escape())
	assert.Equal(t, ModeGrid, h.c.Mode())

	h.clock.Flush()
	assert.Equal(t, deck.Hidden, h.c.Deck().Card("A").State)
	assert.Equal(t, ModeGrid, h.c.Mode())
}

func TestController_CommitIsIdempotent(t *testing.T) {
	h := newHarness()
	require.True(t, h.c.ActivateStack(0))
	require.True(t, h.c.ActivateIcon("A"))

	// The card reaches the hidden state before the fade ends.
	a := h.c.Deck().Card("A")
	s := h.c.Deck().Stack(0)
	require.NoError(t, h.c.Registry().Hide(a, s))
	require.NoError(t, s.RemoveCard(a))

	h.clock.Flush()
	assert.Equal(t, 1, h.c.HiddenCount())
	assert.Equal(t, []string{"B", "C"}, stackIDs(h.c, 0))
	assert.False(t, h.c.Registry().Pending("A"))
}

func TestController_HiddenViewRestore(t *testing.T) {
	h := newHarness()
	require.True(t, h.c.ActivateStack(0))
	require.True(t, h.c.ActivateIcon("A"))
	h.clock.Flush()
	require.True(t, h.c.ActivateIcon("B"))
	h.clock.Flush()
	require.Equal(t, []string{"C"}, stackIDs(h.c, 0))

	h.c.ToggleHiddenView()
	snap := h.c.Snapshot()
	assert.Equal(t, ModeHidden, snap.Mode)
	assert.Equal(t, -1, snap.Focus)
	assert.False(t, snap.SwitchVisible)
	assert.Equal(t, []string{"A", "B"}, ids(snap.Hidden))
	assert.Equal(t, 0, snap.Hidden[0].Origin)

	h.c.MoveHiddenCursor(1)
	require.True(t, h.c.ActivateHiddenCursor())
	h.clock.Flush()
	assert.Equal(t, []string{"C", "B"}, stackIDs(h.c, 0))
	assert.Equal(t, ModeHidden, h.c.Mode(), "A is still hidden")
	assert.Equal(t, 0, h.c.Snapshot().HiddenCursor, "cursor clamps to the remaining cards")

	require.True(t, h.c.ActivateIcon("A"))
	h.clock.Flush()
	assert.Equal(t, []string{"C", "B", "A"}, stackIDs(h.c, 0))
	assert.Equal(t, ModeGrid, h.c.Mode(), "no hidden cards left")
}

func TestController_ManagerDeleteInHiddenView(t *testing.T) {
	h := newHarness()
	require.True(t, h.c.ActivateStack(1))
	require.True(t, h.c.ActivateIcon("D"))
	h.clock.Flush()

	h.c.ToggleHiddenView()
	h.c.ToggleManager()
	require.True(t, h.c.ActivateIcon("D"))
	h.clock.Flush()

	assert.Equal(t, deck.Deleted, h.c.Deck().Card("D").State)
	assert.Equal(t, ModeGrid, h.c.Mode())
	assert.Equal(t, 0, h.c.HiddenCount())
	assert.Equal(t, []string{"E"}, stackIDs(h.c, 1))
}

func TestController_HiddenViewToggleAndEscape(t *testing.T) {
	h := newHarness()
	require.True(t, h.c.ActivateStack(0))
	h.c.ToggleHiddenView()
	assert.Equal(t, ModeHidden, h.c.Mode())
	_, zoomed := h.c.Focus()
	assert.False(t, zoomed)

	h.c.ToggleHiddenView()
	assert.Equal(t, ModeGrid, h.c.Mode())

	h.c.ToggleHiddenView()
	assert.True(t, h.c.Escape())
	assert.Equal(t, ModeGrid, h.c.Mode())
	assert.False(t, h.c.Escape(), "escape in grid does nothing")
}

func TestController_BackgroundAndLogo(t *testing.T) {
	h := newHarness()
	assert.False(t, h.c.ClickBackground(), "background only acts while zoomed")

	require.True(t, h.c.ActivateStack(1))
	assert.True(t, h.c.ClickBackground())
	assert.Equal(t, ModeGrid, h.c.Mode())

	h.c.ToggleHiddenView()
	assert.False(t, h.c.ClickBackground())
	assert.Equal(t, ModeHidden, h.c.Mode())
	assert.True(t, h.c.Logo())
	assert.Equal(t, ModeGrid, h.c.Mode())
}

func TestController_RotateKeyboard(t *testing.T) {
	h := newHarness()
	assert.False(t, h.c.Rotate(deck.BringLeft), "nothing zoomed")
	require.True(t, h.c.ActivateStack(0))
	require.True(t, h.c.Rotate(deck.BringRight))
	assert.Equal(t, []string{"C", "A", "B"}, stackIDs(h.c, 0))

	require.True(t, h.c.ActivateStack(2))
	assert.False(t, h.c.Rotate(deck.BringLeft), "single card")
}

func TestController_ActionSpans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	h := newHarness(WithTracer(tp.Tracer("test")))

	require.True(t, h.c.ActivateStack(0))
	require.True(t, h.c.ActivateIcon("A"))
	assert.Empty(t, rec.Ended(), "span stays open across the fade")

	h.clock.Flush()
	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "card.hide", spans[0].Name())

	attrs := make(map[string]string)
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "A", attrs["card.id"])
	assert.Equal(t, "0", attrs["card.stack"])
	assert.Equal(t, "Zoom", attrs["view.mode"])
	assert.Equal(t, "1", attrs["hidden.count"])
}
