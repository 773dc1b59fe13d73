// Package board implements the interaction state machine of the alert widget:
// which stack is zoomed, which card sits in front, and how card icons hide,
// restore and delete cards.
//
// The controller is synchronous. The fade before an icon action commits and the
// delete confirmation are delegated to a Deferrer and a Confirmer so the caller's
// event loop owns timers and dialogs.
package board

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"alertdeck/internal/deck"
)

// FadeDuration is how long a card fades before its icon action commits.
const FadeDuration = 400 * time.Millisecond

// Confirmer asks the user a yes/no question. onAccept runs only on acceptance.
type Confirmer interface {
	Confirm(prompt string, onAccept func())
}

// Deferrer runs fn once after d has elapsed, on the caller's event loop.
type Deferrer interface {
	Defer(d time.Duration, fn func())
}

// Controller owns the widget state: view mode, focus, manager mode, and the
// deck and registry it mutates.
type Controller struct {
	deck     *deck.Deck
	registry *deck.Registry
	focus    FocusManager

	mode         Mode
	manager      bool
	hiddenCursor int

	confirmer Confirmer
	deferrer  Deferrer
	log       *zap.Logger
	tracer    trace.Tracer
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. Guard failures are logged at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithTracer sets the tracer used for card action spans.
func WithTracer(t trace.Tracer) Option {
	return func(c *Controller) {
		if t != nil {
			c.tracer = t
		}
	}
}

// WithManager starts the controller with manager mode on.
func WithManager(on bool) Option {
	return func(c *Controller) { c.manager = on }
}

// New creates a controller in grid mode over d.
func New(d *deck.Deck, confirmer Confirmer, deferrer Deferrer, opts ...Option) *Controller {
	c := &Controller{
		deck:      d,
		registry:  deck.NewRegistry(),
		mode:      ModeGrid,
		confirmer: confirmer,
		deferrer:  deferrer,
		log:       zap.NewNop(),
		tracer:    noop.NewTracerProvider().Tracer(""),
	}
	c.focus = FocusManager{
		Current: -1,
		Count:   d.Len(),
		Skip: func(i int) bool {
			return d.Stack(i).Empty()
		},
		OnChange: func(from, to int) {
			c.log.Debug("focus changed", zap.Int("from", from), zap.Int("to", to))
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mode returns the current view mode.
func (c *Controller) Mode() Mode { return c.mode }

// Focus returns the zoomed stack index.
func (c *Controller) Focus() (int, bool) {
	if c.mode != ModeZoom || !c.focus.Focused() {
		return -1, false
	}
	return c.focus.Current, true
}

// Manager reports whether icons permanently delete.
func (c *Controller) Manager() bool { return c.manager }

// HiddenCount returns the hidden-card badge count.
func (c *Controller) HiddenCount() int { return c.registry.Count() }

// Deck returns the deck the controller mutates.
func (c *Controller) Deck() *deck.Deck { return c.deck }

// Registry returns the visibility registry.
func (c *Controller) Registry() *deck.Registry { return c.registry }

// ActivateStack zooms stack i. It is blocked in hidden view and for empty or
// out-of-range stacks. Switching from one zoomed stack to another is direct.
func (c *Controller) ActivateStack(i int) bool {
	if c.mode == ModeHidden {
		c.log.Debug("activate stack blocked in hidden view", zap.Int("index", i))
		return false
	}
	s := c.deck.Stack(i)
	if s == nil {
		c.log.Debug("activate stack out of range", zap.Int("index", i), zap.Int("stacks", c.deck.Len()))
		return false
	}
	if s.Empty() {
		c.log.Debug("activate stack ignored, stack empty", zap.Int("index", i))
		return false
	}
	c.focus.SetFocus(i)
	c.mode = ModeZoom
	return true
}

// ActivateNeighbor zooms the next (+1) or previous (-1) non-empty stack,
// wrapping around the ends.
func (c *Controller) ActivateNeighbor(dir int) bool {
	if c.mode != ModeZoom {
		return false
	}
	next, ok := c.focus.Neighbor(dir)
	if !ok {
		return false
	}
	return c.ActivateStack(next)
}

// ClickStack handles a click on a stack container.
func (c *Controller) ClickStack(i int) bool {
	return c.ActivateStack(i)
}

// ClickCard handles a click on a card body. In grid mode it zooms the card's
// stack. In zoom mode a left or right card on the zoomed stack rotates to the
// front, the front card does nothing, and a card of another stack switches focus.
func (c *Controller) ClickCard(id string) bool {
	card := c.deck.Card(id)
	host := c.deck.HostOf(card)
	if host == nil {
		c.log.Debug("click on card outside any stack", zap.String("card", id))
		return false
	}
	switch c.mode {
	case ModeGrid:
		return c.ActivateStack(host.Index)
	case ModeZoom:
		if host.Index != c.focus.Current {
			return c.ActivateStack(host.Index)
		}
		return host.RotateToward(card.Slot)
	default:
		return false
	}
}

// Rotate rotates the zoomed stack. See deck.BringLeft and deck.BringRight.
func (c *Controller) Rotate(direction int) bool {
	i, ok := c.Focus()
	if !ok {
		return false
	}
	s := c.deck.Stack(i)
	if s.Len() < 2 {
		return false
	}
	s.Rotate(direction)
	return true
}

// ClickBackground returns to the grid when a stack is zoomed.
func (c *Controller) ClickBackground() bool {
	if c.mode != ModeZoom {
		return false
	}
	c.resetView()
	return true
}

// Escape leaves hidden view if it is showing, otherwise leaves zoom.
func (c *Controller) Escape() bool {
	if c.mode == ModeGrid {
		return false
	}
	c.resetView()
	return true
}

// Logo leaves hidden view if it is showing and returns to the grid.
func (c *Controller) Logo() bool {
	return c.Escape()
}

// ToggleHiddenView switches between the hidden-card view and the grid.
func (c *Controller) ToggleHiddenView() {
	if c.mode == ModeHidden {
		c.resetView()
		return
	}
	c.focus.Clear()
	c.mode = ModeHidden
	c.hiddenCursor = 0
}

// ToggleManager flips manager mode and returns the new value.
func (c *Controller) ToggleManager() bool {
	c.manager = !c.manager
	c.log.Debug("manager mode", zap.Bool("on", c.manager))
	return c.manager
}

// MoveHiddenCursor moves the hidden-view selection by delta, clamped.
func (c *Controller) MoveHiddenCursor(delta int) {
	if c.mode != ModeHidden {
		return
	}
	c.hiddenCursor = clamp(c.hiddenCursor+delta, 0, c.registry.Count()-1)
}

// ActivateHiddenCursor runs the icon action of the selected hidden card.
func (c *Controller) ActivateHiddenCursor() bool {
	if c.mode != ModeHidden {
		return false
	}
	hidden := c.registry.Hidden()
	if c.hiddenCursor < 0 || c.hiddenCursor >= len(hidden) {
		return false
	}
	return c.ActivateIcon(hidden[c.hiddenCursor].ID)
}

// ActivateFrontIcon runs the icon action of the zoomed stack's front card.
func (c *Controller) ActivateFrontIcon() bool {
	i, ok := c.Focus()
	if !ok {
		return false
	}
	front := c.deck.Stack(i).Front()
	if front == nil {
		return false
	}
	return c.ActivateIcon(front.ID)
}

// ActivateIcon handles a click on a card's icon. In manager mode it asks for
// confirmation and deletes; in hidden view it restores; otherwise it hides.
// The mutation commits after FadeDuration. Clicks on a card whose fade is in
// flight are ignored.
func (c *Controller) ActivateIcon(id string) bool {
	card := c.deck.Card(id)
	if card == nil {
		c.log.Debug("icon for unknown card", zap.String("card", id))
		return false
	}
	if c.registry.Pending(id) {
		c.log.Debug("icon ignored, fade in flight", zap.String("card", id))
		return false
	}
	switch {
	case card.State == deck.Deleted:
		c.log.Debug("icon ignored, card deleted", zap.String("card", id))
		return false
	case c.manager:
		c.confirmer.Confirm(fmt.Sprintf("Delete %q permanently?", card.Title), func() {
			c.begin(card, ActionDelete)
		})
		return true
	case c.mode == ModeHidden:
		if card.State != deck.Hidden {
			return false
		}
		return c.begin(card, ActionRestore)
	default:
		if card.State != deck.Visible {
			return false
		}
		return c.begin(card, ActionHide)
	}
}

// begin is phase one: mark the card pending and schedule the commit.
func (c *Controller) begin(card *deck.Card, action Action) bool {
	if c.registry.IsDeleted(card.ID) {
		return false
	}
	if !c.registry.MarkPending(card.ID) {
		c.log.Debug("fade already in flight", zap.String("card", card.ID))
		return false
	}
	_, span := c.tracer.Start(context.Background(), "card."+action.String(),
		trace.WithAttributes(
			attribute.String("card.id", card.ID),
			attribute.Int("card.stack", card.StackIndex),
			attribute.String("view.mode", c.mode.String()),
		))
	c.deferrer.Defer(FadeDuration, func() {
		c.commit(card, action, span)
	})
	return true
}

// commit is phase two. It is a no-op when the card already reached the
// target state some other way.
func (c *Controller) commit(card *deck.Card, action Action, span trace.Span) {
	defer span.End()
	c.registry.ClearPending(card.ID)

	var err error
	switch action {
	case ActionHide:
		err = c.commitHide(card)
	case ActionRestore:
		err = c.commitRestore(card)
	case ActionDelete:
		err = c.commitDelete(card)
	}
	if err != nil {
		c.log.Debug("card action skipped", zap.String("card", card.ID), zap.Stringer("action", action), zap.Error(err))
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetAttributes(attribute.Int("hidden.count", c.registry.Count()))
	c.log.Debug("card action committed", zap.String("card", card.ID), zap.Stringer("action", action))
}

func (c *Controller) commitHide(card *deck.Card) error {
	host := c.deck.HostOf(card)
	if host == nil {
		return deck.ErrNotInStack
	}
	if err := c.registry.Hide(card, host); err != nil {
		return err
	}
	if err := host.RemoveCard(card); err != nil {
		return err
	}
	c.leaveEmptiedZoom(host)
	return nil
}

func (c *Controller) commitRestore(card *deck.Card) error {
	card, origin, err := c.registry.Restore(card)
	if err != nil {
		return err
	}
	if err := origin.InsertCard(card, true); err != nil {
		_ = c.registry.Hide(card, origin)
		return fmt.Errorf("restore %s: %w", card.ID, err)
	}
	c.leaveDrainedHiddenView()
	return nil
}

func (c *Controller) commitDelete(card *deck.Card) error {
	host := c.deck.HostOf(card)
	if host != nil {
		if err := host.RemoveCard(card); err != nil {
			return err
		}
	}
	if err := c.registry.Delete(card); err != nil {
		return err
	}
	if host != nil {
		c.leaveEmptiedZoom(host)
	}
	c.leaveDrainedHiddenView()
	return nil
}

func (c *Controller) leaveEmptiedZoom(host *deck.Stack) {
	if host.Empty() && c.mode == ModeZoom && c.focus.Current == host.Index {
		c.resetView()
	}
}

func (c *Controller) leaveDrainedHiddenView() {
	if c.mode != ModeHidden {
		return
	}
	if c.registry.Count() == 0 {
		c.resetView()
		return
	}
	c.hiddenCursor = clamp(c.hiddenCursor, 0, c.registry.Count()-1)
}

func (c *Controller) resetView() {
	c.focus.Clear()
	c.mode = ModeGrid
	c.hiddenCursor = 0
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
