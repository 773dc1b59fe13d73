// Package ui is the terminal front end of alertdeck, built on Bubble Tea.
//
// Core pieces:
//   - AppModel: owns the board controller and adapts it to tea.Model
//   - HitMap: rectangles recorded while rendering, used to route mouse clicks
//   - KeybindRegistry/KeyHandler: single keys plus SPC leader sequences
//   - OverlayStack: modal views (the delete confirmation) drawn over the board
//
// The controller never sees timers or dialogs. AppModel implements
// board.Deferrer with tea.Tick and board.Confirmer with a ConfirmModal.
package ui
