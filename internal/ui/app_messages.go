package ui

// FadeDoneMsg delivers a finished fade back to Update, which runs the commit.
type FadeDoneMsg struct {
	commit func()
}

// ConfirmAcceptedMsg is sent when the user accepts the confirm modal. It only
// takes effect while modal is still the top overlay.
type ConfirmAcceptedMsg struct {
	modal  *ConfirmModal
	accept func()
}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}

// ActivateStackMsg zooms a stack (1-9 keys, 0-based index).
type ActivateStackMsg struct {
	Index int
}

// NeighborMsg zooms the next (+1) or previous (-1) stack.
type NeighborMsg struct {
	Dir int
}

// RotateMsg rotates the zoomed stack. See deck.BringLeft and deck.BringRight.
type RotateMsg struct {
	Direction int
}

// IconMsg runs the icon action of the zoomed front card, or of the selected
// card in hidden view.
type IconMsg struct{}

// HiddenCursorMsg moves the hidden-view selection.
type HiddenCursorMsg struct {
	Delta int
}

// ToggleHiddenMsg opens or closes the hidden-card view.
type ToggleHiddenMsg struct{}

// ToggleManagerMsg flips manager mode.
type ToggleManagerMsg struct{}

// LogoMsg returns to the grid, like clicking the logo.
type LogoMsg struct{}
