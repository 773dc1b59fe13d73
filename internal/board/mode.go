package board

// Mode is the top-level view mode of the widget.
type Mode int

const (
	ModeGrid Mode = iota
	ModeZoom
	ModeHidden
)

func (m Mode) String() string {
	switch m {
	case ModeGrid:
		return "Grid"
	case ModeZoom:
		return "Zoom"
	case ModeHidden:
		return "Hidden"
	default:
		return "Unknown"
	}
}

// Action is the deferred mutation behind a card icon.
type Action int

const (
	ActionHide Action = iota
	ActionRestore
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionHide:
		return "hide"
	case ActionRestore:
		return "restore"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}
