package ui

// TargetKind says what a screen region stands for.
type TargetKind int

const (
	// TargetNone absorbs clicks without acting on them.
	TargetNone TargetKind = iota
	TargetStack
	TargetCard
	TargetIcon
	TargetSwitch
	TargetLogo
	TargetHiddenToggle
	TargetManagerToggle
)

func (k TargetKind) String() string {
	switch k {
	case TargetStack:
		return "stack"
	case TargetCard:
		return "card"
	case TargetIcon:
		return "icon"
	case TargetSwitch:
		return "switch"
	case TargetLogo:
		return "logo"
	case TargetHiddenToggle:
		return "hidden-toggle"
	case TargetManagerToggle:
		return "manager-toggle"
	default:
		return "none"
	}
}

// Target is the thing under the pointer.
type Target struct {
	Kind  TargetKind
	Stack int    // stack index for TargetStack and TargetSwitch
	Card  string // card id for TargetCard and TargetIcon
}

// Region is a rectangle in screen cells.
type Region struct {
	X, Y, W, H int
	Target     Target
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// HitMap is rebuilt on every render. Regions added later sit on top.
type HitMap struct {
	regions []Region
}

// Reset drops all regions.
func (h *HitMap) Reset() {
	h.regions = h.regions[:0]
}

// Add records a region. Empty rectangles are ignored.
func (h *HitMap) Add(x, y, w, height int, t Target) {
	if w <= 0 || height <= 0 {
		return
	}
	h.regions = append(h.regions, Region{X: x, Y: y, W: w, H: height, Target: t})
}

// At returns the topmost target at (x, y). ok is false over the background.
func (h *HitMap) At(x, y int) (Target, bool) {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Contains(x, y) {
			return h.regions[i].Target, true
		}
	}
	return Target{}, false
}
