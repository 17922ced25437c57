// Package mouse provides hit-region bookkeeping and classification of
// bubbletea mouse messages into higher level actions.
//
// Components register rectangles after rendering (render-then-measure) and
// ask the handler which region a pointer event landed in. Regions added later
// take priority over earlier ones, so a panel item registered after its panel
// wins the hit test.
package mouse

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Rect is a rectangle in terminal cells. W and H are exclusive extents.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Region is a named hit area with optional payload.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds the regions registered for the current frame.
type HitMap struct {
	regions []Region
}

// NewHitMap creates an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region. Later regions have higher priority.
func (h *HitMap) AddRect(id string, x, y, w, height int, data any) {
	h.regions = append(h.regions, Region{
		ID:   id,
		Rect: Rect{X: x, Y: y, W: w, H: height},
		Data: data,
	})
}

// Add registers a region built elsewhere.
func (h *HitMap) Add(r Region) {
	h.regions = append(h.regions, r)
}

// Test returns the highest priority region containing (x, y), or nil.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			r := h.regions[i]
			return &r
		}
	}
	return nil
}

// Find returns the region with the given id, or nil.
func (h *HitMap) Find(id string) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].ID == id {
			r := h.regions[i]
			return &r
		}
	}
	return nil
}

// Remove drops every region whose id satisfies match.
func (h *HitMap) Remove(match func(id string) bool) {
	kept := h.regions[:0]
	for _, r := range h.regions {
		if !match(r.ID) {
			kept = append(kept, r)
		}
	}
	h.regions = kept
}

// Regions returns the registered regions in priority order (lowest first).
func (h *HitMap) Regions() []Region {
	return h.regions
}

// Clear removes all regions.
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// ActionType classifies a mouse message.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionHover
	ActionScrollUp
	ActionScrollDown
	ActionScrollLeft
	ActionScrollRight
)

func (a ActionType) String() string {
	switch a {
	case ActionClick:
		return "click"
	case ActionHover:
		return "hover"
	case ActionScrollUp:
		return "scroll-up"
	case ActionScrollDown:
		return "scroll-down"
	case ActionScrollLeft:
		return "scroll-left"
	case ActionScrollRight:
		return "scroll-right"
	default:
		return "none"
	}
}

// Action is the result of classifying one mouse message.
type Action struct {
	Type   ActionType
	Region *Region // region under the pointer, nil when outside every region
	X, Y   int

	// Set on hover when the region under the pointer changed.
	Entered string
	Left    string
}

// Handler classifies mouse messages against its hit map and tracks the
// hovered region so enter/leave transitions can be reported.
type Handler struct {
	HitMap  *HitMap
	hovered string
}

// NewHandler creates a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// Hovered returns the id of the region last reported as hovered.
func (h *Handler) Hovered() string {
	return h.hovered
}

// HandleMouse classifies msg. Press of the left button is a click, motion is
// a hover, wheel buttons scroll (shift turns vertical wheel into horizontal).
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	region := h.HitMap.Test(msg.X, msg.Y)
	action := Action{Region: region, X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			action.Type = ActionClick
		case tea.MouseButtonWheelUp:
			action.Type = ActionScrollUp
			if msg.Shift {
				action.Type = ActionScrollLeft
			}
		case tea.MouseButtonWheelDown:
			action.Type = ActionScrollDown
			if msg.Shift {
				action.Type = ActionScrollRight
			}
		case tea.MouseButtonWheelLeft:
			action.Type = ActionScrollLeft
		case tea.MouseButtonWheelRight:
			action.Type = ActionScrollRight
		}
	case tea.MouseActionMotion:
		action.Type = ActionHover
		id := ""
		if region != nil {
			id = region.ID
		}
		if id != h.hovered {
			action.Left = h.hovered
			action.Entered = id
			h.hovered = id
		}
	}

	return action
}

// Clear removes all regions. The hovered id is kept so the next motion
// after a re-render does not report a spurious enter.
func (h *Handler) Clear() {
	h.HitMap.Clear()
}

// Reset clears the regions and forgets the hovered region.
func (h *Handler) Reset() {
	h.HitMap.Clear()
	h.hovered = ""
}
