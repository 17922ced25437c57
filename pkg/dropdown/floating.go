package dropdown

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/dropdown/pkg/mouse"
)

// ErrInvalidPlacement is returned by ParsePlacement for unknown values.
var ErrInvalidPlacement = errors.New("invalid placement")

// Placement is where the panel sits relative to the trigger.
type Placement string

const (
	PlacementTop         Placement = "top"
	PlacementTopStart    Placement = "top-start"
	PlacementTopEnd      Placement = "top-end"
	PlacementRight       Placement = "right"
	PlacementRightStart  Placement = "right-start"
	PlacementRightEnd    Placement = "right-end"
	PlacementBottom      Placement = "bottom"
	PlacementBottomStart Placement = "bottom-start"
	PlacementBottomEnd   Placement = "bottom-end"
	PlacementLeft        Placement = "left"
	PlacementLeftStart   Placement = "left-start"
	PlacementLeftEnd     Placement = "left-end"
)

// Placements lists every placement.
func Placements() []Placement {
	return []Placement{
		PlacementTop, PlacementTopStart, PlacementTopEnd,
		PlacementRight, PlacementRightStart, PlacementRightEnd,
		PlacementBottom, PlacementBottomStart, PlacementBottomEnd,
		PlacementLeft, PlacementLeftStart, PlacementLeftEnd,
	}
}

// ParsePlacement validates s.
func ParsePlacement(s string) (Placement, error) {
	p := Placement(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Placements() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPlacement, s)
}

// Side is the trigger edge the panel attaches to.
func (p Placement) Side() string {
	side, _, _ := strings.Cut(string(p), "-")
	return side
}

// Alignment is "start", "center" or "end".
func (p Placement) Alignment() string {
	_, align, ok := strings.Cut(string(p), "-")
	if !ok {
		return "center"
	}
	return align
}

// Position is the computed top-left cell of the panel.
type Position struct {
	X, Y      int
	Placement Placement
}

// Positioner places a panel of the given size next to a reference rect.
type Positioner interface {
	ComputePosition(reference, floating mouse.Rect, placement Placement, viewport mouse.Rect) Position
}

// AnchorPositioner anchors the panel to a side of the reference with Gap
// cells in between, then shifts it back inside a non-empty viewport.
type AnchorPositioner struct {
	Gap int
}

// ComputePosition implements Positioner.
func (a AnchorPositioner) ComputePosition(ref, fl mouse.Rect, placement Placement, viewport mouse.Rect) Position {
	var x, y int
	align := placement.Alignment()

	switch placement.Side() {
	case "top", "bottom":
		switch align {
		case "start":
			x = ref.X
		case "end":
			x = ref.X + ref.W - fl.W
		default:
			x = ref.X + (ref.W-fl.W)/2
		}
		if placement.Side() == "top" {
			y = ref.Y - fl.H - a.Gap
		} else {
			y = ref.Y + ref.H + a.Gap
		}
	case "left", "right":
		switch align {
		case "start":
			y = ref.Y
		case "end":
			y = ref.Y + ref.H - fl.H
		default:
			y = ref.Y + (ref.H-fl.H)/2
		}
		if placement.Side() == "left" {
			x = ref.X - fl.W - a.Gap
		} else {
			x = ref.X + ref.W + a.Gap
		}
	}

	if !viewport.Empty() {
		x = shift(x, fl.W, viewport.X, viewport.X+viewport.W)
		y = shift(y, fl.H, viewport.Y, viewport.Y+viewport.H)
	}
	return Position{X: x, Y: y, Placement: placement}
}

// shift moves [pos, pos+size) inside [lo, hi) when it fits, preferring lo.
func shift(pos, size, lo, hi int) int {
	if pos+size > hi {
		pos = hi - size
	}
	if pos < lo {
		pos = lo
	}
	return pos
}

// Refs holds the trigger and panel handles.
type Refs struct {
	reference *Handle
	floating  *Handle
}

// SetReference records the trigger handle.
func (r *Refs) SetReference(h Handle) { r.reference = &h }

// Reference returns the trigger handle, if mounted.
func (r *Refs) Reference() (Handle, bool) {
	if r.reference == nil {
		return Handle{}, false
	}
	return *r.reference, true
}

// SetFloating records the panel handle.
func (r *Refs) SetFloating(h Handle) { r.floating = &h }

// Floating returns the panel handle, if mounted.
func (r *Refs) Floating() (Handle, bool) {
	if r.floating == nil {
		return Handle{}, false
	}
	return *r.floating, true
}

// ClearFloating forgets the panel handle.
func (r *Refs) ClearFloating() { r.floating = nil }

// FloatingContext is the state shared by the interaction behaviors of one
// dropdown: the open signal, the handles and the accessibility ids.
type FloatingContext struct {
	machine     *Machine
	refs        *Refs
	ReferenceID string
	FloatingID  string
}

// Open reports whether the panel is open.
func (c *FloatingContext) Open() bool {
	return c.machine.State().Open
}

// SetOpen opens or closes the panel. Closing records reason.
func (c *FloatingContext) SetOpen(open bool, reason DismissReason) {
	if open == c.Open() {
		return
	}
	if open {
		c.machine.Dispatch(ActivateTrigger{})
		return
	}
	c.machine.Dispatch(Dismiss{Reason: reason})
}

// Dispatch forwards ev to the state machine.
func (c *FloatingContext) Dispatch(ev Event) State {
	return c.machine.Dispatch(ev)
}

// State returns the machine state.
func (c *FloatingContext) State() State {
	return c.machine.State()
}

// Refs returns the trigger and panel handles.
func (c *FloatingContext) Refs() *Refs {
	return c.refs
}

// Within reports whether (x, y) lies over the trigger or the panel.
func (c *FloatingContext) Within(x, y int) bool {
	if h, ok := c.refs.Reference(); ok && h.Rect.Contains(x, y) {
		return true
	}
	if h, ok := c.refs.Floating(); ok && h.Rect.Contains(x, y) {
		return true
	}
	return false
}

// FloatingStyles is the computed placement of the panel for one frame.
type FloatingStyles struct {
	X, Y      int
	MinWidth  int
	Placement Placement
	Ready     bool // false when there was nothing to compute against
}

type floatingKey struct {
	open      bool
	placement Placement
	reference mouse.Rect
	size      mouse.Rect
	viewport  mouse.Rect
	minWidth  int
}

// Floating is the positioning adapter: it owns the refs and recomputes the
// panel styles whenever an input changes.
type Floating struct {
	Context    *FloatingContext
	Refs       *Refs
	placement  Placement
	positioner Positioner
	viewport   mouse.Rect
	minWidth   int

	key    floatingKey
	styles FloatingStyles
}

// NewFloating creates the adapter for ctx.
func NewFloating(ctx *FloatingContext, placement Placement, p Positioner) *Floating {
	if p == nil {
		p = AnchorPositioner{}
	}
	return &Floating{Context: ctx, Refs: ctx.refs, placement: placement, positioner: p}
}

// SetPlacement changes the requested placement.
func (f *Floating) SetPlacement(p Placement) { f.placement = p }

// Placement returns the requested placement.
func (f *Floating) Placement() Placement { return f.placement }

// SetViewport sets the area the panel must stay inside.
func (f *Floating) SetViewport(r mouse.Rect) { f.viewport = r }

// SetMinWidth sets the minimum panel width, normally the trigger width.
func (f *Floating) SetMinWidth(w int) { f.minWidth = w }

// Styles returns the panel placement for a panel of size w x h. The result
// is memoised on every input.
func (f *Floating) Styles(w, h int) FloatingStyles {
	ref, ok := f.Refs.Reference()
	if !ok || !f.Context.Open() {
		f.key = floatingKey{}
		f.styles = FloatingStyles{MinWidth: f.minWidth, Placement: f.placement}
		return f.styles
	}

	if w < f.minWidth {
		w = f.minWidth
	}
	key := floatingKey{
		open:      true,
		placement: f.placement,
		reference: ref.Rect,
		size:      mouse.Rect{W: w, H: h},
		viewport:  f.viewport,
		minWidth:  f.minWidth,
	}
	if key == f.key && f.styles.Ready {
		return f.styles
	}

	pos := f.positioner.ComputePosition(ref.Rect, key.size, f.placement, f.viewport)
	f.key = key
	f.styles = FloatingStyles{
		X:         pos.X,
		Y:         pos.Y,
		MinWidth:  f.minWidth,
		Placement: pos.Placement,
		Ready:     true,
	}
	return f.styles
}

// Overlay composites overlay onto base with its top-left cell at (x, y).
// Both are treated as line grids; rows outside base are dropped.
func Overlay(base, overlay string, x, y, width int) string {
	baseLines := splitLines(base)
	for i, line := range splitLines(overlay) {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		target := padRight(baseLines[row], width)
		left := ansi.Truncate(target, max(x, 0), "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		pos := x + ansi.StringWidth(line)
		right := ""
		if ansi.StringWidth(target) > pos {
			right = ansi.TruncateLeft(target, pos, "")
		}
		baseLines[row] = left + line + right
	}
	return strings.Join(baseLines, "\n")
}

func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
