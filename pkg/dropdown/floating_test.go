package dropdown

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/dropdown/pkg/mouse"
)

func TestParsePlacement(t *testing.T) {
	for _, p := range Placements() {
		got, err := ParsePlacement(" " + strings.ToUpper(string(p)) + " ")
		if err != nil || got != p {
			t.Errorf("ParsePlacement(%q) = %q, %v", p, got, err)
		}
	}
	if _, err := ParsePlacement("middle"); !errors.Is(err, ErrInvalidPlacement) {
		t.Errorf("ParsePlacement(middle) err = %v, want ErrInvalidPlacement", err)
	}
}

func TestPlacementParts(t *testing.T) {
	tests := []struct {
		p     Placement
		side  string
		align string
	}{
		{PlacementBottom, "bottom", "center"},
		{PlacementTopStart, "top", "start"},
		{PlacementLeftEnd, "left", "end"},
	}
	for _, tt := range tests {
		if tt.p.Side() != tt.side || tt.p.Alignment() != tt.align {
			t.Errorf("%s: side=%q align=%q, want %q %q", tt.p, tt.p.Side(), tt.p.Alignment(), tt.side, tt.align)
		}
	}
}

func TestAnchorPositioner(t *testing.T) {
	ref := mouse.Rect{X: 10, Y: 10, W: 10, H: 1}
	fl := mouse.Rect{W: 6, H: 4}

	tests := []struct {
		p     Placement
		wantX int
		wantY int
	}{
		{PlacementBottomStart, 10, 11},
		{PlacementBottom, 12, 11},
		{PlacementBottomEnd, 14, 11},
		{PlacementTopStart, 10, 6},
		{PlacementRightStart, 20, 10},
		{PlacementLeftStart, 4, 10},
		{PlacementLeftEnd, 4, 7},
	}

	for _, tt := range tests {
		pos := AnchorPositioner{}.ComputePosition(ref, fl, tt.p, mouse.Rect{})
		if pos.X != tt.wantX || pos.Y != tt.wantY {
			t.Errorf("%s: got (%d,%d), want (%d,%d)", tt.p, pos.X, pos.Y, tt.wantX, tt.wantY)
		}
	}
}

func TestAnchorPositionerShiftsIntoViewport(t *testing.T) {
	ref := mouse.Rect{X: 36, Y: 18, W: 4, H: 1}
	fl := mouse.Rect{W: 10, H: 5}
	viewport := mouse.Rect{W: 40, H: 20}

	pos := AnchorPositioner{}.ComputePosition(ref, fl, PlacementBottomStart, viewport)
	if pos.X != 30 || pos.Y != 15 {
		t.Errorf("got (%d,%d), want (30,15)", pos.X, pos.Y)
	}
}

func newTestContext(n int) *FloatingContext {
	return &FloatingContext{
		machine:     NewMachine(Length(n), quietLogger()),
		refs:        &Refs{},
		ReferenceID: "ref",
		FloatingID:  "menu",
	}
}

func TestFloatingStylesNeedReference(t *testing.T) {
	ctx := newTestContext(3)
	f := NewFloating(ctx, PlacementBottomStart, nil)
	ctx.SetOpen(true, "")

	if s := f.Styles(5, 3); s.Ready {
		t.Error("styles should not be ready without a reference handle")
	}

	ctx.Refs().SetReference(Handle{ID: "ref", Rect: mouse.Rect{X: 2, Y: 1, W: 8, H: 1}})
	f.SetMinWidth(8)
	s := f.Styles(5, 3)
	if !s.Ready || s.X != 2 || s.Y != 2 || s.MinWidth != 8 {
		t.Errorf("styles = %+v, want ready at (2,2) min 8", s)
	}

	ctx.SetOpen(false, DismissProgrammatic)
	if s := f.Styles(5, 3); s.Ready {
		t.Error("styles should not be ready while closed")
	}
}

func TestOverlay(t *testing.T) {
	base := strings.Join([]string{"..........", "..........", ".........."}, "\n")
	got := Overlay(base, "ab\ncd", 3, 1, 10)
	lines := strings.Split(got, "\n")
	want := []string{"..........", "...ab.....", "...cd....."}
	for i := range want {
		if ansi.Strip(lines[i]) != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestOverlayPastEdge(t *testing.T) {
	got := Overlay("abc", "XY", 5, 0, 8)
	if ansi.Strip(got) != "abc  XY " {
		t.Errorf("Overlay past edge = %q, want %q", got, "abc  XY ")
	}
}
