package dropdown

import (
	"testing"

	"github.com/marcus/dropdown/pkg/mouse"
)

func TestRegistryRegisterOrder(t *testing.T) {
	r := NewRegistry()
	for i, label := range []string{"Apple", "Banana", "Cherry"} {
		if got := r.Register(label, false); got != i {
			t.Errorf("Register(%q) = %d, want %d", label, got, i)
		}
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
	if got := r.Label(1); got != "Banana" {
		t.Errorf("Label(1) = %q, want Banana", got)
	}
}

func TestRegistryUnregisterKeepsIndices(t *testing.T) {
	r := NewRegistry()
	r.Register("a", false)
	r.Register("b", false)
	r.Register("c", false)

	r.Unregister(1)
	if r.Len() != 3 {
		t.Errorf("Len() after middle removal = %d, want 3", r.Len())
	}
	if r.Contains(1) {
		t.Error("removed index should not be contained")
	}
	if got := r.Label(2); got != "c" {
		t.Errorf("Label(2) = %q, want c", got)
	}

	r.Unregister(2)
	if r.Len() != 1 {
		t.Errorf("Len() after trailing removal = %d, want 1 (tombstones trimmed)", r.Len())
	}
	if got := r.Validate(2); got != NoIndex {
		t.Errorf("Validate(2) = %d, want NoIndex", got)
	}
}

func TestRegistryLabelsSkipDisabled(t *testing.T) {
	r := NewRegistry()
	r.Register("a", false)
	r.Register("b", true)
	r.Register("c", false)
	r.Register("d", false)
	r.Unregister(2)

	got := r.Labels()
	want := []string{"a", "", "", "d"}
	if len(got) != len(want) {
		t.Fatalf("Labels() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Labels()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRegistryMountKeepsLabels(t *testing.T) {
	r := NewRegistry()
	r.Register("a", false)
	r.Mount(0, Handle{ID: "x", Rect: mouse.Rect{W: 3, H: 1}})

	e, ok := r.Entry(0)
	if !ok || e.Handle() == nil {
		t.Fatal("expected mounted handle")
	}

	r.UnmountAll()
	e, _ = r.Entry(0)
	if e.Handle() != nil {
		t.Error("handle should be cleared after UnmountAll")
	}
	if e.Label != "a" {
		t.Errorf("label = %q, want a after unmount", e.Label)
	}
}
