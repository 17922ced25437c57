package dropdown

import (
	"io"
	"log/slog"
	"testing"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTransitionActivateTrigger(t *testing.T) {
	tests := []struct {
		name string
		from State
		want State
	}{
		{
			name: "closed opens with nothing active",
			from: InitialState(),
			want: State{Open: true, ActiveIndex: NoIndex, SelectedIndex: NoIndex},
		},
		{
			name: "reopen highlights previous selection",
			from: State{ActiveIndex: NoIndex, SelectedIndex: 2},
			want: State{Open: true, ActiveIndex: 2, SelectedIndex: 2},
		},
		{
			name: "open toggles closed and keeps selection",
			from: State{Open: true, ActiveIndex: 1, SelectedIndex: 2},
			want: State{ActiveIndex: NoIndex, SelectedIndex: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transition(tt.from, ActivateTrigger{}, Length(3))
			if got != tt.want {
				t.Errorf("Transition(%v, activate) = %v, want %v", tt.from, got, tt.want)
			}
		})
	}
}

func TestTransitionDismiss(t *testing.T) {
	open := State{Open: true, ActiveIndex: 1, SelectedIndex: 0}
	got := Transition(open, Dismiss{Reason: DismissEscape}, Length(3))
	want := State{ActiveIndex: NoIndex, SelectedIndex: 0}
	if got != want {
		t.Errorf("dismiss open = %v, want %v", got, want)
	}

	// Idempotent on a closed menu.
	again := Transition(got, Dismiss{Reason: DismissOutsidePress}, Length(3))
	if again != got {
		t.Errorf("dismiss closed = %v, want unchanged %v", again, got)
	}
}

func TestTransitionNavigateTo(t *testing.T) {
	open := State{Open: true, ActiveIndex: 0, SelectedIndex: NoIndex}

	tests := []struct {
		index      int
		wantActive int
	}{
		{2, 2},
		{NoIndex, NoIndex},
		{3, 0},  // out of bounds
		{-5, 0}, // negative, not NoIndex
	}

	for _, tt := range tests {
		got := Transition(open, NavigateTo{Index: tt.index}, Length(3))
		if got.ActiveIndex != tt.wantActive {
			t.Errorf("navigate(%d).ActiveIndex = %d, want %d", tt.index, got.ActiveIndex, tt.wantActive)
		}
		if !got.Open {
			t.Errorf("navigate(%d) closed the menu", tt.index)
		}
	}
}

func TestTransitionSelect(t *testing.T) {
	open := State{Open: true, ActiveIndex: 1, SelectedIndex: NoIndex}

	got := Transition(open, Select{Index: 1}, Length(3))
	if want := (State{ActiveIndex: NoIndex, SelectedIndex: 1}); got != want {
		t.Errorf("select(1) = %v, want %v", got, want)
	}

	got = Transition(open, Select{Index: 7}, Length(3))
	if got != open {
		t.Errorf("select(7) = %v, want unchanged %v", got, open)
	}

	got = Transition(State{Open: true, ActiveIndex: 0, SelectedIndex: 2}, Select{Index: NoIndex}, Length(3))
	if want := (State{ActiveIndex: NoIndex, SelectedIndex: NoIndex}); got != want {
		t.Errorf("select(none) = %v, want %v", got, want)
	}
}

func TestTransitionTypeaheadMatch(t *testing.T) {
	open := State{Open: true, ActiveIndex: 0, SelectedIndex: NoIndex}
	closed := InitialState()

	if got := Transition(open, TypeaheadMatch{Index: 2}, Length(3)); got.ActiveIndex != 2 || !got.Open || got.SelectedIndex != NoIndex {
		t.Errorf("typeahead while open = %v, want active 2 and still open", got)
	}
	if got := Transition(closed, TypeaheadMatch{Index: 2}, Length(3)); got.SelectedIndex != 2 || got.Open {
		t.Errorf("typeahead while closed = %v, want selected 2 and closed", got)
	}
	if got := Transition(open, TypeaheadMatch{Index: NoIndex}, Length(3)); got != open {
		t.Errorf("typeahead no match = %v, want unchanged", got)
	}
}

func TestTransitionRevalidate(t *testing.T) {
	s := State{Open: true, ActiveIndex: 4, SelectedIndex: 1}
	got := Transition(s, Revalidate{}, Length(3))
	if want := (State{Open: true, ActiveIndex: NoIndex, SelectedIndex: 1}); got != want {
		t.Errorf("revalidate = %v, want %v", got, want)
	}

	// Growing the list never moves a valid active index.
	s = State{Open: true, ActiveIndex: 1, SelectedIndex: NoIndex}
	if got := Transition(s, Revalidate{}, Length(10)); got != s {
		t.Errorf("revalidate after growth = %v, want %v", got, s)
	}
}

// Indices stay in range after any sequence of events.
func TestTransitionIndicesStayInBounds(t *testing.T) {
	events := []Event{
		ActivateTrigger{}, NavigateTo{Index: 2}, NavigateTo{Index: 9},
		TypeaheadMatch{Index: 1}, Select{Index: 2}, ActivateTrigger{},
		NavigateTo{Index: -3}, Dismiss{Reason: DismissEscape}, TypeaheadMatch{Index: 0},
		Select{Index: 5}, Revalidate{},
	}
	b := Length(3)
	s := InitialState()
	for _, ev := range events {
		s = Transition(s, ev, b)
		for _, idx := range []int{s.ActiveIndex, s.SelectedIndex} {
			if idx != NoIndex && !b.Contains(idx) {
				t.Fatalf("after %s: index %d out of bounds (%v)", ev, idx, s)
			}
		}
		if !s.Open && s.ActiveIndex != NoIndex {
			t.Fatalf("after %s: closed menu has active %d", ev, s.ActiveIndex)
		}
	}
}

func TestMachineDispatchNotifies(t *testing.T) {
	m := NewMachine(Length(3), quietLogger())
	var changes []Change
	m.Subscribe(func(c Change) { changes = append(changes, c) })

	m.Dispatch(ActivateTrigger{})
	m.Dispatch(NavigateTo{Index: 1})
	m.Dispatch(Select{Index: 1})
	m.Dispatch(TypeaheadMatch{Index: 2})

	if len(changes) != 4 {
		t.Fatalf("got %d changes, want 4", len(changes))
	}
	if !changes[0].Opened() {
		t.Error("first change should open")
	}
	if changes[1].Committed {
		t.Error("navigate should not commit")
	}
	if !changes[2].Committed || !changes[2].Closed() {
		t.Errorf("select change = %+v, want committed and closed", changes[2])
	}
	if !changes[3].Committed {
		t.Error("typeahead while closed should commit")
	}
	if got := m.State().SelectedIndex; got != 2 {
		t.Errorf("SelectedIndex = %d, want 2", got)
	}
}

func TestMachineReselectCommits(t *testing.T) {
	m := NewMachine(Length(3), quietLogger())
	m.Dispatch(Select{Index: 1})

	var committed bool
	m.Subscribe(func(c Change) { committed = c.Committed })
	m.Dispatch(Select{Index: 1})
	if !committed {
		t.Error("re-selecting the selected item should still commit")
	}
}
