package dropdown

import (
	"fmt"
	"log/slog"
)

// State is the interaction state of one dropdown instance.
type State struct {
	Open          bool
	ActiveIndex   int // keyboard highlight, NoIndex when none
	SelectedIndex int // last committed item, NoIndex when none
}

// InitialState is the state of a freshly created dropdown.
func InitialState() State {
	return State{ActiveIndex: NoIndex, SelectedIndex: NoIndex}
}

func (s State) String() string {
	return fmt.Sprintf("open=%t active=%d selected=%d", s.Open, s.ActiveIndex, s.SelectedIndex)
}

// Bounds answers whether an index refers to a live item.
type Bounds interface {
	Contains(i int) bool
}

// Length is a Bounds covering [0, n).
type Length int

// Contains reports whether 0 <= i < n.
func (n Length) Contains(i int) bool {
	return i >= 0 && i < int(n)
}

// DismissReason records why the menu closed.
type DismissReason string

const (
	DismissEscape       DismissReason = "escape"
	DismissOutsidePress DismissReason = "outside-press"
	DismissFocusOut     DismissReason = "focus-out"
	DismissHoverLeave   DismissReason = "hover-leave"
	DismissProgrammatic DismissReason = "programmatic"
)

// Event is an input to the state machine.
type Event interface {
	fmt.Stringer
	event()
}

// ActivateTrigger toggles the menu: closed opens, open closes.
type ActivateTrigger struct{}

// Dismiss closes the menu. Dismissing a closed menu changes nothing.
type Dismiss struct {
	Reason DismissReason
}

// NavigateTo moves the keyboard highlight. Index may be NoIndex.
type NavigateTo struct {
	Index int
}

// Select commits an item and always closes the menu. Index may be NoIndex.
type Select struct {
	Index int
}

// TypeaheadMatch routes a typeahead result: highlight while open, commit
// while closed. NoIndex leaves the state untouched.
type TypeaheadMatch struct {
	Index int
}

// Revalidate drops indices that no longer refer to live items.
type Revalidate struct{}

func (ActivateTrigger) event() {}
func (Dismiss) event()         {}
func (NavigateTo) event()      {}
func (Select) event()          {}
func (TypeaheadMatch) event()  {}
func (Revalidate) event()      {}

func (ActivateTrigger) String() string  { return "activate-trigger" }
func (e Dismiss) String() string        { return "dismiss(" + string(e.Reason) + ")" }
func (e NavigateTo) String() string     { return fmt.Sprintf("navigate(%d)", e.Index) }
func (e Select) String() string         { return fmt.Sprintf("select(%d)", e.Index) }
func (e TypeaheadMatch) String() string { return fmt.Sprintf("typeahead(%d)", e.Index) }
func (Revalidate) String() string       { return "revalidate" }

// Transition computes the state that follows s after ev. It is pure: the
// only outside input is b, the set of live indices at dispatch time.
func Transition(s State, ev Event, b Bounds) State {
	accepts := func(i int) bool {
		return i == NoIndex || b.Contains(i)
	}

	switch e := ev.(type) {
	case ActivateTrigger:
		if s.Open {
			s.Open = false
			s.ActiveIndex = NoIndex
			return s
		}
		s.Open = true
		if b.Contains(s.SelectedIndex) {
			s.ActiveIndex = s.SelectedIndex
		} else if !b.Contains(s.ActiveIndex) {
			s.ActiveIndex = NoIndex
		}
		return s

	case Dismiss:
		if !s.Open {
			return s
		}
		s.Open = false
		s.ActiveIndex = NoIndex
		return s

	case NavigateTo:
		if accepts(e.Index) {
			s.ActiveIndex = e.Index
		}
		return s

	case Select:
		if !accepts(e.Index) {
			return s
		}
		s.SelectedIndex = e.Index
		s.Open = false
		s.ActiveIndex = NoIndex
		return s

	case TypeaheadMatch:
		if e.Index == NoIndex {
			return s
		}
		if s.Open {
			return Transition(s, NavigateTo(e), b)
		}
		return Transition(s, Select(e), b)

	case Revalidate:
		if s.ActiveIndex != NoIndex && !b.Contains(s.ActiveIndex) {
			s.ActiveIndex = NoIndex
		}
		if s.SelectedIndex != NoIndex && !b.Contains(s.SelectedIndex) {
			s.SelectedIndex = NoIndex
		}
		return s
	}

	return s
}

// Change describes one dispatched event.
type Change struct {
	Event Event
	From  State
	To    State

	// Committed is set when the event committed a selection, including a
	// re-selection of the already selected item.
	Committed bool
}

// Opened reports whether the change opened the menu.
func (c Change) Opened() bool { return !c.From.Open && c.To.Open }

// Closed reports whether the change closed the menu.
func (c Change) Closed() bool { return c.From.Open && !c.To.Open }

// commits reports whether ev, applied to s, commits a selection.
func commits(s State, ev Event, b Bounds) bool {
	switch e := ev.(type) {
	case Select:
		return e.Index == NoIndex || b.Contains(e.Index)
	case TypeaheadMatch:
		return !s.Open && b.Contains(e.Index)
	}
	return false
}

// Machine holds the state of one dropdown and applies events to it.
type Machine struct {
	state     State
	bounds    Bounds
	logger    *slog.Logger
	listeners []func(Change)
}

// NewMachine creates a machine in the initial state. bounds is consulted on
// every dispatch, so it should be the live registry.
func NewMachine(bounds Bounds, logger *slog.Logger) *Machine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Machine{state: InitialState(), bounds: bounds, logger: logger}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Subscribe registers fn to run after every dispatch, in registration order.
func (m *Machine) Subscribe(fn func(Change)) {
	m.listeners = append(m.listeners, fn)
}

// Dispatch applies ev and returns the new state.
func (m *Machine) Dispatch(ev Event) State {
	from := m.state
	committed := commits(from, ev, m.bounds)
	m.state = Transition(from, ev, m.bounds)

	if from != m.state {
		m.logger.Debug("dropdown transition", "event", ev.String(), "from", from.String(), "to", m.state.String())
	}

	change := Change{Event: ev, From: from, To: m.state, Committed: committed}
	for _, fn := range m.listeners {
		fn(change)
	}
	return m.state
}
