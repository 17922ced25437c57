package dropdown

// FocusTarget is what currently holds keyboard focus inside a dropdown.
type FocusTarget int

const (
	FocusNone FocusTarget = iota
	FocusTrigger
	FocusPanel
)

func (f FocusTarget) String() string {
	switch f {
	case FocusTrigger:
		return "trigger"
	case FocusPanel:
		return "panel"
	}
	return "none"
}

// FocusManager is a non-modal focus scope: opening a focused dropdown moves
// focus into the panel and closing hands it back to where it was.
type FocusManager struct {
	target      FocusTarget
	restore     FocusTarget
	returnFocus bool
}

// NewFocusManager creates a manager. returnFocus controls whether Release
// gives focus back to the trigger.
func NewFocusManager(returnFocus bool) *FocusManager {
	return &FocusManager{returnFocus: returnFocus}
}

// Target returns the focus holder.
func (f *FocusManager) Target() FocusTarget { return f.target }

// Focused reports whether any part of the dropdown holds focus.
func (f *FocusManager) Focused() bool { return f.target != FocusNone }

// FocusTrigger focuses the trigger.
func (f *FocusManager) FocusTrigger() { f.target = FocusTrigger }

// Acquire moves focus into the panel, remembering the previous target for
// Release. An unfocused dropdown stays unfocused; Acquire reports whether
// the panel holds focus afterwards.
func (f *FocusManager) Acquire() bool {
	switch f.target {
	case FocusNone:
		return false
	case FocusPanel:
		return true
	}
	f.restore = f.target
	f.target = FocusPanel
	return true
}

// Release leaves the panel and restores the target Acquire replaced.
func (f *FocusManager) Release() {
	if f.target != FocusPanel {
		return
	}
	f.target = FocusNone
	if f.returnFocus {
		f.target = f.restore
	}
	f.restore = FocusNone
}

// Blur drops focus entirely.
func (f *FocusManager) Blur() {
	f.target = FocusNone
	f.restore = FocusNone
}
