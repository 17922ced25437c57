package dropdown

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// ErrInvalidTrigger is returned by ParseTriggerMode for unknown values.
var ErrInvalidTrigger = errors.New("invalid trigger mode")

// TriggerMode selects how the pointer opens the menu.
type TriggerMode string

const (
	TriggerClick TriggerMode = "click"
	TriggerHover TriggerMode = "hover"
)

// ParseTriggerMode validates s.
func ParseTriggerMode(s string) (TriggerMode, error) {
	switch TriggerMode(strings.ToLower(strings.TrimSpace(s))) {
	case TriggerClick:
		return TriggerClick, nil
	case TriggerHover:
		return TriggerHover, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTrigger, s)
}

// Option configures a Model.
type Option func(*Model)

// WithPlacement sets where the panel opens. The default is bottom-start for
// inline triggers and bottom otherwise.
func WithPlacement(p Placement) Option {
	return func(m *Model) {
		m.placement = p
		m.placementSet = true
	}
}

// WithTrigger selects click or hover opening.
func WithTrigger(mode TriggerMode) Option {
	return func(m *Model) { m.mode = mode }
}

// WithInline renders the trigger as plain text instead of a button.
func WithInline(inline bool) Option {
	return func(m *Model) { m.inline = inline }
}

// WithArrowIcon shows or hides the arrow next to the label.
func WithArrowIcon(show bool) Option {
	return func(m *Model) { m.arrow = show }
}

// WithDismissOnClick controls whether clicking an item commits it and
// closes the menu. Defaults to true.
func WithDismissOnClick(dismiss bool) Option {
	return func(m *Model) { m.dismissOnClick = dismiss }
}

// WithRenderTrigger replaces the trigger with a custom element.
func WithRenderTrigger(fn RenderTrigger) Option {
	return func(m *Model) { m.renderTrigger = fn }
}

// WithTheme merges o over the default theme.
func WithTheme(o *ThemeOverride) Option {
	return func(m *Model) { m.themeOverride = o }
}

// WithTestID sets the trigger's data-testid.
func WithTestID(id string) Option {
	return func(m *Model) { m.testID = id }
}

// WithDisabled disables the trigger.
func WithDisabled(disabled bool) Option {
	return func(m *Model) { m.disabled = disabled }
}

// WithMaxVisible caps the number of panel rows; the rest scrolls.
func WithMaxVisible(n int) Option {
	return func(m *Model) {
		if n > 0 {
			m.maxVisible = n
		}
	}
}

// WithTypeaheadTimeout sets the pause that resets the typeahead buffer.
func WithTypeaheadTimeout(d time.Duration) Option {
	return func(m *Model) { m.typeaheadTimeout = d }
}

// WithFuzzyTypeahead falls back to fuzzy ranking when no label has the
// typed prefix.
func WithFuzzyTypeahead(on bool) Option {
	return func(m *Model) { m.fuzzy = on }
}

// WithKeyMap replaces the key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

// WithPositioner replaces the positioning algorithm.
func WithPositioner(p Positioner) Option {
	return func(m *Model) { m.positioner = p }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithClock injects the time source used by typeahead.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithSelected starts with index selected.
func WithSelected(index int) Option {
	return func(m *Model) { m.initialSelected = index }
}

// WithTriggerProps attaches caller props to the trigger. Interaction
// attributes override them; handlers run before the interaction handlers.
func WithTriggerProps(p Props) Option {
	return func(m *Model) { m.triggerProps = p }
}
