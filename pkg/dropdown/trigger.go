package dropdown

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// DefaultTestID is the data-testid of the trigger unless WithTestID is set.
const DefaultTestID = "dropdown-target"

// TriggerElement is a caller-rendered trigger. Its props are applied last,
// so they win over everything the dropdown injects.
type TriggerElement struct {
	Content string
	Props   Props
}

// RenderTrigger renders a custom trigger with the resolved theme.
type RenderTrigger func(theme Theme) TriggerElement

// trigger describes how the trigger is drawn for one frame.
type trigger struct {
	label     string
	inline    bool
	arrow     bool
	disabled  bool
	focused   bool
	placement Placement
	testID    string
	render    RenderTrigger
	theme     Theme
}

// renderedTrigger is the measured result of drawing the trigger.
type renderedTrigger struct {
	Content string
	Props   Props
	Width   int
	Height  int
}

// Render draws the trigger. reference holds the interaction props for the
// trigger; they are injected beneath a custom element's own props.
func (t trigger) Render(reference Props) renderedTrigger {
	injected := reference.
		WithAttr("data-testid", t.testID).
		WithAttr("disabled", strconv.FormatBool(t.disabled))

	var content string
	props := injected
	switch {
	case t.render != nil:
		el := t.render(t.theme)
		content = el.Content
		props = OverrideProps(injected, el.Props)
	case t.inline:
		content = t.theme.InlineWrapper.Render(t.text())
	default:
		style := t.theme.Button.Base
		if t.disabled {
			style = t.theme.Button.Disabled
		} else if t.focused {
			style = t.theme.Button.Focused
		}
		content = style.Render(t.text())
	}

	return renderedTrigger{
		Content: content,
		Props:   props,
		Width:   lipgloss.Width(content),
		Height:  lipgloss.Height(content),
	}
}

func (t trigger) text() string {
	if !t.arrow {
		return t.label
	}
	return t.label + " " + t.theme.ArrowIcon.Render(arrowGlyph(t.placement))
}
