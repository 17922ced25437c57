package dropdown

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RenderContext is passed to a node for one render.
type RenderContext struct {
	Context
	Index int // registry index, NoIndex for nodes outside navigation
	Width int // panel content width; 0 asks for the natural width
	Theme Theme
}

// Node is anything that can appear in the panel.
type Node interface {
	Render(rc RenderContext) string
}

// Listable nodes take part in navigation, typeahead and selection.
type Listable interface {
	Node
	TypeaheadLabel() string
	Disabled() bool

	// Props returns the node's own props for index. The root merges them
	// with the interaction props before dispatching input.
	Props(ctx Context, index int) Props
}

// Valuer nodes carry a value reported in SelectMsg.
type Valuer interface {
	Value() string
}

const checkMark = "✓"

// ItemNode is a selectable menu entry.
type ItemNode struct {
	label    string
	icon     string
	value    string
	disabled bool
	onClick  func() tea.Cmd
	props    Props
}

// ItemOption configures an ItemNode.
type ItemOption func(*ItemNode)

// WithIcon shows icon before the label.
func WithIcon(icon string) ItemOption {
	return func(it *ItemNode) { it.icon = icon }
}

// WithValue sets the value reported on selection. Defaults to the label.
func WithValue(v string) ItemOption {
	return func(it *ItemNode) { it.value = v }
}

// WithOnClick runs fn whenever the item is clicked or picked with the
// keyboard, before the menu closes.
func WithOnClick(fn func() tea.Cmd) ItemOption {
	return func(it *ItemNode) { it.onClick = fn }
}

// WithItemDisabled excludes the item from navigation, typeahead and clicks.
func WithItemDisabled(disabled bool) ItemOption {
	return func(it *ItemNode) { it.disabled = disabled }
}

// WithItemProps attaches caller props to the item.
func WithItemProps(p Props) ItemOption {
	return func(it *ItemNode) { it.props = p }
}

// Item creates a menu entry.
func Item(label string, opts ...ItemOption) *ItemNode {
	it := &ItemNode{label: label, value: label}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Label returns the display text.
func (it *ItemNode) Label() string { return it.label }

// TypeaheadLabel implements Listable.
func (it *ItemNode) TypeaheadLabel() string { return it.label }

// Disabled implements Listable.
func (it *ItemNode) Disabled() bool { return it.disabled }

// Value implements Valuer.
func (it *ItemNode) Value() string { return it.value }

// Props implements Listable. A click runs the item's own callback and then,
// when the menu dismisses on click, commits the item.
func (it *ItemNode) Props(ctx Context, index int) Props {
	return it.props.WithHandler(OnClick, func(tea.Msg) tea.Cmd {
		if it.disabled {
			return nil
		}
		var cmds []tea.Cmd
		if it.onClick != nil {
			cmds = append(cmds, it.onClick())
		}
		if ctx.DismissOnClick {
			cmds = append(cmds, ctx.Select(index))
		}
		return tea.Batch(cmds...)
	})
}

// Render implements Node.
func (it *ItemNode) Render(rc RenderContext) string {
	props := rc.ItemProps(rc.Index, it.Props(rc.Context, rc.Index))
	theme := rc.Theme.Floating.Item

	style := theme.Base
	switch {
	case it.disabled:
		style = theme.Disabled
	case rc.Index != NoIndex && rc.Index == rc.ActiveIndex:
		style = theme.Active
	}

	var b strings.Builder
	if it.icon != "" {
		b.WriteString(theme.Icon.Render(it.icon))
		b.WriteString(" ")
	}
	b.WriteString(it.label)
	text := b.String()

	mark := "  "
	if props.Attr("aria-selected") == "true" {
		mark = " " + theme.Selected.Render(checkMark)
	}

	pad := style.GetHorizontalPadding()
	if rc.Width > 0 {
		inner := rc.Width - pad - lipgloss.Width(mark)
		if gap := inner - lipgloss.Width(text); gap > 0 {
			text += strings.Repeat(" ", gap)
		}
		return style.Width(rc.Width).MaxWidth(rc.Width).Render(text + mark)
	}
	return style.Render(text + mark)
}

// HeaderNode is a non-focusable caption.
type HeaderNode struct {
	text string
}

// Header creates a caption row.
func Header(text string) *HeaderNode {
	return &HeaderNode{text: text}
}

// Render implements Node.
func (h *HeaderNode) Render(rc RenderContext) string {
	style := rc.Theme.Floating.Header
	if rc.Width > 0 {
		style = style.Width(rc.Width).MaxWidth(rc.Width)
	}
	return style.Render(h.text)
}

// DividerNode is a horizontal rule.
type DividerNode struct{}

// Divider creates a horizontal rule.
func Divider() *DividerNode {
	return &DividerNode{}
}

// Render implements Node.
func (DividerNode) Render(rc RenderContext) string {
	return rc.Theme.Floating.Divider.Render(strings.Repeat("─", max(rc.Width, 1)))
}
