package dropdown

import "github.com/charmbracelet/lipgloss"

// Palette shared by the default theme.
var (
	colorPrimary  = lipgloss.Color("212")
	colorMuted    = lipgloss.Color("241")
	colorBorder   = lipgloss.Color("240")
	colorText     = lipgloss.Color("252")
	colorBright   = lipgloss.Color("255")
	colorSurface  = lipgloss.Color("235")
	colorHighlite = lipgloss.Color("237")
	colorButton   = lipgloss.Color("238")
)

// Theme is the fully resolved set of styles. The component never looks
// inside a style; it only renders with it.
type Theme struct {
	Floating      FloatingTheme
	Content       lipgloss.Style
	InlineWrapper lipgloss.Style
	ArrowIcon     lipgloss.Style
	Button        ButtonTheme
}

// FloatingTheme styles the panel and its nodes.
type FloatingTheme struct {
	Base    lipgloss.Style
	Target  lipgloss.Style
	Header  lipgloss.Style
	Divider lipgloss.Style
	Item    ItemTheme
}

// ItemTheme styles one item row.
type ItemTheme struct {
	Base     lipgloss.Style
	Active   lipgloss.Style
	Selected lipgloss.Style
	Disabled lipgloss.Style
	Icon     lipgloss.Style
}

// ButtonTheme styles the default trigger.
type ButtonTheme struct {
	Base     lipgloss.Style
	Focused  lipgloss.Style
	Disabled lipgloss.Style
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Floating: FloatingTheme{
			Base: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBorder).
				Background(colorSurface),
			Target: lipgloss.NewStyle(),
			Header: lipgloss.NewStyle().
				Foreground(colorMuted).
				Bold(true).
				Padding(0, 1),
			Divider: lipgloss.NewStyle().
				Foreground(colorBorder),
			Item: ItemTheme{
				Base: lipgloss.NewStyle().
					Foreground(colorText).
					Padding(0, 1),
				Active: lipgloss.NewStyle().
					Background(colorHighlite).
					Foreground(colorBright).
					Bold(true).
					Padding(0, 1),
				Selected: lipgloss.NewStyle().
					Foreground(colorPrimary),
				Disabled: lipgloss.NewStyle().
					Foreground(colorMuted).
					Padding(0, 1),
				Icon: lipgloss.NewStyle().
					Foreground(colorMuted),
			},
		},
		Content: lipgloss.NewStyle(),
		InlineWrapper: lipgloss.NewStyle().
			Foreground(colorText),
		ArrowIcon: lipgloss.NewStyle().
			Foreground(colorMuted),
		Button: ButtonTheme{
			Base: lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorButton).
				Padding(0, 2),
			Focused: lipgloss.NewStyle().
				Foreground(colorBright).
				Background(colorPrimary).
				Bold(true).
				Padding(0, 2),
			Disabled: lipgloss.NewStyle().
				Foreground(colorMuted).
				Background(colorButton).
				Padding(0, 2),
		},
	}
}

// ThemeOverride is a partial theme. Nil fields keep the default.
type ThemeOverride struct {
	Floating      FloatingOverride
	Content       *lipgloss.Style
	InlineWrapper *lipgloss.Style
	ArrowIcon     *lipgloss.Style
	Button        ButtonOverride
}

// FloatingOverride is a partial FloatingTheme.
type FloatingOverride struct {
	Base    *lipgloss.Style
	Target  *lipgloss.Style
	Header  *lipgloss.Style
	Divider *lipgloss.Style
	Item    ItemOverride
}

// ItemOverride is a partial ItemTheme.
type ItemOverride struct {
	Base     *lipgloss.Style
	Active   *lipgloss.Style
	Selected *lipgloss.Style
	Disabled *lipgloss.Style
	Icon     *lipgloss.Style
}

// ButtonOverride is a partial ButtonTheme.
type ButtonOverride struct {
	Base     *lipgloss.Style
	Focused  *lipgloss.Style
	Disabled *lipgloss.Style
}

// ResolveTheme merges o over the default theme.
func ResolveTheme(o *ThemeOverride) Theme {
	t := DefaultTheme()
	if o == nil {
		return t
	}

	set(&t.Content, o.Content)
	set(&t.InlineWrapper, o.InlineWrapper)
	set(&t.ArrowIcon, o.ArrowIcon)

	set(&t.Floating.Base, o.Floating.Base)
	set(&t.Floating.Target, o.Floating.Target)
	set(&t.Floating.Header, o.Floating.Header)
	set(&t.Floating.Divider, o.Floating.Divider)

	set(&t.Floating.Item.Base, o.Floating.Item.Base)
	set(&t.Floating.Item.Active, o.Floating.Item.Active)
	set(&t.Floating.Item.Selected, o.Floating.Item.Selected)
	set(&t.Floating.Item.Disabled, o.Floating.Item.Disabled)
	set(&t.Floating.Item.Icon, o.Floating.Item.Icon)

	set(&t.Button.Base, o.Button.Base)
	set(&t.Button.Focused, o.Button.Focused)
	set(&t.Button.Disabled, o.Button.Disabled)
	return t
}

func set(dst *lipgloss.Style, src *lipgloss.Style) {
	if src != nil {
		*dst = *src
	}
}

// arrowGlyph returns the arrow for the side the panel opens on.
func arrowGlyph(p Placement) string {
	switch p.Side() {
	case "top":
		return "▴"
	case "right":
		return "▸"
	case "left":
		return "◂"
	default:
		return "▾"
	}
}
