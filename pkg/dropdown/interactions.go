package dropdown

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Behavior contributes prop fragments to the trigger, the panel and items.
type Behavior interface {
	Reference() Props
	Floating() Props
	Item(index int) Props
}

// Interactions composes behaviors into the three prop accessors.
type Interactions struct {
	behaviors []Behavior
}

// NewInteractions composes bs in order.
func NewInteractions(bs ...Behavior) Interactions {
	return Interactions{behaviors: bs}
}

// GetReferenceProps merges user props with every behavior's trigger props.
func (in Interactions) GetReferenceProps(user Props) Props {
	fragments := []Props{user}
	for _, b := range in.behaviors {
		fragments = append(fragments, b.Reference())
	}
	return MergeProps(fragments...)
}

// GetFloatingProps merges user props with every behavior's panel props.
func (in Interactions) GetFloatingProps(user Props) Props {
	fragments := []Props{user}
	for _, b := range in.behaviors {
		fragments = append(fragments, b.Floating())
	}
	return MergeProps(fragments...)
}

// GetItemProps merges user props with every behavior's props for item index.
func (in Interactions) GetItemProps(index int, user Props) Props {
	fragments := []Props{user}
	for _, b := range in.behaviors {
		fragments = append(fragments, b.Item(index))
	}
	return MergeProps(fragments...)
}

// roleBehavior supplies the accessibility attributes of a menu.
type roleBehavior struct {
	ctx  *FloatingContext
	role string
}

// UseRole returns the accessibility behavior for role (normally "menu").
func UseRole(ctx *FloatingContext, role string) Behavior {
	return roleBehavior{ctx: ctx, role: role}
}

func (r roleBehavior) Reference() Props {
	attrs := map[string]string{
		"id":            r.ctx.ReferenceID,
		"aria-haspopup": r.role,
		"aria-expanded": strconv.FormatBool(r.ctx.Open()),
	}
	if r.ctx.Open() {
		attrs["aria-controls"] = r.ctx.FloatingID
	}
	return Props{Attrs: attrs}
}

func (r roleBehavior) Floating() Props {
	return Props{Attrs: map[string]string{
		"id":              r.ctx.FloatingID,
		"role":            r.role,
		"aria-labelledby": r.ctx.ReferenceID,
	}}
}

func (r roleBehavior) Item(index int) Props {
	s := r.ctx.State()
	return Props{Attrs: map[string]string{
		"role":          r.role + "item",
		"aria-selected": strconv.FormatBool(index == s.SelectedIndex),
		"data-active":   strconv.FormatBool(index == s.ActiveIndex),
	}}
}

// clickBehavior toggles the panel from the trigger.
type clickBehavior struct {
	ctx    *FloatingContext
	keys   KeyMap
	typing func() bool
}

// UseClick opens and closes the panel on trigger clicks and on Enter/Space
// while the trigger has focus. typing suppresses Space during typeahead.
func UseClick(ctx *FloatingContext, keys KeyMap, typing func() bool) Behavior {
	return clickBehavior{ctx: ctx, keys: keys, typing: typing}
}

func (c clickBehavior) Reference() Props {
	return Props{Handlers: map[EventType]Handler{
		OnClick: func(tea.Msg) tea.Cmd {
			c.ctx.Dispatch(ActivateTrigger{})
			return nil
		},
		OnKeyDown: func(msg tea.Msg) tea.Cmd {
			k, ok := msg.(tea.KeyMsg)
			if !ok || c.ctx.Open() {
				return nil
			}
			if k.Type == tea.KeySpace && c.typing != nil && c.typing() {
				return nil
			}
			if key.Matches(k, c.keys.Select) {
				c.ctx.Dispatch(ActivateTrigger{})
			}
			return nil
		},
	}}
}

func (clickBehavior) Floating() Props { return Props{} }
func (clickBehavior) Item(int) Props  { return Props{} }

// hoverBehavior opens the panel while the pointer rests on the trigger and
// closes it once the pointer leaves both trigger and panel.
type hoverBehavior struct {
	ctx *FloatingContext
}

// UseHover returns the hover-to-open behavior.
func UseHover(ctx *FloatingContext) Behavior {
	return hoverBehavior{ctx: ctx}
}

func (h hoverBehavior) leave(msg tea.Msg) tea.Cmd {
	m, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if !h.ctx.Within(m.X, m.Y) {
		h.ctx.SetOpen(false, DismissHoverLeave)
	}
	return nil
}

func (h hoverBehavior) Reference() Props {
	return Props{Handlers: map[EventType]Handler{
		OnMouseEnter: func(tea.Msg) tea.Cmd {
			h.ctx.SetOpen(true, "")
			return nil
		},
		OnMouseLeave: h.leave,
	}}
}

func (h hoverBehavior) Floating() Props {
	return Props{Handlers: map[EventType]Handler{OnMouseLeave: h.leave}}
}

func (hoverBehavior) Item(int) Props { return Props{} }

// dismissBehavior closes the panel on Escape and on presses outside it.
type dismissBehavior struct {
	ctx  *FloatingContext
	keys KeyMap
}

// UseDismiss returns the escape / outside-press behavior.
func UseDismiss(ctx *FloatingContext, keys KeyMap) Behavior {
	return dismissBehavior{ctx: ctx, keys: keys}
}

func (d dismissBehavior) escape(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, d.keys.Dismiss) {
		d.ctx.SetOpen(false, DismissEscape)
	}
	return nil
}

func (d dismissBehavior) Reference() Props {
	return Props{Handlers: map[EventType]Handler{OnKeyDown: d.escape}}
}

func (d dismissBehavior) Floating() Props {
	return Props{Handlers: map[EventType]Handler{
		OnKeyDown: d.escape,
		OnOutsidePress: func(tea.Msg) tea.Cmd {
			d.ctx.SetOpen(false, DismissOutsidePress)
			return nil
		},
	}}
}

func (dismissBehavior) Item(int) Props { return Props{} }

// listNavBehavior moves the active index. onNavigate is the only writer of
// the active index.
type listNavBehavior struct {
	ctx        *FloatingContext
	registry   *Registry
	nav        ListNavigation
	keys       KeyMap
	onNavigate func(int)
}

// UseListNavigation returns the roving-focus behavior over registry.
func UseListNavigation(ctx *FloatingContext, registry *Registry, nav ListNavigation, keys KeyMap, onNavigate func(int)) Behavior {
	return listNavBehavior{ctx: ctx, registry: registry, nav: nav, keys: keys, onNavigate: onNavigate}
}

func (l listNavBehavior) navKey(k tea.KeyMsg) NavKey {
	switch {
	case key.Matches(k, l.keys.Down):
		return NavNext
	case key.Matches(k, l.keys.Up):
		return NavPrev
	case key.Matches(k, l.keys.Home):
		return NavFirst
	case key.Matches(k, l.keys.End):
		return NavLast
	}
	return NavNone
}

func (l listNavBehavior) Reference() Props {
	return Props{Handlers: map[EventType]Handler{
		OnKeyDown: func(msg tea.Msg) tea.Cmd {
			k, ok := msg.(tea.KeyMsg)
			if !ok || l.ctx.Open() {
				return nil
			}
			// Arrow keys open a closed menu on the selected item, or the
			// first/last item when nothing is selected.
			var dir NavKey
			switch l.navKey(k) {
			case NavNext:
				dir = NavFirst
			case NavPrev:
				dir = NavLast
			default:
				return nil
			}
			l.ctx.SetOpen(true, "")
			if s := l.ctx.State(); s.ActiveIndex == NoIndex {
				l.onNavigate(l.nav.Next(l.registry, NoIndex, dir))
			}
			return nil
		},
	}}
}

func (l listNavBehavior) Floating() Props {
	return Props{Handlers: map[EventType]Handler{
		OnKeyDown: func(msg tea.Msg) tea.Cmd {
			k, ok := msg.(tea.KeyMsg)
			if !ok {
				return nil
			}
			dir := l.navKey(k)
			if dir == NavNone {
				return nil
			}
			l.onNavigate(l.nav.Next(l.registry, l.ctx.State().ActiveIndex, dir))
			return nil
		},
		OnWheel: func(msg tea.Msg) tea.Cmd {
			m, ok := msg.(tea.MouseMsg)
			if !ok {
				return nil
			}
			switch m.Button {
			case tea.MouseButtonWheelDown:
				l.onNavigate(l.nav.Next(l.registry, l.ctx.State().ActiveIndex, NavNext))
			case tea.MouseButtonWheelUp:
				l.onNavigate(l.nav.Next(l.registry, l.ctx.State().ActiveIndex, NavPrev))
			}
			return nil
		},
	}}
}

func (l listNavBehavior) Item(index int) Props {
	return Props{
		Attrs: map[string]string{"tabindex": tabIndex(index == l.ctx.State().ActiveIndex)},
		Handlers: map[EventType]Handler{
			OnMouseEnter: func(tea.Msg) tea.Cmd {
				if l.registry.Navigable(index) {
					l.onNavigate(index)
				}
				return nil
			},
		},
	}
}

func tabIndex(active bool) string {
	if active {
		return "0"
	}
	return "-1"
}

// typeaheadBehavior feeds printable keys to the matcher.
type typeaheadBehavior struct {
	ctx      *FloatingContext
	registry *Registry
	matcher  *Typeahead
	onMatch  func(int)
}

// UseTypeahead returns the typeahead behavior. onMatch receives every
// non-empty match.
func UseTypeahead(ctx *FloatingContext, registry *Registry, matcher *Typeahead, onMatch func(int)) Behavior {
	return typeaheadBehavior{ctx: ctx, registry: registry, matcher: matcher, onMatch: onMatch}
}

func (t typeaheadBehavior) keydown(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok || k.Alt || k.Paste {
		return nil
	}
	var runes []rune
	switch {
	case k.Type == tea.KeyRunes:
		// Runes read in one go arrive as a single message.
		runes = k.Runes
	case k.Type == tea.KeySpace && t.matcher.Typing():
		runes = []rune{' '}
	default:
		return nil
	}
	for _, r := range runes {
		// State is re-read per rune: a closed-menu match commits at once.
		s := t.ctx.State()
		if idx := t.matcher.Match(r, t.registry.Labels(), s.ActiveIndex, s.SelectedIndex); idx != NoIndex {
			t.onMatch(idx)
		}
	}
	return nil
}

func (t typeaheadBehavior) Reference() Props {
	return Props{Handlers: map[EventType]Handler{OnKeyDown: t.keydown}}
}

func (t typeaheadBehavior) Floating() Props {
	return Props{Handlers: map[EventType]Handler{OnKeyDown: t.keydown}}
}

func (typeaheadBehavior) Item(int) Props { return Props{} }
