package dropdown

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/marcus/dropdown/pkg/mouse"
)

// SelectMsg is emitted when an item is committed.
type SelectMsg struct {
	ID    string // dropdown instance id
	Index int
	Label string
	Value string
}

// OpenChangeMsg is emitted whenever the panel opens or closes.
type OpenChangeMsg struct {
	ID   string
	Open bool
}

// FocusMsg is emitted when pointer input gives an unfocused dropdown
// keyboard focus. Hosts use it to blur whatever held focus before.
type FocusMsg struct {
	ID string
}

// PanelTestID is the data-testid of the panel.
const PanelTestID = "dropdown"

type child struct {
	node  Node
	index int // registry index, NoIndex for headers and dividers
}

// Model is one dropdown instance. It is used by pointer from the host model:
// Update routes input, View draws the trigger and Overlay composites the
// open panel over the host frame.
type Model struct {
	id       string
	label    string
	children []child
	nodes    map[int]Listable

	registry     *Registry
	machine      *Machine
	ctx          *FloatingContext
	floating     *Floating
	interactions Interactions
	typeahead    *Typeahead
	focus        *FocusManager
	mouse        *mouse.Handler
	nav          ListNavigation

	// options
	placement        Placement
	placementSet     bool
	mode             TriggerMode
	inline           bool
	arrow            bool
	dismissOnClick   bool
	disabled         bool
	renderTrigger    RenderTrigger
	themeOverride    *ThemeOverride
	testID           string
	maxVisible       int
	typeaheadTimeout time.Duration
	fuzzy            bool
	keys             KeyMap
	positioner       Positioner
	logger           *slog.Logger
	now              func() time.Time
	initialSelected  int
	triggerProps     Props

	theme           Theme
	originX         int
	originY         int
	buttonWidth     int
	triggerDisabled bool
	scroll          int
	styles          FloatingStyles
	pending         []tea.Cmd
}

// New creates a dropdown labelled label over children.
func New(label string, children []Node, opts ...Option) *Model {
	m := &Model{
		id:              uuid.NewString(),
		label:           label,
		nodes:           make(map[int]Listable),
		mode:            TriggerClick,
		arrow:           true,
		dismissOnClick:  true,
		testID:          DefaultTestID,
		keys:            DefaultKeyMap(),
		initialSelected: NoIndex,
	}
	for _, opt := range opts {
		opt(m)
	}
	if !m.placementSet {
		m.placement = PlacementBottom
		if m.inline {
			m.placement = PlacementBottomStart
		}
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}
	m.theme = ResolveTheme(m.themeOverride)
	m.triggerDisabled = m.disabled

	m.registry = NewRegistry()
	for _, n := range children {
		m.appendChild(n)
	}

	m.machine = NewMachine(m.registry, m.logger)
	m.ctx = &FloatingContext{
		machine:     m.machine,
		refs:        &Refs{},
		ReferenceID: m.id + "-trigger",
		FloatingID:  m.id + "-menu",
	}
	m.floating = NewFloating(m.ctx, m.placement, m.positioner)
	m.typeahead = NewTypeahead(m.typeaheadTimeout, m.now)
	m.typeahead.SetFuzzy(m.fuzzy)
	m.focus = NewFocusManager(true)
	m.mouse = mouse.NewHandler()
	m.nav = ListNavigation{Loop: true}

	open := UseClick(m.ctx, m.keys, m.typeahead.Typing)
	if m.mode == TriggerHover {
		open = UseHover(m.ctx)
	}
	m.interactions = NewInteractions(
		UseRole(m.ctx, "menu"),
		open,
		UseDismiss(m.ctx, m.keys),
		UseListNavigation(m.ctx, m.registry, m.nav, m.keys, m.navigate),
		UseTypeahead(m.ctx, m.registry, m.typeahead, m.typeaheadMatch),
	)

	if m.initialSelected != NoIndex {
		m.machine.Dispatch(Select{Index: m.initialSelected})
	}
	m.machine.Subscribe(m.onChange)

	m.logger.Debug("dropdown created", "id", m.id, "label", label, "items", m.registry.Len(), "placement", string(m.placement))
	return m
}

func (m *Model) appendChild(n Node) int {
	idx := NoIndex
	if l, ok := n.(Listable); ok {
		idx = m.registry.Register(l.TypeaheadLabel(), l.Disabled())
		m.nodes[idx] = l
	}
	m.children = append(m.children, child{node: n, index: idx})
	return idx
}

func (m *Model) navigate(index int) {
	m.machine.Dispatch(NavigateTo{Index: index})
}

func (m *Model) typeaheadMatch(index int) {
	m.machine.Dispatch(TypeaheadMatch{Index: index})
}

func (m *Model) handleSelect(index int) tea.Cmd {
	m.machine.Dispatch(Select{Index: index})
	return m.flush()
}

// onChange turns machine transitions into side effects and messages.
func (m *Model) onChange(c Change) {
	if c.Committed {
		msg := SelectMsg{ID: m.id, Index: c.To.SelectedIndex, Label: m.registry.Label(c.To.SelectedIndex)}
		if v, ok := m.nodes[c.To.SelectedIndex].(Valuer); ok {
			msg.Value = v.Value()
		}
		m.logger.Debug("dropdown select", "id", m.id, "index", msg.Index, "label", msg.Label)
		m.emit(msg)
	}
	switch {
	case c.Opened():
		m.scroll = 0
		m.focus.Acquire()
		m.emit(OpenChangeMsg{ID: m.id, Open: true})
	case c.Closed():
		m.focus.Release()
		m.registry.UnmountAll()
		m.ctx.refs.ClearFloating()
		m.styles = FloatingStyles{}
		m.emit(OpenChangeMsg{ID: m.id, Open: false})
	}
}

func (m *Model) emit(msg tea.Msg) {
	m.pending = append(m.pending, func() tea.Msg { return msg })
}

func (m *Model) flush() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}

// Init implements the bubbletea component convention.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update routes key and mouse input. Keys are only handled while the
// dropdown is focused.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.floating.SetViewport(mouse.Rect{W: msg.Width, H: msg.Height})
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	}
	return tea.Batch(cmd, m.flush())
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.triggerDisabled || !m.focus.Focused() {
		return nil
	}
	if m.Open() {
		return m.FloatingProps().Fire(OnKeyDown, msg)
	}
	return m.ReferenceProps().Fire(OnKeyDown, msg)
}

// pickActive commits the active item on the select key.
func (m *Model) pickActive(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok || !key.Matches(k, m.keys.Select) {
		return nil
	}
	if k.Type == tea.KeySpace && m.typeahead.Typing() {
		return nil
	}
	return m.clickItem(m.machine.State().ActiveIndex, msg)
}

func (m *Model) clickItem(index int, msg tea.Msg) tea.Cmd {
	n, ok := m.nodes[index]
	if !ok || !m.registry.Navigable(index) {
		return nil
	}
	return m.ItemProps(index, n.Props(m.Context(), index)).Fire(OnClick, msg)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.triggerDisabled {
		return nil
	}
	action := m.mouse.HandleMouse(msg)

	switch action.Type {
	case mouse.ActionClick:
		if action.Region == nil {
			if m.Open() {
				return m.FloatingProps().Fire(OnOutsidePress, msg)
			}
			return nil
		}
		kind, index := m.regionKind(action.Region.ID)
		switch kind {
		case regionTrigger:
			if !m.focus.Focused() {
				m.focus.FocusTrigger()
				m.emit(FocusMsg{ID: m.id})
			}
			return m.ReferenceProps().Fire(OnClick, msg)
		case regionItem:
			return m.clickItem(index, msg)
		}

	case mouse.ActionHover:
		var cmds []tea.Cmd
		if action.Left != "" {
			switch kind, _ := m.regionKind(action.Left); kind {
			case regionTrigger:
				cmds = append(cmds, m.ReferenceProps().Fire(OnMouseLeave, msg))
			case regionPanel, regionItem:
				cmds = append(cmds, m.FloatingProps().Fire(OnMouseLeave, msg))
			}
		}
		if action.Entered != "" {
			switch kind, index := m.regionKind(action.Entered); kind {
			case regionTrigger:
				cmds = append(cmds, m.ReferenceProps().Fire(OnMouseEnter, msg))
			case regionItem:
				if n, ok := m.nodes[index]; ok {
					cmds = append(cmds, m.ItemProps(index, n.Props(m.Context(), index)).Fire(OnMouseEnter, msg))
				}
			}
		}
		return tea.Batch(cmds...)

	case mouse.ActionScrollUp, mouse.ActionScrollDown:
		if action.Region == nil || !m.Open() {
			return nil
		}
		if kind, _ := m.regionKind(action.Region.ID); kind == regionPanel || kind == regionItem {
			return m.FloatingProps().Fire(OnWheel, msg)
		}
	}
	return nil
}

type regionKind int

const (
	regionNone regionKind = iota
	regionTrigger
	regionPanel
	regionItem
)

func (m *Model) triggerRegion() string   { return m.id + "/trigger" }
func (m *Model) panelRegion() string     { return m.id + "/panel" }
func (m *Model) itemRegion(i int) string { return m.id + "/item/" + strconv.Itoa(i) }

func (m *Model) regionKind(id string) (regionKind, int) {
	switch id {
	case m.triggerRegion():
		return regionTrigger, NoIndex
	case m.panelRegion():
		return regionPanel, NoIndex
	}
	if rest, ok := strings.CutPrefix(id, m.id+"/item/"); ok {
		if i, err := strconv.Atoi(rest); err == nil {
			return regionItem, i
		}
	}
	return regionNone, NoIndex
}

// ReferenceProps returns the merged trigger props.
func (m *Model) ReferenceProps() Props {
	return m.interactions.GetReferenceProps(m.triggerProps)
}

// FloatingProps returns the merged panel props.
func (m *Model) FloatingProps() Props {
	user := Props{
		Attrs: map[string]string{
			"data-testid":   PanelTestID,
			"aria-expanded": strconv.FormatBool(m.Open()),
		},
		Handlers: map[EventType]Handler{OnKeyDown: m.pickActive},
	}
	return m.interactions.GetFloatingProps(user)
}

// ItemProps returns the merged props for item index.
func (m *Model) ItemProps(index int, user Props) Props {
	return m.interactions.GetItemProps(index, user)
}

// Context returns the value handed to item nodes.
func (m *Model) Context() Context {
	return Context{
		ActiveIndex:    m.machine.State().ActiveIndex,
		DismissOnClick: m.dismissOnClick,
		GetItemProps:   m.ItemProps,
		HandleSelect:   m.handleSelect,
	}
}

// View renders the trigger at the origin set by SetOrigin and records its
// hit region. Call it before Overlay on every frame.
func (m *Model) View() string {
	m.mouse.Clear()

	t := trigger{
		label:     m.label,
		inline:    m.inline,
		arrow:     m.arrow,
		disabled:  m.disabled,
		focused:   m.focus.Focused(),
		placement: m.floating.Placement(),
		testID:    m.testID,
		render:    m.renderTrigger,
		theme:     m.theme,
	}
	r := t.Render(m.ReferenceProps())
	m.triggerDisabled = r.Props.Attr("disabled") == "true"

	if r.Width != m.buttonWidth {
		m.buttonWidth = r.Width
		m.floating.SetMinWidth(r.Width)
		m.logger.Debug("dropdown trigger measured", "id", m.id, "width", r.Width)
	}

	rect := mouse.Rect{X: m.originX, Y: m.originY, W: r.Width, H: r.Height}
	m.ctx.refs.SetReference(Handle{ID: m.ctx.ReferenceID, Rect: rect})
	m.mouse.HitMap.AddRect(m.triggerRegion(), rect.X, rect.Y, rect.W, rect.H, nil)
	return r.Content
}

// Overlay composites the open panel onto base, a frame of width x height
// cells. It returns base unchanged while the menu is closed.
func (m *Model) Overlay(base string, width, height int) string {
	if !m.Open() {
		return base
	}
	m.floating.SetViewport(mouse.Rect{W: width, H: height})

	panel, rows, contentWidth := m.renderPanel()
	pw, ph := lipgloss.Width(panel), lipgloss.Height(panel)
	m.styles = m.floating.Styles(pw, ph)
	if !m.styles.Ready {
		return base
	}

	x, y := m.styles.X, m.styles.Y
	rect := mouse.Rect{X: x, Y: y, W: pw, H: ph}
	m.ctx.refs.SetFloating(Handle{ID: m.ctx.FloatingID, Rect: rect})
	m.mouse.HitMap.AddRect(m.panelRegion(), x, y, pw, ph, nil)

	base1, content := m.theme.Floating.Base, m.theme.Content
	left := base1.GetMarginLeft() + base1.GetBorderLeftSize() + base1.GetPaddingLeft() +
		content.GetMarginLeft() + content.GetBorderLeftSize() + content.GetPaddingLeft()
	row := y + base1.GetMarginTop() + base1.GetBorderTopSize() + base1.GetPaddingTop() +
		content.GetMarginTop() + content.GetBorderTopSize() + content.GetPaddingTop()

	m.registry.UnmountAll()
	for _, r := range rows {
		if r.index != NoIndex {
			ir := mouse.Rect{X: x + left, Y: row, W: contentWidth, H: r.height}
			m.registry.Mount(r.index, Handle{ID: m.itemRegion(r.index), Rect: ir})
			m.mouse.HitMap.AddRect(m.itemRegion(r.index), ir.X, ir.Y, ir.W, ir.H, r.index)
		}
		row += r.height
	}

	return Overlay(base, panel, x, y, width)
}

type panelRow struct {
	index  int
	height int
}

// renderPanel draws the visible children in two passes: the first measures
// the natural width, the second renders every row at the common width.
func (m *Model) renderPanel() (string, []panelRow, int) {
	ctx := m.Context()
	start, end := m.visibleRange()
	visible := m.children[start:end]
	above, below := start > 0, end < len(m.children)

	indicator := m.theme.Floating.Item.Disabled
	natural := 0
	for _, c := range visible {
		w := lipgloss.Width(c.node.Render(RenderContext{Context: ctx, Index: c.index, Theme: m.theme}))
		natural = max(natural, w)
	}
	if above || below {
		natural = max(natural, lipgloss.Width(indicator.Render("↓ more below")))
	}
	frame := m.theme.Floating.Base.GetHorizontalFrameSize() + m.theme.Content.GetHorizontalFrameSize()
	width := max(natural, m.buttonWidth-frame, 1)

	var lines []string
	var rows []panelRow
	if above {
		lines = append(lines, indicator.Width(width).Render("↑ more above"))
		rows = append(rows, panelRow{index: NoIndex, height: 1})
	}
	for _, c := range visible {
		s := c.node.Render(RenderContext{Context: ctx, Index: c.index, Width: width, Theme: m.theme})
		lines = append(lines, s)
		rows = append(rows, panelRow{index: c.index, height: lipgloss.Height(s)})
	}
	if below {
		lines = append(lines, indicator.Width(width).Render("↓ more below"))
		rows = append(rows, panelRow{index: NoIndex, height: 1})
	}

	panel := m.theme.Floating.Base.Render(m.theme.Content.Render(strings.Join(lines, "\n")))
	return panel, rows, width
}

// visibleRange returns the window of children to draw, scrolled so the
// active item stays in view.
func (m *Model) visibleRange() (int, int) {
	n := len(m.children)
	if m.maxVisible <= 0 || n <= m.maxVisible {
		return 0, n
	}
	active := m.machine.State().ActiveIndex
	for pos, c := range m.children {
		if c.index == NoIndex || c.index != active {
			continue
		}
		if pos < m.scroll {
			m.scroll = pos
		} else if pos >= m.scroll+m.maxVisible {
			m.scroll = pos - m.maxVisible + 1
		}
		break
	}
	m.scroll = min(max(m.scroll, 0), n-m.maxVisible)
	return m.scroll, m.scroll + m.maxVisible
}

// SetOrigin sets the cell where the host draws the trigger.
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// Focus gives the trigger keyboard focus.
func (m *Model) Focus() {
	if m.focus.Target() == FocusNone {
		m.focus.FocusTrigger()
	}
}

// Blur removes focus and closes an open menu.
func (m *Model) Blur() tea.Cmd {
	m.machine.Dispatch(Dismiss{Reason: DismissFocusOut})
	m.focus.Blur()
	m.typeahead.Reset()
	return m.flush()
}

// Focused reports whether the trigger or panel has focus.
func (m *Model) Focused() bool {
	return m.focus.Focused()
}

// Show opens the menu. A disabled dropdown stays closed.
func (m *Model) Show() tea.Cmd {
	if m.disabled {
		return nil
	}
	m.ctx.SetOpen(true, "")
	return m.flush()
}

// Hide closes the menu.
func (m *Model) Hide() tea.Cmd {
	m.ctx.SetOpen(false, DismissProgrammatic)
	return m.flush()
}

// Toggle opens a closed menu and closes an open one.
func (m *Model) Toggle() tea.Cmd {
	if m.disabled && !m.Open() {
		return nil
	}
	m.machine.Dispatch(ActivateTrigger{})
	return m.flush()
}

// SetDisabled enables or disables the trigger. Disabling closes the menu.
func (m *Model) SetDisabled(disabled bool) tea.Cmd {
	m.disabled = disabled
	m.triggerDisabled = disabled
	if disabled {
		m.machine.Dispatch(Dismiss{Reason: DismissProgrammatic})
	}
	return m.flush()
}

// SetPlacement moves the panel to another side or alignment. The trigger
// arrow follows on the next View.
func (m *Model) SetPlacement(p Placement) {
	m.placement = p
	m.floating.SetPlacement(p)
}

// Disabled reports whether the trigger is disabled.
func (m *Model) Disabled() bool { return m.disabled }

// AddItem appends n and returns its registry index (NoIndex for nodes that
// are not Listable).
func (m *Model) AddItem(n Node) int {
	idx := m.appendChild(n)
	m.machine.Dispatch(Revalidate{})
	return idx
}

// RemoveItem removes the item registered at index. Indices of the remaining
// items are unchanged.
func (m *Model) RemoveItem(index int) {
	if !m.registry.Contains(index) {
		return
	}
	m.registry.Unregister(index)
	delete(m.nodes, index)
	for i, c := range m.children {
		if c.index == index {
			m.children = append(m.children[:i], m.children[i+1:]...)
			break
		}
	}
	m.machine.Dispatch(Revalidate{})
}

// ID returns the instance id.
func (m *Model) ID() string { return m.id }

// Label returns the trigger label.
func (m *Model) Label() string { return m.label }

// State returns the machine state.
func (m *Model) State() State { return m.machine.State() }

// Open reports whether the panel is open.
func (m *Model) Open() bool { return m.machine.State().Open }

// ActiveIndex returns the highlighted item, or NoIndex.
func (m *Model) ActiveIndex() int { return m.machine.State().ActiveIndex }

// SelectedIndex returns the committed item, or NoIndex.
func (m *Model) SelectedIndex() int { return m.machine.State().SelectedIndex }

// ItemLabel returns the label registered at index.
func (m *Model) ItemLabel(index int) string { return m.registry.Label(index) }

// ButtonWidth returns the last measured trigger width, 0 before the first
// View.
func (m *Model) ButtonWidth() int { return m.buttonWidth }

// FloatingStyles returns the panel placement computed by the last Overlay.
func (m *Model) FloatingStyles() FloatingStyles { return m.styles }

// Placement returns the requested placement.
func (m *Model) Placement() Placement { return m.floating.Placement() }

// Keys returns the key bindings, e.g. for a bubbles/help view.
func (m *Model) Keys() KeyMap { return m.keys }

// Typeahead returns the current typeahead buffer.
func (m *Model) Typeahead() string { return m.typeahead.Buffer() }

// Registry exposes the item registry.
func (m *Model) Registry() *Registry { return m.registry }
