package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/marcus/dropdown/internal/config"
	"github.com/marcus/dropdown/pkg/dropdown"
	"github.com/marcus/dropdown/pkg/modal"
	"github.com/marcus/dropdown/pkg/mouse"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Interactive demo of every placement",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(getBaseDir())
		if err != nil {
			return err
		}
		p := tea.NewProgram(newDemoModel(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithOutput(os.Stderr))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("demo: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

type demoKeys struct {
	dropdown.KeyMap
	Next      key.Binding
	Prev      key.Binding
	Toggle    key.Binding
	Disable   key.Binding
	Placement key.Binding
	Quit      key.Binding
}

func (k demoKeys) ShortHelp() []key.Binding {
	return append(k.KeyMap.ShortHelp(), k.Next, k.Quit)
}

func (k demoKeys) FullHelp() [][]key.Binding {
	return append(k.KeyMap.FullHelp(),
		[]key.Binding{k.Next, k.Prev, k.Quit},
		[]key.Binding{k.Toggle, k.Disable, k.Placement})
}

type demoModel struct {
	dds     []*dropdown.Model
	focus   int
	header  modal.Header
	ctx     modal.Context
	hdr     modal.Rendered
	hovered bool
	keys    demoKeys
	help    help.Model
	status  string
	width   int
	height  int
}

func fruitNodes() []dropdown.Node {
	return []dropdown.Node{
		dropdown.Header("Fruit"),
		dropdown.Item("Apple", dropdown.WithIcon("●")),
		dropdown.Item("Banana", dropdown.WithIcon("●")),
		dropdown.Item("Cherry", dropdown.WithIcon("●")),
		dropdown.Divider(),
		dropdown.Item("Durian", dropdown.WithItemDisabled(true)),
		dropdown.Item("Elderberry"),
	}
}

func newDemoModel(cfg config.Config) *demoModel {
	base := []dropdown.Option{
		dropdown.WithMaxVisible(cfg.MaxVisible),
		dropdown.WithTypeaheadTimeout(cfg.Typeahead.Timeout),
		dropdown.WithFuzzyTypeahead(cfg.Typeahead.Fuzzy),
	}
	with := func(opts ...dropdown.Option) []dropdown.Option {
		return append(append([]dropdown.Option{}, base...), opts...)
	}

	m := &demoModel{
		dds: []*dropdown.Model{
			dropdown.New("Top", fruitNodes(), with(dropdown.WithPlacement(dropdown.PlacementTop))...),
			dropdown.New("Right", fruitNodes(), with(dropdown.WithPlacement(dropdown.PlacementRightStart))...),
			dropdown.New("Bottom", fruitNodes(), with(dropdown.WithInline(true))...),
			dropdown.New("Hover", fruitNodes(), with(
				dropdown.WithPlacement(dropdown.PlacementLeftEnd),
				dropdown.WithTrigger(dropdown.TriggerHover),
			)...),
		},
		header: modal.Header{Title: "Dropdown demo"},
		keys: demoKeys{
			KeyMap: dropdown.DefaultKeyMap(),
			Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next menu")),
			Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous menu")),
			Toggle:    key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open/close")),
			Disable:   key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "enable/disable")),
			Placement: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "next placement")),
			Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		},
		help:   help.New(),
		status: "Nothing picked yet",
		width:  80,
		height: 24,
	}
	m.ctx = modal.Context{OnClose: func() tea.Cmd { return tea.Quit }}
	m.dds[0].Focus()
	return m
}

func (m *demoModel) Init() tea.Cmd {
	return nil
}

func (m *demoModel) moveFocus(delta int) tea.Cmd {
	cmd := m.dds[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.dds)) % len(m.dds)
	m.dds[m.focus].Focus()
	return cmd
}

// focusByID records the dropdown that took focus by pointer and blurs the
// rest, so only one menu ever sees keys.
func (m *demoModel) focusByID(id string) tea.Cmd {
	var cmds []tea.Cmd
	for i, d := range m.dds {
		if d.ID() == id {
			m.focus = i
			continue
		}
		if d.Focused() {
			cmds = append(cmds, d.Blur())
		}
	}
	return tea.Batch(cmds...)
}

func nextPlacement(p dropdown.Placement) dropdown.Placement {
	all := dropdown.Placements()
	for i, q := range all {
		if q == p {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

func (m *demoModel) label(id string) string {
	for _, d := range m.dds {
		if d.ID() == id {
			return d.Label()
		}
	}
	return "?"
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m, m.moveFocus(1)
		case key.Matches(msg, m.keys.Prev):
			return m, m.moveFocus(-1)
		case key.Matches(msg, m.keys.Toggle):
			return m, m.dds[m.focus].Toggle()
		case key.Matches(msg, m.keys.Disable):
			d := m.dds[m.focus]
			return m, d.SetDisabled(!d.Disabled())
		case key.Matches(msg, m.keys.Placement):
			d := m.dds[m.focus]
			d.SetPlacement(nextPlacement(d.Placement()))
			m.status = fmt.Sprintf("%s: placement %s", d.Label(), d.Placement())
			return m, nil
		case msg.String() == "?":
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	case tea.MouseMsg:
		rel := mouse.Rect{X: 2, Y: 1, W: m.width - 4, H: 2}
		m.hovered = rel.Contains(msg.X, msg.Y) && m.hdr.Close.Contains(msg.X-rel.X, msg.Y-rel.Y)
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if cmd := m.header.HandleClick(m.ctx, m.hdr, msg.X-rel.X, msg.Y-rel.Y); cmd != nil {
				return m, cmd
			}
		}
	case dropdown.SelectMsg:
		m.status = fmt.Sprintf("%s: picked %q (index %d)", m.label(msg.ID), msg.Label, msg.Index)
		return m, nil
	case dropdown.FocusMsg:
		return m, m.focusByID(msg.ID)
	case dropdown.OpenChangeMsg:
		return m, nil
	}

	var cmds []tea.Cmd
	for _, d := range m.dds {
		cmds = append(cmds, d.Update(msg))
	}
	return m, tea.Batch(cmds...)
}

func (m *demoModel) View() string {
	frame := blank(m.width, m.height)

	m.hdr = m.header.Render(m.ctx, max(m.width-4, 10), m.hovered)
	frame = place(frame, m.hdr.Content, 2, 1, m.width)

	row := m.height / 2
	cols := []int{m.width/2 - 4, 4, m.width/2 - 4, m.width - 16}
	rows := []int{row + 4, row, row - 6, row}
	for i, d := range m.dds {
		d.SetOrigin(cols[i], rows[i])
		frame = place(frame, d.View(), cols[i], rows[i], m.width)
	}

	frame = place(frame, m.status, 2, 4, m.width)
	frame = place(frame, m.help.View(m.keys), 2, m.height-1, m.width)

	for _, d := range m.dds {
		frame = d.Overlay(frame, m.width, m.height)
	}
	return frame
}
