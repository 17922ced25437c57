package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcus/dropdown/internal/config"
	"github.com/marcus/dropdown/internal/menu"
	"github.com/marcus/dropdown/pkg/dropdown"
)

var pickCmd = &cobra.Command{
	Use:   "pick [items...]",
	Short: "Pick one item from a dropdown and print it",
	Long: `Open a dropdown over the given items and print the chosen label.

Items come from the arguments, or from stdin in menu format when no
arguments are given:

  # header
  item
  item = value
  !disabled item
  ---`,
	RunE: runPick,
}

var pickFlags struct {
	label      string
	placement  dropdown.Placement
	trigger    dropdown.TriggerMode
	inline     bool
	noArrow    bool
	keepOpen   bool
	fuzzy      bool
	timeout    time.Duration
	maxVisible int
	selected   int
	value      bool
}

var (
	pickPlacement = &placementValue{p: &pickFlags.placement}
	pickTrigger   = &triggerValue{mode: &pickFlags.trigger}
)

func init() {
	f := pickCmd.Flags()
	f.StringVarP(&pickFlags.label, "label", "l", "Choose", "trigger label")
	f.VarP(pickPlacement, "placement", "p", "panel placement, e.g. bottom-start")
	f.Var(pickTrigger, "trigger", "open on click or hover")
	f.BoolVar(&pickFlags.inline, "inline", false, "render the trigger as plain text")
	f.BoolVar(&pickFlags.noArrow, "no-arrow", false, "hide the arrow icon")
	f.BoolVar(&pickFlags.keepOpen, "keep-open", false, "keep the menu open after clicking an item")
	f.BoolVar(&pickFlags.fuzzy, "fuzzy", false, "fuzzy typeahead fallback")
	f.DurationVar(&pickFlags.timeout, "timeout", 0, "typeahead reset timeout")
	f.IntVar(&pickFlags.maxVisible, "max-visible", 0, "maximum visible rows")
	f.IntVar(&pickFlags.selected, "selected", dropdown.NoIndex, "initially selected item index")
	f.BoolVar(&pickFlags.value, "value", false, "print the item value instead of the label")

	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(getBaseDir())
	if err != nil {
		return err
	}

	entries, err := readEntries(args, os.Stdin)
	if err != nil {
		return err
	}
	if menu.Items(entries) == 0 {
		return fmt.Errorf("pick: no items")
	}
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return fmt.Errorf("pick: stderr is not a terminal")
	}

	opts := append(cfg.Options(), pickOptions(cmd)...)
	dd := dropdown.New(pickFlags.label, menu.Nodes(entries), opts...)

	programOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(os.Stderr),
	}
	if len(args) == 0 {
		programOpts = append(programOpts, tea.WithInputTTY())
	}

	final, err := tea.NewProgram(newPickModel(dd), programOpts...).Run()
	if err != nil {
		return fmt.Errorf("pick: %w", err)
	}
	res := final.(pickModel).result
	if res == nil {
		return ErrNoSelection
	}
	if pickFlags.value {
		fmt.Fprintln(cmd.OutOrStdout(), res.Value)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), res.Label)
	}
	return nil
}

// pickOptions turns explicitly set flags into options; unset flags leave
// the config defaults alone.
func pickOptions(cmd *cobra.Command) []dropdown.Option {
	f := cmd.Flags()
	var opts []dropdown.Option
	if pickPlacement.set {
		opts = append(opts, dropdown.WithPlacement(pickFlags.placement))
	}
	if pickTrigger.set {
		opts = append(opts, dropdown.WithTrigger(pickFlags.trigger))
	}
	if f.Changed("inline") {
		opts = append(opts, dropdown.WithInline(pickFlags.inline))
	}
	if f.Changed("no-arrow") {
		opts = append(opts, dropdown.WithArrowIcon(!pickFlags.noArrow))
	}
	if f.Changed("keep-open") {
		opts = append(opts, dropdown.WithDismissOnClick(!pickFlags.keepOpen))
	}
	if f.Changed("fuzzy") {
		opts = append(opts, dropdown.WithFuzzyTypeahead(pickFlags.fuzzy))
	}
	if f.Changed("timeout") {
		opts = append(opts, dropdown.WithTypeaheadTimeout(pickFlags.timeout))
	}
	if f.Changed("max-visible") {
		opts = append(opts, dropdown.WithMaxVisible(pickFlags.maxVisible))
	}
	if pickFlags.selected != dropdown.NoIndex {
		opts = append(opts, dropdown.WithSelected(pickFlags.selected))
	}
	return opts
}

// readEntries takes items from args, or parses stdin when there are none.
func readEntries(args []string, stdin io.Reader) ([]menu.Entry, error) {
	if len(args) > 0 {
		return menu.FromArgs(args), nil
	}
	entries, err := menu.Parse(stdin)
	if err != nil {
		return nil, fmt.Errorf("parse menu: %w", err)
	}
	return entries, nil
}

// pickModel hosts a single dropdown full screen.
type pickModel struct {
	dd     *dropdown.Model
	help   help.Model
	width  int
	height int
	result *dropdown.SelectMsg
}

func newPickModel(dd *dropdown.Model) pickModel {
	dd.Focus()
	dd.Show()
	dd.SetOrigin(2, 1)
	return pickModel{dd: dd, help: help.New(), width: 80, height: 24}
}

func (m pickModel) Init() tea.Cmd {
	return nil
}

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if !m.dd.Open() {
				return m, tea.Quit
			}
		}
	case dropdown.SelectMsg:
		if msg.ID == m.dd.ID() && msg.Index != dropdown.NoIndex {
			m.result = &msg
			return m, tea.Quit
		}
		return m, nil
	case dropdown.OpenChangeMsg:
		return m, nil
	}
	return m, m.dd.Update(msg)
}

func (m pickModel) View() string {
	frame := blank(m.width, m.height)
	frame = place(frame, m.dd.View(), 2, 1, m.width)
	if m.height > 2 {
		frame = place(frame, m.help.View(m.dd.Keys()), 2, m.height-1, m.width)
	}
	return m.dd.Overlay(frame, m.width, m.height)
}
