package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcus/dropdown/pkg/dropdown"
)

var keysRaw bool

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the keyboard reference",
	RunE: func(cmd *cobra.Command, args []string) error {
		md := keysMarkdown(dropdown.DefaultKeyMap())
		if keysRaw || !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		}

		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
		if err != nil {
			return fmt.Errorf("markdown renderer: %w", err)
		}
		out, err := r.Render(md)
		if err != nil {
			return fmt.Errorf("render keys: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	keysCmd.Flags().BoolVar(&keysRaw, "raw", false, "print markdown without rendering")
	rootCmd.AddCommand(keysCmd)
}

// keysMarkdown documents k as a markdown table.
func keysMarkdown(k dropdown.KeyMap) string {
	var b strings.Builder
	b.WriteString("# Dropdown keys\n\n")
	b.WriteString("| Keys | Action |\n|---|---|\n")
	row := func(bind key.Binding) {
		keys := make([]string, 0, len(bind.Keys()))
		for _, s := range bind.Keys() {
			if s == " " {
				s = "space"
			}
			keys = append(keys, "`"+s+"`")
		}
		fmt.Fprintf(&b, "| %s | %s |\n", strings.Join(keys, " "), bind.Help().Desc)
	}
	for _, group := range k.FullHelp() {
		for _, bind := range group {
			row(bind)
		}
	}
	b.WriteString("\nAny other printable key runs typeahead: while the menu is open it ")
	b.WriteString("moves the highlight, while closed it picks the match directly.\n")
	return b.String()
}
