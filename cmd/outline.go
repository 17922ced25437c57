package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcus/dropdown/internal/menu"
	"github.com/marcus/dropdown/internal/output"
)

var outlineFlags struct {
	values bool
	kinds  bool
	depth  int
	json   bool
}

var outlineCmd = &cobra.Command{
	Use:   "outline [file]",
	Short: "Print a menu file as a tree",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var r io.Reader = os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open menu: %w", err)
			}
			defer f.Close()
			r = f
		}

		entries, err := menu.Parse(r)
		if err != nil {
			return fmt.Errorf("parse menu: %w", err)
		}

		if outlineFlags.json {
			return output.JSON(menu.Sections(entries))
		}

		root := outlineTree(menu.Sections(entries))
		fmt.Fprintln(cmd.OutOrStdout(), output.RenderTree(root, output.TreeRenderOptions{
			MaxDepth:  outlineFlags.depth,
			ShowKind:  outlineFlags.kinds,
			ShowValue: outlineFlags.values,
		}))
		return nil
	},
}

func init() {
	outlineCmd.Flags().BoolVar(&outlineFlags.values, "values", false, "show item values")
	outlineCmd.Flags().BoolVar(&outlineFlags.kinds, "kinds", false, "show entry kinds")
	outlineCmd.Flags().IntVar(&outlineFlags.depth, "depth", 0, "maximum depth (0 = unlimited)")
	outlineCmd.Flags().BoolVar(&outlineFlags.json, "json", false, "print sections as JSON")
	rootCmd.AddCommand(outlineCmd)
}

// outlineTree nests items under their headers. Items before the first
// header sit at the top level.
func outlineTree(sections []menu.Section) output.TreeNode {
	var root output.TreeNode
	for _, s := range sections {
		items := make([]output.TreeNode, 0, len(s.Entries))
		for _, e := range s.Entries {
			items = append(items, output.TreeNode{
				Label:    e.Text,
				Kind:     e.Kind.String(),
				Value:    e.Value,
				Disabled: e.Disabled,
			})
		}
		if s.Title == "" {
			root.Children = append(root.Children, items...)
			continue
		}
		root.Children = append(root.Children, output.TreeNode{
			Label:    s.Title,
			Kind:     menu.KindHeader.String(),
			Children: items,
		})
	}
	return root
}
