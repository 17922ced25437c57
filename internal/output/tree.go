package output

import (
	"strings"
)

// TreeNode represents a node in a tree structure for rendering
type TreeNode struct {
	Label    string
	Kind     string // "header", "item", ...
	Value    string
	Disabled bool
	Children []TreeNode
}

// TreeRenderOptions configures tree rendering behavior
type TreeRenderOptions struct {
	MaxDepth  int  // 0 = unlimited
	ShowKind  bool // prefix each line with the node kind
	ShowValue bool // append the value when it differs from the label
}

// RenderTree renders a tree starting from a single root node
// Returns the complete tree as a string (without the root - just children)
func RenderTree(root TreeNode, opts TreeRenderOptions) string {
	lines := renderTreeNodes(root.Children, opts, 0, "")
	return strings.Join(lines, "\n")
}

// RenderTreeLines renders multiple root nodes and returns individual lines
// Useful for embedding trees in other output
func RenderTreeLines(roots []TreeNode, opts TreeRenderOptions) []string {
	return renderTreeNodes(roots, opts, 0, "")
}

// renderTreeNodes recursively renders tree nodes
func renderTreeNodes(nodes []TreeNode, opts TreeRenderOptions, depth int, prefix string) []string {
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return nil
	}

	var lines []string

	for i, node := range nodes {
		isLast := i == len(nodes)-1

		connector := "├── "
		if isLast {
			connector = "└── "
		}

		var parts []string
		if opts.ShowKind && node.Kind != "" {
			parts = append(parts, node.Kind+":")
		}
		parts = append(parts, node.Label)
		if opts.ShowValue && node.Value != "" && node.Value != node.Label {
			parts = append(parts, "= "+node.Value)
		}
		if node.Disabled {
			parts = append(parts, "(disabled)")
		}

		lines = append(lines, prefix+connector+strings.Join(parts, " "))

		childPrefix := prefix
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "│   "
		}

		lines = append(lines, renderTreeNodes(node.Children, opts, depth+1, childPrefix)...)
	}

	return lines
}
