package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderTreeLines_Empty(t *testing.T) {
	lines := RenderTreeLines(nil, TreeRenderOptions{})
	if len(lines) != 0 {
		t.Errorf("expected empty lines, got %d", len(lines))
	}
}

func TestRenderTreeLines_SingleNode(t *testing.T) {
	nodes := []TreeNode{
		{Label: "Apple", Kind: "item", Value: "a"},
	}
	lines := RenderTreeLines(nodes, TreeRenderOptions{ShowKind: true, ShowValue: true})

	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}

	line := lines[0]
	if !strings.Contains(line, "└──") {
		t.Errorf("expected last-item connector, got: %s", line)
	}
	if !strings.Contains(line, "item:") {
		t.Errorf("expected kind in output, got: %s", line)
	}
	if !strings.Contains(line, "Apple = a") {
		t.Errorf("expected label and value in output, got: %s", line)
	}
}

func TestRenderTreeLines_MultipleNodes(t *testing.T) {
	nodes := []TreeNode{
		{Label: "First"},
		{Label: "Second", Disabled: true},
	}
	lines := RenderTreeLines(nodes, TreeRenderOptions{})

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "├──") {
		t.Errorf("expected non-last connector for first node, got: %s", lines[0])
	}
	if !strings.Contains(lines[1], "└──") || !strings.Contains(lines[1], "(disabled)") {
		t.Errorf("expected last connector and disabled mark, got: %s", lines[1])
	}
}

func TestRenderTree_Nested(t *testing.T) {
	root := TreeNode{Children: []TreeNode{
		{Label: "Fruit", Kind: "header", Children: []TreeNode{
			{Label: "Apple"},
			{Label: "Banana"},
		}},
		{Label: "Veg", Kind: "header", Children: []TreeNode{
			{Label: "Carrot"},
		}},
	}}

	got := RenderTree(root, TreeRenderOptions{})
	want := strings.Join([]string{
		"├── Fruit",
		"│   ├── Apple",
		"│   └── Banana",
		"└── Veg",
		"    └── Carrot",
	}, "\n")
	if got != want {
		t.Errorf("RenderTree =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderTree_MaxDepth(t *testing.T) {
	root := TreeNode{Children: []TreeNode{
		{Label: "Fruit", Children: []TreeNode{{Label: "Apple"}}},
	}}
	got := RenderTree(root, TreeRenderOptions{MaxDepth: 1})
	if strings.Contains(got, "Apple") {
		t.Errorf("expected depth-limited output, got:\n%s", got)
	}
}

func TestMessages(t *testing.T) {
	var out, errOut bytes.Buffer
	oldOut, oldErr := Stdout, Stderr
	Stdout, Stderr = &out, &errOut
	defer func() { Stdout, Stderr = oldOut, oldErr }()

	Error("bad %s", "thing")
	Success("done")

	if got := ansi.Strip(errOut.String()); got != "ERROR: bad thing\n" {
		t.Errorf("Error wrote %q", got)
	}
	if got := ansi.Strip(out.String()); got != "done\n" {
		t.Errorf("Success wrote %q", got)
	}
}
