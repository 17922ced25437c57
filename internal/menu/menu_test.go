package menu

import (
	"strings"
	"testing"

	"github.com/marcus/dropdown/pkg/dropdown"
)

const sample = `
# Fruit
Apple
Banana = b
!Durian

---
# Veg
Carrot
`

func TestParse(t *testing.T) {
	entries, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []Entry{
		{Kind: KindHeader, Text: "Fruit", Line: 2},
		{Kind: KindItem, Text: "Apple", Value: "Apple", Line: 3},
		{Kind: KindItem, Text: "Banana", Value: "b", Line: 4},
		{Kind: KindItem, Text: "Durian", Value: "Durian", Disabled: true, Line: 5},
		{Kind: KindDivider, Line: 7},
		{Kind: KindHeader, Text: "Veg", Line: 8},
		{Kind: KindItem, Text: "Carrot", Value: "Carrot", Line: 9},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(entries), len(want), entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{"#", "!", "Apple\n#   \n"}
	for _, in := range tests {
		if _, err := Parse(strings.NewReader(in)); err == nil {
			t.Errorf("Parse(%q) should fail", in)
		}
	}
}

func TestFromArgs(t *testing.T) {
	entries := FromArgs([]string{"One", "Two\t2"})
	if len(entries) != 2 || entries[1].Text != "Two" || entries[1].Value != "2" {
		t.Errorf("FromArgs = %+v", entries)
	}
}

func TestSections(t *testing.T) {
	entries, _ := Parse(strings.NewReader("Loose\n# A\nx\n---\ny\n# B\n"))
	secs := Sections(entries)
	if len(secs) != 3 {
		t.Fatalf("got %d sections, want 3", len(secs))
	}
	if secs[0].Title != "" || len(secs[0].Entries) != 1 {
		t.Errorf("loose section = %+v", secs[0])
	}
	if secs[1].Title != "A" || len(secs[1].Entries) != 2 {
		t.Errorf("section A = %+v", secs[1])
	}
	if len(secs[2].Entries) != 0 {
		t.Errorf("section B = %+v, want empty", secs[2])
	}
}

func TestNodesRegisterItems(t *testing.T) {
	entries, _ := Parse(strings.NewReader(sample))
	d := dropdown.New("Menu", Nodes(entries))
	if got := d.Registry().Len(); got != Items(entries) {
		t.Errorf("registered %d items, want %d", got, Items(entries))
	}
	if d.Registry().Navigable(2) {
		t.Error("Durian should not be navigable")
	}
	if got := d.ItemLabel(3); got != "Carrot" {
		t.Errorf("ItemLabel(3) = %q, want Carrot", got)
	}
}
