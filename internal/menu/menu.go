// Package menu parses the plain-text menu format read by the CLI.
//
// One entry per line:
//
//	# Fruit          header
//	Apple            item
//	!Durian          disabled item
//	---              divider
//
// Blank lines are ignored. An item may carry a value after a tab or " = ":
// "Cherry = c".
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/marcus/dropdown/pkg/dropdown"
)

// Kind is the type of a menu entry.
type Kind int

const (
	KindItem Kind = iota
	KindHeader
	KindDivider
)

func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindDivider:
		return "divider"
	}
	return "item"
}

// Entry is one parsed line.
type Entry struct {
	Kind     Kind
	Text     string
	Value    string
	Disabled bool
	Line     int
}

// Section is a header with the entries that follow it.
type Section struct {
	Title   string
	Entries []Entry
}

// Parse reads entries from r.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		switch {
		case text == "":
			continue
		case text == "---":
			entries = append(entries, Entry{Kind: KindDivider, Line: line})
		case strings.HasPrefix(text, "#"):
			title := strings.TrimSpace(strings.TrimPrefix(text, "#"))
			if title == "" {
				return nil, fmt.Errorf("line %d: empty header", line)
			}
			entries = append(entries, Entry{Kind: KindHeader, Text: title, Line: line})
		default:
			e := Entry{Kind: KindItem, Line: line}
			if strings.HasPrefix(text, "!") {
				e.Disabled = true
				text = strings.TrimSpace(text[1:])
			}
			e.Text, e.Value = splitValue(text)
			if e.Text == "" {
				return nil, fmt.Errorf("line %d: empty item", line)
			}
			entries = append(entries, e)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read menu: %w", err)
	}
	return entries, nil
}

// FromArgs builds item entries from command-line arguments.
func FromArgs(args []string) []Entry {
	entries := make([]Entry, 0, len(args))
	for i, a := range args {
		text, value := splitValue(a)
		entries = append(entries, Entry{Kind: KindItem, Text: text, Value: value, Line: i + 1})
	}
	return entries
}

func splitValue(s string) (string, string) {
	if label, value, ok := strings.Cut(s, "\t"); ok {
		return strings.TrimSpace(label), strings.TrimSpace(value)
	}
	if label, value, ok := strings.Cut(s, " = "); ok {
		return strings.TrimSpace(label), strings.TrimSpace(value)
	}
	return s, s
}

// Nodes converts entries into dropdown nodes.
func Nodes(entries []Entry) []dropdown.Node {
	nodes := make([]dropdown.Node, 0, len(entries))
	for _, e := range entries {
		switch e.Kind {
		case KindHeader:
			nodes = append(nodes, dropdown.Header(e.Text))
		case KindDivider:
			nodes = append(nodes, dropdown.Divider())
		default:
			nodes = append(nodes, dropdown.Item(e.Text,
				dropdown.WithValue(e.Value),
				dropdown.WithItemDisabled(e.Disabled),
			))
		}
	}
	return nodes
}

// Sections groups entries under their headers. Items before the first
// header land in a section with an empty title; dividers are dropped.
func Sections(entries []Entry) []Section {
	var out []Section
	for _, e := range entries {
		switch e.Kind {
		case KindHeader:
			out = append(out, Section{Title: e.Text})
		case KindItem:
			if len(out) == 0 {
				out = append(out, Section{})
			}
			out[len(out)-1].Entries = append(out[len(out)-1].Entries, e)
		}
	}
	return out
}

// Items counts the selectable entries.
func Items(entries []Entry) int {
	n := 0
	for _, e := range entries {
		if e.Kind == KindItem {
			n++
		}
	}
	return n
}
