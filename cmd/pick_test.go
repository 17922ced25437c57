package cmd

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/dropdown/internal/menu"
	"github.com/marcus/dropdown/pkg/dropdown"
)

func TestReadEntries(t *testing.T) {
	entries, err := readEntries([]string{"a", "b"}, strings.NewReader("ignored"))
	if err != nil || menu.Items(entries) != 2 {
		t.Errorf("args: items=%d err=%v, want 2", menu.Items(entries), err)
	}

	entries, err = readEntries(nil, strings.NewReader("# Fruit\napple\nbanana = b\n---\n!cherry\n"))
	if err != nil {
		t.Fatalf("stdin: %v", err)
	}
	if got := menu.Items(entries); got != 3 {
		t.Errorf("stdin items = %d, want 3", got)
	}

	if _, err := readEntries(nil, strings.NewReader("#\n")); err == nil {
		t.Error("empty header should fail")
	}
}

func newTestPick() pickModel {
	dd := dropdown.New("Fruit", menu.Nodes(menu.FromArgs([]string{"apple", "banana"})))
	return newPickModel(dd)
}

func TestPickModelQuitsOnSelect(t *testing.T) {
	m := newTestPick()
	next, cmd := m.Update(dropdown.SelectMsg{ID: m.dd.ID(), Index: 1, Label: "banana", Value: "banana"})
	pm := next.(pickModel)
	if pm.result == nil || pm.result.Label != "banana" {
		t.Fatalf("result = %+v, want banana", pm.result)
	}
	if cmd == nil {
		t.Error("select should quit")
	}
}

func TestPickModelIgnoresClearAndOtherIDs(t *testing.T) {
	m := newTestPick()
	next, _ := m.Update(dropdown.SelectMsg{ID: "other", Index: 0})
	if next.(pickModel).result != nil {
		t.Error("select from another dropdown should be ignored")
	}
	next, _ = m.Update(dropdown.SelectMsg{ID: m.dd.ID(), Index: dropdown.NoIndex})
	if next.(pickModel).result != nil {
		t.Error("clearing the selection should not finish the pick")
	}
}

func TestPickModelEscClosesThenQuits(t *testing.T) {
	m := newTestPick()
	if !m.dd.Open() {
		t.Fatal("picker should start open")
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(pickModel)
	if m.dd.Open() {
		t.Error("first esc should close the menu")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc}); cmd == nil {
		t.Error("esc while closed should quit")
	}
}

func TestPickModelView(t *testing.T) {
	m := newTestPick()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	view := ansi.Strip(next.(pickModel).View())
	for _, want := range []string{"Fruit", "apple", "banana"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
