package modal

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type closedMsg struct{}

func TestHeaderRenderWidth(t *testing.T) {
	ctx := Context{OnClose: func() tea.Cmd { return nil }}
	r := Header{Title: "Settings"}.Render(ctx, 30, false)

	first := strings.Split(r.Content, "\n")[0]
	if got := lipgloss.Width(first); got != 30 {
		t.Errorf("header width = %d, want 30", got)
	}
	if !strings.Contains(ansi.Strip(first), "Settings") || !strings.Contains(ansi.Strip(first), closeGlyph) {
		t.Errorf("header = %q, want title and close glyph", ansi.Strip(first))
	}
	if r.Close.Empty() {
		t.Error("closable header should report a close rect")
	}
}

func TestHeaderWithoutOnClose(t *testing.T) {
	r := Header{Title: "Info"}.Render(Context{}, 20, false)
	if !r.Close.Empty() {
		t.Errorf("close rect = %+v, want empty", r.Close)
	}
	if strings.Contains(r.Content, closeGlyph) {
		t.Error("no close glyph expected without OnClose")
	}
}

func TestHeaderHandleClick(t *testing.T) {
	ctx := Context{OnClose: func() tea.Cmd {
		return func() tea.Msg { return closedMsg{} }
	}}
	h := Header{Title: "Settings"}
	r := h.Render(ctx, 30, false)

	if cmd := h.HandleClick(ctx, r, 0, 0); cmd != nil {
		t.Error("click on the title should not close")
	}
	cmd := h.HandleClick(ctx, r, r.Close.X, r.Close.Y)
	if cmd == nil {
		t.Fatal("click on close should return OnClose's command")
	}
	if _, ok := cmd().(closedMsg); !ok {
		t.Error("expected closedMsg")
	}
}
