package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/dropdown/pkg/mouse"
)

const closeGlyph = "✕"

// Theme styles a Header. Zero fields fall back to the package styles.
type Theme struct {
	Title      *lipgloss.Style
	PopupTitle *lipgloss.Style
	Close      *lipgloss.Style
	CloseHover *lipgloss.Style
	Border     *lipgloss.Style
}

func pick(s *lipgloss.Style, def lipgloss.Style) lipgloss.Style {
	if s != nil {
		return *s
	}
	return def
}

// Header is the title row of a dialog with a close affordance. It keeps no
// state of its own; everything comes from the Context it is rendered with.
type Header struct {
	Title string
	Theme Theme
}

// Rendered is the output of Header.Render.
type Rendered struct {
	Content string
	Close   mouse.Rect // relative to the header's top-left cell; empty when not closable
}

// Render draws the header width cells wide. hovered highlights the close
// button.
func (h Header) Render(ctx Context, width int, hovered bool) Rendered {
	titleStyle := pick(h.Theme.Title, Title)
	if ctx.Popup {
		titleStyle = pick(h.Theme.PopupTitle, PopupTitle)
	}
	title := titleStyle.Render(h.Title)

	var closeBtn string
	if ctx.OnClose != nil {
		style := pick(h.Theme.Close, CloseButton)
		if hovered {
			style = pick(h.Theme.CloseHover, CloseButtonHover)
		}
		closeBtn = style.Render(closeGlyph)
	}

	border := pick(h.Theme.Border, HeaderBorder)
	inner := width - border.GetHorizontalFrameSize()
	gap := inner - lipgloss.Width(title) - lipgloss.Width(closeBtn)
	if gap < 1 {
		gap = 1
	}
	row := title + strings.Repeat(" ", gap) + closeBtn

	out := Rendered{Content: border.Render(row)}
	if closeBtn != "" {
		x := border.GetBorderLeftSize() + border.GetPaddingLeft() + lipgloss.Width(title) + gap
		y := border.GetBorderTopSize() + border.GetPaddingTop()
		out.Close = mouse.Rect{X: x, Y: y, W: lipgloss.Width(closeBtn), H: 1}
	}
	return out
}

// HandleClick calls OnClose when (x, y), relative to the header, lands on
// the close button.
func (h Header) HandleClick(ctx Context, r Rendered, x, y int) tea.Cmd {
	if r.Close.Empty() || !r.Close.Contains(x, y) {
		return nil
	}
	return ctx.Close()
}
