package modal

import tea "github.com/charmbracelet/bubbletea"

// Context is what an enclosing dialog provides to its parts.
type Context struct {
	Popup   bool           // dialog is a small confirmation popup
	OnClose func() tea.Cmd // nil when the dialog cannot be closed
}

// Close invokes OnClose when set.
func (c Context) Close() tea.Cmd {
	if c.OnClose == nil {
		return nil
	}
	return c.OnClose()
}
