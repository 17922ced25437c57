package dropdown

import tea "github.com/charmbracelet/bubbletea"

// Context is what the root hands to every item node on each render. It is
// rebuilt from the machine state every frame, so nodes never cache it.
type Context struct {
	ActiveIndex    int
	DismissOnClick bool

	// GetItemProps merges user props with the interaction props for index.
	GetItemProps func(index int, user Props) Props

	// HandleSelect commits index and closes the menu.
	HandleSelect func(index int) tea.Cmd
}

// ItemProps is GetItemProps with a nil-safe fallback.
func (c Context) ItemProps(index int, user Props) Props {
	if c.GetItemProps == nil {
		return user
	}
	return c.GetItemProps(index, user)
}

// Select is HandleSelect with a nil-safe fallback.
func (c Context) Select(index int) tea.Cmd {
	if c.HandleSelect == nil {
		return nil
	}
	return c.HandleSelect(index)
}
