package dropdown

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the dropdown key bindings. Printable keys are left free for
// typeahead, so bindings should stick to non-printing keys.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Home    key.Binding
	End     key.Binding
	Select  key.Binding
	Dismiss key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous")),
		Down:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next")),
		Home:    key.NewBinding(key.WithKeys("home", "pgup"), key.WithHelp("home", "first")),
		End:     key.NewBinding(key.WithKeys("end", "pgdown"), key.WithHelp("end", "last")),
		Select:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open/pick")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Select, k.Dismiss}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.Home, k.End},
		{k.Select, k.Dismiss},
	}
}
