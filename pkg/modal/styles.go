package modal

import "github.com/charmbracelet/lipgloss"

// Colors shared with the dropdown default theme.
var (
	Primary      = lipgloss.Color("212")
	Muted        = lipgloss.Color("241")
	BorderNormal = lipgloss.Color("240")
	BgSecondary  = lipgloss.Color("235")
)

// Header styles
var (
	Title = lipgloss.NewStyle().Bold(true)

	PopupTitle = lipgloss.NewStyle().
			Foreground(Muted)

	CloseButton = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	CloseButtonHover = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(Primary).
				Padding(0, 1)

	HeaderBorder = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(BorderNormal)

	// Frame wraps a whole dialog.
	Frame = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderNormal).
		Padding(0, 1)
)
