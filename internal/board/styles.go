package board

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)

	listBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Width(14)

	activeLabelStyle = labelStyle.
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("24"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(1, 2)

	modalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			MarginBottom(1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))

	pickerTitleStyle    = headerStyle.Padding(1, 0, 1, 2)
	pickerItemStyle     = lipgloss.NewStyle().PaddingLeft(4)
	pickerSelectedStyle = headerStyle.Padding(0, 0, 0, 2)
	pickerHintStyle     = hintStyle.Padding(1, 0, 0, 2)
)
