package mobile

import "github.com/charmbracelet/lipgloss"

var (
	colorBlue  = lipgloss.Color("#3498db")
	colorRed   = lipgloss.Color("#e74c3c")
	colorGreen = lipgloss.Color("#2ecc71")
	colorText  = lipgloss.Color("#555555")
	colorRow   = lipgloss.Color("#e0e0e0")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(colorBlue).
			Padding(0, 2).
			MarginBottom(1)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2)

	fetchButtonStyle   = buttonStyle.Background(colorBlue)
	unfetchButtonStyle = buttonStyle.Background(colorRed)
	cancelButtonStyle  = buttonStyle.Background(colorRed)
	saveButtonStyle    = buttonStyle.Background(colorGreen)
	focusedButtonStyle = lipgloss.NewStyle().Underline(true).Bold(true)

	emptyStyle = lipgloss.NewStyle().Foreground(colorRed)

	rowStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(colorRow).
			PaddingLeft(1).
			MarginBottom(1)
	selectedRowStyle = rowStyle.BorderForeground(colorGreen)

	labelStyle = lipgloss.NewStyle().Bold(true)
	starStyle  = lipgloss.NewStyle().Foreground(colorRed)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Padding(1, 2).
			Width(50)
	modalTitleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)

	alertStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorRed).
			Padding(0, 1).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle().Faint(true).MarginTop(1)
)
