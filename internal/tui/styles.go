package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorPrimary   = lipgloss.Color("#6C63FF")
	colorMuted     = lipgloss.Color("#666666")
	colorFg        = lipgloss.Color("#C0CAF5")
	colorSubtle    = lipgloss.Color("#414868")
	colorHighlight = lipgloss.Color("#7AA2F7")
)

// projectColors are handed out to projects in row order and wrap around.
var projectColors = []lipgloss.Color{
	"#6C63FF",
	"#2EC4B6",
	"#FF6B6B",
	"#F39C12",
	"#2ECC71",
	"#7AA2F7",
	"#E74C3C",
	"#BB9AF7",
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	headerCellStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Padding(0, 1).
			Align(lipgloss.Right)

	labelCellStyle = lipgloss.NewStyle().
			Foreground(colorFg).
			Padding(0, 1)

	numberCellStyle = lipgloss.NewStyle().
			Foreground(colorFg).
			Padding(0, 1).
			Align(lipgloss.Right)

	totalsCellStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorHighlight).
			Padding(0, 1).
			Align(lipgloss.Right)

	borderStyle = lipgloss.NewStyle().
			Foreground(colorSubtle)
)

func projectColor(i int) lipgloss.Color {
	return projectColors[i%len(projectColors)]
}
