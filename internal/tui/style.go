package tui

import "github.com/charmbracelet/lipgloss"

var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	styleFocusedPanel = stylePanel.
				BorderForeground(lipgloss.Color("202"))

	styleTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("202")).
			Bold(true)

	styleSpeaker = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228")).
			Bold(true)

	styleDialogue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleNarration = lipgloss.NewStyle().
			Foreground(lipgloss.Color("249")).
			Italic(true)

	styleChoice = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34"))

	styleHint = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePlayer = lipgloss.NewStyle().
			Foreground(lipgloss.Color("45")).
			Bold(true)

	styleNPC = lipgloss.NewStyle().
			Foreground(lipgloss.Color("202")).
			Bold(true)

	styleWall = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	styleRoad = lipgloss.NewStyle().
			Foreground(lipgloss.Color("94"))
)
