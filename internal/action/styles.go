package action

import "github.com/charmbracelet/lipgloss"

// Output styles. lipgloss downgrades these automatically when stdout is
// not a color-capable terminal.
var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	activeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)
