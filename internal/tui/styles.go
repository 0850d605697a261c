package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/ticktock/internal/timesheet"
)

// Color palette
var (
	colorPrimary   = lipgloss.Color("#6C63FF")
	colorMuted     = lipgloss.Color("#666666")
	colorSuccess   = lipgloss.Color("#2ECC71")
	colorWarning   = lipgloss.Color("#F39C12")
	colorError     = lipgloss.Color("#E74C3C")
	colorFg        = lipgloss.Color("#C0CAF5")
	colorSubtle    = lipgloss.Color("#414868")
	colorHighlight = lipgloss.Color("#7AA2F7")
	colorDark      = lipgloss.Color("#1A1B26")
)

// Styles
var (
	// Tabs
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorPrimary).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 2)

	// Panels
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Padding(1, 2)

	// Text
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	highlightStyle = lipgloss.NewStyle().
			Foreground(colorHighlight)

	// Header/footer
	headerStyle = lipgloss.NewStyle().
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	// Table
	columnHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorMuted)

	activeColumnStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorHighlight)

	// List items
	selectedItemStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	// Pager
	currentPageStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorDark).
				Background(colorFg).
				Padding(0, 1)

	pageStyle = lipgloss.NewStyle().
			Foreground(colorFg).
			Padding(0, 1)

	disabledStyle = lipgloss.NewStyle().
			Foreground(colorSubtle).
			Padding(0, 1)
)

var badgeBase = lipgloss.NewStyle().Bold(true).Padding(0, 1)

// statusColor is green for COMPLETED, yellow for INCOMPLETE, red for
// MISSING and grey for anything else.
func statusColor(s timesheet.Status) lipgloss.Color {
	switch s {
	case timesheet.StatusCompleted:
		return colorSuccess
	case timesheet.StatusIncomplete:
		return colorWarning
	case timesheet.StatusMissing:
		return colorError
	}
	return colorMuted
}

func badge(s timesheet.Status) string {
	return badgeBase.Foreground(colorDark).Background(statusColor(s)).Render(s.String())
}
