package tui

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/ticktock/internal/auth"
	"github.com/sadopc/ticktock/internal/export"
	"github.com/sadopc/ticktock/internal/store"
)

// Options are the start-up settings the App does not keep in the store.
type Options struct {
	ExportDir string
}

// App is the root Bubble Tea model. Without a session it shows the login
// form; with one it shows the tabbed views.
type App struct {
	store  *store.Store
	auth   *auth.Manager
	opts   Options
	width  int
	height int

	session *auth.Session
	login   loginModel

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	dashboard dashboardModel
	reports   reportsModel
	settings  settingsModel

	help        help.Model
	status      string
	statusLevel statusLevel
}

func NewApp(s *store.Store, m *auth.Manager, opts Options) App {
	h := help.New()
	h.ShowAll = false

	prefs := loadPreferences(s)
	return App{
		store:      s,
		auth:       m,
		opts:       opts,
		login:      newLoginModel(m),
		activeView: viewDashboard,
		dashboard:  newDashboardModel(s, prefs),
		reports:    newReportsModel(s, prefs.weeklyTarget),
		settings:   newSettingsModel(s),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	return a.login.Init()
}

func (a *App) resize() {
	contentHeight := a.height - 4 // header + footer
	a.login.setSize(a.width, a.height)
	a.dashboard.setSize(a.width, contentHeight)
	a.reports.setSize(a.width, contentHeight)
	a.settings.setSize(a.width, contentHeight)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.resize()
		return a, nil

	case loginResultMsg:
		var cmd tea.Cmd
		a.login, cmd = a.login.update(msg)
		if msg.err != nil {
			return a, cmd
		}
		return a.signIn(msg.session)

	case statusMsg:
		a.status = msg.text
		a.statusLevel = msg.level
		return a, nil

	case exportDoneMsg:
		a.status = fmt.Sprintf("Exported %d timesheets to %s", msg.count, msg.path)
		a.statusLevel = statusOK
		a.exportPicking = false
		return a, nil

	case settingsSavedMsg:
		a.dashboard = a.dashboard.applyPreferences(msg.prefs)
		a.reports.target = msg.prefs.weeklyTarget
		a.status = "Settings saved"
		a.statusLevel = statusOK
		return a, nil

	case recordsMsg, editorSavedMsg, editorClosedMsg:
		var cmd tea.Cmd
		a.dashboard, cmd = a.dashboard.update(msg)
		return a, cmd

	case reportsDataMsg:
		var cmd tea.Cmd
		a.reports, cmd = a.reports.update(msg)
		return a, cmd

	case settingsDataMsg:
		var cmd tea.Cmd
		a.settings, cmd = a.settings.update(msg)
		return a, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.session == nil {
			var cmd tea.Cmd
			a.login, cmd = a.login.update(msg)
			return a, cmd
		}
		if _, err := a.auth.Get(a.session.Token); err != nil {
			text := "Signed out"
			if errors.Is(err, auth.ErrSessionExpired) {
				text = "Session expired. Please sign in again."
			}
			return a.signOut(text)
		}

		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Logout):
			a.auth.Logout(a.session.Token)
			return a.signOut("Signed out")
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewDashboard
			return a, nil
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewReports
			return a, a.reports.refresh()
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewSettings
			return a, a.settings.refresh()
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % viewState(len(viewNames))
			return a, a.refreshCurrentView()
		}
	}

	if a.session == nil {
		var cmd tea.Cmd
		a.login, cmd = a.login.update(msg)
		return a, cmd
	}
	return a.updateActiveView(msg)
}

func (a App) signIn(sess auth.Session) (tea.Model, tea.Cmd) {
	a.session = &sess
	prefs := loadPreferences(a.store)
	a.dashboard = newDashboardModel(a.store, prefs)
	a.reports = newReportsModel(a.store, prefs.weeklyTarget)
	a.settings = newSettingsModel(a.store)
	a.activeView = viewDashboard
	a.resize()
	a.status = "Signed in as " + sess.User.Name
	a.statusLevel = statusInfo
	return a, a.dashboard.Init()
}

func (a App) signOut(text string) (tea.Model, tea.Cmd) {
	if a.session != nil {
		log.Printf("app: user %d signed out", a.session.User.ID)
	}
	a.session = nil
	a.exportPicking = false
	a.login = newLoginModel(a.auth)
	a.resize()
	a.status = text
	a.statusLevel = statusInfo
	return a, a.login.Init()
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewDashboard:
		a.dashboard, cmd = a.dashboard.update(msg)
	case viewReports:
		a.reports, cmd = a.reports.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewDashboard:
		return a.dashboard.capturing()
	case viewSettings:
		return a.settings.formActive
	}
	return false
}

func (a App) refreshCurrentView() tea.Cmd {
	switch a.activeView {
	case viewReports:
		return a.reports.refresh()
	case viewSettings:
		return a.settings.refresh()
	}
	return nil
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}
	if a.session == nil {
		return a.renderLogin()
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewDashboard:
		content = a.dashboard.view()
	case viewReports:
		content = a.reports.view()
	case viewSettings:
		content = a.settings.view()
	}

	contentHeight := max(a.height-lipgloss.Height(header)-lipgloss.Height(footer), 1)

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderLogin() string {
	view := a.login.view()
	if a.status == "" {
		return view
	}
	return lipgloss.JoinVertical(lipgloss.Left, view, footerStyle.Render(a.status))
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("ticktock")

	user := ""
	if a.session != nil {
		u := a.session.User
		user = highlightStyle.Render(u.Name) + mutedStyle.Render(" ("+u.Role+")")
	}

	gap := max(a.width-lipgloss.Width(title)-lipgloss.Width(tabRow)-lipgloss.Width(user)-6, 1)
	spacer := strings.Repeat(" ", gap)

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, "  ", tabRow, spacer, user),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		style := mutedStyle
		switch a.statusLevel {
		case statusOK:
			style = successStyle
		case statusWarn:
			style = warningStyle
		case statusError:
			style = errorStyle
		}
		status = style.Render(" " + a.status)
	}

	left := footerStyle.Render(helpView)
	gap := max(a.width-lipgloss.Width(left)-lipgloss.Width(status)-2, 1)

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, strings.Repeat(" ", gap), status)
}

func (a App) renderExportPicker() string {
	rows := []string{titleStyle.Render("Export Format"), ""}
	for i, f := range export.Formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+strings.ToUpper(string(f))))
	}
	rows = append(rows, "", mutedStyle.Render("  enter: export  esc: cancel"))

	return activePanelStyle.Width(a.width - 4).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < len(export.Formats)-1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(export.Formats[a.exportCursor])
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

// doExport writes the dashboard's filtered, sorted records.
func (a App) doExport(f export.Format) tea.Cmd {
	records := a.dashboard.visible()
	path := export.DefaultPath(a.opts.ExportDir, f, time.Now())
	return func() tea.Msg {
		if err := export.ToFile(f, records, path); err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), level: statusError}
		}
		log.Printf("app: exported %d timesheets to %s", len(records), path)
		return exportDoneMsg{path: path, count: len(records)}
	}
}
