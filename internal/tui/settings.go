package tui

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/ticktock/internal/store"
	"github.com/sadopc/ticktock/internal/timesheet"
)

const (
	settingPageSize      = "page_size"
	settingWeeklyTarget  = "weekly_target"
	settingSortColumn    = "sort_column"
	settingSortAscending = "sort_ascending"
)

// loadPreferences reads the dashboard settings, falling back to defaults.
func loadPreferences(s *store.Store) preferences {
	col, ok := timesheet.ParseColumn(s.StringSetting(settingSortColumn, string(timesheet.ColumnWeek)))
	if !ok {
		col = timesheet.ColumnWeek
	}
	p := preferences{
		pageSize:      s.IntSetting(settingPageSize, timesheet.DefaultPageSize),
		weeklyTarget:  s.FloatSetting(settingWeeklyTarget, timesheet.WeeklyTarget),
		sortColumn:    col,
		sortAscending: s.BoolSetting(settingSortAscending, true),
	}
	if p.pageSize < 1 {
		p.pageSize = timesheet.DefaultPageSize
	}
	if p.weeklyTarget <= 0 {
		p.weeklyTarget = timesheet.WeeklyTarget
	}
	return p
}

type settingsModel struct {
	store  *store.Store
	width  int
	height int

	settings   []store.Setting
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	pageSize      *string
	weeklyTarget  *string
	sortColumn    *string
	sortAscending *bool
}

func newSettingsModel(s *store.Store) settingsModel {
	ps, wt, sc, asc := "", "", "", true
	return settingsModel{
		store:         s,
		pageSize:      &ps,
		weeklyTarget:  &wt,
		sortColumn:    &sc,
		sortAscending: &asc,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	settings []store.Setting
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		settings, _ := s.store.GetAllSettings()
		return settingsDataMsg{settings: settings}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.settings = msg.settings
		return s, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Enter) {
			return s.showForm()
		}
	}
	return s, nil
}

func positiveInt(v string) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 1 {
		return errors.New("enter a whole number of at least 1")
	}
	return nil
}

func positiveFloat(v string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || f <= 0 {
		return errors.New("enter a positive number of hours")
	}
	return nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	p := loadPreferences(s.store)
	*s.pageSize = strconv.Itoa(p.pageSize)
	*s.weeklyTarget = formatHours(p.weeklyTarget)
	*s.sortColumn = string(p.sortColumn)
	*s.sortAscending = p.sortAscending

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Rows per page").Value(s.pageSize).Validate(positiveInt),
			huh.NewSelect[string]().Title("Default sort column").
				Options(
					huh.NewOption("Week #", string(timesheet.ColumnWeek)),
					huh.NewOption("Date", string(timesheet.ColumnDate)),
					huh.NewOption("Status", string(timesheet.ColumnStatus)),
				).Value(s.sortColumn),
			huh.NewConfirm().Title("Sort ascending").Value(s.sortAscending),
		).Title("Dashboard"),
		huh.NewGroup(
			huh.NewInput().Title("Weekly target (hours)").Value(s.weeklyTarget).Validate(positiveFloat),
		).Title("Editor"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		if err := s.saveSettings(); err != nil {
			return s, statusCmd(fmt.Sprintf("Settings error: %v", err), statusError)
		}
		prefs := loadPreferences(s.store)
		return s, tea.Batch(
			s.refresh(),
			func() tea.Msg { return settingsSavedMsg{prefs: prefs} },
		)
	}

	return s, cmd
}

func (s settingsModel) saveSettings() error {
	values := map[string]string{
		settingPageSize:      strings.TrimSpace(*s.pageSize),
		settingWeeklyTarget:  strings.TrimSpace(*s.weeklyTarget),
		settingSortColumn:    *s.sortColumn,
		settingSortAscending: strconv.FormatBool(*s.sortAscending),
	}
	for k, v := range values {
		if err := s.store.SetSetting(k, v); err != nil {
			return err
		}
	}
	log.Printf("settings: saved %v", values)
	return nil
}

func (s settingsModel) view() string {
	w := s.width - 4
	title := titleStyle.Render("Settings")

	if s.formActive && s.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
		)
	}

	rows := []string{title, ""}
	for _, setting := range s.settings {
		label := lipgloss.NewStyle().Width(24).Render(setting.Key)
		value := highlightStyle.Render(formatSettingValue(setting.Key, setting.Value))
		rows = append(rows, fmt.Sprintf("  %s %s", label, value))
	}
	rows = append(rows, "", mutedStyle.Render("Press enter to edit settings"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func formatSettingValue(k, v string) string {
	switch k {
	case settingWeeklyTarget:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return formatHours(f) + " hours"
		}
	case settingPageSize:
		if n, err := strconv.Atoi(v); err == nil {
			return fmt.Sprintf("%d rows", n)
		}
	case settingSortAscending:
		if b, err := strconv.ParseBool(v); err == nil {
			if b {
				return "ascending"
			}
			return "descending"
		}
	}
	return v
}
