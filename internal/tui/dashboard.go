package tui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/ticktock/internal/store"
	"github.com/sadopc/ticktock/internal/timesheet"
)

const allStatuses = ""

type dashboardModel struct {
	store  *store.Store
	width  int
	height int

	records []timesheet.Record
	query   timesheet.Query
	cursor  int
	loaded  bool

	editor editorModel

	filterActive bool
	filterForm   *huh.Form

	// Form values as pointers (survive value copies)
	filterStatus *string
	filterRange  *string
}

func newDashboardModel(s *store.Store, p preferences) dashboardModel {
	status, dateRange := allStatuses, ""
	q := timesheet.NewQuery(p.pageSize)
	q.Column = p.sortColumn
	q.Ascending = p.sortAscending
	return dashboardModel{
		store:        s,
		query:        q,
		editor:       newEditorModel(p.weeklyTarget),
		filterStatus: &status,
		filterRange:  &dateRange,
	}
}

func (d dashboardModel) Init() tea.Cmd {
	return d.loadData()
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

func (d dashboardModel) loadData() tea.Cmd {
	return func() tea.Msg {
		records, err := d.store.ListTimesheets()
		return recordsMsg{records: records, err: err}
	}
}

// applyPreferences swaps in new settings without losing filters.
func (d dashboardModel) applyPreferences(p preferences) dashboardModel {
	d.query.PageSize = p.pageSize
	d.query.Column = p.sortColumn
	d.query.Ascending = p.sortAscending
	d.query.Page = 1
	d.cursor = 0
	d.editor.target = p.weeklyTarget
	return d
}

// capturing reports whether a modal owns the keyboard.
func (d dashboardModel) capturing() bool {
	return d.filterActive || d.editor.isOpen()
}

func (d dashboardModel) page() timesheet.Page {
	return d.query.Apply(d.records)
}

// visible is the filtered, sorted collection across all pages.
func (d dashboardModel) visible() []timesheet.Record {
	filtered := timesheet.Filter(d.records, d.query.Status, d.query.DateRange)
	return timesheet.Sort(filtered, d.query.Column, d.query.Ascending)
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case recordsMsg:
		if msg.err != nil {
			return d, statusCmd(fmt.Sprintf("Load error: %v", msg.err), statusError)
		}
		d.records = msg.records
		d.loaded = true
		d.clamp()
		return d, nil

	case editorSavedMsg:
		return d.save(msg)

	case editorClosedMsg:
		return d, statusCmd("Changes discarded", statusInfo)
	}

	if d.editor.isOpen() {
		var cmd tea.Cmd
		d.editor, cmd = d.editor.update(msg)
		return d, cmd
	}
	if d.filterActive && d.filterForm != nil {
		return d.updateFilter(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch {
	case key.Matches(km, keys.SortWeek):
		d.query = d.query.ToggleSort(timesheet.ColumnWeek)
	case key.Matches(km, keys.SortDate):
		d.query = d.query.ToggleSort(timesheet.ColumnDate)
	case key.Matches(km, keys.SortStatus):
		d.query = d.query.ToggleSort(timesheet.ColumnStatus)
	case key.Matches(km, keys.PrevPage):
		d.query = d.query.Prev()
		d.cursor = 0
	case key.Matches(km, keys.NextPage):
		d.query = d.query.Next(d.page().Total)
		d.cursor = 0
	case key.Matches(km, keys.Up):
		if d.cursor > 0 {
			d.cursor--
		}
	case key.Matches(km, keys.Down):
		if d.cursor < len(d.page().Records)-1 {
			d.cursor++
		}
	case key.Matches(km, keys.Filter):
		return d.showFilter()
	case key.Matches(km, keys.ClearFilter):
		d.query.Status = ""
		d.query.DateRange = ""
		d.query.Page = 1
		d.cursor = 0
	case key.Matches(km, keys.Enter):
		return d.openEditor()
	}
	return d, nil
}

func (d *dashboardModel) clamp() {
	d.query = d.query.ClampPage(d.page().Total)
	n := len(d.page().Records)
	if d.cursor >= n {
		d.cursor = max(0, n-1)
	}
}

func (d dashboardModel) openEditor() (dashboardModel, tea.Cmd) {
	rows := d.page().Records
	if d.cursor >= len(rows) {
		return d, nil
	}
	var err error
	d.editor, err = d.editor.open(rows[d.cursor])
	if err != nil {
		return d, statusCmd(err.Error(), statusError)
	}
	return d, nil
}

// save replaces the record in memory first, then writes it to the store
// in the background.
func (d dashboardModel) save(msg editorSavedMsg) (dashboardModel, tea.Cmd) {
	r := msg.record
	d.records = timesheet.Replace(d.records, r.ID, r.Fields())
	d.clamp()

	status := statusCmd(fmt.Sprintf("Saved week %d", r.Week), statusOK)
	if msg.dropped > 0 {
		status = statusCmd(fmt.Sprintf("Saved week %d; %d extra task(s) not kept, a record holds one task", r.Week, msg.dropped), statusWarn)
	}
	return d, tea.Batch(status, d.persist(r))
}

func (d dashboardModel) persist(r timesheet.Record) tea.Cmd {
	return func() tea.Msg {
		ok, err := d.store.UpdateTimesheet(r.ID, r.Fields())
		if err != nil {
			log.Printf("dashboard: persist timesheet %d: %v", r.ID, err)
			return statusMsg{text: fmt.Sprintf("Save error: %v", err), level: statusError}
		}
		if !ok {
			log.Printf("dashboard: timesheet %d no longer in store", r.ID)
		}
		return nil
	}
}

func (d dashboardModel) showFilter() (dashboardModel, tea.Cmd) {
	*d.filterStatus = string(d.query.Status)
	*d.filterRange = d.query.DateRange

	opts := []huh.Option[string]{huh.NewOption("All", allStatuses)}
	for _, s := range timesheet.Statuses() {
		opts = append(opts, huh.NewOption(s.String(), s.String()))
	}

	d.filterForm = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Status").Options(opts...).Value(d.filterStatus),
			huh.NewInput().Title("Date range").
				Placeholder("YYYY-MM-DD - YYYY-MM-DD").
				Value(d.filterRange),
		).Title("Filter"),
	).WithShowHelp(true).WithShowErrors(true)

	d.filterActive = true
	return d, d.filterForm.Init()
}

func (d dashboardModel) updateFilter(msg tea.Msg) (dashboardModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			d.filterActive = false
			d.filterForm = nil
			return d, nil
		}
	}

	form, cmd := d.filterForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		d.filterForm = f
	}

	if d.filterForm.State == huh.StateCompleted {
		d.filterActive = false
		d.filterForm = nil
		d.query.Status = timesheet.Status(*d.filterStatus)
		d.query.DateRange = strings.TrimSpace(*d.filterRange)
		d.query.Page = 1
		d.cursor = 0
		return d, nil
	}
	return d, cmd
}

func (d dashboardModel) view() string {
	if d.width < 20 {
		return "Terminal too small"
	}
	w := d.width - 4

	if d.editor.isOpen() {
		return d.editor.view(w)
	}

	rows := []string{titleStyle.Render("Your Timesheets"), d.renderFilters(), ""}
	rows = append(rows, d.renderTable(w)...)
	rows = append(rows, "", d.renderPager(w))

	if d.filterActive && d.filterForm != nil {
		rows = append(rows, "", d.filterForm.View())
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (d dashboardModel) renderFilters() string {
	status := "All"
	if d.query.Status != "" {
		status = d.query.Status.String()
	}
	dateRange := "any"
	if d.query.DateRange != "" {
		dateRange = d.query.DateRange
	}
	return mutedStyle.Render(fmt.Sprintf("Status: %s   Date range: %s", status, dateRange))
}

func (d dashboardModel) columnTitle(col timesheet.Column, label string, width int) string {
	if d.query.Column == col {
		return activeColumnStyle.Width(width).Render(label + " " + sortArrow(d.query.Ascending))
	}
	return columnHeaderStyle.Width(width).Render(label)
}

func (d dashboardModel) renderTable(w int) []string {
	const weekW, statusW, actionW = 9, 14, 8
	dateW := max(w-6-weekW-statusW-actionW-2, 12)

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		"  ",
		d.columnTitle(timesheet.ColumnWeek, "Week #", weekW),
		d.columnTitle(timesheet.ColumnDate, "Date", dateW),
		d.columnTitle(timesheet.ColumnStatus, "Status", statusW),
		columnHeaderStyle.Width(actionW).Render("Actions"),
	)
	rows := []string{header, mutedStyle.Render(strings.Repeat("─", min(w-6, weekW+dateW+statusW+actionW+2)))}

	if !d.loaded {
		return append(rows, mutedStyle.Render("  Loading timesheets..."))
	}
	pg := d.page()
	if len(pg.Records) == 0 {
		return append(rows, mutedStyle.Render("  No timesheets match the current filters"))
	}

	for i, r := range pg.Records {
		cursor := "  "
		style := normalItemStyle
		if i == d.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			style.Render(cursor),
			style.Width(weekW).Render(fmt.Sprintf("%d", r.Week)),
			style.Width(dateW).Render(clip(r.DateRange, dateW-1)),
			lipgloss.NewStyle().Width(statusW).Render(badge(r.Status)),
			highlightStyle.Width(actionW).Render(r.Action.String()),
		))
	}
	return rows
}

func (d dashboardModel) renderPager(w int) string {
	pg := d.page()
	total := max(pg.Total, 1)

	info := mutedStyle.Render(fmt.Sprintf("Page %d of %d  (%d timesheets)", pg.Number, total, pg.Count))

	prev := pageStyle.Render("Prev")
	if pg.Number <= 1 {
		prev = disabledStyle.Render("Prev")
	}
	next := pageStyle.Render("Next")
	if pg.Number >= total {
		next = disabledStyle.Render("Next")
	}
	buttons := []string{prev}
	for n := 1; n <= total; n++ {
		if n == pg.Number {
			buttons = append(buttons, currentPageStyle.Render(fmt.Sprint(n)))
		} else {
			buttons = append(buttons, pageStyle.Render(fmt.Sprint(n)))
		}
	}
	buttons = append(buttons, next)
	nav := lipgloss.JoinHorizontal(lipgloss.Top, buttons...)

	gap := max(w-6-lipgloss.Width(info)-lipgloss.Width(nav), 1)
	return lipgloss.JoinHorizontal(lipgloss.Top, info, strings.Repeat(" ", gap), nav)
}
