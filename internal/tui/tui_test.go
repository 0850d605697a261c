package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/ticktock/internal/auth"
	"github.com/sadopc/ticktock/internal/export"
	"github.com/sadopc/ticktock/internal/store"
	"github.com/sadopc/ticktock/internal/timesheet"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// newSignedInApp returns a sized App with John signed in and the
// dashboard loaded.
func newSignedInApp(t *testing.T) App {
	t.Helper()
	s := newTestStore(t)
	m := auth.NewManager(s)
	sess, err := m.Login("john@example.com", "password123", false)
	if err != nil {
		t.Fatal(err)
	}

	app := NewApp(s, m, Options{ExportDir: t.TempDir()})
	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	app = model.(App)

	model, cmd := app.Update(loginResultMsg{session: sess})
	app = model.(App)
	for _, msg := range runCmd(cmd) {
		model, _ = app.Update(msg)
		app = model.(App)
	}
	return app
}

func newLoadedDashboard(t *testing.T) dashboardModel {
	t.Helper()
	s := newTestStore(t)
	d := newDashboardModel(s, loadPreferences(s))
	d.setSize(120, 40)
	d, _ = d.update(recordsMsg{records: timesheet.Seed()})
	return d
}

// runCmd executes cmd and any batched commands, returning the messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func press(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func pageIDs(d dashboardModel) []int64 {
	var ids []int64
	for _, r := range d.page().Records {
		ids = append(ids, r.ID)
	}
	return ids
}

func sameIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ============================================================
// Helpers
// ============================================================

func TestFormatHours(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{12, "12"},
		{7.5, "7.5"},
	}
	for _, tt := range tests {
		if got := formatHours(tt.in); got != tt.want {
			t.Errorf("formatHours(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClip(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"Design Homepage", 6, "Desig…"},
		{"abc", 1, "…"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := clip(tt.in, tt.n); got != tt.want {
			t.Errorf("clip(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestSortArrow(t *testing.T) {
	if sortArrow(true) != "↑" || sortArrow(false) != "↓" {
		t.Fatal("unexpected sort arrows")
	}
}

func TestStatusColor(t *testing.T) {
	if statusColor(timesheet.StatusCompleted) != colorSuccess {
		t.Fatal("COMPLETED should be green")
	}
	if statusColor(timesheet.StatusIncomplete) != colorWarning {
		t.Fatal("INCOMPLETE should be yellow")
	}
	if statusColor(timesheet.StatusMissing) != colorError {
		t.Fatal("MISSING should be red")
	}
	if statusColor(timesheet.StatusApproved) != colorMuted || statusColor(timesheet.StatusPending) != colorMuted {
		t.Fatal("other statuses should be grey")
	}
}

func TestViewNames(t *testing.T) {
	if len(viewNames) != 3 {
		t.Fatalf("expected 3 view names, got %d", len(viewNames))
	}
	if viewState(len(viewNames)-1) != viewSettings {
		t.Fatal("view names out of step with view states")
	}
}

// ============================================================
// Login model
// ============================================================

func TestValidateEmailMessage(t *testing.T) {
	if err := validateEmail("nope"); err == nil || err.Error() != msgInvalidEmail {
		t.Fatalf("err = %v, want %q", err, msgInvalidEmail)
	}
	if err := validateEmail("john@example.com"); err != nil {
		t.Fatal(err)
	}
}

func TestLoginCommand(t *testing.T) {
	m := auth.NewManager(newTestStore(t))
	l := newLoginModel(m)
	*l.email = "jane@example.com"
	*l.password = "secret456"
	*l.remember = true

	msg, ok := l.login()().(loginResultMsg)
	if !ok {
		t.Fatal("expected loginResultMsg")
	}
	if msg.err != nil {
		t.Fatal(msg.err)
	}
	if msg.session.User.Name != "Jane Smith" || !msg.session.Remember {
		t.Fatalf("unexpected session: %+v", msg.session)
	}
}

func TestLoginFailureShowsGenericMessage(t *testing.T) {
	m := auth.NewManager(newTestStore(t))
	l := newLoginModel(m)
	*l.email = "john@example.com"
	*l.password = "wrong"
	l.pending = true

	l, _ = l.update(l.login()())
	if l.err != msgInvalidCredentials {
		t.Fatalf("err = %q, want %q", l.err, msgInvalidCredentials)
	}
	if *l.password != "" {
		t.Fatal("password should be cleared after a failed login")
	}
	if l.pending {
		t.Fatal("failed login should re-enable the form")
	}
	if *l.email != "john@example.com" {
		t.Fatal("email should be kept after a failed login")
	}
}

func TestLoginErrorMapping(t *testing.T) {
	if loginError(auth.ErrInvalidEmail) != msgInvalidEmail {
		t.Fatal("invalid email should map to the email message")
	}
	if loginError(auth.ErrInvalidCredentials) != msgInvalidCredentials {
		t.Fatal("credential failure should map to the generic message")
	}
}

func TestLoginView(t *testing.T) {
	l := newLoginModel(auth.NewManager(newTestStore(t)))
	l.setSize(100, 30)
	l.err = msgInvalidCredentials
	out := l.view()
	if !strings.Contains(out, "Welcome back") || !strings.Contains(out, msgInvalidCredentials) {
		t.Fatal("login view missing title or error")
	}
}

// ============================================================
// Dashboard model
// ============================================================

func TestDashboardInitialPage(t *testing.T) {
	d := newLoadedDashboard(t)
	if !sameIDs(pageIDs(d), []int64{1, 2, 3, 4, 5}) {
		t.Fatalf("unexpected first page: %v", pageIDs(d))
	}
	pg := d.page()
	if pg.Total != 1 || pg.Number != 1 || pg.Count != 5 {
		t.Fatalf("unexpected page info: %+v", pg)
	}
}

func TestDashboardLoadFromStore(t *testing.T) {
	s := newTestStore(t)
	d := newDashboardModel(s, loadPreferences(s))
	msgs := runCmd(d.Init())
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(msgs))
	}
	d, _ = d.update(msgs[0])
	if !d.loaded || len(d.records) != 5 {
		t.Fatalf("records not loaded: %d", len(d.records))
	}
}

func TestDashboardSortKeys(t *testing.T) {
	d := newLoadedDashboard(t)

	d, _ = d.update(press("w")) // week is active: flips to descending
	if !sameIDs(pageIDs(d), []int64{5, 4, 3, 2, 1}) {
		t.Fatalf("week desc = %v", pageIDs(d))
	}

	d, _ = d.update(press("s")) // new column starts ascending
	if d.query.Column != timesheet.ColumnStatus || !d.query.Ascending {
		t.Fatalf("unexpected query: %+v", d.query)
	}
	if !sameIDs(pageIDs(d), []int64{1, 2, 4, 3, 5}) {
		t.Fatalf("status asc = %v", pageIDs(d))
	}

	d, _ = d.update(press("d"))
	d, _ = d.update(press("d"))
	if !sameIDs(pageIDs(d), []int64{5, 4, 3, 2, 1}) {
		t.Fatalf("date desc = %v", pageIDs(d))
	}
}

func TestDashboardPaging(t *testing.T) {
	d := newLoadedDashboard(t)
	d.query.PageSize = 2

	d, _ = d.update(press("left"))
	if d.query.Page != 1 {
		t.Fatal("prev on the first page should stay put")
	}
	for range 5 {
		d, _ = d.update(press("right"))
	}
	if d.query.Page != 3 {
		t.Fatalf("page = %d, want clamp at 3", d.query.Page)
	}
	if !sameIDs(pageIDs(d), []int64{5}) {
		t.Fatalf("last page = %v", pageIDs(d))
	}
}

func TestDashboardFilterAndClear(t *testing.T) {
	d := newLoadedDashboard(t)
	d.query.Status = timesheet.StatusCompleted
	d.query.DateRange = "2024-01-01 - 2024-01-20"
	if !sameIDs(pageIDs(d), []int64{1, 2}) {
		t.Fatalf("filtered = %v", pageIDs(d))
	}

	d, _ = d.update(press("c"))
	if d.query.Status != "" || d.query.DateRange != "" {
		t.Fatal("clear should reset both filters")
	}
	if len(pageIDs(d)) != 5 {
		t.Fatal("clear should show every record")
	}
}

func TestDashboardFilterFormOpens(t *testing.T) {
	d := newLoadedDashboard(t)
	d, _ = d.update(press("f"))
	if !d.filterActive || d.filterForm == nil {
		t.Fatal("f should open the filter form")
	}
	if !d.capturing() {
		t.Fatal("filter form should capture input")
	}
	d, _ = d.update(press("esc"))
	if d.filterActive {
		t.Fatal("esc should close the filter form")
	}
}

func TestDashboardCursor(t *testing.T) {
	d := newLoadedDashboard(t)
	d, _ = d.update(press("up"))
	if d.cursor != 0 {
		t.Fatal("cursor should not go above the first row")
	}
	for range 10 {
		d, _ = d.update(press("down"))
	}
	if d.cursor != 4 {
		t.Fatalf("cursor = %d, want 4", d.cursor)
	}
}

func TestDashboardView(t *testing.T) {
	d := newLoadedDashboard(t)
	out := d.view()
	for _, want := range []string{"Your Timesheets", "Week # ↑", "Page 1 of 1", "29 January - 1 February, 2024", "MISSING"} {
		if !strings.Contains(out, want) {
			t.Fatalf("dashboard view missing %q", want)
		}
	}
}

func TestDashboardViewEmptyFilter(t *testing.T) {
	d := newLoadedDashboard(t)
	d.query.Status = timesheet.StatusApproved
	if !strings.Contains(d.view(), "No timesheets match") {
		t.Fatal("empty result should say so")
	}
}

func TestApplyPreferences(t *testing.T) {
	d := newLoadedDashboard(t)
	d.query.Status = timesheet.StatusCompleted
	d = d.applyPreferences(preferences{pageSize: 2, weeklyTarget: 30, sortColumn: timesheet.ColumnDate, sortAscending: false})
	if d.query.PageSize != 2 || d.query.Column != timesheet.ColumnDate || d.query.Ascending {
		t.Fatalf("preferences not applied: %+v", d.query)
	}
	if d.query.Status != timesheet.StatusCompleted {
		t.Fatal("preferences should not clear filters")
	}
	if d.editor.target != 30 {
		t.Fatal("weekly target not passed to the editor")
	}
}

// ============================================================
// Editor
// ============================================================

func TestEditorOpenFromDashboard(t *testing.T) {
	d := newLoadedDashboard(t)
	d, _ = d.update(press("down"))
	d, _ = d.update(press("enter"))
	if !d.editor.isOpen() {
		t.Fatal("enter should open the editor")
	}
	if d.editor.session.Record().ID != 2 {
		t.Fatalf("editor opened record %d, want 2", d.editor.session.Record().ID)
	}
	out := d.view()
	if !strings.Contains(out, "This Week's Timesheet") || !strings.Contains(out, "15/40 hrs") {
		t.Fatal("editor view missing title or progress")
	}
}

func TestEditorEditAndSave(t *testing.T) {
	d := newLoadedDashboard(t)
	d, _ = d.update(press("enter"))

	e, _ := d.editor.showForm(taskRef{date: "1 - 5 January, 2024", id: 1})
	*e.description = "Homepage v2"
	*e.hours = "9.5"
	*e.project = "Site"
	e.applyForm()
	e.formActive, e.form = false, nil
	d.editor = e

	d, cmd := d.update(press("ctrl+s"))
	if d.editor.isOpen() {
		t.Fatal("save should close the editor")
	}
	msgs := runCmd(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected editorSavedMsg, got %v", msgs)
	}
	saved, ok := msgs[0].(editorSavedMsg)
	if !ok || saved.dropped != 0 {
		t.Fatalf("unexpected message %#v", msgs[0])
	}

	d, cmd = d.update(saved)
	r := d.records[0]
	if r.Description != "Homepage v2" || r.Hours != 9.5 || r.Project != "Site" {
		t.Fatalf("record not replaced in memory: %+v", r)
	}

	runCmd(cmd) // status + store write
	stored, _ := d.store.GetTimesheet(1)
	if stored.Description != "Homepage v2" || stored.Hours != 9.5 {
		t.Fatalf("record not written to store: %+v", stored)
	}
}

func TestEditorSaveWarnsOnDroppedTasks(t *testing.T) {
	d := newLoadedDashboard(t)
	d, _ = d.update(press("enter"))
	d, _ = d.update(press("a"))
	if len(d.editor.refs()) != 2 {
		t.Fatalf("expected 2 tasks after add, got %d", len(d.editor.refs()))
	}
	if d.editor.cursor != 1 {
		t.Fatal("cursor should move to the new task")
	}

	_, cmd := d.update(press("ctrl+s"))
	saved := runCmd(cmd)[0].(editorSavedMsg)
	if saved.dropped != 1 {
		t.Fatalf("dropped = %d, want 1", saved.dropped)
	}

	_, cmd = d.update(saved)
	var warned bool
	for _, msg := range runCmd(cmd) {
		if st, ok := msg.(statusMsg); ok && st.level == statusWarn && strings.Contains(st.text, "1 extra task") {
			warned = true
		}
	}
	if !warned {
		t.Fatal("expected a warning about the dropped task")
	}
}

func TestEditorDeleteThenSaveKeepsRecord(t *testing.T) {
	d := newLoadedDashboard(t)
	d, _ = d.update(press("enter"))
	d, _ = d.update(press("x"))
	if len(d.editor.refs()) != 0 {
		t.Fatal("delete should remove the only task")
	}
	if !strings.Contains(d.view(), "No tasks") {
		t.Fatal("empty day should show a hint")
	}

	d, cmd := d.update(press("ctrl+s"))
	d, _ = d.update(runCmd(cmd)[0])
	if d.records[0] != timesheet.Seed()[0] {
		t.Fatalf("saving an empty day should leave the record unchanged: %+v", d.records[0])
	}
}

func TestEditorCancel(t *testing.T) {
	d := newLoadedDashboard(t)
	d, _ = d.update(press("enter"))
	d, _ = d.update(press("a"))
	d, cmd := d.update(press("esc"))
	if d.editor.isOpen() {
		t.Fatal("esc should close the editor")
	}
	msgs := runCmd(cmd)
	if _, ok := msgs[0].(editorClosedMsg); !ok {
		t.Fatalf("expected editorClosedMsg, got %#v", msgs[0])
	}
	if d.records[0] != timesheet.Seed()[0] {
		t.Fatal("cancel must not touch the collection")
	}
}

func TestEditorFormEscKeepsTask(t *testing.T) {
	d := newLoadedDashboard(t)
	d, _ = d.update(press("enter"))
	d, _ = d.update(press("enter"))
	if !d.editor.formActive {
		t.Fatal("enter in the editor should open the task form")
	}
	d, _ = d.update(press("esc"))
	if d.editor.formActive || !d.editor.isOpen() {
		t.Fatal("esc should close only the task form")
	}
}

func TestEditorHoursCoerced(t *testing.T) {
	e := newEditorModel(timesheet.WeeklyTarget)
	e, _ = e.open(timesheet.Seed()[0])
	e, _ = e.showForm(taskRef{date: "1 - 5 January, 2024", id: 1})
	*e.hours = "-3"
	e.applyForm()
	if e.session.TotalHours() != 0 {
		t.Fatalf("negative hours should coerce to 0, total = %v", e.session.TotalHours())
	}
}

// ============================================================
// Reports and settings
// ============================================================

func TestReportsRefresh(t *testing.T) {
	s := newTestStore(t)
	r := newReportsModel(s, timesheet.WeeklyTarget)
	r.setSize(120, 40)
	r, _ = r.update(runCmd(r.refresh())[0])
	if len(r.summaries) != 5 {
		t.Fatalf("expected 5 weekly rows, got %d", len(r.summaries))
	}
	if r.totalHours() != 51 {
		t.Fatalf("total = %v, want 51", r.totalHours())
	}
	if !strings.Contains(r.view(), "51 hrs logged") {
		t.Fatal("reports view missing total")
	}
}

func TestLoadPreferences(t *testing.T) {
	s := newTestStore(t)
	p := loadPreferences(s)
	if p.pageSize != 5 || p.weeklyTarget != 40 || p.sortColumn != timesheet.ColumnWeek || !p.sortAscending {
		t.Fatalf("unexpected defaults: %+v", p)
	}

	s.SetSetting(settingPageSize, "0")
	s.SetSetting(settingSortColumn, "project")
	p = loadPreferences(s)
	if p.pageSize != timesheet.DefaultPageSize || p.sortColumn != timesheet.ColumnWeek {
		t.Fatalf("bad values should fall back: %+v", p)
	}
}

func TestSaveSettings(t *testing.T) {
	s := newTestStore(t)
	m := newSettingsModel(s)
	*m.pageSize = " 3 "
	*m.weeklyTarget = "37.5"
	*m.sortColumn = "status"
	*m.sortAscending = false
	if err := m.saveSettings(); err != nil {
		t.Fatal(err)
	}
	p := loadPreferences(s)
	if p.pageSize != 3 || p.weeklyTarget != 37.5 || p.sortColumn != timesheet.ColumnStatus || p.sortAscending {
		t.Fatalf("settings not saved: %+v", p)
	}
}

func TestSettingsValidators(t *testing.T) {
	if positiveInt("0") == nil || positiveInt("x") == nil || positiveInt("4") != nil {
		t.Fatal("positiveInt misbehaves")
	}
	if positiveFloat("0") == nil || positiveFloat("-1") == nil || positiveFloat("7.5") != nil {
		t.Fatal("positiveFloat misbehaves")
	}
}

func TestFormatSettingValue(t *testing.T) {
	tests := []struct {
		key, value, want string
	}{
		{settingWeeklyTarget, "40", "40 hours"},
		{settingPageSize, "5", "5 rows"},
		{settingSortAscending, "false", "descending"},
		{settingSortColumn, "week", "week"},
		{settingPageSize, "lots", "lots"},
	}
	for _, tt := range tests {
		if got := formatSettingValue(tt.key, tt.value); got != tt.want {
			t.Errorf("formatSettingValue(%q, %q) = %q, want %q", tt.key, tt.value, got, tt.want)
		}
	}
}

// ============================================================
// App model
// ============================================================

func TestNewAppStartsAtLogin(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s, auth.NewManager(s), Options{})
	if app.session != nil {
		t.Fatal("no session expected before login")
	}
	if app.View() != "Loading..." {
		t.Fatal("unsized app should show the loading text")
	}
	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	app = model.(App)
	if !strings.Contains(app.View(), "Welcome back") {
		t.Fatal("signed-out app should render the login form")
	}
}

func TestAppSignIn(t *testing.T) {
	app := newSignedInApp(t)
	if app.session == nil || app.session.User.Name != "John Doe" {
		t.Fatal("session not set after login")
	}
	if app.activeView != viewDashboard || len(app.dashboard.records) != 5 {
		t.Fatal("login should land on a loaded dashboard")
	}
	header := app.renderHeader()
	for _, want := range append([]string{"ticktock", "John Doe", "admin"}, viewNames...) {
		if !strings.Contains(header, want) {
			t.Fatalf("header missing %q", want)
		}
	}
}

func TestAppFailedLoginStaysOnLogin(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s, auth.NewManager(s), Options{})
	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	app = model.(App)
	model, _ = app.Update(loginResultMsg{err: auth.ErrInvalidCredentials})
	app = model.(App)
	if app.session != nil {
		t.Fatal("failed login must not open a session")
	}
	if !strings.Contains(app.View(), msgInvalidCredentials) {
		t.Fatal("login view should show the failure")
	}
}

func TestAppLogout(t *testing.T) {
	app := newSignedInApp(t)
	token := app.session.Token

	model, _ := app.Update(press("L"))
	app = model.(App)
	if app.session != nil {
		t.Fatal("logout should clear the session")
	}
	if _, err := app.auth.Get(token); err == nil {
		t.Fatal("logout should drop the session from the manager")
	}
}

func TestAppRevokedSessionSignsOut(t *testing.T) {
	app := newSignedInApp(t)
	app.auth.Logout(app.session.Token)

	model, _ := app.Update(press("w"))
	app = model.(App)
	if app.session != nil {
		t.Fatal("a key press with a dead session should return to login")
	}
	if app.status != "Signed out" {
		t.Fatalf("status = %q", app.status)
	}
}

func TestAppTabs(t *testing.T) {
	app := newSignedInApp(t)
	model, cmd := app.Update(press("2"))
	app = model.(App)
	if app.activeView != viewReports {
		t.Fatal("2 should switch to reports")
	}
	for _, msg := range runCmd(cmd) {
		model, _ = app.Update(msg)
		app = model.(App)
	}
	if len(app.reports.summaries) != 5 {
		t.Fatal("reports should load on switch")
	}

	model, _ = app.Update(press("tab"))
	app = model.(App)
	if app.activeView != viewSettings {
		t.Fatal("tab should move to settings")
	}
	for _, v := range []viewState{viewDashboard, viewReports, viewSettings} {
		app.activeView = v
		if app.View() == "" {
			t.Fatalf("view %d rendered empty", v)
		}
	}
}

func TestAppEditorCapturesQuit(t *testing.T) {
	app := newSignedInApp(t)
	model, _ := app.Update(press("enter"))
	app = model.(App)
	if !app.isFormActive() {
		t.Fatal("open editor should capture input")
	}
	_, cmd := app.Update(press("q"))
	for _, msg := range runCmd(cmd) {
		if _, ok := msg.(tea.QuitMsg); ok {
			t.Fatal("q inside the editor must not quit")
		}
	}
}

func TestAppSettingsSavedApplies(t *testing.T) {
	app := newSignedInApp(t)
	model, _ := app.Update(settingsSavedMsg{prefs: preferences{
		pageSize: 2, weeklyTarget: 20, sortColumn: timesheet.ColumnWeek, sortAscending: true,
	}})
	app = model.(App)
	if app.dashboard.page().Total != 3 {
		t.Fatalf("page size not applied, total = %d", app.dashboard.page().Total)
	}
	if app.reports.target != 20 || app.status != "Settings saved" {
		t.Fatal("settings not propagated")
	}
}

func TestAppExport(t *testing.T) {
	app := newSignedInApp(t)
	model, _ := app.Update(press("e"))
	app = model.(App)
	if !app.exportPicking {
		t.Fatal("e should open the export picker")
	}
	if !strings.Contains(app.View(), "YAML") {
		t.Fatal("picker should list YAML")
	}

	model, _ = app.Update(press("down"))
	app = model.(App)
	model, cmd := app.Update(press("enter"))
	app = model.(App)
	if app.exportPicking {
		t.Fatal("enter should close the picker")
	}

	msgs := runCmd(cmd)
	done, ok := msgs[0].(exportDoneMsg)
	if !ok {
		t.Fatalf("expected exportDoneMsg, got %#v", msgs[0])
	}
	if done.count != 5 || !strings.HasSuffix(done.path, "."+string(export.FormatJSON)) {
		t.Fatalf("unexpected export: %+v", done)
	}
	if _, err := os.Stat(done.path); err != nil {
		t.Fatal(err)
	}
}

func TestAppStatusMessage(t *testing.T) {
	app := newSignedInApp(t)
	model, _ := app.Update(statusMsg{text: "test status"})
	app = model.(App)
	if !strings.Contains(app.renderFooter(), "test status") {
		t.Fatal("footer should contain status message")
	}
}

// ============================================================
// Key bindings and styles
// ============================================================

func TestKeyMapHelp(t *testing.T) {
	if len(keys.ShortHelp()) == 0 {
		t.Fatal("short help should have bindings")
	}
	for i, g := range keys.FullHelp() {
		if len(g) == 0 {
			t.Fatalf("full help group %d is empty", i)
		}
	}
}

func TestBadgeRender(t *testing.T) {
	for _, s := range timesheet.Statuses() {
		if !strings.Contains(badge(s), s.String()) {
			t.Fatalf("badge for %s missing label", s)
		}
	}
}
