package tui

import (
	"strconv"

	"github.com/muesli/reflow/truncate"

	"github.com/sadopc/ticktock/internal/auth"
	"github.com/sadopc/ticktock/internal/timesheet"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewReports
	viewSettings
)

var viewNames = []string{"Timesheets", "Reports", "Settings"}

// --- Messages ---

type statusLevel int

const (
	statusInfo statusLevel = iota
	statusOK
	statusWarn
	statusError
)

type statusMsg struct {
	text  string
	level statusLevel
}

type loginResultMsg struct {
	session auth.Session
	err     error
}

type recordsMsg struct {
	records []timesheet.Record
	err     error
}

// editorSavedMsg carries a merged record out of the editor.
type editorSavedMsg struct {
	record  timesheet.Record
	dropped int
}

type editorClosedMsg struct{}

type settingsSavedMsg struct {
	prefs preferences
}

type exportDoneMsg struct {
	path  string
	count int
}

// preferences are the dashboard settings held in the store.
type preferences struct {
	pageSize      int
	weeklyTarget  float64
	sortColumn    timesheet.Column
	sortAscending bool
}

// --- Helpers ---

// formatHours prints 8 as "8" and 7.5 as "7.5".
func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

func sortArrow(ascending bool) string {
	if ascending {
		return "↑"
	}
	return "↓"
}

// clip shortens s to n cells, ending in an ellipsis. n <= 0 leaves s as is.
func clip(s string, n int) string {
	if n <= 0 {
		return s
	}
	return truncate.StringWithTail(s, uint(n), "…")
}
