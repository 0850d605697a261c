package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/ticktock/internal/timesheet"
)

// taskRef addresses one task by its day and id.
type taskRef struct {
	date string
	id   int64
}

// editorModel is the modal over the dashboard for one record's tasks.
type editorModel struct {
	session timesheet.Editor
	target  float64
	cursor  int
	width   int

	formActive bool
	form       *huh.Form
	editing    taskRef

	// Form values as pointers (survive value copies)
	description *string
	hours       *string
	project     *string

	bar progress.Model
}

func newEditorModel(target float64) editorModel {
	desc, hours, project := "", "", ""
	return editorModel{
		target:      target,
		description: &desc,
		hours:       &hours,
		project:     &project,
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(30),
			progress.WithoutPercentage(),
		),
	}
}

func (e editorModel) isOpen() bool { return e.session.IsOpen() }

func (e editorModel) open(r timesheet.Record) (editorModel, error) {
	if err := e.session.Open(r); err != nil {
		return e, err
	}
	e.cursor = 0
	e.formActive = false
	e.form = nil
	return e, nil
}

// refs lists every task in display order.
func (e editorModel) refs() []taskRef {
	var out []taskRef
	for _, d := range e.session.Days() {
		for _, t := range d.Tasks {
			out = append(out, taskRef{date: d.Date, id: t.ID})
		}
	}
	return out
}

func (e editorModel) selected() (taskRef, bool) {
	refs := e.refs()
	if e.cursor < 0 || e.cursor >= len(refs) {
		return taskRef{}, false
	}
	return refs[e.cursor], true
}

func (e editorModel) findTask(ref taskRef) (timesheet.Task, bool) {
	for _, d := range e.session.Days() {
		if d.Date != ref.date {
			continue
		}
		for _, t := range d.Tasks {
			if t.ID == ref.id {
				return t, true
			}
		}
	}
	return timesheet.Task{}, false
}

func (e *editorModel) clampCursor() {
	n := len(e.refs())
	if e.cursor >= n {
		e.cursor = n - 1
	}
	if e.cursor < 0 {
		e.cursor = 0
	}
}

func (e editorModel) update(msg tea.Msg) (editorModel, tea.Cmd) {
	if e.formActive && e.form != nil {
		return e.updateForm(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return e, nil
	}

	switch {
	case key.Matches(km, keys.Up):
		if e.cursor > 0 {
			e.cursor--
		}
	case key.Matches(km, keys.Down):
		if e.cursor < len(e.refs())-1 {
			e.cursor++
		}
	case key.Matches(km, keys.Add):
		return e.addTask()
	case key.Matches(km, keys.Enter):
		if ref, ok := e.selected(); ok {
			return e.showForm(ref)
		}
	case key.Matches(km, keys.Delete):
		if ref, ok := e.selected(); ok {
			e.session.DeleteTask(ref.date, ref.id)
			e.clampCursor()
		}
	case key.Matches(km, keys.Save):
		r, dropped, err := e.session.Save()
		if err != nil {
			return e, statusCmd(err.Error(), statusError)
		}
		return e, func() tea.Msg { return editorSavedMsg{record: r, dropped: dropped} }
	case key.Matches(km, keys.Back):
		e.session.Cancel()
		return e, func() tea.Msg { return editorClosedMsg{} }
	}
	return e, nil
}

// addTask appends to the selected task's day, or the first day.
func (e editorModel) addTask() (editorModel, tea.Cmd) {
	days := e.session.Days()
	if len(days) == 0 {
		return e, nil
	}
	date := days[0].Date
	if ref, ok := e.selected(); ok {
		date = ref.date
	}
	id, err := e.session.AddTask(date)
	if err != nil {
		return e, statusCmd(err.Error(), statusError)
	}
	for i, ref := range e.refs() {
		if ref.id == id && ref.date == date {
			e.cursor = i
		}
	}
	return e, nil
}

func (e editorModel) showForm(ref taskRef) (editorModel, tea.Cmd) {
	t, ok := e.findTask(ref)
	if !ok {
		return e, nil
	}
	*e.description = t.Description
	*e.hours = formatHours(t.Hours)
	*e.project = t.Project

	e.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Description").Value(e.description),
			huh.NewInput().Title("Hours").Value(e.hours),
			huh.NewInput().Title("Project").Value(e.project),
		).Title("Edit task"),
	).WithShowHelp(true).WithShowErrors(true)

	e.editing = ref
	e.formActive = true
	return e, e.form.Init()
}

func (e editorModel) updateForm(msg tea.Msg) (editorModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			e.formActive = false
			e.form = nil
			return e, nil
		}
	}

	form, cmd := e.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		e.form = f
	}

	if e.form.State == huh.StateCompleted {
		e.formActive = false
		e.form = nil
		e.applyForm()
		return e, nil
	}
	return e, cmd
}

func (e *editorModel) applyForm() {
	ref := e.editing
	e.session.EditTask(ref.date, ref.id, timesheet.FieldDescription, *e.description)
	e.session.EditTask(ref.date, ref.id, timesheet.FieldHours, *e.hours)
	e.session.EditTask(ref.date, ref.id, timesheet.FieldProject, *e.project)
}

func (e editorModel) view(w int) string {
	total := e.session.TotalHours()
	pct := timesheet.Progress(total, e.target)

	title := titleStyle.Render("This Week's Timesheet")
	hours := fmt.Sprintf("%s/%s hrs", formatHours(total), formatHours(e.target))
	meter := lipgloss.JoinVertical(lipgloss.Right, mutedStyle.Render(hours), e.bar.ViewAs(pct))

	gap := max(w-6-lipgloss.Width(title)-lipgloss.Width(meter), 1)
	header := lipgloss.JoinHorizontal(lipgloss.Top, title, strings.Repeat(" ", gap), meter)

	rows := []string{header, ""}
	idx := 0
	for _, d := range e.session.Days() {
		rows = append(rows, highlightStyle.Render(d.Date))
		if len(d.Tasks) == 0 {
			rows = append(rows, mutedStyle.Render("  No tasks. Press a to add one."))
		}
		for _, t := range d.Tasks {
			cursor := "  "
			style := normalItemStyle
			if idx == e.cursor && !e.formActive {
				cursor = "> "
				style = selectedItemStyle
			}
			line := fmt.Sprintf("%s%-32s %6s hrs | %s",
				cursor, clip(t.Description, 32), formatHours(t.Hours), t.Project)
			rows = append(rows, style.Render(line))
			idx++
		}
		rows = append(rows, "")
	}

	if e.formActive && e.form != nil {
		rows = append(rows, e.form.View())
	} else {
		rows = append(rows, mutedStyle.Render("  a: add  enter: edit  x: delete  ctrl+s: save  esc: cancel"))
	}

	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func statusCmd(text string, level statusLevel) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, level: level} }
}
