package timesheet

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// WeeklyTarget is the default number of hours the progress bar measures
// against.
const WeeklyTarget = 40

const (
	defaultTaskDescription = "New Task"
	defaultTaskProject     = "Project Name"
)

// TaskField names an editable task attribute.
type TaskField string

const (
	FieldDescription TaskField = "description"
	FieldHours       TaskField = "hours"
	FieldProject     TaskField = "project"
)

// Project turns a record into the editor's one-day, one-task shape.
func Project(r Record) []DayEntry {
	return []DayEntry{{
		Date: r.DateRange,
		Tasks: []Task{{
			ID:          r.ID,
			Description: r.Description,
			Hours:       r.Hours,
			Project:     r.Project,
		}},
	}}
}

// AddTask appends a default task with a fresh id to the day matching date.
func AddTask(days []DayEntry, date string, ids IDGenerator) []DayEntry {
	return mapDays(days, date, func(d DayEntry) (DayEntry, bool) {
		d.Tasks = append(slices.Clone(d.Tasks), Task{
			ID:          ids.Next(),
			Description: defaultTaskDescription,
			Hours:       0,
			Project:     defaultTaskProject,
		})
		return d, true
	})
}

// EditTask sets one field of the task identified by (date, taskID). Hours
// are coerced with CoerceHours. Unknown fields and misses leave days as is.
func EditTask(days []DayEntry, date string, taskID int64, field TaskField, value string) []DayEntry {
	switch field {
	case FieldDescription, FieldHours, FieldProject:
	default:
		return days
	}
	return mapDays(days, date, func(d DayEntry) (DayEntry, bool) {
		i := slices.IndexFunc(d.Tasks, func(t Task) bool { return t.ID == taskID })
		if i < 0 {
			return d, false
		}
		d.Tasks = slices.Clone(d.Tasks)
		switch field {
		case FieldDescription:
			d.Tasks[i].Description = value
		case FieldHours:
			d.Tasks[i].Hours = CoerceHours(value)
		case FieldProject:
			d.Tasks[i].Project = value
		}
		return d, true
	})
}

// DeleteTask removes the task identified by (date, taskID).
func DeleteTask(days []DayEntry, date string, taskID int64) []DayEntry {
	return mapDays(days, date, func(d DayEntry) (DayEntry, bool) {
		i := slices.IndexFunc(d.Tasks, func(t Task) bool { return t.ID == taskID })
		if i < 0 {
			return d, false
		}
		d.Tasks = slices.Delete(slices.Clone(d.Tasks), i, i+1)
		return d, true
	})
}

// TotalHours sums the hours of every task in every day.
func TotalHours(days []DayEntry) float64 {
	var total float64
	for _, d := range days {
		for _, t := range d.Tasks {
			total += t.Hours
		}
	}
	return total
}

// Progress is total/target clamped to [0, 1].
func Progress(total, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return math.Min(math.Max(total/target, 0), 1)
}

// MergeIntoRecord folds the first task of the day matching the record's date
// range back into the record. Extra tasks in that day are not carried over;
// see DroppedTasks.
func MergeIntoRecord(r Record, days []DayEntry) Record {
	i := slices.IndexFunc(days, func(d DayEntry) bool { return d.Date == r.DateRange })
	if i < 0 || len(days[i].Tasks) == 0 {
		return r
	}
	t := days[i].Tasks[0]
	return r.WithFields(Fields{Description: t.Description, Hours: t.Hours, Project: t.Project})
}

// DroppedTasks counts the tasks a merge of days into r leaves behind.
func DroppedTasks(r Record, days []DayEntry) int {
	i := slices.IndexFunc(days, func(d DayEntry) bool { return d.Date == r.DateRange })
	if i < 0 || len(days[i].Tasks) < 2 {
		return 0
	}
	return len(days[i].Tasks) - 1
}

// CoerceHours converts user input to hours. Anything that is not a finite,
// non-negative number becomes 0.
func CoerceHours(value string) float64 {
	h, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return 0
	}
	return h
}

// mapDays applies fn to every day whose date matches. If fn changes nothing
// the original slice is returned.
func mapDays(days []DayEntry, date string, fn func(DayEntry) (DayEntry, bool)) []DayEntry {
	var out []DayEntry
	for i, d := range days {
		if d.Date != date {
			continue
		}
		nd, changed := fn(d)
		if !changed {
			continue
		}
		if out == nil {
			out = slices.Clone(days)
		}
		out[i] = nd
	}
	if out == nil {
		return days
	}
	return out
}
