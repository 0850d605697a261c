package timesheet

import "errors"

var (
	ErrEditorOpen   = errors.New("editor already has a record open")
	ErrEditorClosed = errors.New("editor is closed")
)

// IDGenerator hands out task ids.
type IDGenerator interface {
	Next() int64
}

// Sequence is a monotonic id source scoped to one editing session.
type Sequence struct {
	next int64
}

// NewSequence starts above the largest task id already present in days.
func NewSequence(days []DayEntry) *Sequence {
	var hi int64
	for _, d := range days {
		for _, t := range d.Tasks {
			hi = max(hi, t.ID)
		}
	}
	return &Sequence{next: hi + 1}
}

func (s *Sequence) Next() int64 {
	id := s.next
	s.next++
	return id
}

// EditorState is the editor session state.
type EditorState int

const (
	EditorClosed EditorState = iota
	EditorOpen
)

func (s EditorState) String() string {
	if s == EditorOpen {
		return "open"
	}
	return "closed"
}

// Editor holds at most one record open for editing. Every mutation replaces
// the day list; nothing is merged until Save.
type Editor struct {
	state  EditorState
	record Record
	days   []DayEntry
	ids    *Sequence
}

func (e *Editor) State() EditorState { return e.state }
func (e *Editor) IsOpen() bool { return e.state == EditorOpen }

// Record returns the record being edited, as it was when opened.
func (e *Editor) Record() Record { return e.record }

// Days returns the current day list.
func (e *Editor) Days() []DayEntry { return e.days }

// Open projects r into a fresh day list.
func (e *Editor) Open(r Record) error {
	if e.state == EditorOpen {
		return ErrEditorOpen
	}
	e.state = EditorOpen
	e.record = r
	e.days = Project(r)
	e.ids = NewSequence(e.days)
	return nil
}

// AddTask appends a default task to date and returns its id, or 0 when no
// day matches.
func (e *Editor) AddTask(date string) (int64, error) {
	if e.state != EditorOpen {
		return 0, ErrEditorClosed
	}
	id := e.ids.next
	e.days = AddTask(e.days, date, e.ids)
	if e.ids.next == id {
		return 0, nil
	}
	return id, nil
}

func (e *Editor) EditTask(date string, taskID int64, field TaskField, value string) error {
	if e.state != EditorOpen {
		return ErrEditorClosed
	}
	e.days = EditTask(e.days, date, taskID, field, value)
	return nil
}

func (e *Editor) DeleteTask(date string, taskID int64) error {
	if e.state != EditorOpen {
		return ErrEditorClosed
	}
	e.days = DeleteTask(e.days, date, taskID)
	return nil
}

func (e *Editor) TotalHours() float64 { return TotalHours(e.days) }

// Cancel discards the day list without merging.
func (e *Editor) Cancel() {
	*e = Editor{}
}

// Save merges the day list into the open record, closes the editor and
// returns the merged record with the number of tasks the merge dropped.
func (e *Editor) Save() (Record, int, error) {
	if e.state != EditorOpen {
		return Record{}, 0, ErrEditorClosed
	}
	merged := MergeIntoRecord(e.record, e.days)
	dropped := DroppedTasks(e.record, e.days)
	*e = Editor{}
	return merged, dropped, nil
}
