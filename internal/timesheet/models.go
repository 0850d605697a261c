package timesheet

// Status is the lifecycle label a timesheet record carries.
type Status string

const (
	StatusCompleted  Status = "COMPLETED"
	StatusIncomplete Status = "INCOMPLETE"
	StatusMissing    Status = "MISSING"
	StatusPending    Status = "PENDING"
	StatusApproved   Status = "APPROVED"
)

// Statuses lists every status in display order.
func Statuses() []Status {
	return []Status{StatusCompleted, StatusIncomplete, StatusMissing, StatusPending, StatusApproved}
}

func (s Status) String() string { return string(s) }

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusCompleted, StatusIncomplete, StatusMissing, StatusPending, StatusApproved:
		return true
	}
	return false
}

// Action is a presentation hint for the row's call to action.
type Action string

const (
	ActionView   Action = "View"
	ActionUpdate Action = "Update"
	ActionCreate Action = "Create"
)

func (a Action) String() string { return string(a) }

// Record is one row of the timesheet collection. A record carries a single
// task summary in Description, Hours and Project.
type Record struct {
	ID          int64
	Week        int
	DateRange   string // "<start> - <end>", free text
	Status      Status
	Action      Action
	Description string
	Hours       float64
	Project     string
}

// Fields is the task summary a record carries and that a save replaces.
type Fields struct {
	Description string
	Hours       float64
	Project     string
}

// Fields returns the record's task summary.
func (r Record) Fields() Fields {
	return Fields{Description: r.Description, Hours: r.Hours, Project: r.Project}
}

// WithFields returns a copy of r with its task summary replaced.
func (r Record) WithFields(f Fields) Record {
	r.Description = f.Description
	r.Hours = f.Hours
	r.Project = f.Project
	return r
}

// Task is one unit of worked time inside a day entry.
type Task struct {
	ID          int64
	Description string
	Hours       float64
	Project     string
}

// DayEntry is one day's (or one record's) task list in the editor.
type DayEntry struct {
	Date  string
	Tasks []Task
}

// Seed returns the collection loaded at start-up.
func Seed() []Record {
	return []Record{
		{ID: 1, Week: 1, DateRange: "1 - 5 January, 2024", Status: StatusCompleted, Action: ActionView,
			Description: "Design Homepage", Hours: 12, Project: "Web App"},
		{ID: 2, Week: 2, DateRange: "8 - 12 January, 2024", Status: StatusCompleted, Action: ActionView,
			Description: "Develop Login Feature", Hours: 15, Project: "Web App"},
		{ID: 3, Week: 3, DateRange: "15 - 19 January, 2024", Status: StatusIncomplete, Action: ActionUpdate,
			Description: "API Integration", Hours: 10, Project: "Web App"},
		{ID: 4, Week: 4, DateRange: "22 - 26 January, 2024", Status: StatusCompleted, Action: ActionView,
			Description: "UI Testing", Hours: 8, Project: "Web App"},
		{ID: 5, Week: 5, DateRange: "29 January - 1 February, 2024", Status: StatusMissing, Action: ActionCreate,
			Description: "Deploy to Server", Hours: 6, Project: "Web App"},
	}
}
