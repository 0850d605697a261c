package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sadopc/ticktock/internal/timesheet"
)

const timesheetColumns = `id, week, date_range, status, action, description, hours, project`

type scanner interface {
	Scan(dest ...any) error
}

func scanTimesheet(row scanner) (timesheet.Record, error) {
	var r timesheet.Record
	var status, action string
	if err := row.Scan(&r.ID, &r.Week, &r.DateRange, &status, &action, &r.Description, &r.Hours, &r.Project); err != nil {
		return timesheet.Record{}, err
	}
	r.Status = timesheet.Status(status)
	r.Action = timesheet.Action(action)
	return r, nil
}

// ListTimesheets returns the whole collection in id order. Filtering, sorting
// and paging are left to the caller.
func (s *Store) ListTimesheets() ([]timesheet.Record, error) {
	rows, err := s.db.Query(`SELECT ` + timesheetColumns + ` FROM timesheets ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list timesheets: %w", err)
	}
	defer rows.Close()

	var records []timesheet.Record
	for rows.Next() {
		r, err := scanTimesheet(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetTimesheet returns nil when no record has the id.
func (s *Store) GetTimesheet(id int64) (*timesheet.Record, error) {
	r, err := scanTimesheet(s.db.QueryRow(`SELECT `+timesheetColumns+` FROM timesheets WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get timesheet %d: %w", id, err)
	}
	return &r, nil
}

// UpdateTimesheet writes a record's task summary. It reports whether a row
// matched; an unknown id is not an error.
func (s *Store) UpdateTimesheet(id int64, f timesheet.Fields) (bool, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(
		`UPDATE timesheets SET description = ?, hours = ?, project = ?, updated_at = ? WHERE id = ?`,
		f.Description, f.Hours, f.Project, now, id,
	)
	if err != nil {
		return false, fmt.Errorf("update timesheet %d: %w", id, err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// GetWeeklySummary aggregates hours per week and status.
func (s *Store) GetWeeklySummary() ([]WeeklySummary, error) {
	rows, err := s.db.Query(`
		SELECT week, status, COALESCE(SUM(hours), 0), COUNT(*)
		FROM timesheets
		GROUP BY week, status
		ORDER BY week, status`)
	if err != nil {
		return nil, fmt.Errorf("weekly summary: %w", err)
	}
	defer rows.Close()

	var summaries []WeeklySummary
	for rows.Next() {
		var ws WeeklySummary
		if err := rows.Scan(&ws.Week, &ws.Status, &ws.Hours, &ws.Records); err != nil {
			return nil, err
		}
		summaries = append(summaries, ws)
	}
	return summaries, rows.Err()
}
