package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sadopc/ticktock/internal/timesheet"
)

type document struct {
	ExportedAt string   `json:"exported_at" yaml:"exported_at"`
	Count      int      `json:"count" yaml:"count"`
	Timesheets []record `json:"timesheets" yaml:"timesheets"`
}

type record struct {
	ID          int64   `json:"id" yaml:"id"`
	Week        int     `json:"week" yaml:"week"`
	DateRange   string  `json:"date_range" yaml:"date_range"`
	Status      string  `json:"status" yaml:"status"`
	Action      string  `json:"action,omitempty" yaml:"action,omitempty"`
	Description string  `json:"description" yaml:"description"`
	Hours       float64 `json:"hours" yaml:"hours"`
	Project     string  `json:"project" yaml:"project"`
}

func newDocument(records []timesheet.Record, now time.Time) document {
	doc := document{
		ExportedAt: now.UTC().Format(time.RFC3339),
		Count:      len(records),
		Timesheets: make([]record, 0, len(records)),
	}
	for _, r := range records {
		doc.Timesheets = append(doc.Timesheets, record{
			ID:          r.ID,
			Week:        r.Week,
			DateRange:   r.DateRange,
			Status:      r.Status.String(),
			Action:      r.Action.String(),
			Description: r.Description,
			Hours:       r.Hours,
			Project:     r.Project,
		})
	}
	return doc
}

// WriteJSON writes records as an indented JSON document.
func WriteJSON(w io.Writer, records []timesheet.Record) error {
	data, err := json.MarshalIndent(newDocument(records, time.Now()), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func ToJSON(records []timesheet.Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create json file: %w", err)
	}
	defer f.Close()

	if err := WriteJSON(f, records); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
