package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sadopc/ticktock/internal/timesheet"
)

var csvHeader = []string{"ID", "Week", "Date Range", "Status", "Description", "Hours", "Project"}

// WriteCSV writes one row per record after a header row.
func WriteCSV(w io.Writer, records []timesheet.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			strconv.FormatInt(r.ID, 10),
			strconv.Itoa(r.Week),
			r.DateRange,
			r.Status.String(),
			r.Description,
			FormatHours(r.Hours),
			r.Project,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func ToCSV(records []timesheet.Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, records); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// FormatHours drops the fraction for whole hours: 8 -> "8", 7.5 -> "7.5".
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
