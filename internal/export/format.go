package export

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/sadopc/ticktock/internal/timesheet"
)

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats in picker order.
var Formats = []Format{FormatCSV, FormatJSON, FormatYAML}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Write encodes records to w in format f.
func Write(w io.Writer, f Format, records []timesheet.Record) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, records)
	case FormatJSON:
		return WriteJSON(w, records)
	case FormatYAML:
		return WriteYAML(w, records)
	}
	return fmt.Errorf("unknown export format %q", f)
}

// ToFile writes records to path in format f.
func ToFile(f Format, records []timesheet.Record, path string) error {
	switch f {
	case FormatCSV:
		return ToCSV(records, path)
	case FormatJSON:
		return ToJSON(records, path)
	case FormatYAML:
		return ToYAML(records, path)
	}
	return fmt.Errorf("unknown export format %q", f)
}

// DefaultPath is dir/ticktock-export-<date>.<ext>.
func DefaultPath(dir string, f Format, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("ticktock-export-%s.%s", now.Format("2006-01-02"), f))
}
