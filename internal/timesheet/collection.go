package timesheet

import (
	"cmp"
	"slices"
	"strings"
)

// Column is a sortable dashboard column.
type Column string

const (
	ColumnWeek   Column = "week"
	ColumnDate   Column = "date"
	ColumnStatus Column = "status"
)

// ParseColumn maps a column name to a Column.
func ParseColumn(s string) (Column, bool) {
	switch Column(strings.ToLower(strings.TrimSpace(s))) {
	case ColumnWeek:
		return ColumnWeek, true
	case ColumnDate:
		return ColumnDate, true
	case ColumnStatus:
		return ColumnStatus, true
	}
	return "", false
}

// Filter keeps the records matching status (when non-empty) and lying inside
// dateRange (when non-empty). dateRange is "<from> - <to>"; a bound that does
// not parse, on either the filter or the record, imposes no constraint.
// The input is never modified and survivors keep their order.
func Filter(records []Record, status Status, dateRange string) []Record {
	var bounds span
	if strings.TrimSpace(dateRange) != "" {
		bounds = parseSpan(dateRange)
	}

	out := make([]Record, 0, len(records))
	for _, r := range records {
		if status != "" && r.Status != status {
			continue
		}
		if bounds.hasStart || bounds.hasEnd {
			own := parseSpan(r.DateRange)
			if bounds.hasStart && own.hasStart && own.start.Before(bounds.start) {
				continue
			}
			if bounds.hasEnd && own.hasEnd && own.end.After(bounds.end) {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// Sort returns a stably sorted copy of records. Descending order negates the
// comparison only, so ties keep their original order in both directions.
// Records whose start date does not parse sort after dated ones when
// ascending.
func Sort(records []Record, col Column, ascending bool) []Record {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b Record) int {
		c := compareBy(a, b, col)
		if !ascending {
			c = -c
		}
		return c
	})
	return out
}

func compareBy(a, b Record, col Column) int {
	switch col {
	case ColumnDate:
		ta, okA := a.StartDate()
		tb, okB := b.StartDate()
		switch {
		case okA && okB:
			return ta.Compare(tb)
		case okA:
			return -1
		case okB:
			return 1
		}
		return 0
	case ColumnStatus:
		return strings.Compare(string(a.Status), string(b.Status))
	default:
		return cmp.Compare(a.Week, b.Week)
	}
}

// Paginate returns page (1-based) of records and the total page count,
// ceil(len/size). An empty input has zero pages. The page is not clamped:
// a page outside 1..total is empty. A size below one puts everything on a
// single page.
func Paginate(records []Record, page, size int) ([]Record, int) {
	n := len(records)
	if size < 1 {
		size = max(n, 1)
	}
	total := (n + size - 1) / size
	if page < 1 || page > total {
		return []Record{}, total
	}
	start := (page - 1) * size
	end := min(start+size, n)
	return slices.Clone(records[start:end]), total
}

// Replace returns a copy of records in which the record with the given id
// carries f. When no record matches, records is returned as is.
func Replace(records []Record, id int64, f Fields) []Record {
	i := slices.IndexFunc(records, func(r Record) bool { return r.ID == id })
	if i < 0 {
		return records
	}
	out := slices.Clone(records)
	out[i] = out[i].WithFields(f)
	return out
}
