package timesheet

import (
	"strconv"
	"strings"
	"time"
)

const rangeSep = " - "

var fullLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2 January, 2006",
	"2 January 2006",
	"2 Jan, 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	time.RFC3339,
}

// Layouts without a year; the year is borrowed from the other end of the range.
var partialLayouts = []string{
	"2 January",
	"2 Jan",
	"January 2",
	"Jan 2",
}

// span is a parsed "<start> - <end>" interval. Either bound may be missing.
type span struct {
	start, end       time.Time
	hasStart, hasEnd bool
}

// parseSpan parses a date range such as "1 - 5 January, 2024" or
// "2024-01-01 - 2024-01-31". A start that omits its month or year inherits
// them from the end.
func parseSpan(s string) span {
	from, to, _ := strings.Cut(s, rangeSep)
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)

	var sp span
	sp.end, sp.hasEnd = parseDate(to)
	sp.start, sp.hasStart = parseDate(from)
	if !sp.hasStart && sp.hasEnd {
		sp.start, sp.hasStart = parsePartial(from, sp.end)
	}
	return sp
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range fullLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func parsePartial(s string, ref time.Time) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	var t time.Time
	if day, err := strconv.Atoi(s); err == nil {
		t = time.Date(ref.Year(), ref.Month(), day, 0, 0, 0, 0, time.UTC)
		if t.Day() != day {
			return time.Time{}, false
		}
	} else {
		parsed := false
		for _, layout := range partialLayouts {
			if p, err := time.Parse(layout, s); err == nil {
				t = time.Date(ref.Year(), p.Month(), p.Day(), 0, 0, 0, 0, time.UTC)
				parsed = true
				break
			}
		}
		if !parsed {
			return time.Time{}, false
		}
	}
	// "29 December - 2 January, 2025" starts in the previous year.
	if t.After(ref) {
		t = t.AddDate(-1, 0, 0)
	}
	return t, true
}

// StartDate returns the parsed start of the record's date range.
func (r Record) StartDate() (time.Time, bool) {
	sp := parseSpan(r.DateRange)
	return sp.start, sp.hasStart
}

// EndDate returns the parsed end of the record's date range.
func (r Record) EndDate() (time.Time, bool) {
	sp := parseSpan(r.DateRange)
	return sp.end, sp.hasEnd
}
