package timesheet

// DefaultPageSize is the number of rows the dashboard shows per page.
const DefaultPageSize = 5

// Query is the dashboard's view state: filters, sort order and page.
type Query struct {
	Status    Status
	DateRange string
	Column    Column
	Ascending bool
	Page      int
	PageSize  int
}

// NewQuery returns the initial dashboard query: week ascending, first page.
func NewQuery(pageSize int) Query {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return Query{Column: ColumnWeek, Ascending: true, Page: 1, PageSize: pageSize}
}

// Page is one rendered slice of the filtered, sorted collection.
type Page struct {
	Records []Record
	Number  int
	Total   int // page count
	Count   int // records matching the filters
}

// ToggleSort selects col. Selecting the active column flips the direction;
// a new column starts ascending.
func (q Query) ToggleSort(col Column) Query {
	if q.Column == col {
		q.Ascending = !q.Ascending
		return q
	}
	q.Column = col
	q.Ascending = true
	return q
}

// ClampPage keeps the page inside 1..total. Paginate leaves clamping to its
// callers.
func (q Query) ClampPage(total int) Query {
	if q.Page > total {
		q.Page = total
	}
	if q.Page < 1 {
		q.Page = 1
	}
	return q
}

// Next moves to the following page, stopping at total.
func (q Query) Next(total int) Query {
	q.Page++
	return q.ClampPage(total)
}

// Prev moves to the preceding page, stopping at the first.
func (q Query) Prev() Query {
	if q.Page > 1 {
		q.Page--
	}
	return q
}

// Apply runs filter, sort and paginate over records.
func (q Query) Apply(records []Record) Page {
	filtered := Filter(records, q.Status, q.DateRange)
	sorted := Sort(filtered, q.Column, q.Ascending)
	rows, total := Paginate(sorted, q.Page, q.PageSize)
	return Page{Records: rows, Number: q.Page, Total: total, Count: len(filtered)}
}
