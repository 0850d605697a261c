package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/sadopc/ticktock/internal/export"
	"github.com/sadopc/ticktock/internal/timesheet"
)

// queryFlags select and order records the way the dashboard does.
type queryFlags struct {
	status    string
	dateRange string
	sort      string
	desc      bool
	page      int
	pageSize  int
}

func (q *queryFlags) addFlags(cmd *cobra.Command, paged bool) {
	cmd.Flags().StringVar(&q.status, "status", "", "only records with this status")
	cmd.Flags().StringVar(&q.dateRange, "range", "", `only records inside "<from> - <to>"`)
	cmd.Flags().StringVar(&q.sort, "sort", "", "sort column: week, date or status (default from settings)")
	cmd.Flags().BoolVar(&q.desc, "desc", false, "sort descending")
	if paged {
		cmd.Flags().IntVar(&q.page, "page", 1, "page number")
		cmd.Flags().IntVar(&q.pageSize, "page-size", 0, "rows per page (default from settings)")
	}
}

// query builds a timesheet.Query over the stored preferences.
func (q *queryFlags) query(e *env) (timesheet.Query, error) {
	tq := timesheet.NewQuery(e.store.IntSetting("page_size", timesheet.DefaultPageSize))
	if col, ok := timesheet.ParseColumn(e.store.StringSetting("sort_column", "")); ok {
		tq.Column = col
	}
	tq.Ascending = e.store.BoolSetting("sort_ascending", true)

	if q.status != "" {
		st := timesheet.Status(strings.ToUpper(strings.TrimSpace(q.status)))
		if !st.Valid() {
			return tq, fmt.Errorf("unknown status %q", q.status)
		}
		tq.Status = st
	}
	tq.DateRange = strings.TrimSpace(q.dateRange)

	if q.sort != "" {
		col, ok := timesheet.ParseColumn(q.sort)
		if !ok {
			return tq, fmt.Errorf("unknown sort column %q", q.sort)
		}
		tq.Column = col
		tq.Ascending = true
	}
	if q.desc {
		tq.Ascending = false
	}
	if q.pageSize > 0 {
		tq.PageSize = q.pageSize
	}
	if q.page > 0 {
		tq.Page = q.page
	}
	return tq, nil
}

type listOptions struct {
	credentials
	queryFlags
	json bool
}

func addList(topLevel *cobra.Command, root *rootOptions) {
	lo := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of timesheets",
		Example: `
ticktock list --email john@example.com --password password123
ticktock list --email john@example.com --password password123 --status completed --sort date --desc
ticktock list --email john@example.com --password password123 --range "2024-01-01 - 2024-01-31" --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := bootstrap(root)
			if err != nil {
				return err
			}
			defer e.Close()

			if _, err := e.signIn(lo.credentials); err != nil {
				return err
			}
			records, err := e.store.ListTimesheets()
			if err != nil {
				return err
			}
			q, err := lo.query(e)
			if err != nil {
				return err
			}
			page := q.Apply(records)
			if c := q.ClampPage(page.Total); c.Page != q.Page {
				q = c
				page = q.Apply(records)
			}

			if lo.json {
				return export.WriteJSON(cmd.OutOrStdout(), page.Records)
			}
			printPage(cmd.OutOrStdout(), q, page)
			return nil
		},
	}
	lo.credentials.addFlags(cmd)
	lo.queryFlags.addFlags(cmd, true)
	cmd.Flags().BoolVar(&lo.json, "json", false, "print the page as JSON")

	topLevel.AddCommand(cmd)
}

func statusPrinter(s timesheet.Status) *color.Color {
	switch s {
	case timesheet.StatusCompleted:
		return color.New(color.FgGreen)
	case timesheet.StatusIncomplete:
		return color.New(color.FgYellow)
	case timesheet.StatusMissing:
		return color.New(color.FgRed)
	}
	return color.New(color.Faint)
}

func columnTitle(q timesheet.Query, col timesheet.Column, label string) string {
	if q.Column != col {
		return label
	}
	if q.Ascending {
		return label + " ↑"
	}
	return label + " ↓"
}

func printPage(w io.Writer, q timesheet.Query, page timesheet.Page) {
	bold := color.New(color.Bold)

	if len(page.Records) == 0 {
		_, _ = fmt.Fprintln(w, "No timesheets match.")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(
		bold.Sprint(columnTitle(q, timesheet.ColumnWeek, "WEEK #")),
		bold.Sprint(columnTitle(q, timesheet.ColumnDate, "DATE")),
		bold.Sprint(columnTitle(q, timesheet.ColumnStatus, "STATUS")),
		bold.Sprint("HOURS"),
		bold.Sprint("DESCRIPTION"),
		bold.Sprint("PROJECT"),
	)
	for _, r := range page.Records {
		tbl.AddRow(r.Week, r.DateRange, statusPrinter(r.Status).Sprint(r.Status),
			export.FormatHours(r.Hours), r.Description, r.Project)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(w, tbl)
	_, _ = fmt.Fprintf(w, "\nPage %d of %d (%d timesheets)\n", page.Number, max(page.Total, 1), page.Count)
}
