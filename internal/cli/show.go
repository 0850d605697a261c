package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/sadopc/ticktock/internal/export"
	"github.com/sadopc/ticktock/internal/timesheet"
)

type showOptions struct {
	credentials
}

func addShow(topLevel *cobra.Command, root *rootOptions) {
	so := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print one timesheet and the tasks behind it",
		Example: `
ticktock show 3 --email john@example.com --password password123
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid timesheet id %q", args[0])
			}

			e, err := bootstrap(root)
			if err != nil {
				return err
			}
			defer e.Close()

			if _, err := e.signIn(so.credentials); err != nil {
				return err
			}
			r, err := e.store.GetTimesheet(id)
			if err != nil {
				return err
			}
			if r == nil {
				return fmt.Errorf("timesheet %d not found", id)
			}
			target := e.store.FloatSetting("weekly_target", timesheet.WeeklyTarget)
			printTimesheet(cmd.OutOrStdout(), *r, target)
			return nil
		},
	}
	so.credentials.addFlags(cmd)

	topLevel.AddCommand(cmd)
}

func printTimesheet(w io.Writer, r timesheet.Record, target float64) {
	bold := color.New(color.Bold)

	_, _ = fmt.Fprintf(w, "%s  %s  %s\n\n",
		bold.Sprintf("Week %d", r.Week), r.DateRange, statusPrinter(r.Status).Sprint(r.Status))

	days := timesheet.Project(r)
	for _, d := range days {
		_, _ = fmt.Fprintln(w, bold.Sprint(d.Date))
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, t := range d.Tasks {
			tbl.AddRow("  "+export.FormatHours(t.Hours)+"h", t.Description, t.Project)
		}
		_, _ = fmt.Fprintln(w, tbl)
	}

	total := timesheet.TotalHours(days)
	_, _ = fmt.Fprintf(w, "\n%s/%s hrs (%.0f%%)\n",
		export.FormatHours(total), export.FormatHours(target), timesheet.Progress(total, target)*100)
}
