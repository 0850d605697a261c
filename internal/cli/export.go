package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/ticktock/internal/export"
)

type exportOptions struct {
	credentials
	queryFlags
	format string
	output string
}

func addExport(topLevel *cobra.Command, root *rootOptions) {
	eo := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the filtered, sorted timesheets to a file",
		Example: `
ticktock export --email john@example.com --password password123 --format yaml
ticktock export --email john@example.com --password password123 --status missing -o missing.csv
ticktock export --email john@example.com --password password123 -o -
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(eo.format)
			if err != nil {
				return err
			}

			e, err := bootstrap(root)
			if err != nil {
				return err
			}
			defer e.Close()

			if _, err := e.signIn(eo.credentials); err != nil {
				return err
			}
			records, err := e.store.ListTimesheets()
			if err != nil {
				return err
			}
			q, err := eo.query(e)
			if err != nil {
				return err
			}
			q.Page, q.PageSize = 1, 0 // one page holding every match
			records = q.Apply(records).Records

			if eo.output == "-" {
				return export.Write(cmd.OutOrStdout(), f, records)
			}
			path := eo.output
			if path == "" {
				path = export.DefaultPath(e.cfg.ExportDir, f, time.Now())
			}
			if err := export.ToFile(f, records, path); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d timesheets to %s\n", len(records), path)
			return nil
		},
	}
	eo.credentials.addFlags(cmd)
	eo.queryFlags.addFlags(cmd, false)
	cmd.Flags().StringVarP(&eo.format, "format", "f", "csv", "csv, json or yaml")
	cmd.Flags().StringVarP(&eo.output, "output", "o", "", `output path, "-" for stdout (default <export_dir>/ticktock-export-<date>.<format>)`)

	topLevel.AddCommand(cmd)
}
