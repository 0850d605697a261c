// Package cli wires ticktock's cobra commands.
package cli

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
}

// New builds the ticktock command tree. The bare command opens the UI.
func New() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "ticktock",
		Short: "Terminal timesheets: sign in, review weeks, edit tasks.",
		Long: `ticktock keeps a week-by-week timesheet collection in memory and
lets a signed-in user filter, sort and page through it, edit the
tasks behind a week, and export what they see.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(opts)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default: search $TICKTOCK_CONFIG_PATH, ~/.config/ticktock, ./)")

	addUI(cmd, opts)
	addList(cmd, opts)
	addShow(cmd, opts)
	addExport(cmd, opts)
	return cmd
}

// credentials are the sign-in flags shared by the non-interactive commands.
type credentials struct {
	email    string
	password string
}

func (c *credentials) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.email, "email", "", "account email")
	cmd.Flags().StringVar(&c.password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
}
