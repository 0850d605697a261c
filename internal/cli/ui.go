package cli

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sadopc/ticktock/internal/tui"
)

func addUI(topLevel *cobra.Command, opts *rootOptions) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the terminal user interface",
		Example: `
ticktock ui
TICKTOCK_DEBUG=true ticktock ui
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(opts)
		},
	}

	topLevel.AddCommand(cmd)
}

var errNoTerminal = errors.New("the interface needs a terminal; try `ticktock list` instead")

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func runUI(opts *rootOptions) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errNoTerminal
	}

	e, err := bootstrap(opts)
	if err != nil {
		return err
	}
	defer e.Close()

	app := tui.NewApp(e.store, e.auth, tui.Options{ExportDir: e.cfg.ExportDir})
	_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}
