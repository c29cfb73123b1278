package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/jobsheet/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(app.Run).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "jobsheet: %v\n", err)
		return 1
	}
	return 0
}

type runFunc func(context.Context, app.Options) error

func newRootCmd(runApp runFunc) *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "jobsheet",
		Short: "Spreadsheet-style terminal view of job requests",
		Long: `jobsheet shows job-request records in a spreadsheet grid.

Click a cell to select it and double-click (or press Enter, F2 or just start
typing) to edit. Enter commits, Esc discards. Status and priority badges are
read-only. Press F1 inside the program for every key binding.

Settings are read from ~/.config/jobsheet/config.toml when present; the
theme and bottom tab are remembered in ~/.config/jobsheet/prefs.toml.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApp(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/jobsheet/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/jobsheet/prefs.toml)")
	flags.StringVar(&opts.Theme, "theme", "", "color theme: Slate, Nightfox or Kanagawa")
	flags.StringVar(&opts.SeedPath, "seed", "", "TOML file of [[records]] to load instead of the built-in set")
	return cmd
}
