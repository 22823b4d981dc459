package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/skilllint/internal/config"
	"github.com/harrison/skilllint/internal/history"
)

// NewHistoryCommand creates and returns the history subcommand
func NewHistoryCommand() *cobra.Command {
	var limit int
	var dbPath string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show totals from recorded check runs",
		Long: `Show the totals recorded by previous check runs (see the --record
flag on check, or history.enabled in the config file). Runs are listed
newest first, with the violation delta between the two most recent runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := dbPath
			if path == "" {
				path = config.DefaultConfig().History.DBPath
			}
			return runHistory(cmd, path, limit)
		},
		SilenceUsage: true,
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of runs to show")
	cmd.Flags().StringVar(&dbPath, "db", "", "History database path")

	return cmd
}

func runHistory(cmd *cobra.Command, dbPath string, limit int) error {
	store, err := history.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.RecentRuns(limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No recorded runs. Use 'skilllint check --record' to start tracking.")
		return nil
	}

	fmt.Fprintf(out, "Recorded runs (newest first):\n\n")
	for _, run := range runs {
		fmt.Fprintf(out, "  %s  %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"), run.Root)
		fmt.Fprintf(out, "      files: %d  errors: %d  warnings: %d  info: %d\n",
			run.TotalFiles, run.Errors, run.Warnings, run.Infos)
	}

	delta, ok, err := store.Delta()
	if err != nil {
		return err
	}
	if ok {
		switch {
		case delta < 0:
			fmt.Fprintf(out, "\nTrend: %d fewer violations than the previous run\n", -delta)
		case delta > 0:
			fmt.Fprintf(out, "\nTrend: %d more violations than the previous run\n", delta)
		default:
			fmt.Fprintf(out, "\nTrend: no change since the previous run\n")
		}
	}

	return nil
}
