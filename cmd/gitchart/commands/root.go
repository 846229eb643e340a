// Package commands implements the gitchart CLI commands.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/flashcode/gitchart/pkg/version"
)

// NewRootCommand creates the gitchart root command with its subcommands.
func NewRootCommand() *cobra.Command {
	var verbose bool

	chartCmd := newChartCommand()

	rootCmd := &cobra.Command{
		Use:   "gitchart [flags] <chart> <output>",
		Short: "Generate statistic charts for a git repository",
		Long: `Generate statistic charts for a git repository.

Charts supported:
  authors             pie   git authors
  tickets_author      pie   processed tickets by author
  commits_hour_day    bar   commits by hour of day
  commits_hour_week   dot   commits by hour of week
  commits_day         bar   commits by day of month
  commits_day_week    bar   commits by day of week
  commits_month       bar   commits by month of year
  commits_year        bar   commits by year
  commits_year_month  bar   commits by year/month
  commits_version     bar   commits by tag/version
  files               pie   files by type (extension)

The output file ending in .png is rendered through headless Chrome; any other
name gets an HTML page; the special name "-" streams HTML to stdout.`,
		Args:          cobra.ExactArgs(chartArgCount),
		RunE:          chartCmd.run,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging(verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	chartCmd.registerFlags(rootCmd)

	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "gitchart %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
