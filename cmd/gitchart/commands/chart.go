package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/flashcode/gitchart/internal/chart"
	"github.com/flashcode/gitchart/internal/config"
	"github.com/flashcode/gitchart/internal/gitcmd"
	"github.com/flashcode/gitchart/internal/gitlog"
	"github.com/flashcode/gitchart/internal/plot"
)

// chartArgCount is the number of positional arguments: chart name and output.
const chartArgCount = 2

// ErrUnknownChart is returned for a chart name outside the registry.
var ErrUnknownChart = errors.New("unknown chart")

// chartCommand holds the flag values of the chart generation command.
type chartCommand struct {
	configPath  string
	title       string
	repo        string
	noMerges    bool
	maxItems    int
	sortMax     int
	issuesRegex string
	foldOthers  bool
	allBranches bool
	theme       string
}

func newChartCommand() *chartCommand {
	return &chartCommand{}
}

func (cc *chartCommand) registerFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringVar(&cc.configPath, "config", "", "config file (default: .gitchart.yaml in CWD or $HOME)")
	flags.StringVarP(&cc.title, "title", "t", "", "override the default chart title")
	flags.StringVarP(&cc.repo, "repo", "r", ".", "directory with the git repository")
	flags.BoolVarP(&cc.noMerges, "no-merges", "m", false, "do not count merge commits")
	flags.IntVarP(&cc.maxItems, "max-diff", "d", config.DefaultMaxItems, "max entries in ranked charts, 0 = unlimited")
	flags.IntVarP(&cc.sortMax, "sort-max", "s", 0, "sort a bar chart by value and keep the top N entries (negative N reverses the order)")
	flags.StringVarP(&cc.issuesRegex, "issues-regex", "i", config.DefaultIssuesRegex, "regexp matching issues in commit subjects (first group = issue number)")
	flags.BoolVar(&cc.foldOthers, "fold-others", true, "fold entries beyond the cap into an \"others\" bucket")
	flags.BoolVar(&cc.allBranches, "all-branches", true, "read commits from all branches, not only HEAD")
	flags.StringVar(&cc.theme, "theme", config.ThemeDark, "chart theme (dark, light)")
}

func (cc *chartCommand) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cc.configPath)
	if err != nil {
		return err
	}

	cc.applyFlags(cmd, cfg)

	err = cfg.Validate()
	if err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	registry := chart.NewRegistry()

	typ, ok := registry.Lookup(args[0])
	if !ok {
		return fmt.Errorf("%w: %q (available: %s)", ErrUnknownChart, args[0], strings.Join(registry.Names(), ", "))
	}

	return generateChart(cmd.Context(), registry.Info(typ), typ, cfg, args[1])
}

// applyFlags overrides config values with flags the user actually set.
func (cc *chartCommand) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("title") {
		cfg.Title = cc.title
	}

	if flags.Changed("repo") {
		cfg.Repository = cc.repo
	}

	if flags.Changed("no-merges") {
		cfg.NoMerges = cc.noMerges
	}

	if flags.Changed("max-diff") {
		cfg.MaxItems = cc.maxItems
	}

	if flags.Changed("sort-max") {
		cfg.SortMax = cc.sortMax
	}

	if flags.Changed("issues-regex") {
		cfg.IssuesRegex = cc.issuesRegex
	}

	if flags.Changed("fold-others") {
		cfg.FoldOthers = cc.foldOthers
	}

	if flags.Changed("all-branches") {
		cfg.AllBranches = cc.allBranches
	}

	if flags.Changed("theme") {
		cfg.Theme = cc.theme
	}
}

func generateChart(ctx context.Context, info chart.Info, typ chart.Type, cfg *config.Config, target string) error {
	runner := &gitcmd.Runner{
		RepoDir: cfg.Repository,
		LogArgs: logArgs(cfg),
	}

	aggregator := chart.NewAggregator(typ, cfg.NoMerges)

	err := collect(ctx, info, cfg, runner, aggregator)
	if err != nil {
		return err
	}

	series := chart.BuildSeries(typ, aggregator.Dataset(), chart.BuildOptions{
		MaxItems:   cfg.MaxItems,
		FoldOthers: cfg.FoldOthers,
		SortMax:    cfg.SortMax,
	})

	title := cfg.Title
	if title == "" {
		title = info.Title
	}

	subtitle := subtitleFor(info.Source, aggregator.Accepted())

	rendered := buildChart(info, title, subtitle, series, plot.NewChartOpts(plot.Theme(cfg.Theme)))

	err = plot.Write(rendered, target)
	if err != nil {
		return err
	}

	slog.Info("chart written",
		"chart", info.Name,
		"entries", len(series),
		"records", humanize.Comma(int64(aggregator.Accepted())),
		"output", target,
	)

	return nil
}

func logArgs(cfg *config.Config) []string {
	var args []string

	if cfg.AllBranches {
		args = append(args, "--all")
	}

	if cfg.NoMerges {
		args = append(args, "--no-merges")
	}

	return args
}

// collect feeds the aggregator from the input source of the chart type.
// Unparseable lines are skipped, never fatal.
func collect(ctx context.Context, info chart.Info, cfg *config.Config, runner *gitcmd.Runner, aggregator *chart.Aggregator) error {
	switch info.Source {
	case chart.SourceCommits:
		return collectCommits(ctx, runner, aggregator)
	case chart.SourceTickets:
		return collectTickets(ctx, cfg, runner, aggregator)
	case chart.SourceFiles:
		return collectFiles(ctx, runner, aggregator)
	case chart.SourceTags:
		return collectTags(ctx, runner, aggregator)
	default:
		return nil
	}
}

func collectCommits(ctx context.Context, runner *gitcmd.Runner, aggregator *chart.Aggregator) error {
	lines, err := runner.Log(ctx, gitcmd.CommitFormat)
	if err != nil {
		return fmt.Errorf("read git log: %w", err)
	}

	skipped := 0

	for _, line := range lines {
		rec, parseErr := gitlog.ParseCommit(line)
		if parseErr != nil {
			slog.Debug("skipping commit line", "error", parseErr)

			skipped++

			continue
		}

		aggregator.AddCommit(rec.Time, rec.Author, rec.IsMerge)
	}

	logSkipped(skipped)

	return nil
}

func collectTickets(ctx context.Context, cfg *config.Config, runner *gitcmd.Runner, aggregator *chart.Aggregator) error {
	issuesRegex, err := regexp.Compile(cfg.IssuesRegex)
	if err != nil {
		return fmt.Errorf("issues regex: %w", err)
	}

	lines, err := runner.Log(ctx, gitcmd.TicketFormat)
	if err != nil {
		return fmt.Errorf("read git log: %w", err)
	}

	skipped := 0

	for _, line := range lines {
		rec, ok, parseErr := gitlog.ParseTicket(line, issuesRegex)
		if parseErr != nil {
			slog.Debug("skipping ticket line", "error", parseErr)

			skipped++

			continue
		}

		if !ok {
			continue
		}

		aggregator.AddTicket(rec.Author, rec.Ticket)
	}

	logSkipped(skipped)

	return nil
}

func collectFiles(ctx context.Context, runner *gitcmd.Runner, aggregator *chart.Aggregator) error {
	lines, err := runner.LsTree(ctx)
	if err != nil {
		return fmt.Errorf("list files: %w", err)
	}

	for _, line := range lines {
		for _, path := range gitlog.ParsePaths(line) {
			aggregator.AddFile(gitlog.Ext(path))
		}
	}

	return nil
}

// collectTags counts commits between consecutive tags. Tags come from stdin
// when piped (the output of "git tag"), otherwise from the repository in
// creation order.
func collectTags(ctx context.Context, runner *gitcmd.Runner, aggregator *chart.Aggregator) error {
	tags, piped := stdinTags()

	if !piped {
		var err error

		tags, err = runner.Tags(ctx)
		if err != nil {
			return fmt.Errorf("list tags: %w", err)
		}
	}

	previous := ""

	for _, tag := range tags {
		rangeSpec := tag
		if previous != "" {
			rangeSpec = previous + ".." + tag
		}

		count, err := runner.CountCommits(ctx, rangeSpec)
		if err != nil {
			return fmt.Errorf("count commits for %s: %w", tag, err)
		}

		aggregator.AddVersion(gitlog.NormalizeTag(tag), count)

		previous = tag
	}

	return nil
}

func stdinTags() (tags []string, piped bool) {
	stat, err := os.Stdin.Stat()
	if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
		return nil, false
	}

	return gitcmd.ScanLines(os.Stdin), true
}

func buildChart(info chart.Info, title, subtitle string, series chart.Series, co *plot.ChartOpts) plot.Chart {
	switch info.Kind {
	case chart.KindPie:
		return plot.BuildPie(title, subtitle, series, co)
	case chart.KindDot:
		return plot.BuildHourWeek(title, subtitle, series, co)
	case chart.KindBar:
		return plot.BuildBar(title, subtitle, series, co, info.LabelRotation, info.MaxXLabels)
	default:
		return plot.BuildBar(title, subtitle, series, co, info.LabelRotation, info.MaxXLabels)
	}
}

func subtitleFor(source chart.Source, accepted int) string {
	count := humanize.Comma(int64(accepted))

	switch source {
	case chart.SourceFiles:
		return count + " files"
	case chart.SourceTickets:
		return count + " tickets"
	case chart.SourceCommits, chart.SourceTags:
		return count + " commits"
	default:
		return count + " records"
	}
}

func logSkipped(skipped int) {
	if skipped > 0 {
		slog.Warn("skipped unparseable lines", "count", skipped)
	}
}
