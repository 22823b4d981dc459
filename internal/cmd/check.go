package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/skilllint/internal/config"
	"github.com/harrison/skilllint/internal/display"
	"github.com/harrison/skilllint/internal/fileutil"
	"github.com/harrison/skilllint/internal/history"
	"github.com/harrison/skilllint/internal/logger"
	"github.com/harrison/skilllint/internal/models"
	"github.com/harrison/skilllint/internal/report"
	"github.com/harrison/skilllint/internal/rules"
	"github.com/harrison/skilllint/internal/scanner"
)

// checkFlags holds the flag values for one check invocation.
type checkFlags struct {
	format     string
	strict     bool
	failOn     string
	verbose    bool
	output     string
	maxDisplay int
	configPath string
	record     bool
	logLevel   string
}

// errBlockingViolations marks a run that failed the strict exit policy.
// The scan itself succeeded; only the exit code differs.
var errBlockingViolations = fmt.Errorf("blocking violations found")

// NewCheckCommand creates and returns the check subcommand
func NewCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Scan skill documents for voice and style violations",
		Long: `Scan a corpus directory (or a single file) for style violations:
  - Second-person voice ("you should", "your ...")        ERROR
  - Passive voice ("is validated", "was written")          WARNING
  - Non-imperative mood ("could", "might", "consider")     WARNING
  - Conversational tone ("let's", "we can")                INFO
  - Example markers without code blocks                    WARNING
  - Imbalanced correct/incorrect example pairs             INFO
  - Missing anti-pattern docs in long documents            WARNING

Code fences, front matter, blockquotes, and tables are exempt; inline
code spans are masked.

Exit code: 0 unless --strict is set and blocking violations exist
(threshold per --fail-on), or a fatal input error occurs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			err := runCheck(root, flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err == errBlockingViolations {
				// Detail is already rendered; suppress cobra's error line.
				cmd.SilenceErrors = true
			}
			return err
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "Output format: text, json, markdown, html")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Enable CI exit-code policy")
	cmd.Flags().StringVar(&flags.failOn, "fail-on", "", "Strict blocking threshold: error, warning (default from config)")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Show surrounding context per violation")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Write a markdown report to this path")
	cmd.Flags().IntVar(&flags.maxDisplay, "max-display", -1, "Per-file violation display cap, 0 = all (default from config)")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "Explicit config file path")
	cmd.Flags().BoolVar(&flags.record, "record", false, "Append run totals to the history database")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log verbosity: debug, info, warn, error")

	return cmd
}

// runCheck executes one scan end to end: config, rule registry, discovery,
// per-file scanning, rendering, optional report file and history record,
// and the exit-code decision.
func runCheck(root string, flags *checkFlags, stdout, stderr io.Writer) error {
	// Startup phase: every config and rule problem is fatal here, before
	// any file is scanned.
	cfg, err := config.Discover(root, flags.configPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg, flags)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.NewConsoleLogger(stderr, cfg.LogLevel)

	format, err := report.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	registry, err := rules.NewRegistry(cfg.ExtraRules())
	if err != nil {
		return fmt.Errorf("rule configuration: %w", err)
	}
	registry = registry.Disable(cfg.DisabledCategoryList())
	log.Debugf("rule registry loaded: %d rules in %d categories", registry.RuleCount(), len(registry.Sets()))

	discovery := fileutil.DefaultDiscoverOptions()
	discovery.ExcludeDirs = cfg.ExcludeDirs
	files, err := fileutil.Discover(root, discovery)
	if err != nil {
		return err
	}
	log.Infof("checking %d skill documents under %s", len(files), root)

	opts := scanner.DefaultOptions()
	opts.ExampleLookahead = cfg.ExampleLookahead
	opts.MinLinesForAntiPatterns = cfg.MinLinesForAntiPatterns
	if flags.verbose {
		opts.ContextLines = 2
	}
	checker := scanner.NewChecker(registry, opts)

	var progress *display.ProgressIndicator
	if flags.verbose {
		if len(files) == 1 {
			display.DisplaySingleFile(stderr, files[0])
		} else {
			progress = display.NewProgressIndicator(stderr, len(files))
			progress.Start()
		}
	}

	corpus := scanCorpus(checker, files, progress, log)
	if progress != nil {
		progress.Complete()
	}

	if skipped := diagnosticPaths(corpus); len(skipped) > 0 && flags.verbose {
		display.Warning{
			Title:      "Unreadable files skipped",
			Message:    "Some documents could not be scanned and are excluded from the totals.",
			Files:      skipped,
			Suggestion: "Fix file permissions and re-run",
		}.Display(stderr)
	}

	// A single-file invocation that produced nothing but a diagnostic is
	// a fatal input error, not a clean run.
	if len(files) == 1 && corpus.TotalFiles == 0 {
		return fmt.Errorf("failed to scan %s: %s", corpus.Diagnostics[0].Path, corpus.Diagnostics[0].Message)
	}

	renderer, err := report.NewRenderer(format, report.RenderOptions{
		MaxDisplay:  cfg.MaxDisplay,
		ShowContext: flags.verbose,
		Color:       format == report.FormatText && stdout == os.Stdout,
	})
	if err != nil {
		return err
	}
	if err := renderer.Render(stdout, corpus); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if flags.output != "" {
		markdown, _ := report.NewRenderer(report.FormatMarkdown, report.RenderOptions{MaxDisplay: cfg.MaxDisplay})
		if err := report.WriteFile(flags.output, markdown, corpus); err != nil {
			return err
		}
		log.Infof("report written to %s", flags.output)
	}

	if flags.record || cfg.History.Enabled {
		if err := recordRun(cfg.History.DBPath, root, corpus, log); err != nil {
			// History is a convenience; never fail the scan over it.
			log.Warnf("failed to record run history: %v", err)
		}
	}

	policy := report.ExitPolicy{Strict: cfg.Strict, FailOn: cfg.FailOnSeverity()}
	if policy.ExitCode(corpus) != 0 {
		return errBlockingViolations
	}
	return nil
}

// scanCorpus runs the checker over every file, downgrading per-file read
// failures to diagnostics so one bad file never blocks the rest.
func scanCorpus(checker *scanner.Checker, files []string, progress *display.ProgressIndicator, log logger.Logger) *models.CorpusReport {
	corpus := &models.CorpusReport{}

	for _, file := range files {
		if progress != nil {
			progress.Step(file)
		}
		fileReport, err := checker.CheckFile(file)
		if err != nil {
			corpus.AddDiagnostic(file, err.Error())
			log.Warnf("skipping %s: %v", file, err)
			continue
		}
		corpus.AddFile(fileReport)
		log.Debugf("%s: %d violations", file, fileReport.Counts.Total())
	}

	return corpus
}

// recordRun appends the corpus totals to the history database.
func recordRun(dbPath, root string, corpus *models.CorpusReport, log logger.Logger) error {
	store, err := history.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.RecordRun(root, corpus)
	if err != nil {
		return err
	}
	log.Debugf("run recorded as %s", id)
	return nil
}

// diagnosticPaths lists the files that produced diagnostics instead of reports.
func diagnosticPaths(corpus *models.CorpusReport) []string {
	paths := make([]string, 0, len(corpus.Diagnostics))
	for _, d := range corpus.Diagnostics {
		paths = append(paths, d.Path)
	}
	return paths
}

// applyFlagOverrides layers explicit command-line flags over the config.
func applyFlagOverrides(cfg *config.Config, flags *checkFlags) {
	if flags.strict {
		cfg.Strict = true
	}
	if flags.failOn != "" {
		cfg.FailOn = flags.failOn
	}
	if flags.maxDisplay >= 0 {
		cfg.MaxDisplay = flags.maxDisplay
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
}
