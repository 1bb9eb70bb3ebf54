package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/reaandrew/snapreview/config"
	"github.com/reaandrew/snapreview/core"
	"github.com/reaandrew/snapreview/filters"
	"github.com/reaandrew/snapreview/reporters"
	"github.com/reaandrew/snapreview/reviewer"
	"github.com/reaandrew/snapreview/utils"
)

// ErrFindings is returned when --fail-on-findings is set and the review
// produced annotations.
var ErrFindings = errors.New("snap review found issues that need manual review")

// Cli represents the command-line interface
type Cli struct {
	snap           string
	plugs          string
	slots          string
	isClassic      bool
	configFile     string
	reports        []string
	outputDir      string
	failOnFindings bool
	envFile        string
	logLevel       string
	manifestDir    string

	// out receives workflow commands; defaults to stdout.
	out io.Writer
	// newReviewer is replaced in tests.
	newReviewer func(snap, plugs, slots string, allowClassic bool, reporter core.Reporter) *reviewer.SnapReviewer
}

// Execute sets up and runs the root command
func (cli *Cli) Execute(ctx context.Context) error {
	return cli.rootCommand().ExecuteContext(ctx)
}

func (cli *Cli) rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "snapreview",
		Short:         "snapreview runs review-tools against a snap and annotates snapcraft.yaml.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.setup()
		},
	}

	rootCmd.PersistentFlags().StringVar(&cli.envFile, "env-file", "", "Load action inputs (INPUT_*) from a dotenv file")
	rootCmd.PersistentFlags().StringVar(&cli.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(cli.createReviewCommand())
	return rootCmd
}

// createReviewCommand creates the 'review' subcommand with its flags
func (cli *Cli) createReviewCommand() *cobra.Command {
	reviewCmd := &cobra.Command{
		Use:   "review [SNAP]",
		Short: "Review a snap with review-tools and report findings against snapcraft.yaml.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cli.snap = args[0]
			}
			cli.resolveInputs(cmd.Flags())
			return cli.review(cmd.Context())
		},
	}

	reviewCmd.Flags().StringVar(&cli.snap, "snap", "", "Path to the snap to review (INPUT_SNAP)")
	reviewCmd.Flags().StringVar(&cli.plugs, "plugs", "", "Plugs declaration file (INPUT_PLUGS)")
	reviewCmd.Flags().StringVar(&cli.slots, "slots", "", "Slots declaration file (INPUT_SLOTS)")
	reviewCmd.Flags().BoolVar(&cli.isClassic, "is-classic", false, "Allow classic confinement (INPUT_ISCLASSIC)")
	reviewCmd.Flags().StringVar(&cli.configFile, "config", "", "Config file (defaults to .snapreview.yaml, .snapreview.yml or .snapreview.toml)")
	reviewCmd.Flags().StringSliceVar(&cli.reports, "report", nil, "Report formats (supported: workflow, json, sarif, github-checks)")
	reviewCmd.Flags().StringVar(&cli.outputDir, "output-dir", "", "Directory for json and sarif reports")
	reviewCmd.Flags().BoolVar(&cli.failOnFindings, "fail-on-findings", false, "Exit non-zero when findings need manual review")
	reviewCmd.Flags().StringVar(&cli.manifestDir, "manifest-dir", ".", "Directory containing snap/snapcraft.yaml")

	return reviewCmd
}

func (cli *Cli) setup() error {
	if cli.envFile != "" {
		// Load never overrides variables that are already set.
		if err := godotenv.Load(cli.envFile); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", cli.envFile, err)
		}
	}
	if cli.logLevel != "" {
		level, err := log.ParseLevel(cli.logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
	}
	// Re-running a job with debug logging enabled wins over --log-level.
	if runnerDebug() {
		log.SetLevel(log.DebugLevel)
	}
	return nil
}

// resolveInputs fills unset flags from the INPUT_* variables GitHub Actions
// uses to pass action inputs.
func (cli *Cli) resolveInputs(flags *pflag.FlagSet) {
	if cli.snap == "" {
		cli.snap = actionInput("snap")
	}
	if !flags.Changed("plugs") {
		cli.plugs = actionInput("plugs")
	}
	if !flags.Changed("slots") {
		cli.slots = actionInput("slots")
	}
	if !flags.Changed("is-classic") {
		cli.isClassic = actionInput("isClassic") == "true"
	}
}

func actionInput(name string) string {
	return strings.TrimSpace(os.Getenv("INPUT_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))))
}

func (cli *Cli) review(ctx context.Context) error {
	if cli.snap == "" {
		return fmt.Errorf("no snap given; pass it as an argument, with --snap or INPUT_SNAP")
	}

	cfg, err := config.Load(cli.manifestDir, cli.configFile)
	if err != nil {
		return err
	}

	filter, err := filters.NewIgnoreFilter(cfg.Ignore)
	if err != nil {
		return err
	}

	reporter, err := reporters.CreateReporters(cli.reportFormats(cfg), cli.reporterOptions(cfg))
	if err != nil {
		return err
	}

	log.Infof("Reviewing snap \"%s\"...", cli.snap)

	newReviewer := cli.newReviewer
	if newReviewer == nil {
		newReviewer = reviewer.NewSnapReviewer
	}
	snapReviewer := newReviewer(cli.snap, cli.plugs, cli.slots, cli.isClassic, reporter)
	snapReviewer.Filter = filter
	snapReviewer.ManifestDir = cli.manifestDir

	if err := snapReviewer.Validate(); err != nil {
		return err
	}
	summary, err := snapReviewer.Review(ctx)
	if err != nil {
		return err
	}

	if (cli.failOnFindings || cfg.FailOnFindings) && len(summary.Annotations) > 0 {
		return fmt.Errorf("%w: %d annotation(s)", ErrFindings, len(summary.Annotations))
	}
	return nil
}

func (cli *Cli) reportFormats(cfg config.Config) []string {
	if formats := utils.SplitList(cli.reports...); len(formats) > 0 {
		return formats
	}
	return utils.SplitList(cfg.Reports...)
}

func (cli *Cli) reporterOptions(cfg config.Config) reporters.Options {
	opts := reporters.OptionsFromEnv()
	opts.Version = Version
	opts.ArtifactPrefix = "snapreview"
	opts.OutputDir = cli.outputDir
	if opts.OutputDir == "" {
		opts.OutputDir = cfg.OutputDir
	}
	if cli.out != nil {
		opts.Writer = cli.out
	}
	return opts
}
