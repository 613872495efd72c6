// Package cli wires the command-line surface: flag parsing, configuration
// resolution, and the handoff to the pipeline runner.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/krakjn/filenamefmt/internal/config"
	"github.com/krakjn/filenamefmt/internal/pipeline"
	"github.com/krakjn/filenamefmt/internal/ui"
	"github.com/krakjn/filenamefmt/pkg/version"
)

var flags struct {
	inplace    bool
	timestamp  bool
	configPath string
	yes        bool
	noColor    bool
	summary    string
	verbose    bool
}

var rootCmd = &cobra.Command{
	Use:   "namefmt [path]",
	Short: "Format filenames according to configuration",
	Long: `namefmt normalizes filenames across a directory tree into a consistent,
shell-safe convention: spaces become underscores, regular files are
snake_cased, executables and Node-project files are kebab-cased, and
package manifests are left alone.

Without -i the run is a dry run that only reports what would change.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runRoot,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. A non-nil return means the process should
// exit non-zero; the error has already been printed.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("namefmt %s\n", version.GetFullVersion()))

	rootCmd.Flags().BoolVarP(&flags.inplace, "inplace", "i", false,
		"actually perform renames (default: dry-run mode)")
	rootCmd.Flags().BoolVar(&flags.timestamp, "timestamp", false,
		"prefix YYYY_MM_DD__ to all filenames")
	rootCmd.Flags().StringVarP(&flags.configPath, "config", "c", "",
		"load a configuration override file")
	rootCmd.Flags().BoolVarP(&flags.yes, "yes", "y", false,
		"skip the confirmation prompt in apply mode")
	rootCmd.Flags().BoolVar(&flags.noColor, "no-color", false,
		"disable colored output")
	rootCmd.Flags().StringVar(&flags.summary, "summary", "text",
		"run summary format: text or yaml")
	rootCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false,
		"enable debug logging")
}

func runRoot(cmd *cobra.Command, args []string) error {
	log := newLogger(flags.verbose)

	cfg, err := config.Resolve(flags.configPath, log)
	if err != nil {
		return err
	}
	if flags.timestamp {
		cfg = cfg.WithTimestamp(true)
	}

	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	if _, err := os.Stat(root); err != nil {
		return fmt.Errorf("invalid root path %s: %w", root, err)
	}

	mode := pipeline.ModePreview
	if flags.inplace {
		mode = pipeline.ModeApply
	}

	theme := ui.NewTheme(flags.noColor || ui.DetectNoColor())
	printer := ui.NewPrinter(cmd.OutOrStdout(), theme)

	if mode == pipeline.ModeApply {
		ok, err := ui.ConfirmApply(root, flags.yes)
		if err != nil {
			return err
		}
		if !ok {
			printer.Summaryf("Aborted, nothing renamed.")
			return nil
		}
	}

	summary, err := pipeline.NewRunner(cfg, mode, printer, log).Run(root)
	if err != nil {
		return err
	}

	if err := printSummary(cmd, printer, summary); err != nil {
		return err
	}

	if !summary.OK() {
		return fmt.Errorf("%d rename(s) failed", summary.Failed)
	}
	return nil
}

// newLogger builds the run logger. Warnings and errors go to stderr; debug
// lines only appear with --verbose.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
