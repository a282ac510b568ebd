package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/andyballingall/srcfmt/internal/config"
	"github.com/andyballingall/srcfmt/internal/fs"
	"github.com/andyballingall/srcfmt/internal/report"
	"github.com/andyballingall/srcfmt/internal/sweep"
	"github.com/andyballingall/srcfmt/internal/tool"
	"github.com/andyballingall/srcfmt/internal/validator"
)

// Version is the current version of srcfmt, set at build time.
var Version = "dev"

var LongDescription = `
srcfmt runs clang-format over every .c and .h file under src, include and tests,
in that order, rewriting each file in place with the style file clang-format
finds for itself (-i --style=file). A line is printed before each file.

Formatter failures do not stop the sweep and do not change the exit status.
An optional .srcfmt.yml, .srcfmt.yaml or .srcfmt.toml in the working directory
can change the tool, its arguments, the roots, the extensions and add exclusions.
`

// NewRootCmd creates the root command and wires up dependencies.
func NewRootCmd(lazy *LazyManager, ll *slog.LevelVar, stdout, stderr io.Writer, env fs.EnvProvider) *cobra.Command {
	var debug bool
	var noColour bool
	var dryRun bool
	configPath := pathValue("")
	output := formatValue(report.FormatText)

	var logCloser io.Closer

	rootCmd := &cobra.Command{
		Use:           "srcfmt",
		Short:         "Format C sources in place with clang-format",
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		Long:          LongDescription,
		Example: `
  srcfmt                      format src, include and tests
  srcfmt -n                   list the files that would be formatted
  srcfmt -o json              emit one JSON object per file
  srcfmt -C ci/srcfmt.toml    use an explicit config file`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if debug {
				ll.Set(slog.LevelDebug)
			}
			// Skip if already initialised (e.g., in tests)
			if lazy.HasInner() {
				return nil
			}

			// 1. Setup Logging
			logger, closer, err := setupLogger(stderr, ll, env.Get(LogEnvVar), !noColour)
			if err != nil {
				logger.Warn("logging to file disabled", "error", err)
			}
			logCloser = closer

			// 2. Resolve Configuration
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("cannot determine working directory: %w", err)
			}
			explicit := configPath.String()
			if explicit == "" {
				explicit = env.Get(config.EnvVar)
			}
			cfg, err := config.Load(wd, explicit, validator.NewSanthoshCompiler())
			if err != nil {
				return err
			}

			// 3. Build Dependencies
			progress, err := report.New(report.Format(output), stdout)
			if err != nil {
				return err
			}

			var formatter tool.Formatter = tool.NewCLIFormatter(cfg.Tool, cfg.Args, stdout, stderr)
			if dryRun {
				formatter = tool.DryRunFormatter{}
			}
			sweeper := sweep.New(formatter, progress, logger, sweep.WithExclude(cfg.Exclude))

			// 4. Hydrate the Lazy Wrapper
			lazy.SetInner(NewCLIManager(logger, cfg, sweeper))

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return lazy.FormatAll(cmd.Context())
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if logCloser != nil {
				return logCloser.Close()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().VarP(&configPath, "config", "C",
		fmt.Sprintf("path to a config file (overrides %s and the files in the working directory)", config.EnvVar))
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().VarP(&output, "output", "o", "Progress output format (text, json)")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false,
		"Print the files that would be formatted without running the formatter")

	rootCmd.PersistentFlags().BoolVarP(&noColour, "nocolour", "c", false, "Disable colour in output")
	// Support alternate spellings
	rootCmd.PersistentFlags().BoolVar(&noColour, "nocolor", false, "")
	rootCmd.PersistentFlags().BoolVar(&noColour, "noColor", false, "")
	rootCmd.PersistentFlags().BoolVar(&noColour, "noColour", false, "")
	_ = rootCmd.PersistentFlags().MarkHidden("nocolor")
	_ = rootCmd.PersistentFlags().MarkHidden("noColor")
	_ = rootCmd.PersistentFlags().MarkHidden("noColour")

	return rootCmd
}
