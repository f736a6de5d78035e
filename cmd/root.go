// Package cmd implements the vcrename CLI surface (spec.md §6).
package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anthonythorne/visualcare-file-migration-renamer/pkg/exitcode"
	"github.com/anthonythorne/visualcare-file-migration-renamer/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "vcrename",
	Short: "Rename and sort migrated files by person, category, and date",
	Long: `vcrename derives a canonical filename from a source path rooted at a
person's directory, sorting the result into <output-dir>/<canonical-name>/.

Examples:
  vcrename rename --input-dir ./incoming --output-dir ./sorted
  vcrename extract --extract-filename "John Doe/WHS/01.06.2023 - report.pdf"
  vcrename mappings --category`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initializeLogger(cmd)
	},
}

// Execute runs the root command, translating a returned error into the
// spec.md §6 general-error exit code. Subcommands that detect an argument
// error return an error tagged for InvalidArgs via exitWithCode instead.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", logger.Err(err))
		code := exitcode.GeneralError
		var ce *codedErr
		if errors.As(err, &ce) {
			code = ce.code
		}
		os.Exit(code)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Set log level (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().Bool("json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Bool("verbose", false, "Increase logging verbosity")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
}

func initializeLogger(cmd *cobra.Command) {
	logLevelStr, _ := cmd.Flags().GetString("log-level")
	jsonLogs, _ := cmd.Flags().GetBool("json")
	noColor, _ := cmd.Flags().GetBool("no-color")
	verbose, _ := cmd.Flags().GetBool("verbose")

	level := logger.InfoLevel
	switch strings.ToLower(logLevelStr) {
	case "trace":
		level = logger.TraceLevel
	case "debug":
		level = logger.DebugLevel
	case "warn":
		level = logger.WarnLevel
	case "error":
		level = logger.ErrorLevel
	}
	if verbose && level > logger.DebugLevel {
		level = logger.DebugLevel
	}

	if err := logger.Initialize(logger.Config{
		Level:     level,
		UseColor:  !noColor,
		JSON:      jsonLogs,
		Component: "vcrename",
	}); err != nil {
		os.Stderr.WriteString("failed to initialize logger: " + err.Error() + "\n")
		os.Exit(exitcode.GeneralError)
	}
}
