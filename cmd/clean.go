package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/separator"
	"github.com/anthonythorne/visualcare-file-migration-renamer/pkg/exitcode"
)

// cleanCmd exposes the separator engine's CleanRemainder directly, mirroring
// original_source/core/utils/name_matcher.py's `--clean-filename` debug
// subcommand (SPEC_FULL.md "Supplemented features" #1).
var cleanCmd = &cobra.Command{
	Use:   "clean <text>",
	Short: "Print the separator-cleaned form of a string",
	Args:  cobra.ExactArgs(1),
	RunE:  runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return exitWithCode(err, exitcode.GeneralError)
	}

	eng := separator.New(cfg.Global.Separators.Input, cfg.Global.Separators.Normalized)
	fmt.Println(eng.CleanRemainder(args[0], nil))
	return nil
}
