package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anthonythorne/visualcare-file-migration-renamer/pkg/exitcode"
)

// configCmd shows the effective configuration (defaults layered with any
// --config file and VC_ environment overrides) as YAML, for debugging
// which settings a run will actually use.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return exitWithCode(err, exitcode.GeneralError)
	}
	out, err := cfg.Dump()
	if err != nil {
		return exitWithCode(err, exitcode.GeneralError)
	}
	fmt.Print(out)
	return nil
}
