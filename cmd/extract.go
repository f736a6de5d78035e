package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anthonythorne/visualcare-file-migration-renamer/pkg/exitcode"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Print the normalized filename for a single input path and exit",
	Long: `extract runs the extraction pipeline over a single --extract-filename
path without touching the filesystem, for debugging a config or mapping
change against one worked example (spec.md §6).`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("extract-filename", "", "Input path to normalize")
	extractCmd.Flags().Bool("exclude-management-flag", false, "Omit the management component from output")
	addMappingFlags(extractCmd.Flags())
	rootCmd.AddCommand(extractCmd)
	if err := extractCmd.MarkFlagRequired("extract-filename"); err != nil {
		panic(err)
	}
}

func runExtract(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("extract-filename")
	excludeManagement, _ := cmd.Flags().GetBool("exclude-management-flag")

	_, p, err := buildPipeline(cmd)
	if err != nil {
		return exitWithCode(err, exitcode.GeneralError)
	}

	_, filename := p.Run(path, "", nil, excludeManagement)
	fmt.Println(filename)
	return nil
}
