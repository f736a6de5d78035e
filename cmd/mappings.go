package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/mapping"
	"github.com/anthonythorne/visualcare-file-migration-renamer/pkg/exitcode"
)

// mappingsCmd introspects the loaded mapping tables (SPEC_FULL.md
// "Supplemented features" #3: category validation / reverse lookup).
var mappingsCmd = &cobra.Command{
	Use:   "mappings",
	Short: "Show the loaded user or category mapping table",
	RunE:  runMappings,
}

func init() {
	mappingsCmd.Flags().Bool("category", false, "Show the category mapping instead of the user mapping")
	addMappingFlags(mappingsCmd.Flags())
	rootCmd.AddCommand(mappingsCmd)
}

func runMappings(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return exitWithCode(err, exitcode.GeneralError)
	}

	showCategory, _ := cmd.Flags().GetBool("category")
	if showCategory {
		cm, err := mapping.LoadCategoryMap(
			categoryMappingPath(cmd, cfg), cfg.CategoryMap.IDColumn, cfg.CategoryMap.NameColumn, cfg.CategoryMap.CreateIfMissing,
		)
		if err != nil {
			return exitWithCode(err, exitcode.GeneralError)
		}
		printSorted(cm.All())
		return nil
	}

	um, err := mapping.LoadUserMap(
		userMappingPath(cmd, cfg), cfg.UserMapping.IDColumn, cfg.UserMapping.NameColumn,
		cfg.UserMapping.CreateIfMissing, cfg.UserMapping.FuzzyIndexEnabled,
	)
	if err != nil {
		return exitWithCode(err, exitcode.GeneralError)
	}
	printSorted(um.All())
	return nil
}

func printSorted(m map[string]string) {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Printf("%s\t%s\n", id, m[id])
	}
}
