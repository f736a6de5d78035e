package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/config"
	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/mapping"
	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/pipeline"
)

// addMappingFlags registers the --user-mapping/--category-mapping override
// flags shared by every subcommand that builds a pipeline (spec.md §6),
// taking the raw *pflag.FlagSet the way the teacher's own
// applyAssessProfile helper does rather than a *cobra.Command.
func addMappingFlags(flags *pflag.FlagSet) {
	flags.String("user-mapping", "", "Path to the user mapping CSV (overrides config)")
	flags.String("category-mapping", "", "Path to the category mapping CSV (overrides config)")
}

// loadConfig reads the --config file (persistent root flag) layered over
// defaults, and fails fast on a config error (spec.md §7 "Config error:
// ... fatal; abort before processing").
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// userMappingPath resolves the effective user mapping path: the --user-mapping
// flag, else the VC_USER_MAPPING_FILE environment variable (spec.md §6
// "Environment"), else the configured default.
func userMappingPath(cmd *cobra.Command, cfg *config.Config) string {
	if v, _ := cmd.Flags().GetString("user-mapping"); v != "" {
		return v
	}
	if v := os.Getenv("VC_USER_MAPPING_FILE"); v != "" {
		return v
	}
	return cfg.UserMapping.MappingFile
}

func categoryMappingPath(cmd *cobra.Command, cfg *config.Config) string {
	if v, _ := cmd.Flags().GetString("category-mapping"); v != "" {
		return v
	}
	return cfg.CategoryMap.MappingFile
}

// buildPipeline loads config and both mapping tables and wires them into a
// ready-to-run Pipeline, the shared setup every file-touching subcommand
// needs (rename, extract, test-mode).
func buildPipeline(cmd *cobra.Command) (*config.Config, *pipeline.Pipeline, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("vcrename: %w", err)
	}

	userMap, err := mapping.LoadUserMap(
		userMappingPath(cmd, cfg),
		cfg.UserMapping.IDColumn, cfg.UserMapping.NameColumn,
		cfg.UserMapping.CreateIfMissing, cfg.UserMapping.FuzzyIndexEnabled,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("vcrename: loading user mapping: %w", err)
	}

	categoryMap, err := mapping.LoadCategoryMap(
		categoryMappingPath(cmd, cfg),
		cfg.CategoryMap.IDColumn, cfg.CategoryMap.NameColumn,
		cfg.CategoryMap.CreateIfMissing,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("vcrename: loading category mapping: %w", err)
	}

	p, err := pipeline.New(cfg, userMap, categoryMap)
	if err != nil {
		return nil, nil, fmt.Errorf("vcrename: building pipeline: %w", err)
	}
	return cfg, p, nil
}
