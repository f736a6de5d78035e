package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/crawler"
	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/dateengine"
	"github.com/anthonythorne/visualcare-file-migration-renamer/internal/report"
	"github.com/anthonythorne/visualcare-file-migration-renamer/pkg/exitcode"
	"github.com/anthonythorne/visualcare-file-migration-renamer/pkg/logger"
)

var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Crawl an input tree and write normalized filenames into an output tree",
	Long: `rename walks --input-dir, derives a canonical filename for every file via
the extraction pipeline, and materializes the result under
<output-dir>/<canonical-name>/<filename> (copying with --duplicate, moving
otherwise). --test-mode redirects input/output to the tests/test-files
fixture directories instead.`,
	RunE: runRename,
}

func init() {
	renameCmd.Flags().String("input-dir", "", "Input directory to crawl")
	renameCmd.Flags().String("output-dir", "", "Output directory to write normalized files into")
	renameCmd.Flags().Bool("duplicate", false, "Copy files instead of renaming/moving them")
	renameCmd.Flags().Bool("exclude-management-flag", false, "Omit the management component from output filenames")
	addMappingFlags(renameCmd.Flags())
	addTestModeFlags(renameCmd.Flags())
	rootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	root, outputRoot, personFilter, err := resolveDirs(cmd)
	if err != nil {
		return exitWithCode(err, exitcode.InvalidArgs)
	}

	cfg, p, err := buildPipeline(cmd)
	if err != nil {
		return exitWithCode(err, exitcode.GeneralError)
	}

	duplicate, _ := cmd.Flags().GetBool("duplicate")
	excludeManagement, _ := cmd.Flags().GetBool("exclude-management-flag")

	walkOpts := crawler.WalkOptions{FileExclusions: cfg.Global.FileExclusions, SkipHidden: true}
	runOpts := crawler.RunOptions{Duplicate: duplicate, ExcludeManagementFlag: excludeManagement}

	files, err := crawler.WalkFiles(root, walkOpts)
	if err != nil {
		return exitWithCode(fmt.Errorf("vcrename: %w", err), exitcode.GeneralError)
	}
	files = filterByPerson(files, personFilter)

	summary, err := crawler.RunFiles(files, root, outputRoot, p, runOpts, dateengine.OSStatSource{})
	if err != nil {
		return exitWithCode(fmt.Errorf("vcrename: %w", err), exitcode.GeneralError)
	}

	fmt.Print(report.Table(summary))

	if _, _, _, failed := summary.Counts(); failed > 0 {
		logger.Warn("run completed with failures", logger.Int("failed", failed))
	}
	return nil
}

// exitWithCode tags err with the desired process exit code so Execute can
// translate it without every RunE duplicating os.Exit calls (spec.md §6
// "Exit codes").
func exitWithCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &codedErr{err: err, code: code}
}

type codedErr struct {
	err  error
	code int
}

func (c *codedErr) Error() string { return c.err.Error() }
func (c *codedErr) Unwrap() error { return c.err }
