package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addTestModeFlags registers --test-mode/--test-name/--person-filter on the
// rename command (spec.md §6 "--test-mode --test-name <n> plus optional
// --person-filter <s>: read from tests/test-files/from-<n> and write to
// tests/test-files/to-<n>").
func addTestModeFlags(flags *pflag.FlagSet) {
	flags.Bool("test-mode", false, "Read/write fixtures under tests/test-files instead of --input-dir/--output-dir")
	flags.String("test-name", "", "Fixture set name, selecting tests/test-files/from-<n> and to-<n>")
	flags.String("person-filter", "", "Only process person directories matching this substring")
}

// resolveDirs determines the effective (input root, output root) for a
// rename invocation: either the fixture directories named by --test-mode/
// --test-name, or the --input-dir/--output-dir pair, plus the
// --person-filter value in either mode. Returns a plain error when neither
// mode is fully specified; runRename tags it as InvalidArgs.
func resolveDirs(cmd *cobra.Command) (root, output string, personFilter string, err error) {
	testMode, _ := cmd.Flags().GetBool("test-mode")
	testName, _ := cmd.Flags().GetString("test-name")
	personFilter, _ = cmd.Flags().GetString("person-filter")

	if testMode {
		if testName == "" {
			return "", "", "", fmt.Errorf("--test-mode requires --test-name")
		}
		root = filepath.Join("tests", "test-files", "from-"+testName)
		output = filepath.Join("tests", "test-files", "to-"+testName)
		return root, output, personFilter, nil
	}

	root, _ = cmd.Flags().GetString("input-dir")
	output, _ = cmd.Flags().GetString("output-dir")
	if root == "" || output == "" {
		return "", "", "", fmt.Errorf("--input-dir and --output-dir are required (or use --test-mode --test-name)")
	}
	return root, output, personFilter, nil
}

// filterByPerson prunes rel paths whose first path segment does not contain
// personFilter, case-insensitively — matching original_source/main.py
// process_test_files's `person_filter.lower() in d.name.lower()`. A blank
// filter is a no-op.
func filterByPerson(paths []string, personFilter string) []string {
	if personFilter == "" {
		return paths
	}
	needle := strings.ToLower(personFilter)
	out := paths[:0]
	for _, p := range paths {
		person := p
		if idx := strings.IndexByte(p, '/'); idx >= 0 {
			person = p[:idx]
		}
		if strings.Contains(strings.ToLower(person), needle) {
			out = append(out, p)
		}
	}
	return out
}
