package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunRenameRequiresDirsOrTestMode(t *testing.T) {
	c := newCmdWithConfigFlag()
	c.Flags().String("input-dir", "", "")
	c.Flags().String("output-dir", "", "")
	c.Flags().Bool("duplicate", false, "")
	c.Flags().Bool("exclude-management-flag", false, "")
	addMappingFlags(c.Flags())
	addTestModeFlags(c.Flags())

	err := runRename(c, nil)
	require.Error(t, err)

	var ce *codedErr
	require.ErrorAs(t, err, &ce)
	require.Equal(t, 2, ce.code)
}

func TestRunRenameMovesFileIntoCanonicalSubdirectory(t *testing.T) {
	root := t.TempDir()
	out := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "John Doe", "WHS"), 0o750))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "John Doe", "WHS", "01.06.2023 - report.pdf"), []byte("x"), 0o600))

	userPath, categoryPath := writeMappingFixtures(t, "user_id,full_name\n1001,John Doe\n", "category_id,category_name\n1,WHS\n")

	c := newCmdWithConfigFlag()
	c.Flags().String("input-dir", "", "")
	c.Flags().String("output-dir", "", "")
	c.Flags().Bool("duplicate", false, "")
	c.Flags().Bool("exclude-management-flag", false, "")
	addMappingFlags(c.Flags())
	addTestModeFlags(c.Flags())
	require.NoError(t, c.Flags().Set("input-dir", root))
	require.NoError(t, c.Flags().Set("output-dir", out))
	require.NoError(t, c.Flags().Set("user-mapping", userPath))
	require.NoError(t, c.Flags().Set("category-mapping", categoryPath))
	require.NoError(t, c.Flags().Set("exclude-management-flag", "true"))

	captureStdout(t, func() {
		require.NoError(t, runRename(c, nil))
	})

	entries, err := os.ReadDir(filepath.Join(out, "John Doe"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "1001_John Doe_report_2023-06-01_1.pdf", entries[0].Name())
}
