package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeMappingFixtures writes a user and category mapping CSV under a
// temp directory and returns their paths.
func writeMappingFixtures(t *testing.T, userCSV, categoryCSV string) (userPath, categoryPath string) {
	t.Helper()
	dir := t.TempDir()
	userPath = filepath.Join(dir, "user_mapping.csv")
	categoryPath = filepath.Join(dir, "category_mapping.csv")
	require.NoError(t, os.WriteFile(userPath, []byte(userCSV), 0o600))
	require.NoError(t, os.WriteFile(categoryPath, []byte(categoryCSV), 0o600))
	return userPath, categoryPath
}

func TestRunExtractProducesWorkedExampleFilename(t *testing.T) {
	userPath, categoryPath := writeMappingFixtures(t, "user_id,full_name\n1001,John Doe\n", "category_id,category_name\n1,WHS\n")

	c := newCmdWithConfigFlag()
	c.Flags().String("extract-filename", "", "")
	c.Flags().Bool("exclude-management-flag", false, "")
	addMappingFlags(c.Flags())
	require.NoError(t, c.Flags().Set("extract-filename", "John Doe/WHS/2023/Incidents/01.06.2023 - John Doe.pdf"))
	require.NoError(t, c.Flags().Set("user-mapping", userPath))
	require.NoError(t, c.Flags().Set("category-mapping", categoryPath))
	require.NoError(t, c.Flags().Set("exclude-management-flag", "true"))

	out := captureStdout(t, func() {
		err := runExtract(c, nil)
		require.NoError(t, err)
	})

	require.Equal(t, "1001_John Doe_2023 Incidents_2023-06-01_1.pdf\n", out)
}

func TestRunExtractUnmappedPersonUsesFallbackName(t *testing.T) {
	userPath, categoryPath := writeMappingFixtures(t, "user_id,full_name\n1001,John Doe\n", "")

	c := newCmdWithConfigFlag()
	c.Flags().String("extract-filename", "", "")
	c.Flags().Bool("exclude-management-flag", false, "")
	addMappingFlags(c.Flags())
	require.NoError(t, c.Flags().Set("extract-filename", "Temp Person/note.txt"))
	require.NoError(t, c.Flags().Set("user-mapping", userPath))
	require.NoError(t, c.Flags().Set("category-mapping", categoryPath))
	require.NoError(t, c.Flags().Set("exclude-management-flag", "true"))

	out := captureStdout(t, func() {
		err := runExtract(c, nil)
		require.NoError(t, err)
	})

	require.True(t, strings.HasPrefix(out, "Temp Person_note"))
}
