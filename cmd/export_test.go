package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCmd(t *testing.T) {
	cmd := exportCmd

	assert.NotNil(t, cmd)
	assert.Equal(t, "export [theme]", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	formatFlag := cmd.Flags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "yaml", formatFlag.DefValue)

	require.NotNil(t, cmd.Flags().Lookup("all"))
	require.NotNil(t, cmd.Flags().Lookup("variant"))
	require.NotNil(t, cmd.Flags().Lookup("output"))
}

// setExportFlags resets the export flag variables to their defaults.
func setExportFlags(t *testing.T, buildDir string) {
	t.Helper()
	exportAll = false
	exportVariants = nil
	exportFormat = "yaml"
	exportOutput = buildDir
}

func TestRunExportWritesVariantFiles(t *testing.T) {
	themesDir := t.TempDir()
	buildDir := t.TempDir()
	setGenerateFlags(t, themesDir)
	require.NoError(t, runGenerate(generateCmd, []string{"aurora"}))

	setExportFlags(t, buildDir)
	require.NoError(t, runExport(exportCmd, []string{"aurora"}))

	for _, variant := range []string{"dark", "light"} {
		path := filepath.Join(buildDir, "aurora", variant+".yaml")
		_, err := os.Stat(path)
		assert.NoError(t, err, "expected export at %s", path)
	}
}

func TestRunExportAll(t *testing.T) {
	themesDir := t.TempDir()
	buildDir := t.TempDir()
	setGenerateFlags(t, themesDir)
	require.NoError(t, runGenerate(generateCmd, []string{"aurora"}))
	require.NoError(t, runGenerate(generateCmd, []string{"boreal"}))

	setExportFlags(t, buildDir)
	exportAll = true
	exportFormat = "json"
	require.NoError(t, runExport(exportCmd, nil))

	for _, name := range []string{"aurora", "boreal"} {
		path := filepath.Join(buildDir, name, "dark.json")
		_, err := os.Stat(path)
		assert.NoError(t, err, "expected export at %s", path)
	}
}

func TestRunExportRequiresThemeOrAll(t *testing.T) {
	setExportFlags(t, t.TempDir())

	err := runExport(exportCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--all")

	exportAll = true
	err = runExport(exportCmd, []string{"aurora"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not both")
}
