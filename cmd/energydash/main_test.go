package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energydash/internal/exporter"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		cfgFile, dataDir, outputDir = "", "", ""
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRunCommand_EndToEnd(t *testing.T) {
	t.Setenv("ENERGYDASH_LOGGING_OUTPUT", "console")
	t.Setenv("ENERGYDASH_PATHS_LOGS_DIR", t.TempDir())

	dataDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "output")
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "library.csv"),
		[]byte("date,kwh,time\n2024-01-01,10,08:00\n2024-01-02,12,12:00\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "gym.csv"),
		[]byte("date,kwh\n2024-01-01,20\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "broken.csv"),
		[]byte("day,usage\n1,2\n"), 0644))

	out, err := execute(t, "run", "--data-dir", dataDir, "--output-dir", outDir)
	require.NoError(t, err)

	assert.Contains(t, out, "CAMPUS-WIDE ENERGY SUMMARY")
	assert.Contains(t, out, "EXECUTIVE SUMMARY")
	assert.Contains(t, out, "Highest Consumer: Library")
	assert.Contains(t, out, "Lowest Consumer: Gym")

	for _, name := range exporter.ArtifactFiles() {
		assert.FileExists(t, filepath.Join(outDir, name), name)
	}
}

func TestRunCommand_EmptyInputDirectory(t *testing.T) {
	t.Setenv("ENERGYDASH_LOGGING_OUTPUT", "console")
	t.Setenv("ENERGYDASH_PATHS_LOGS_DIR", t.TempDir())

	dataDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "output")

	_, err := execute(t, "run", "--data-dir", dataDir, "--output-dir", outDir)
	require.NoError(t, err, "an empty corpus is a valid terminal state")

	// Tables are still written, headers only; the summary report is skipped.
	assert.FileExists(t, filepath.Join(outDir, exporter.CleanedDataFile))
	assert.NoFileExists(t, filepath.Join(outDir, exporter.SummaryReportFile))
}

func TestRunCommand_MissingInputDirectory(t *testing.T) {
	t.Setenv("ENERGYDASH_LOGGING_OUTPUT", "console")
	t.Setenv("ENERGYDASH_PATHS_LOGS_DIR", t.TempDir())

	_, err := execute(t, "run",
		"--data-dir", filepath.Join(t.TempDir(), "absent"),
		"--output-dir", filepath.Join(t.TempDir(), "output"))
	assert.Error(t, err)
}

func TestCleanCommand(t *testing.T) {
	outDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outDir, exporter.CleanedDataFile), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(outDir, exporter.SummaryReportFile), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(outDir, "keepme.csv"), []byte("x"), 0644))

	out, err := execute(t, "clean", "--output-dir", outDir)
	require.NoError(t, err)

	assert.Contains(t, out, "Cleanup complete (2 files deleted)")
	assert.NoFileExists(t, filepath.Join(outDir, exporter.CleanedDataFile))
	assert.FileExists(t, filepath.Join(outDir, "keepme.csv"), "unrelated files are left alone")
}
