package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureWorkingDirs(t *testing.T) {
	dstDir := t.TempDir()

	require.NoError(t, EnsureWorkingDirs(dstDir, WorkingDirs))

	for _, dir := range WorkingDirs {
		markerPath := filepath.Join(dstDir, dir, GitKeepFileName)
		require.FileExists(t, markerPath)
		fileInfo, err := os.Stat(markerPath)
		require.NoError(t, err)
		assert.Zero(t, fileInfo.Size(), "marker file must be empty")
	}
}

func TestEnsureWorkingDirsIdempotent(t *testing.T) {
	dstDir := t.TempDir()

	require.NoError(t, EnsureWorkingDirs(dstDir, WorkingDirs))

	// A file placed into a working directory survives the second run.
	logPath := filepath.Join(dstDir, "storage", "logs", "app.log")
	writeFile(t, logPath, "log line")

	require.NoError(t, EnsureWorkingDirs(dstDir, WorkingDirs))

	assert.Equal(t, "log line", readFile(t, logPath))
	for _, dir := range WorkingDirs {
		require.FileExists(t, filepath.Join(dstDir, dir, GitKeepFileName))
	}
}

func TestEnsureWorkingDirsExistingMarkerKept(t *testing.T) {
	dstDir := t.TempDir()
	markerPath := filepath.Join(dstDir, "storage", "logs", GitKeepFileName)
	writeFile(t, markerPath, "not empty")

	require.NoError(t, EnsureWorkingDirs(dstDir, WorkingDirs))

	// Existing markers are never truncated.
	assert.Equal(t, "not empty", readFile(t, markerPath))
}
