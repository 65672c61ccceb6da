package util

import (
	"archive/tar"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTarGz creates a tar.gz archive from a name -> content map.
func writeTarGz(t *testing.T, archivePath string, files map[string]string) {
	t.Helper()

	archive, err := os.Create(archivePath)
	require.NoError(t, err)
	defer archive.Close()

	gzWriter := gzip.NewWriter(archive)
	tarWriter := tar.NewWriter(gzWriter)

	for name, content := range files {
		require.NoError(t, tarWriter.WriteHeader(&tar.Header{
			Name:     name,
			Typeflag: tar.TypeReg,
			Mode:     0o644,
			Size:     int64(len(content)),
		}))
		_, err := tarWriter.Write([]byte(content))
		require.NoError(t, err)
	}

	require.NoError(t, tarWriter.Close())
	require.NoError(t, gzWriter.Close())
}

func TestExtractTarGz(t *testing.T) {
	archivePath := filepath.Join(t.TempDir(), "template.tgz")
	writeTarGz(t, archivePath, map[string]string{
		"plugin.php.stub":     "<?php // {{pluginName}}\n",
		"src/Plugin.php.stub": "<?php\n",
	})

	dstDir := t.TempDir()
	require.NoError(t, ExtractTarGz(archivePath, dstDir))

	content, err := os.ReadFile(filepath.Join(dstDir, "plugin.php.stub"))
	require.NoError(t, err)
	assert.Equal(t, "<?php // {{pluginName}}\n", string(content))
	assert.FileExists(t, filepath.Join(dstDir, "src", "Plugin.php.stub"))
}

func TestExtractTarGzMissingArchive(t *testing.T) {
	err := ExtractTarGz(filepath.Join(t.TempDir(), "no_such.tgz"), t.TempDir())
	require.Error(t, err)
}

func TestExtractTarGzNotAnArchive(t *testing.T) {
	archivePath := filepath.Join(t.TempDir(), "broken.tgz")
	require.NoError(t, os.WriteFile(archivePath, []byte("not gzip"), 0o644))

	require.Error(t, ExtractTarGz(archivePath, t.TempDir()))
}
