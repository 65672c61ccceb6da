package scaffold

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoMapping() Mapping {
	return NewMapping(map[string]string{
		VarName:       "Demo Plugin",
		VarSlug:       "demo-plugin",
		VarAuthorName: "Jane",
	})
}

func TestSubstitute(t *testing.T) {
	dstDir := t.TempDir()
	writeFile(t, filepath.Join(dstDir, "readme"), "{{name}} by {{authorName}}")
	writeFile(t, filepath.Join(dstDir, "src", "Plugin.php"),
		"<?php // {{name}}, {{name}}, {{slug}}")

	require.NoError(t, Substitute(dstDir, demoMapping(), SkipVendor))

	assert.Equal(t, "Demo Plugin by Jane", readFile(t, filepath.Join(dstDir, "readme")))
	assert.Equal(t, "<?php // Demo Plugin, Demo Plugin, demo-plugin",
		readFile(t, filepath.Join(dstDir, "src", "Plugin.php")))
}

func TestSubstituteExactOccurrenceCount(t *testing.T) {
	dstDir := t.TempDir()
	original := strings.Repeat("{{slug}} ", 5) + "{{name}}"
	writeFile(t, filepath.Join(dstDir, "file.txt"), original)

	require.NoError(t, Substitute(dstDir, demoMapping(), SkipVendor))

	substituted := readFile(t, filepath.Join(dstDir, "file.txt"))
	assert.Equal(t, 5, strings.Count(substituted, "demo-plugin"))
	assert.Equal(t, 1, strings.Count(substituted, "Demo Plugin"))
	assert.NotContains(t, substituted, "{{slug}}")
	assert.NotContains(t, substituted, "{{name}}")
}

func TestSubstituteBinarySafety(t *testing.T) {
	dstDir := t.TempDir()
	binaryContent := "{{name}}\x00{{slug}}"
	writeFile(t, filepath.Join(dstDir, "blob.bin"), binaryContent)

	require.NoError(t, Substitute(dstDir, demoMapping(), SkipVendor))

	// A null byte anywhere leaves the file byte-identical.
	assert.Equal(t, binaryContent, readFile(t, filepath.Join(dstDir, "blob.bin")))
}

func TestSubstituteSkipsVendorSubtree(t *testing.T) {
	dstDir := t.TempDir()
	writeFile(t, filepath.Join(dstDir, "vendor", "pkg", "file.php"), "{{name}}")

	require.NoError(t, Substitute(dstDir, demoMapping(), SkipVendor))

	assert.Equal(t, "{{name}}", readFile(t, filepath.Join(dstDir, "vendor", "pkg", "file.php")))
}

func TestSubstituteNotRecursive(t *testing.T) {
	dstDir := t.TempDir()
	writeFile(t, filepath.Join(dstDir, "file.txt"), "{{name}}")

	// The replacement value contains another token; it must not be expanded.
	mapping := NewMapping(map[string]string{
		VarName: "{{slug}}",
		VarSlug: "demo-plugin",
	})
	require.NoError(t, Substitute(dstDir, mapping, SkipVendor))

	assert.Equal(t, "{{slug}}", readFile(t, filepath.Join(dstDir, "file.txt")))
}

func TestSubstituteIdempotent(t *testing.T) {
	dstDir := t.TempDir()
	writeFile(t, filepath.Join(dstDir, "readme"), "{{name}} by {{authorName}}")

	require.NoError(t, Substitute(dstDir, demoMapping(), SkipVendor))
	require.NoError(t, Substitute(dstDir, demoMapping(), SkipVendor))

	assert.Equal(t, "Demo Plugin by Jane", readFile(t, filepath.Join(dstDir, "readme")))
}

func TestSubstituteEmptyMapping(t *testing.T) {
	dstDir := t.TempDir()
	writeFile(t, filepath.Join(dstDir, "readme"), "{{name}}")

	require.NoError(t, Substitute(dstDir, Mapping{}, SkipVendor))
	assert.Equal(t, "{{name}}", readFile(t, filepath.Join(dstDir, "readme")))
}
