// Package scaffold implements the template materialization engine:
// recursive template tree copying, marker-suffix renaming, literal
// placeholder substitution and working directory initialization.
//
// The operations are designed to run in a fixed order: copy, entrypoint
// renames, generic marker rename, substitution, working directories.
// Rename and substitution passes are idempotent: re-running them against an
// already materialized tree changes nothing.
package scaffold

import (
	"os"
	"path"
	"strings"
)

const (
	// MarkerSuffix is the filename suffix identifying template files that
	// are renamed after copying.
	MarkerSuffix = ".stub"

	// CliEntryName is the template file renamed to the plugin console
	// entrypoint ({slug}).
	CliEntryName = "cli" + MarkerSuffix

	// PluginEntryName is the template file renamed to the plugin main file
	// ({slug}.php).
	PluginEntryName = "plugin.php" + MarkerSuffix

	// GitKeepFileName is the zero-byte marker created in otherwise empty
	// working directories so that version control retains them.
	GitKeepFileName = ".gitkeep"
)

const (
	defaultDirPermissions  = os.FileMode(0o755)
	defaultFilePermissions = os.FileMode(0o644)
	executablePermissions  = os.FileMode(0o755)
)

// SkipFunc decides whether relPath, a slash-separated path relative to the
// tree root, is excluded from a materialization pass. Returning true for a
// directory excludes its whole subtree.
type SkipFunc func(relPath string) bool

// SkipVendor excludes third-party and version control subtrees from rename
// and substitution passes. Files swept in by a prior partial run must never
// be mutated.
func SkipVendor(relPath string) bool {
	first, _, _ := strings.Cut(path.Clean(relPath), "/")
	return first == "vendor" || first == ".git"
}
