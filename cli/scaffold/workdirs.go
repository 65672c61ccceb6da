package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wpforge/wpforge/cli/util"
)

// WorkingDirs is the fixed set of runtime directories every materialized
// plugin project gets.
var WorkingDirs = []string{
	filepath.Join("storage", "logs"),
	filepath.Join("storage", "framework", "views"),
	filepath.Join("storage", "framework", "cache"),
	filepath.Join("storage", "framework", "sessions"),
}

// EnsureWorkingDirs creates every directory of dirs under dstDir, including
// missing parents, and puts a zero-byte marker file inside each one. The
// call is idempotent: existing directories and markers are left untouched.
func EnsureWorkingDirs(dstDir string, dirs []string) error {
	for _, dir := range dirs {
		fullPath := filepath.Join(dstDir, dir)
		if err := util.CreateDirectory(fullPath, defaultDirPermissions); err != nil {
			return fmt.Errorf("failed to create working directory %s: %s", fullPath, err)
		}

		markerPath := filepath.Join(fullPath, GitKeepFileName)
		if util.IsRegularFile(markerPath) {
			continue
		}
		markerFile, err := os.OpenFile(markerPath, os.O_CREATE|os.O_WRONLY,
			defaultFilePermissions)
		if err != nil {
			return fmt.Errorf("failed to create %s: %s", markerPath, err)
		}
		markerFile.Close()
	}

	return nil
}
