package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wpforge/wpforge/cli/util"
)

// RenameEntrypoints renames the CLI and plugin entry stubs at the root of
// dstDir to their slug-based names. The CLI entry additionally becomes
// owner-executable. This pass runs before the generic marker rename, so that
// pass never sees these two files under their original names. Missing
// entrypoints are not an error: not every template ships them.
func RenameEntrypoints(dstDir, slug string) error {
	if slug == "" {
		return fmt.Errorf("plugin slug is not set")
	}

	entrypoints := []struct {
		from       string
		to         string
		executable bool
	}{
		{CliEntryName, slug, true},
		{PluginEntryName, slug + ".php", false},
	}

	for _, entry := range entrypoints {
		srcPath := filepath.Join(dstDir, entry.from)
		if !util.IsRegularFile(srcPath) {
			continue
		}
		dstPath := filepath.Join(dstDir, entry.to)
		if err := os.Rename(srcPath, dstPath); err != nil {
			return fmt.Errorf("error renaming %s to %s: %s", srcPath, dstPath, err)
		}
		if entry.executable {
			if err := os.Chmod(dstPath, executablePermissions); err != nil {
				return fmt.Errorf("failed to change permissions of %s: %s", dstPath, err)
			}
		}
	}

	return nil
}

// RenameMarked renames every file under dstDir whose name ends with
// markerSuffix by stripping exactly that suffix, within the same directory.
// Paths matched by the skip predicate are left untouched.
func RenameMarked(dstDir, markerSuffix string, skip SkipFunc) error {
	if markerSuffix == "" {
		return fmt.Errorf("marker suffix is empty")
	}

	return filepath.Walk(dstDir,
		func(filePath string, fileInfo os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			relPath, err := relWalkPath(dstDir, filePath)
			if err != nil {
				return err
			}

			if fileInfo.IsDir() {
				if relPath != "." && skip != nil && skip(relPath) {
					return filepath.SkipDir
				}
				return nil
			}
			if skip != nil && skip(relPath) {
				return nil
			}
			if !strings.HasSuffix(fileInfo.Name(), markerSuffix) {
				return nil
			}

			newPath := strings.TrimSuffix(filePath, markerSuffix)
			if err = os.Rename(filePath, newPath); err != nil {
				return fmt.Errorf("error renaming %s to %s: %s", filePath, newPath, err)
			}

			return nil
		})
}
