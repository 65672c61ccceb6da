package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/otiai10/copy"
	"github.com/wpforge/wpforge/cli/util"
)

// Copy copies every file under srcDir to the corresponding relative path
// under dstDir, creating missing directories and overwriting existing files.
// An existing dstDir keeps its permission bits: the overlay flow copies
// straight into the user's working directory.
func Copy(srcDir, dstDir string) error {
	if !util.IsDir(srcDir) {
		return fmt.Errorf("template directory %q does not exist", srcDir)
	}

	existingInfo, statErr := os.Stat(dstDir)

	if err := copy.Copy(srcDir, dstDir); err != nil {
		return fmt.Errorf("template copying failed: %s", err)
	}

	if statErr == nil {
		return os.Chmod(dstDir, existingInfo.Mode().Perm())
	}

	return nil
}

// CopyFS copies every file under root in fsys to the corresponding relative
// path under dstDir. It is used to instantiate templates embedded in the
// binary. Embedded files carry no permission bits, so regular files get the
// default mode; executables are handled by the entrypoint rename pass.
func CopyFS(fsys fs.FS, root, dstDir string) error {
	return fs.WalkDir(fsys, root, func(filePath string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, filePath)
		if err != nil {
			return err
		}
		dstPath := filepath.Join(dstDir, relPath)

		if entry.IsDir() {
			return os.MkdirAll(dstPath, defaultDirPermissions)
		}

		content, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("error reading embedded %s: %s", filePath, err)
		}
		if err = os.MkdirAll(filepath.Dir(dstPath), defaultDirPermissions); err != nil {
			return err
		}
		if err = os.WriteFile(dstPath, content, defaultFilePermissions); err != nil {
			return fmt.Errorf("error writing %s: %s", dstPath, err)
		}

		return nil
	})
}

// relWalkPath returns the slash-separated path of filePath relative to root.
func relWalkPath(root, filePath string) (string, error) {
	relPath, err := filepath.Rel(root, filePath)
	if err != nil {
		return "", err
	}

	return path.Clean(filepath.ToSlash(relPath)), nil
}
