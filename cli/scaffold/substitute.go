package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// isBinary reports whether content is treated as binary. A null byte
// anywhere in the content excludes the file from substitution.
func isBinary(content []byte) bool {
	return bytes.IndexByte(content, 0) >= 0
}

// Substitute performs a single simultaneous literal replacement of every
// token of the mapping in every non-binary file under dstDir, rewriting each
// changed file in place. Binary files and paths matched by the skip
// predicate are left byte-identical. Replacement values are not rescanned,
// so substitution never expands recursively.
func Substitute(dstDir string, mapping Mapping, skip SkipFunc) error {
	if len(mapping) == 0 {
		return nil
	}
	replacer := mapping.Replacer()

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
			if !fileInfo.Mode().IsRegular() {
				return nil
			}

			content, err := os.ReadFile(filePath)
			if err != nil {
				return fmt.Errorf("error reading %s: %s", filePath, err)
			}
			if isBinary(content) {
				return nil
			}

			substituted := replacer.Replace(string(content))
			if substituted == string(content) {
				return nil
			}

			// Single buffered write: a file is either fully original or
			// fully substituted, never half-written.
			if err = os.WriteFile(filePath, []byte(substituted),
				fileInfo.Mode().Perm()); err != nil {
				return fmt.Errorf("error writing %s: %s", filePath, err)
			}

			return nil
		})
}
