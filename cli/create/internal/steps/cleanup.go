package steps

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	create_ctx "github.com/wpforge/wpforge/cli/create/context"
)

// Cleanup removes template inputs from the materialized tree. Only the
// overlay flow needs it: there the stub sources live inside the project
// checkout and must not ship with the generated plugin. The cleanup set is
// an explicit parameter of the run, never discovered from global state.
type Cleanup struct{}

// Run removes the configured cleanup paths. Missing paths are skipped.
func (Cleanup) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *TemplateCtx,
) error {
	for _, relPath := range createCtx.CleanupPaths {
		fullPath := filepath.Join(templateCtx.AppPath, relPath)
		if _, err := os.Stat(fullPath); os.IsNotExist(err) {
			continue
		}
		log.Debugf("Removing %s", fullPath)
		if err := os.RemoveAll(fullPath); err != nil {
			return fmt.Errorf("failed to remove %s: %s", fullPath, err)
		}
	}

	return nil
}
