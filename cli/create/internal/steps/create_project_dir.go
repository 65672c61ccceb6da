package steps

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	create_ctx "github.com/wpforge/wpforge/cli/create/context"
	"github.com/wpforge/wpforge/cli/scaffold"
)

// CreateProjectDirectory represents the project directory creation step.
// The template is materialized in a temporary staging directory first, so a
// failing run never leaves a partial project at the destination. Overlay
// runs materialize straight into the working directory instead.
type CreateProjectDirectory struct{}

// Run creates the staging directory and resolves the target project path.
func (CreateProjectDirectory) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *TemplateCtx,
) error {
	if createCtx.Overlay {
		if createCtx.WorkDir == "" {
			return fmt.Errorf("working directory is not set")
		}
		templateCtx.AppPath = createCtx.WorkDir
		return nil
	}

	dirName := templateCtx.Vars[scaffold.VarSlug]
	if dirName == "" {
		return fmt.Errorf("plugin slug is not set")
	}

	baseDir := createCtx.DestinationDir
	if baseDir == "" {
		baseDir = createCtx.WorkDir
	}
	projectDirectory := filepath.Join(baseDir, dirName)

	if _, err := os.Stat(projectDirectory); err == nil {
		if !createCtx.ForceMode {
			return fmt.Errorf("%q already exists, use --force to overwrite it",
				projectDirectory)
		}
	}

	projectDirectory, err := filepath.Abs(projectDirectory)
	if err != nil {
		return err
	}

	log.Infof("Creating plugin project in %q", projectDirectory)
	templateCtx.TargetAppPath = projectDirectory

	templateCtx.AppPath, err = os.MkdirTemp("", dirName+"*")
	if err != nil {
		return fmt.Errorf("failed to create staging directory: %s", err)
	}

	return nil
}
