package steps

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/otiai10/copy"
	create_ctx "github.com/wpforge/wpforge/cli/create/context"
)

// MoveProjectDirectory represents the staging directory move step.
type MoveProjectDirectory struct{}

// Run moves the staging directory to the destination. With force mode set,
// an existing destination is removed first and recreated fully from the
// staged tree.
func (MoveProjectDirectory) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *TemplateCtx,
) error {
	if templateCtx.TargetAppPath == "" {
		return nil
	}

	if _, err := os.Stat(templateCtx.TargetAppPath); err == nil {
		if !createCtx.ForceMode {
			return fmt.Errorf("%q already exists", templateCtx.TargetAppPath)
		}
		if err = os.RemoveAll(templateCtx.TargetAppPath); err != nil {
			return fmt.Errorf("failed to remove %s: %s", templateCtx.TargetAppPath, err)
		}
	}

	if err := copy.Copy(templateCtx.AppPath, templateCtx.TargetAppPath); err != nil {
		return err
	}

	if err := os.RemoveAll(templateCtx.AppPath); err != nil {
		log.Warnf("Failed to remove staging directory: %s", err)
	}
	templateCtx.AppPath = templateCtx.TargetAppPath

	return nil
}
