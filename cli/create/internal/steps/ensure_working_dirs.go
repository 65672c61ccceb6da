package steps

import (
	create_ctx "github.com/wpforge/wpforge/cli/create/context"
	"github.com/wpforge/wpforge/cli/scaffold"
)

// EnsureWorkingDirs represents the working directory initialization step.
type EnsureWorkingDirs struct{}

// Run creates the fixed set of runtime directories with their version
// control markers.
func (EnsureWorkingDirs) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *TemplateCtx,
) error {
	return scaffold.EnsureWorkingDirs(templateCtx.AppPath, scaffold.WorkingDirs)
}
