package steps

import (
	create_ctx "github.com/wpforge/wpforge/cli/create/context"
	"github.com/wpforge/wpforge/cli/scaffold"
)

// RenameStubFiles represents the generic marker rename step.
type RenameStubFiles struct{}

// Run strips the marker suffix from every stub file name, leaving vendored
// subtrees untouched.
func (RenameStubFiles) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *TemplateCtx,
) error {
	return scaffold.RenameMarked(templateCtx.AppPath, scaffold.MarkerSuffix,
		scaffold.SkipVendor)
}
