package steps

import (
	create_ctx "github.com/wpforge/wpforge/cli/create/context"
	"github.com/wpforge/wpforge/cli/scaffold"
)

// RenameEntrypoints renames the CLI and plugin entry stubs to their
// slug-based names before the generic marker pass runs.
type RenameEntrypoints struct{}

// Run renames the entrypoint stubs.
func (RenameEntrypoints) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *TemplateCtx,
) error {
	return scaffold.RenameEntrypoints(templateCtx.AppPath,
		templateCtx.Vars[scaffold.VarSlug])
}
