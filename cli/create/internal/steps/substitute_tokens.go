package steps

import (
	create_ctx "github.com/wpforge/wpforge/cli/create/context"
	"github.com/wpforge/wpforge/cli/scaffold"
)

// SubstituteTokens represents the placeholder substitution step.
type SubstituteTokens struct{}

// Run replaces every placeholder token in every non-binary file of the
// materialized tree, leaving vendored subtrees untouched.
func (SubstituteTokens) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *TemplateCtx,
) error {
	mapping := scaffold.NewMapping(templateCtx.Vars)
	return scaffold.Substitute(templateCtx.AppPath, mapping, scaffold.SkipVendor)
}
