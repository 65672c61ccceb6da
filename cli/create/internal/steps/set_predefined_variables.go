package steps

import (
	"fmt"

	create_ctx "github.com/wpforge/wpforge/cli/create/context"
	"github.com/wpforge/wpforge/cli/scaffold"
)

// SetPredefinedVariables represents a step for setting pre-defined
// variables.
type SetPredefinedVariables struct{}

// Run sets predefined variables values: the plugin name and its slug.
func (SetPredefinedVariables) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *TemplateCtx,
) error {
	if createCtx.PluginName == "" {
		return fmt.Errorf("plugin name cannot be empty")
	}

	slug := createCtx.Slug
	if slug == "" {
		slug = scaffold.Slugify(createCtx.PluginName)
	}
	if slug == "" {
		return fmt.Errorf("cannot derive a slug from plugin name %q", createCtx.PluginName)
	}

	templateCtx.Vars[scaffold.VarPluginName] = createCtx.PluginName
	templateCtx.Vars[scaffold.VarName] = createCtx.PluginName
	templateCtx.Vars[scaffold.VarSlug] = slug

	return nil
}
