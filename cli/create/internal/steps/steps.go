// Package steps provides a set of handlers for create command chain of
// responsibility.
package steps

import (
	create_ctx "github.com/wpforge/wpforge/cli/create/context"
)

// TemplateCtx tracks the state of a single template materialization run.
type TemplateCtx struct {
	// AppPath is a path to the directory the template is materialized in.
	AppPath string
	// TargetAppPath is a path the materialized project is to be moved to
	// after materialization. Empty for in-place (overlay) runs.
	TargetAppPath string
	// Vars is a map of variables to be used for placeholder substitution.
	Vars map[string]string
}

// NewTemplateContext creates new template materialization context.
func NewTemplateContext() TemplateCtx {
	var ctx TemplateCtx
	ctx.Vars = make(map[string]string)
	return ctx
}

// Step is an interface for a single step in create chain.
type Step interface {
	Run(createCtx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error
}
