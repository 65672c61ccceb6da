// Package create implements the plugin project creation pipeline.
package create

import (
	"fmt"
	"os"

	"github.com/wpforge/wpforge/cli/config"
	create_ctx "github.com/wpforge/wpforge/cli/create/context"
	"github.com/wpforge/wpforge/cli/create/internal/steps"
	"github.com/wpforge/wpforge/cli/scaffold"
	"github.com/wpforge/wpforge/cli/util"
	"github.com/wpforge/wpforge/cli/version"
)

// FillCtx fills create context.
func FillCtx(cliOpts *config.CliOpts, createCtx *create_ctx.CreateCtx, args []string) error {
	for _, templateOpts := range cliOpts.Templates {
		createCtx.TemplateSearchPaths = append(createCtx.TemplateSearchPaths,
			templateOpts.Path)
	}

	if len(args) >= 1 {
		createCtx.TemplateName = args[0]
	}

	if createCtx.Slug == "" {
		createCtx.Slug = scaffold.Slugify(createCtx.PluginName)
	}

	if createCtx.WorkDir == "" {
		workingDir, err := os.Getwd()
		if err != nil {
			return err
		}
		createCtx.WorkDir = workingDir
	}

	return nil
}

// rollbackOnErr removes the staging directory. In-place (overlay) runs have
// no staging directory and are left as-is.
func rollbackOnErr(templateCtx *steps.TemplateCtx) {
	if templateCtx.TargetAppPath != "" && templateCtx.AppPath != "" &&
		templateCtx.AppPath != templateCtx.TargetAppPath {
		os.RemoveAll(templateCtx.AppPath)
	}
	templateCtx.AppPath = ""
}

// Run creates a plugin project from a template.
func Run(createCtx *create_ctx.CreateCtx) error {
	if err := checkCtx(createCtx); err != nil {
		return util.InternalError("Create context check failed: %s", version.GetVersion, err)
	}

	stepsChain := []steps.Step{
		steps.SetPredefinedVariables{},
		steps.LoadVarsFile{},
		steps.FillVarsFromCli{},
		steps.CollectVarsFromUser{},
		steps.CreateProjectDirectory{},
		steps.CopyTemplate{},
		steps.RenameEntrypoints{},
		steps.RenameStubFiles{},
		steps.SubstituteTokens{},
		steps.EnsureWorkingDirs{},
		steps.Cleanup{},
		steps.MoveProjectDirectory{},
		steps.PrintFollowUpMessage{Writer: os.Stdout},
	}

	templateCtx := steps.NewTemplateContext()
	for _, step := range stepsChain {
		if err := step.Run(createCtx, &templateCtx); err != nil {
			rollbackOnErr(&templateCtx)
			return err
		}
	}

	return nil
}

// checkCtx checks create context for validity.
func checkCtx(createCtx *create_ctx.CreateCtx) error {
	if createCtx.PluginName == "" {
		return fmt.Errorf("plugin name is missing")
	}
	if !createCtx.Overlay && createCtx.TemplateName == "" {
		return fmt.Errorf("template name is missing")
	}

	return nil
}
