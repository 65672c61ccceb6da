package steps

import (
	"fmt"
	"strings"

	"github.com/apex/log"
	create_ctx "github.com/wpforge/wpforge/cli/create/context"
	"github.com/wpforge/wpforge/cli/scaffold"
)

const formatError = `wrong variable definition format: %s
Usage: --var "var-name=value"`

// settableVarNames is the closed set of variable names accepted from the
// command line and vars files, in scaffold.VarNames order. The predefined
// pluginName/name/slug variables are excluded: the project directory name,
// entrypoint renames and the install path all key on the slug fixed at
// pipeline start, so overriding it mid-pipeline would desync them.
var settableVarNames = func() []string {
	predefined := map[string]bool{
		scaffold.VarPluginName: true,
		scaffold.VarName:       true,
		scaffold.VarSlug:       true,
	}
	names := make([]string, 0, len(scaffold.VarNames))
	for _, varName := range scaffold.VarNames {
		if !predefined[varName] {
			names = append(names, varName)
		}
	}
	return names
}()

var knownVars = func() map[string]bool {
	known := make(map[string]bool, len(settableVarNames))
	for _, varName := range settableVarNames {
		known[varName] = true
	}
	return known
}()

// FillVarsFromCli collects variables passed using command line args.
type FillVarsFromCli struct{}

// Run collects variables passed using command line args.
func (FillVarsFromCli) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *TemplateCtx,
) error {
	for _, varDefinition := range createCtx.VarsFromCli {
		varDefinition = strings.TrimSpace(varDefinition)
		varName, value, found := strings.Cut(varDefinition, "=")
		if !found || varName == "" || value == "" {
			return fmt.Errorf(formatError, varDefinition)
		}
		if !knownVars[varName] {
			return fmt.Errorf("unknown variable %q, supported variables: %s",
				varName, strings.Join(settableVarNames, ", "))
		}
		log.Debugf("Setting var from CLI: %s = %s", varName, value)
		templateCtx.Vars[varName] = value
	}
	return nil
}
