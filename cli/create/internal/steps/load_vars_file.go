package steps

import (
	"fmt"
	"strings"

	"github.com/apex/log"
	create_ctx "github.com/wpforge/wpforge/cli/create/context"
	"github.com/wpforge/wpforge/cli/util"
)

// LoadVarsFile represents variables file load step.
type LoadVarsFile struct{}

// Run loads variables from a YAML file mapping variable names to values.
func (LoadVarsFile) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *TemplateCtx,
) error {
	if createCtx.VarsFile == "" { // Skip if no file specified.
		return nil
	}

	rawVars, err := util.ParseYAML(createCtx.VarsFile)
	if err != nil {
		return fmt.Errorf("vars file loading error: %s", err)
	}

	for varName, rawValue := range rawVars {
		if !knownVars[varName] {
			return fmt.Errorf("unknown variable %q in %s, supported variables: %s",
				varName, createCtx.VarsFile, strings.Join(settableVarNames, ", "))
		}
		value, ok := rawValue.(string)
		if !ok {
			return fmt.Errorf("variable %q in %s is not a string", varName,
				createCtx.VarsFile)
		}
		log.Debugf("Setting var from vars file: %s = %s", varName, value)
		templateCtx.Vars[varName] = value
	}

	return nil
}
