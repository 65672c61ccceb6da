package steps

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/manifoldco/promptui"
	create_ctx "github.com/wpforge/wpforge/cli/create/context"
	"github.com/wpforge/wpforge/cli/scaffold"
	"github.com/wpforge/wpforge/cli/util"
)

// varPrompt describes an interactive prompt to get the value of a variable
// from a user.
type varPrompt struct {
	// Name is a variable name to store a value to.
	Name string
	// Label is an input prompt for the variable.
	Label string
	// Re is a regular expression for the value validation.
	Re string
	// Required forbids an empty value.
	Required bool
	// Default computes a default value from already collected variables.
	Default func(vars map[string]string) string
}

// varPrompts is the fixed prompt set, in prompting order. Derived variables
// come after the ones their defaults are computed from.
var varPrompts = []varPrompt{
	{
		Name:  scaffold.VarDescription,
		Label: "Description",
	},
	{
		Name:     scaffold.VarAuthorName,
		Label:    "Author name",
		Required: true,
	},
	{
		Name:     scaffold.VarAuthorEmail,
		Label:    "Author email",
		Re:       `^[^@\s]+@[^@\s]+$`,
		Required: true,
	},
	{
		Name:  scaffold.VarVendor,
		Label: "Vendor (composer package prefix)",
		Re:    `^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`,
		Default: func(vars map[string]string) string {
			return vars[scaffold.VarSlug]
		},
	},
	{
		Name:  scaffold.VarNamespace,
		Label: "PHP namespace",
		Re:    `^[A-Za-z_][A-Za-z0-9_]*(\\[A-Za-z_][A-Za-z0-9_]*)*$`,
		Default: func(vars map[string]string) string {
			return scaffold.Namespace(vars[scaffold.VarPluginName])
		},
	},
	{
		Name:  scaffold.VarLicense,
		Label: "License",
		Default: func(map[string]string) string {
			return "GPL-2.0-or-later"
		},
	},
	{
		Name:  scaffold.VarFuncPrefix,
		Label: "Function name prefix",
		Re:    `^[a-z_][a-z0-9_]*$`,
		Default: func(vars map[string]string) string {
			return scaffold.FuncPrefix(vars[scaffold.VarSlug])
		},
	},
	{
		Name:  scaffold.VarConstPrefix,
		Label: "Constant name prefix",
		Re:    `^[A-Z_][A-Z0-9_]*$`,
		Default: func(vars map[string]string) string {
			return scaffold.ConstPrefix(vars[scaffold.VarSlug])
		},
	},
}

// validate checks a variable value against the prompt constraints.
func (prompt varPrompt) validate(input string) error {
	if input == "" {
		if prompt.Required {
			return errors.New("value cannot be empty")
		}
		return nil
	}
	if prompt.Re == "" {
		return nil
	}

	matched, err := regexp.MatchString(prompt.Re, input)
	if err != nil {
		return fmt.Errorf("failed to validate user input: %s", err)
	}
	if !matched {
		return fmt.Errorf("value does not match %s", prompt.Re)
	}

	return nil
}

// CollectVarsFromUser collects template variables from user in interactive
// mode.
type CollectVarsFromUser struct{}

// Run collects the missing template variables. Already set variables are
// validated and kept. In silent mode defaults are used; a missing required
// variable fails the run.
func (CollectVarsFromUser) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *TemplateCtx,
) error {
	for _, prompt := range varPrompts {
		if existingValue, found := templateCtx.Vars[prompt.Name]; found {
			if err := prompt.validate(existingValue); err != nil {
				return fmt.Errorf("invalid value of %s variable: %s", prompt.Name, err)
			}
			continue
		}

		defaultValue := ""
		if prompt.Default != nil {
			defaultValue = prompt.Default(templateCtx.Vars)
		}

		if createCtx.SilentMode {
			if defaultValue == "" && prompt.Required {
				return fmt.Errorf("%s variable value is not set", prompt.Name)
			}
			templateCtx.Vars[prompt.Name] = defaultValue
			continue
		}

		userPrompt := promptui.Prompt{
			Label:     prompt.Label,
			Default:   defaultValue,
			AllowEdit: true,
			Validate:  prompt.validate,
		}
		input, err := userPrompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) {
				return util.ErrCmdAbort
			}
			return fmt.Errorf("error reading user input: %s", err)
		}
		templateCtx.Vars[prompt.Name] = input
	}

	return nil
}
