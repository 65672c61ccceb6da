package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wpforge/wpforge/cli/scaffold"
)

// varFlags holds fixed template variables bound to command line flags,
// shared by the create and setup commands.
type varFlags struct {
	description string
	authorName  string
	authorEmail string
	vendorName  string
	namespace   string
	license     string
	funcPrefix  string
	constPrefix string
}

// add binds the variable flags to cmd.
func (flags *varFlags) add(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flags.description, "description", "", "Plugin description")
	cmd.Flags().StringVar(&flags.authorName, "author", "", "Author name")
	cmd.Flags().StringVar(&flags.authorEmail, "author-email", "", "Author email")
	cmd.Flags().StringVar(&flags.vendorName, "vendor", "", "Composer vendor name")
	cmd.Flags().StringVar(&flags.namespace, "namespace", "", "PHP namespace")
	cmd.Flags().StringVar(&flags.license, "license", "", "License identifier")
	cmd.Flags().StringVar(&flags.funcPrefix, "func-prefix", "", "Function name prefix")
	cmd.Flags().StringVar(&flags.constPrefix, "const-prefix", "", "Constant name prefix")
}

// definitions returns variable definitions in the --var format for every
// flag that was set.
func (flags *varFlags) definitions() []string {
	bindings := []struct {
		varName string
		value   string
	}{
		{scaffold.VarDescription, flags.description},
		{scaffold.VarAuthorName, flags.authorName},
		{scaffold.VarAuthorEmail, flags.authorEmail},
		{scaffold.VarVendor, flags.vendorName},
		{scaffold.VarNamespace, flags.namespace},
		{scaffold.VarLicense, flags.license},
		{scaffold.VarFuncPrefix, flags.funcPrefix},
		{scaffold.VarConstPrefix, flags.constPrefix},
	}

	var definitions []string
	for _, binding := range bindings {
		if binding.value != "" {
			definitions = append(definitions,
				fmt.Sprintf("%s=%s", binding.varName, binding.value))
		}
	}

	return definitions
}
