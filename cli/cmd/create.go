package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/wpforge/wpforge/cli/cmdcontext"
	"github.com/wpforge/wpforge/cli/create"
	"github.com/wpforge/wpforge/cli/create/builtin_templates"
	create_ctx "github.com/wpforge/wpforge/cli/create/context"
	"github.com/wpforge/wpforge/cli/install"
	"github.com/wpforge/wpforge/cli/util"
)

var (
	pluginName         string
	pluginSlug         string
	dstPath            string
	forceMode          bool
	nonInteractiveMode bool
	skipInstall        bool
	varsFromCli        *[]string
	varsFile           string
	createVarFlags     varFlags

	// errNoPluginName is returned if --name option was not provided.
	errNoPluginName = util.NewArgError("plugin name is required: " +
		"specify it with the --name option.")
)

// NewCreateCmd creates a plugin project from a template.
func NewCreateCmd() *cobra.Command {
	createCmd := &cobra.Command{
		Use:   "create [TEMPLATE_NAME] [flags]",
		Short: "Create a plugin project from a template",
		Run: func(cmd *cobra.Command, args []string) {
			cmdCtx.CommandName = cmd.Name()
			err := internalCreateCmd(&cmdCtx, args)
			util.HandleCmdErr(cmd, err)
		},
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: createValidArgsFunction,
		Long: `Create a plugin project from a template.

Built-in templates:
	plugin: a standard WordPress plugin layout.`,
		Example: `
# Create a plugin my-plugin from the built-in template.

    $ wpforge create --name "My Plugin"

# Create a plugin in /srv/plugins, force replacing of the project directory
# (my-plugin) if it exists. User interaction is disabled.

    $ wpforge create --name "My Plugin" -f --non-interactive --dst /srv/plugins

# Create a plugin from the custom template "blocks" found in the configured
# template search paths.

    $ wpforge create blocks --name "My Plugin"`,
	}

	createCmd.Flags().StringVarP(&pluginName, "name", "n", "", "Plugin name")
	createCmd.Flags().StringVar(&pluginSlug, "slug", "",
		"Plugin slug (default is derived from the name)")
	createCmd.Flags().BoolVarP(&forceMode, "force", "f", false,
		"Force rewrite project directory if already exists")
	createCmd.Flags().BoolVarP(&nonInteractiveMode, "non-interactive", "s", false,
		"Non-interactive mode")
	createCmd.Flags().BoolVar(&skipInstall, "skip-install", false,
		"Do not run composer install after materialization")
	varsFromCli = createCmd.Flags().StringArray("var", []string{},
		"Variable definition. Usage: --var var_name=value")
	createCmd.Flags().StringVar(&varsFile, "vars-file", "",
		"Variables definition file path")
	createCmd.Flags().StringVarP(&dstPath, "dst", "d", "",
		"Path to the directory where the project will be created")
	createVarFlags.add(createCmd)

	return createCmd
}

// createValidArgsFunction returns valid templates for `create` command.
func createValidArgsFunction(
	_ *cobra.Command,
	args []string,
	toComplete string,
) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveDefault
	}
	templates := make([]string, 0, len(builtin_templates.Names))

	// Append built-in templates.
	templates = append(templates, builtin_templates.Names[:]...)

	// Append templates from configured search paths.
	for _, templateDir := range cliOpts.Templates {
		entries, err := os.ReadDir(templateDir.Path)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			entryName := entry.Name()
			if entry.IsDir() {
				templates = append(templates, entryName)
			} else if strings.HasSuffix(entryName, ".tgz") {
				templates = append(templates, strings.TrimSuffix(entryName, ".tgz"))
			} else if strings.HasSuffix(entryName, ".tar.gz") {
				templates = append(templates, strings.TrimSuffix(entryName, ".tar.gz"))
			}
		}
	}
	return templates, cobra.ShellCompDirectiveNoFileComp
}

// internalCreateCmd is the create command implementation.
func internalCreateCmd(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	if pluginName == "" {
		return errNoPluginName
	}

	createCtx := create_ctx.CreateCtx{
		PluginName:     pluginName,
		Slug:           pluginSlug,
		TemplateName:   builtin_templates.DefaultName,
		ForceMode:      forceMode,
		SilentMode:     nonInteractiveMode || !isatty.IsTerminal(os.Stdin.Fd()),
		VarsFromCli:    append(createVarFlags.definitions(), *varsFromCli...),
		VarsFile:       varsFile,
		DestinationDir: dstPath,
		CliOpts:        cliOpts,
	}

	if err := create.FillCtx(cliOpts, &createCtx, args); err != nil {
		return err
	}
	if err := create.Run(&createCtx); err != nil {
		return err
	}

	if skipInstall {
		return nil
	}

	baseDir := createCtx.DestinationDir
	if baseDir == "" {
		baseDir = createCtx.WorkDir
	}
	installCtx := install.InstallCtx{
		ProjectDir: filepath.Join(baseDir, createCtx.Slug),
		Verbose:    cmdCtx.Cli.Verbose,
	}

	return install.Run(&installCtx, cliOpts)
}
