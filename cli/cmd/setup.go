package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/wpforge/wpforge/cli/cmdcontext"
	"github.com/wpforge/wpforge/cli/create"
	create_ctx "github.com/wpforge/wpforge/cli/create/context"
	"github.com/wpforge/wpforge/cli/install"
	"github.com/wpforge/wpforge/cli/util"
)

var (
	setupPluginName  string
	setupSlug        string
	setupForce       bool
	setupSilent      bool
	setupSkipInstall bool
	setupVarsFromCli *[]string
	setupVarsFile    string
	setupTemplateDir string
	setupVarFlags    varFlags
)

// NewSetupCmd sets up a plugin in the current directory from its stub
// sources. Unlike create, the template is materialized in place over an
// existing checkout; the stub directory is removed afterwards.
func NewSetupCmd() *cobra.Command {
	setupCmd := &cobra.Command{
		Use:   "setup [flags]",
		Short: "Scaffold a plugin in place over the current directory",
		Run: func(cmd *cobra.Command, args []string) {
			cmdCtx.CommandName = cmd.Name()
			err := internalSetupCmd(&cmdCtx, args)
			util.HandleCmdErr(cmd, err)
		},
		Args: cobra.ExactArgs(0),
		Example: `
# Scaffold the checked out plugin boilerplate in the current directory.

    $ wpforge setup --name "My Plugin"

# Scaffold from a custom stub directory.

    $ wpforge setup --name "My Plugin" --template-dir ./my-stubs`,
	}

	setupCmd.Flags().StringVarP(&setupPluginName, "name", "n", "", "Plugin name")
	setupCmd.Flags().StringVar(&setupSlug, "slug", "",
		"Plugin slug (default is derived from the name)")
	setupCmd.Flags().BoolVarP(&setupForce, "force", "f", false,
		"Do not ask for confirmation")
	setupCmd.Flags().BoolVarP(&setupSilent, "non-interactive", "s", false,
		"Non-interactive mode")
	setupCmd.Flags().BoolVar(&setupSkipInstall, "skip-install", false,
		"Do not run composer install after materialization")
	setupVarsFromCli = setupCmd.Flags().StringArray("var", []string{},
		"Variable definition. Usage: --var var_name=value")
	setupCmd.Flags().StringVar(&setupVarsFile, "vars-file", "",
		"Variables definition file path")
	setupCmd.Flags().StringVar(&setupTemplateDir, "template-dir", "",
		"Stub template directory (default is \"stubs\" in the current directory)")
	setupVarFlags.add(setupCmd)

	return setupCmd
}

// internalSetupCmd is the setup command implementation.
func internalSetupCmd(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	if setupPluginName == "" {
		return errNoPluginName
	}

	workDir, err := os.Getwd()
	if err != nil {
		return err
	}

	silentMode := setupSilent || !isatty.IsTerminal(os.Stdin.Fd())
	if !silentMode && !setupForce {
		confirmed, err := util.AskConfirm(os.Stdin,
			"Scaffold plugin files into the current directory?")
		if err != nil {
			return err
		}
		if !confirmed {
			return util.ErrCmdAbort
		}
	}

	createCtx := create_ctx.CreateCtx{
		PluginName:   setupPluginName,
		Slug:         setupSlug,
		WorkDir:      workDir,
		TemplateDir:  setupTemplateDir,
		VarsFromCli:  append(setupVarFlags.definitions(), *setupVarsFromCli...),
		VarsFile:     setupVarsFile,
		SilentMode:   silentMode,
		Overlay:      true,
		CleanupPaths: setupCleanupPaths(workDir, setupTemplateDir),
		CliOpts:      cliOpts,
	}

	if err := create.FillCtx(cliOpts, &createCtx, args); err != nil {
		return err
	}
	if err := create.Run(&createCtx); err != nil {
		return err
	}

	if setupSkipInstall {
		return nil
	}

	installCtx := install.InstallCtx{
		ProjectDir: workDir,
		Verbose:    cmdCtx.Cli.Verbose,
	}

	return install.Run(&installCtx, cliOpts)
}

// setupCleanupPaths returns the template inputs to remove from the
// materialized tree. The stub directory is removed only when it lives
// inside the project.
func setupCleanupPaths(workDir, templateDir string) []string {
	if templateDir == "" {
		return []string{"stubs"}
	}

	absTemplateDir, err := filepath.Abs(templateDir)
	if err != nil {
		return nil
	}
	relPath, err := filepath.Rel(workDir, absTemplateDir)
	if err != nil || relPath == "." || strings.HasPrefix(relPath, "..") {
		return nil
	}

	return []string{relPath}
}
