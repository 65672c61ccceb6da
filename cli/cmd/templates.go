package cmd

import (
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/wpforge/wpforge/cli/cmdcontext"
	"github.com/wpforge/wpforge/cli/create/builtin_templates"
	"github.com/wpforge/wpforge/cli/util"
)

// NewTemplatesCmd lists the available plugin templates.
func NewTemplatesCmd() *cobra.Command {
	templatesCmd := &cobra.Command{
		Use:   "templates",
		Short: "List available plugin templates",
		Run: func(cmd *cobra.Command, args []string) {
			cmdCtx.CommandName = cmd.Name()
			err := internalTemplatesCmd(&cmdCtx, args)
			util.HandleCmdErr(cmd, err)
		},
		Args: cobra.ExactArgs(0),
	}

	return templatesCmd
}

// internalTemplatesCmd is the templates command implementation.
func internalTemplatesCmd(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	templatesTable := table.NewWriter()
	templatesTable.SetOutputMirror(os.Stdout)
	templatesTable.AppendHeader(table.Row{"name", "source", "location"})

	for _, name := range builtin_templates.Names {
		templatesTable.AppendRow(table.Row{name, "built-in", ""})
	}

	for _, templateDir := range cliOpts.Templates {
		entries, err := os.ReadDir(templateDir.Path)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			entryName := entry.Name()
			switch {
			case entry.IsDir():
				templatesTable.AppendRow(table.Row{entryName, "directory",
					templateDir.Path})
			case strings.HasSuffix(entryName, ".tgz"):
				templatesTable.AppendRow(table.Row{
					strings.TrimSuffix(entryName, ".tgz"), "archive",
					templateDir.Path})
			case strings.HasSuffix(entryName, ".tar.gz"):
				templatesTable.AppendRow(table.Row{
					strings.TrimSuffix(entryName, ".tar.gz"), "archive",
					templateDir.Path})
			}
		}
	}

	templatesTable.SetStyle(table.StyleLight)
	templatesTable.Render()

	return nil
}
