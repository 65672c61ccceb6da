// Package create_ctx provides a context for plugin project creation.
package create_ctx

import "github.com/wpforge/wpforge/cli/config"

// CreateCtx contains information for creating plugin projects from
// templates.
type CreateCtx struct {
	// PluginName is the human-readable plugin name.
	PluginName string
	// Slug is the plugin slug. Derived from PluginName when empty.
	Slug string
	// WorkDir is wpforge launch working directory.
	WorkDir string
	// DestinationDir is the path where a project directory will be created.
	DestinationDir string
	// TemplateSearchPaths is a set of paths to search for a template.
	TemplateSearchPaths []string
	// TemplateName is a template to use for project creation.
	TemplateName string
	// TemplateDir is an explicit stub template directory. Used by the
	// overlay flow instead of a template name lookup.
	TemplateDir string
	// VarsFromCli - template variables definitions provided in command line.
	VarsFromCli []string
	// VarsFile is a YAML file with variables definitions.
	VarsFile string
	// ForceMode - if flag is set, remove existing project directory.
	ForceMode bool
	// SilentMode if set, disables user interaction. Missing required
	// variables fail project creation.
	SilentMode bool
	// Overlay if set, the template is materialized in place over WorkDir
	// instead of a freshly created project directory.
	Overlay bool
	// CleanupPaths are paths relative to the materialized tree to remove
	// after materialization. The overlay flow uses it to drop the stub
	// sources from the generated plugin.
	CleanupPaths []string
	// CliOpts is loaded wpforge configuration.
	CliOpts *config.CliOpts
}
