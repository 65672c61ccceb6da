// Package cmdcontext provides a context for commands execution.
package cmdcontext

// CmdCtx is a global context for commands.
type CmdCtx struct {
	// Cli - CLI context. Contains flags passed when starting wpforge.
	Cli CliCtx
	// CommandName contains name of the command.
	CommandName string
}

// CliCtx - wpforge launch context.
type CliCtx struct {
	// ConfigPath is a path of the used configuration file.
	ConfigPath string
	// Verbose, if set, enables streaming output of long-running external
	// commands instead of a spinner.
	Verbose bool
}
