package steps

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	create_ctx "github.com/wpforge/wpforge/cli/create/context"
	"github.com/wpforge/wpforge/cli/scaffold"
)

// PrintFollowUpMessage prints the next-steps message after a successful
// materialization.
type PrintFollowUpMessage struct {
	// Writer is used to write follow-up message.
	Writer io.Writer
}

// Run prints the follow-up message. Suppressed in silent mode.
func (printFollowUpMsgStep PrintFollowUpMessage) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *TemplateCtx,
) error {
	if createCtx.SilentMode {
		return nil
	}

	fmt.Fprintln(printFollowUpMsgStep.Writer,
		color.GreenString("Plugin %q is ready in %s.",
			templateCtx.Vars[scaffold.VarPluginName], templateCtx.AppPath))

	return nil
}
