package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
	"todo/internal/ui"
)

func init() {
	Register(&ViewCmd{})
}

// ViewCmd opens the full-screen task viewer.
type ViewCmd struct{}

func (c *ViewCmd) Name() string      { return "view" }
func (c *ViewCmd) Aliases() []string { return []string{"tui"} }
func (c *ViewCmd) Synopsis() string  { return "Full-screen task viewer" }
func (c *ViewCmd) Usage() string     { return "view" }

func (c *ViewCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ViewCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, r *output.Renderer, args []string, out, errOut io.Writer) int {
	if err := ui.Run(ctx, svc); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}
