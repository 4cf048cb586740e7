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
)

func init() {
	Register(&ClearCmd{})
}

// ClearCmd implements the clear command.
type ClearCmd struct {
	force bool
}

// SetForce sets the force flag (for testing).
func (c *ClearCmd) SetForce(force bool) {
	c.force = force
}

func (c *ClearCmd) Name() string      { return "clear" }
func (c *ClearCmd) Aliases() []string { return nil }
func (c *ClearCmd) Synopsis() string  { return "Delete every task" }
func (c *ClearCmd) Usage() string     { return "clear [--force]" }

func (c *ClearCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.force, "force", false, "")
}

func (c *ClearCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, r *output.Renderer, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	// Wiping a non-empty store is destructive enough to guard.
	if !c.force {
		sum, err := svc.Summary(ctx)
		if err != nil {
			return writeOpError(errOut, err)
		}
		if sum.Total > 0 {
			fmt.Fprintln(errOut, "error: store not empty (use --force)")
			return exitcode.UserError
		}
	}

	n, err := svc.Clear(ctx)
	if err != nil {
		return writeOpError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, r.Success(fmt.Sprintf("Removed %d tasks", n)))
	}
	return exitcode.Success
}
