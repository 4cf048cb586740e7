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
	Register(&SummaryCmd{})
}

// SummaryCmd implements the summary command.
type SummaryCmd struct{}

func (c *SummaryCmd) Name() string      { return "summary" }
func (c *SummaryCmd) Aliases() []string { return []string{"stats"} }
func (c *SummaryCmd) Synopsis() string  { return "Show task counts by status" }
func (c *SummaryCmd) Usage() string     { return "summary" }

func (c *SummaryCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SummaryCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, r *output.Renderer, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	sum, err := svc.Summary(ctx)
	if err != nil {
		return writeOpError(errOut, err)
	}

	fmt.Fprintln(out, r.SummaryBlock(sum))
	return exitcode.Success
}
