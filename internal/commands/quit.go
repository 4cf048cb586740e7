package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&QuitCmd{})
}

// QuitCmd ends the interactive session.
type QuitCmd struct{}

func (c *QuitCmd) Name() string      { return "quit" }
func (c *QuitCmd) Aliases() []string { return []string{"exit", "q"} }
func (c *QuitCmd) Synopsis() string  { return "Leave the shell" }
func (c *QuitCmd) Usage() string     { return "quit" }

func (c *QuitCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *QuitCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, r *output.Renderer, args []string, out, errOut io.Writer) int {
	return exitcode.Quit
}
