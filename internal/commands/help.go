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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "help" }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, r *output.Renderer, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Commands:
  add [--desc <text>] <title...>          Add a task (alias: a)
  list [--status <complete|incomplete>]   List tasks (alias: ls)
  show <id>                               Show one task in full
  edit [--title <text>] [--desc <text>] <id>
                                          Change a task (alias: update)
  rm <id>                                 Delete a task (alias: delete)
  done <id>                               Mark a task completed
  undone <id>                             Mark a task incomplete
  toggle <id>                             Flip completion status
  summary                                 Task counts by status (alias: stats)
  clear [--force]                         Delete every task
  view                                    Full-screen task viewer (alias: tui)
  help                                    This text
  version                                 Print version
  quit                                    Leave the shell (aliases: exit, q)

Titles and text flags accept double quotes: edit --title "Buy oat milk" 3
All tasks live in memory and vanish when the session ends.
`
