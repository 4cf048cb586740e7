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
	Register(&EditCmd{})
}

// EditCmd implements the edit command. A flag left off means "keep the
// current value"; supplying --desc "" clears the description.
type EditCmd struct {
	title       optString
	description optString
}

// SetTitle sets the title flag (for testing).
func (c *EditCmd) SetTitle(title string) {
	c.title = optString{set: true, val: title}
}

// SetDescription sets the description flag (for testing).
func (c *EditCmd) SetDescription(d string) {
	c.description = optString{set: true, val: d}
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return []string{"update"} }
func (c *EditCmd) Synopsis() string  { return "Change a task's title and/or description" }
func (c *EditCmd) Usage() string     { return "edit [--title <text>] [--desc <text>] <id>" }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	// Reset before registering: flag.Var keeps prior values, unlike
	// StringVar, and a stale "set" would leak into the next dispatch.
	c.title = optString{}
	c.description = optString{}
	fs.Var(&c.title, "title", "")
	fs.Var(&c.title, "t", "")
	fs.Var(&c.description, "desc", "")
	fs.Var(&c.description, "d", "")
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, r *output.Renderer, args []string, out, errOut io.Writer) int {
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	task, err := svc.UpdateTask(ctx, id, c.title.ptr(), c.description.ptr())
	if err != nil {
		return writeOpError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, r.Success(fmt.Sprintf("Task %d updated", task.ID)))
	}
	fmt.Fprintln(out, r.TaskLine(task))
	return exitcode.Success
}
