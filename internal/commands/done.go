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
	Register(&DoneCmd{})
	Register(&UndoneCmd{})
	Register(&ToggleCmd{})
}

// DoneCmd marks a task completed.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return nil }
func (c *DoneCmd) Synopsis() string  { return "Mark a task completed" }
func (c *DoneCmd) Usage() string     { return "done <id>" }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, r *output.Renderer, args []string, out, errOut io.Writer) int {
	completed := true
	return runToggle(ctx, cfg, svc, r, &completed, args, out, errOut)
}

// UndoneCmd marks a task incomplete.
type UndoneCmd struct{}

func (c *UndoneCmd) Name() string      { return "undone" }
func (c *UndoneCmd) Aliases() []string { return nil }
func (c *UndoneCmd) Synopsis() string  { return "Mark a task incomplete" }
func (c *UndoneCmd) Usage() string     { return "undone <id>" }

func (c *UndoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UndoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, r *output.Renderer, args []string, out, errOut io.Writer) int {
	completed := false
	return runToggle(ctx, cfg, svc, r, &completed, args, out, errOut)
}

// ToggleCmd flips a task's completion status.
type ToggleCmd struct{}

func (c *ToggleCmd) Name() string      { return "toggle" }
func (c *ToggleCmd) Aliases() []string { return nil }
func (c *ToggleCmd) Synopsis() string  { return "Flip a task between complete and incomplete" }
func (c *ToggleCmd) Usage() string     { return "toggle <id>" }

func (c *ToggleCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ToggleCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, r *output.Renderer, args []string, out, errOut io.Writer) int {
	return runToggle(ctx, cfg, svc, r, nil, args, out, errOut)
}

// runToggle is the shared implementation for done, undone, and toggle.
func runToggle(ctx context.Context, cfg *config.Config, svc service.Service, r *output.Renderer, explicit *bool, args []string, out, errOut io.Writer) int {
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	task, err := svc.ToggleComplete(ctx, id, explicit)
	if err != nil {
		return writeOpError(errOut, err)
	}

	if !cfg.Quiet {
		status := "incomplete"
		if task.Completed {
			status = "complete"
		}
		fmt.Fprintln(out, r.Success(fmt.Sprintf("Task %q (ID: %d) marked %s", task.Title, task.ID, status)))
	}
	return exitcode.Success
}
