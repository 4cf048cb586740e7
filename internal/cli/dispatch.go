// Package cli runs the interactive shell and dispatches its commands.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

// Dispatcher resolves one tokenized input line to a command and runs
// it. It is invoked once per shell line rather than once per process;
// everything a command needs beyond the line itself is fixed at
// construction.
type Dispatcher struct {
	registry *commands.Registry
	cfg      *config.Config
	svc      service.Service
	renderer *output.Renderer
}

// NewDispatcher creates a dispatcher bound to a session store.
func NewDispatcher(registry *commands.Registry, cfg *config.Config, svc service.Service, renderer *output.Renderer) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		cfg:      cfg,
		svc:      svc,
		renderer: renderer,
	}
}

// Run dispatches one tokenized line and returns the command's status.
// An empty line is a no-op.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		return exitcode.Success
	}

	cmdName := args[0]

	// Flags belong to commands; a line can't start with one.
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We report errors ourselves
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args[1:]); err != nil {
		return writeFlagError(errOut, err)
	}

	// A leading dash in the positionals means the flag wasn't declared
	// after all the declared ones were consumed.
	positional := fs.Args()
	if len(positional) > 0 && strings.HasPrefix(positional[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positional[0])
		return exitcode.UserError
	}

	return cmd.Run(ctx, d.cfg, d.svc, d.renderer, positional, out, errOut)
}

// writeFlagError translates flag package errors into shell messages.
func writeFlagError(errOut io.Writer, err error) int {
	errStr := err.Error()

	if rest, ok := strings.CutPrefix(errStr, "flag needs an argument: "); ok {
		fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", rest)
		return exitcode.UserError
	}

	if strings.HasPrefix(errStr, "flag provided but not defined: ") {
		flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
		return exitcode.UserError
	}

	fmt.Fprintf(errOut, "error: %s\n", errStr)
	return exitcode.UserError
}
