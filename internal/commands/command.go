// Package commands provides the shell command interface and implementations.
package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

// Command defines the interface for shell commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// RegisterFlags registers command-specific flags. Called with a
	// fresh FlagSet on every dispatch; registering a flag resets its
	// value, so commands carry no state between invocations.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// svc is the session task store; r renders styled output.
	// args contains positional arguments after flag parsing.
	// Returns a status code from the exitcode package.
	Run(ctx context.Context, cfg *config.Config, svc service.Service, r *output.Renderer, args []string, out, errOut io.Writer) int
}

// parseID extracts the single task-ID argument common to show, edit,
// rm, done, undone, and toggle.
func parseID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, errors.New("task id required")
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("unexpected argument: %s", args[1])
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// writeOpError reports a service error on errOut and picks the status
// code. Validation and not-found failures are user errors; anything
// else would be a bug in the backend.
func writeOpError(errOut io.Writer, err error) int {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(errOut, "error: %s\n", verr.Reason)
		return exitcode.UserError
	}
	var nferr *service.NotFoundError
	if errors.As(err, &nferr) {
		fmt.Fprintf(errOut, "error: %v\n", nferr)
		return exitcode.UserError
	}
	fmt.Fprintf(errOut, "error: %v\n", err)
	return exitcode.InternalError
}

// optString is a flag value that remembers whether it was set, so
// commands can tell "--title \"\"" apart from an absent --title.
type optString struct {
	set bool
	val string
}

func (o *optString) Set(s string) error {
	o.set = true
	o.val = s
	return nil
}

func (o *optString) String() string {
	return o.val
}

func (o *optString) ptr() *string {
	if !o.set {
		return nil
	}
	return &o.val
}
