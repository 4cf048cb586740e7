package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
)

// Shell is the interactive session loop: prompt, read, tokenize,
// dispatch, repeat. It ends on quit, EOF, or context cancellation.
type Shell struct {
	dispatcher *Dispatcher
	cfg        *config.Config
	renderer   *output.Renderer
	logger     *log.Logger
	in         io.Reader
	out        io.Writer
	errOut     io.Writer
}

// NewShell creates a shell around a dispatcher.
func NewShell(d *Dispatcher, cfg *config.Config, renderer *output.Renderer, logger *log.Logger, in io.Reader, out, errOut io.Writer) *Shell {
	return &Shell{
		dispatcher: d,
		cfg:        cfg,
		renderer:   renderer,
		logger:     logger,
		in:         in,
		out:        out,
		errOut:     errOut,
	}
}

// Run drives the session and returns the process exit code. Command
// failures are reported and re-prompted, never fatal; the session
// itself always ends cleanly.
func (s *Shell) Run(ctx context.Context) int {
	if !s.cfg.Quiet {
		fmt.Fprintln(s.out, s.renderer.Welcome())
	}

	scanner := bufio.NewScanner(s.in)
	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("session cancelled")
			return s.finish()
		default:
		}

		fmt.Fprint(s.out, s.renderer.Prompt(s.cfg.Prompt))
		if !scanner.Scan() {
			// EOF ends the session the same way quit does.
			fmt.Fprintln(s.out)
			return s.finish()
		}

		args, err := SplitLine(scanner.Text())
		if err != nil {
			fmt.Fprintf(s.errOut, "error: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		s.logger.Debug("dispatch", "command", args[0], "args", len(args)-1)
		code := s.dispatcher.Run(ctx, args, s.out, s.errOut)
		if code == exitcode.Quit {
			return s.finish()
		}
		if code != exitcode.Success {
			s.logger.Debug("command failed", "command", args[0], "code", code)
		}
	}
}

func (s *Shell) finish() int {
	if !s.cfg.Quiet {
		fmt.Fprintln(s.out, s.renderer.Goodbye())
	}
	return exitcode.Success
}
