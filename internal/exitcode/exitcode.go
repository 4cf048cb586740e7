// Package exitcode defines status codes returned by commands.
package exitcode

// Status codes shared by the dispatcher and the commands.
const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad input, not found).
	UserError = 1

	// InternalError indicates an unexpected failure inside the program.
	InternalError = 2
)

// Quit is a sentinel returned by the quit command. The interactive
// shell translates it into a clean session end; it is never used as a
// process exit code.
const Quit = -1
