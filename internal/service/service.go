package service

import "context"

// Service defines the interface for task backend operations.
// All store mutations and queries go through this interface.
// Commands never touch the backing collection directly.
type Service interface {
	// AddTask validates and stores a new task. The backend assigns the
	// ID; callers never supply one. Title and description are trimmed
	// before validation.
	AddTask(ctx context.Context, title, description string) (Task, error)

	// DeleteTask removes a task permanently and returns the removed
	// task so callers can report its title.
	DeleteTask(ctx context.Context, id int) (Task, error)

	// UpdateTask changes the title and/or description of a task.
	// A nil pointer means "leave this field alone"; at least one field
	// must be provided. Completion status never changes here.
	UpdateTask(ctx context.Context, id int, newTitle, newDescription *string) (Task, error)

	// ListTasks returns tasks in insertion order, optionally filtered
	// by completion status. An empty store yields an empty slice, not
	// an error.
	ListTasks(ctx context.Context, filter StatusFilter) ([]Task, error)

	// GetTask returns a single task by ID.
	GetTask(ctx context.Context, id int) (Task, error)

	// Summary returns per-status task counts. Pure read, no mutation.
	Summary(ctx context.Context) (Summary, error)

	// ToggleComplete sets the completion status to explicit when
	// non-nil, otherwise flips the current value. Returns the updated
	// task.
	ToggleComplete(ctx context.Context, id int, explicit *bool) (Task, error)

	// Clear removes every task and reports how many were removed.
	// ID assignment is unaffected: IDs are never reused within a
	// session, even after a clear.
	Clear(ctx context.Context) (int, error)
}
