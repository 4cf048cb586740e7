package service

import "fmt"

// ValidationError reports input that violates an operation's contract.
// Reason identifies the violated rule ("empty title", "title too long",
// "description too long", "invalid id", "no fields provided").
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NotFoundError reports a task ID with no matching task in the store.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task not found: %d", e.ID)
}
