// Package service defines the backend-agnostic interface for task operations.
package service

import "fmt"

// Field limits, measured in runes after trimming.
const (
	// TitleMaxLen is the maximum task title length.
	TitleMaxLen = 100

	// DescriptionMaxLen is the maximum task description length.
	DescriptionMaxLen = 500
)

// Task represents a single task item.
type Task struct {
	ID          int
	Title       string
	Description string
	Completed   bool
}

// Summary holds per-status task counts.
type Summary struct {
	Total      int
	Completed  int
	Incomplete int
}

// StatusFilter narrows a listing by completion status.
type StatusFilter string

const (
	// FilterAll matches every task.
	FilterAll StatusFilter = ""

	// FilterComplete matches completed tasks.
	FilterComplete StatusFilter = "complete"

	// FilterIncomplete matches tasks not yet completed.
	FilterIncomplete StatusFilter = "incomplete"
)

// ParseStatusFilter converts user input to a StatusFilter.
// An empty string means no filter.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch StatusFilter(s) {
	case FilterAll, FilterComplete, FilterIncomplete:
		return StatusFilter(s), nil
	}
	return FilterAll, fmt.Errorf("invalid status filter: %s", s)
}

// Matches reports whether a task passes the filter.
func (f StatusFilter) Matches(t Task) bool {
	switch f {
	case FilterComplete:
		return t.Completed
	case FilterIncomplete:
		return !t.Completed
	}
	return true
}
