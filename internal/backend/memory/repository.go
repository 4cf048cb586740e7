// Package memory implements the in-memory task backend.
package memory

import "todo/internal/service"

// Repository owns the task collection and the ID counter. It performs
// no validation; that is the Store's job. Tasks are kept in insertion
// order, which is the order a listing presents them in.
type Repository struct {
	tasks  []service.Task
	nextID int
}

// NewRepository creates an empty repository. The first assigned ID is 1.
func NewRepository() *Repository {
	return &Repository{nextID: 1}
}

// Add constructs a task with a freshly assigned ID and stores it.
// Every assigned ID is strictly greater than any ID assigned before,
// regardless of removals in between.
func (r *Repository) Add(title, description string) service.Task {
	t := service.Task{
		ID:          r.nextID,
		Title:       title,
		Description: description,
	}
	r.nextID++
	r.tasks = append(r.tasks, t)
	return t
}

// Get returns the task with the given ID.
func (r *Repository) Get(id int) (service.Task, bool) {
	for _, t := range r.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return service.Task{}, false
}

// Update applies mutate to the stored task with the given ID and
// returns the updated copy.
func (r *Repository) Update(id int, mutate func(*service.Task)) (service.Task, bool) {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			mutate(&r.tasks[i])
			return r.tasks[i], true
		}
	}
	return service.Task{}, false
}

// Remove deletes the task with the given ID and returns the removed
// task. There is no tombstone; the ID is simply gone.
func (r *Repository) Remove(id int) (service.Task, bool) {
	for i, t := range r.tasks {
		if t.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return t, true
		}
	}
	return service.Task{}, false
}

// All returns a snapshot of every stored task in insertion order.
func (r *Repository) All() []service.Task {
	out := make([]service.Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}

// Count returns the number of stored tasks.
func (r *Repository) Count() int {
	return len(r.tasks)
}

// Clear removes every task and returns how many were removed. The ID
// counter keeps its value so cleared IDs are never handed out again.
func (r *Repository) Clear() int {
	n := len(r.tasks)
	r.tasks = nil
	return n
}
