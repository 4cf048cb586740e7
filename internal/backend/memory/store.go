package memory

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	"todo/internal/service"
)

// Store implements service.Service on top of an in-memory Repository.
// All validation happens here, before the repository is touched, so a
// failed operation leaves the store exactly as it was.
//
// The mutex serializes callers. The interactive shell is strictly
// sequential, but the viewer reads through the same Store and nothing
// stops a library user from sharing one across goroutines.
type Store struct {
	mu   sync.Mutex
	repo *Repository
}

var _ service.Service = (*Store)(nil)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{repo: NewRepository()}
}

// AddTask implements service.Service.
func (s *Store) AddTask(ctx context.Context, title, description string) (service.Task, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if title == "" {
		return service.Task{}, &service.ValidationError{Reason: "empty title"}
	}
	if utf8.RuneCountInString(title) > service.TitleMaxLen {
		return service.Task{}, &service.ValidationError{Reason: "title too long"}
	}
	if utf8.RuneCountInString(description) > service.DescriptionMaxLen {
		return service.Task{}, &service.ValidationError{Reason: "description too long"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Add(title, description), nil
}

// DeleteTask implements service.Service.
func (s *Store) DeleteTask(ctx context.Context, id int) (service.Task, error) {
	if id < 1 {
		return service.Task{}, &service.ValidationError{Reason: "invalid id"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.repo.Remove(id)
	if !ok {
		return service.Task{}, &service.NotFoundError{ID: id}
	}
	return t, nil
}

// UpdateTask implements service.Service.
func (s *Store) UpdateTask(ctx context.Context, id int, newTitle, newDescription *string) (service.Task, error) {
	if id < 1 {
		return service.Task{}, &service.ValidationError{Reason: "invalid id"}
	}
	if newTitle == nil && newDescription == nil {
		return service.Task{}, &service.ValidationError{Reason: "no fields provided"}
	}

	var title, description string
	if newTitle != nil {
		title = strings.TrimSpace(*newTitle)
		if title == "" {
			return service.Task{}, &service.ValidationError{Reason: "empty title"}
		}
		if utf8.RuneCountInString(title) > service.TitleMaxLen {
			return service.Task{}, &service.ValidationError{Reason: "title too long"}
		}
	}
	if newDescription != nil {
		description = strings.TrimSpace(*newDescription)
		if utf8.RuneCountInString(description) > service.DescriptionMaxLen {
			return service.Task{}, &service.ValidationError{Reason: "description too long"}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.repo.Update(id, func(t *service.Task) {
		if newTitle != nil {
			t.Title = title
		}
		if newDescription != nil {
			t.Description = description
		}
	})
	if !ok {
		return service.Task{}, &service.NotFoundError{ID: id}
	}
	return t, nil
}

// ListTasks implements service.Service.
func (s *Store) ListTasks(ctx context.Context, filter service.StatusFilter) ([]service.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.repo.All()
	if filter == service.FilterAll {
		return all, nil
	}
	out := make([]service.Task, 0, len(all))
	for _, t := range all {
		if filter.Matches(t) {
			out = append(out, t)
		}
	}
	return out, nil
}

// GetTask implements service.Service.
func (s *Store) GetTask(ctx context.Context, id int) (service.Task, error) {
	if id < 1 {
		return service.Task{}, &service.ValidationError{Reason: "invalid id"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.repo.Get(id)
	if !ok {
		return service.Task{}, &service.NotFoundError{ID: id}
	}
	return t, nil
}

// Summary implements service.Service.
func (s *Store) Summary(ctx context.Context) (service.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum service.Summary
	for _, t := range s.repo.All() {
		sum.Total++
		if t.Completed {
			sum.Completed++
		} else {
			sum.Incomplete++
		}
	}
	return sum, nil
}

// ToggleComplete implements service.Service.
func (s *Store) ToggleComplete(ctx context.Context, id int, explicit *bool) (service.Task, error) {
	if id < 1 {
		return service.Task{}, &service.ValidationError{Reason: "invalid id"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.repo.Update(id, func(t *service.Task) {
		if explicit != nil {
			t.Completed = *explicit
		} else {
			t.Completed = !t.Completed
		}
	})
	if !ok {
		return service.Task{}, &service.NotFoundError{ID: id}
	}
	return t, nil
}

// Clear implements service.Service.
func (s *Store) Clear(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Clear(), nil
}
