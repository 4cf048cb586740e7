package memory_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"todo/internal/backend/memory"
	"todo/internal/service"
)

func strptr(s string) *string { return &s }

func boolptr(b bool) *bool { return &b }

// wantValidation asserts err is a ValidationError with the given reason.
func wantValidation(t *testing.T, err error, reason string) {
	t.Helper()
	var verr *service.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Reason != reason {
		t.Errorf("reason = %q, want %q", verr.Reason, reason)
	}
}

// wantNotFound asserts err is a NotFoundError for the given id.
func wantNotFound(t *testing.T, err error, id int) {
	t.Helper()
	var nferr *service.NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nferr.ID != id {
		t.Errorf("id = %d, want %d", nferr.ID, id)
	}
}

func TestAddTask_FirstTask(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	got, err := store.AddTask(ctx, "Buy milk", "")
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	want := service.Task{ID: 1, Title: "Buy milk", Description: "", Completed: false}
	if got != want {
		t.Errorf("AddTask = %+v, want %+v", got, want)
	}
}

func TestAddTask_TrimsFields(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	got, err := store.AddTask(ctx, "  padded title  ", "  padded description  ")
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if got.Title != "padded title" {
		t.Errorf("Title = %q, want trimmed", got.Title)
	}
	if got.Description != "padded description" {
		t.Errorf("Description = %q, want trimmed", got.Description)
	}
}

func TestAddTask_Validation(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		reason      string
	}{
		{"empty title", "", "x", "empty title"},
		{"whitespace title", "   ", "x", "empty title"},
		{"title too long", strings.Repeat("a", 101), "", "title too long"},
		{"description too long", "ok", strings.Repeat("b", 501), "description too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.New()
			ctx := context.Background()

			_, err := store.AddTask(ctx, tt.title, tt.description)
			wantValidation(t, err, tt.reason)

			// A rejected add must leave the store untouched.
			sum, _ := store.Summary(ctx)
			if sum.Total != 0 {
				t.Errorf("store has %d tasks after rejected add", sum.Total)
			}
		})
	}
}

func TestAddTask_AtTheCaps(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	// Exactly at the caps is still valid.
	if _, err := store.AddTask(ctx, strings.Repeat("a", 100), strings.Repeat("b", 500)); err != nil {
		t.Errorf("AddTask at caps: %v", err)
	}

	// Caps count runes, not bytes.
	if _, err := store.AddTask(ctx, strings.Repeat("ä", 100), strings.Repeat("ö", 500)); err != nil {
		t.Errorf("AddTask with multibyte runes at caps: %v", err)
	}
}

func TestAddTask_IDsIncreaseAcrossDeletes(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	a, _ := store.AddTask(ctx, "a", "")
	b, _ := store.AddTask(ctx, "b", "")
	if _, err := store.DeleteTask(ctx, a.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	c, _ := store.AddTask(ctx, "c", "")

	if !(a.ID < b.ID && b.ID < c.ID) {
		t.Errorf("ids not strictly increasing: %d %d %d", a.ID, b.ID, c.ID)
	}
}

func TestDeleteTask(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	created, _ := store.AddTask(ctx, "to remove", "")

	removed, err := store.DeleteTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if removed != created {
		t.Errorf("removed = %+v, want %+v", removed, created)
	}

	// Deleting the same id again fails and removes nothing further.
	_, err = store.DeleteTask(ctx, created.ID)
	wantNotFound(t, err, created.ID)

	sum, _ := store.Summary(ctx)
	if sum.Total != 0 {
		t.Errorf("total = %d, want 0", sum.Total)
	}
}

func TestDeleteTask_InvalidID(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	for _, id := range []int{0, -1} {
		_, err := store.DeleteTask(ctx, id)
		wantValidation(t, err, "invalid id")
	}
}

func TestUpdateTask_PartialFields(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	created, _ := store.AddTask(ctx, "Buy milk", "from the corner shop")

	// Only the title changes; the description stays.
	got, err := store.UpdateTask(ctx, created.ID, strptr("Buy oat milk"), nil)
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if got.Title != "Buy oat milk" {
		t.Errorf("Title = %q, want %q", got.Title, "Buy oat milk")
	}
	if got.Description != "from the corner shop" {
		t.Errorf("Description = %q, want unchanged", got.Description)
	}

	// Only the description changes; the title stays.
	got, err = store.UpdateTask(ctx, created.ID, nil, strptr("any brand"))
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if got.Title != "Buy oat milk" {
		t.Errorf("Title = %q, want unchanged", got.Title)
	}
	if got.Description != "any brand" {
		t.Errorf("Description = %q, want %q", got.Description, "any brand")
	}
}

func TestUpdateTask_PreservesCompleted(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	created, _ := store.AddTask(ctx, "task", "")
	if _, err := store.ToggleComplete(ctx, created.ID, boolptr(true)); err != nil {
		t.Fatalf("ToggleComplete: %v", err)
	}

	got, err := store.UpdateTask(ctx, created.ID, strptr("renamed"), nil)
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if !got.Completed {
		t.Error("update reset the completed flag")
	}
}

func TestUpdateTask_Validation(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	created, _ := store.AddTask(ctx, "original", "desc")

	tests := []struct {
		name   string
		id     int
		title  *string
		desc   *string
		reason string
	}{
		{"invalid id", 0, strptr("x"), nil, "invalid id"},
		{"no fields", created.ID, nil, nil, "no fields provided"},
		{"empty new title", created.ID, strptr("   "), nil, "empty title"},
		{"new title too long", created.ID, strptr(strings.Repeat("a", 101)), nil, "title too long"},
		{"new description too long", created.ID, nil, strptr(strings.Repeat("b", 501)), "description too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.UpdateTask(ctx, tt.id, tt.title, tt.desc)
			wantValidation(t, err, tt.reason)
		})
	}

	// Failed updates leave the task alone.
	got, _ := store.GetTask(ctx, created.ID)
	if got.Title != "original" || got.Description != "desc" {
		t.Errorf("task changed after rejected updates: %+v", got)
	}
}

func TestUpdateTask_EmptyDescriptionClearsIt(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	created, _ := store.AddTask(ctx, "task", "something")
	got, err := store.UpdateTask(ctx, created.ID, nil, strptr(""))
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if got.Description != "" {
		t.Errorf("Description = %q, want cleared", got.Description)
	}
}

func TestUpdateTask_NotFound(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	_, err := store.UpdateTask(ctx, 42, strptr("x"), nil)
	wantNotFound(t, err, 42)
}

func TestToggleComplete_RoundTrip(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	created, _ := store.AddTask(ctx, "Buy milk", "")

	got, err := store.ToggleComplete(ctx, created.ID, nil)
	if err != nil {
		t.Fatalf("ToggleComplete: %v", err)
	}
	if !got.Completed {
		t.Error("first toggle: completed = false, want true")
	}

	got, err = store.ToggleComplete(ctx, created.ID, nil)
	if err != nil {
		t.Fatalf("ToggleComplete: %v", err)
	}
	if got.Completed {
		t.Error("second toggle: completed = true, want false")
	}
}

func TestToggleComplete_Explicit(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	created, _ := store.AddTask(ctx, "task", "")

	// An explicit value sets rather than flips, even when redundant.
	for i := 0; i < 2; i++ {
		got, err := store.ToggleComplete(ctx, created.ID, boolptr(true))
		if err != nil {
			t.Fatalf("ToggleComplete: %v", err)
		}
		if !got.Completed {
			t.Error("explicit true: completed = false")
		}
	}

	got, err := store.ToggleComplete(ctx, created.ID, boolptr(false))
	if err != nil {
		t.Fatalf("ToggleComplete: %v", err)
	}
	if got.Completed {
		t.Error("explicit false: completed = true")
	}
}

func TestToggleComplete_Errors(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	_, err := store.ToggleComplete(ctx, 0, nil)
	wantValidation(t, err, "invalid id")

	_, err = store.ToggleComplete(ctx, 7, nil)
	wantNotFound(t, err, 7)
}

func TestListTasks_ReflectsMutations(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	a, _ := store.AddTask(ctx, "A", "")
	store.AddTask(ctx, "B", "")
	if _, err := store.DeleteTask(ctx, a.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}

	tasks, err := store.ListTasks(ctx, service.FilterAll)
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "B" {
		t.Errorf("ListTasks = %+v, want exactly [B]", tasks)
	}
}

func TestListTasks_Filter(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	done, _ := store.AddTask(ctx, "done", "")
	store.AddTask(ctx, "open one", "")
	store.AddTask(ctx, "open two", "")
	store.ToggleComplete(ctx, done.ID, boolptr(true))

	complete, err := store.ListTasks(ctx, service.FilterComplete)
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(complete) != 1 || complete[0].Title != "done" {
		t.Errorf("complete = %+v, want [done]", complete)
	}

	incomplete, err := store.ListTasks(ctx, service.FilterIncomplete)
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(incomplete) != 2 {
		t.Errorf("len(incomplete) = %d, want 2", len(incomplete))
	}
}

func TestListTasks_EmptyStore(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	// Filtering an empty store is not an error.
	tasks, err := store.ListTasks(ctx, service.FilterComplete)
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("tasks = %+v, want empty", tasks)
	}
}

func TestSummary(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	sum, _ := store.Summary(ctx)
	if sum != (service.Summary{}) {
		t.Errorf("empty store summary = %+v", sum)
	}

	first, _ := store.AddTask(ctx, "one", "")
	store.AddTask(ctx, "two", "")
	store.AddTask(ctx, "three", "")
	store.ToggleComplete(ctx, first.ID, boolptr(true))

	sum, _ = store.Summary(ctx)
	want := service.Summary{Total: 3, Completed: 1, Incomplete: 2}
	if sum != want {
		t.Errorf("summary = %+v, want %+v", sum, want)
	}
}

func TestGetTask(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	created, _ := store.AddTask(ctx, "a task", "with details")

	got, err := store.GetTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got != created {
		t.Errorf("GetTask = %+v, want %+v", got, created)
	}

	_, err = store.GetTask(ctx, 99)
	wantNotFound(t, err, 99)

	_, err = store.GetTask(ctx, -2)
	wantValidation(t, err, "invalid id")
}

func TestClear(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	store.AddTask(ctx, "a", "")
	store.AddTask(ctx, "b", "")

	n, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 2 {
		t.Errorf("Clear removed %d, want 2", n)
	}

	// Cleared IDs stay retired for the rest of the session.
	next, _ := store.AddTask(ctx, "c", "")
	if next.ID != 3 {
		t.Errorf("id after clear = %d, want 3", next.ID)
	}
}
