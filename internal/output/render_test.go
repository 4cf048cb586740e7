package output_test

import (
	"strings"
	"testing"

	"todo/internal/output"
	"todo/internal/service"
)

// plain returns a renderer whose output carries no escape sequences.
func plain(icons bool) *output.Renderer {
	return output.NewRenderer(output.Options{Color: false, Icons: icons})
}

func TestTaskLine(t *testing.T) {
	r := plain(true)

	got := r.TaskLine(service.Task{ID: 1, Title: "Buy milk"})
	if got != "   1  ○ Buy milk" {
		t.Errorf("TaskLine = %q", got)
	}

	got = r.TaskLine(service.Task{ID: 42, Title: "Ship it", Completed: true})
	if got != "  42  ✓ Ship it" {
		t.Errorf("TaskLine = %q", got)
	}
}

func TestTaskLine_ASCIIIcons(t *testing.T) {
	r := plain(false)

	got := r.TaskLine(service.Task{ID: 3, Title: "open"})
	if got != "   3  [ ] open" {
		t.Errorf("TaskLine = %q", got)
	}

	got = r.TaskLine(service.Task{ID: 3, Title: "done", Completed: true})
	if got != "   3  [x] done" {
		t.Errorf("TaskLine = %q", got)
	}
}

func TestTaskLine_NormalizesTitle(t *testing.T) {
	r := plain(true)

	got := r.TaskLine(service.Task{ID: 1, Title: "two\nlines"})
	if !strings.Contains(got, "two lines") {
		t.Errorf("newlines not normalized: %q", got)
	}
}

func TestTaskDetail(t *testing.T) {
	r := plain(true)

	got := r.TaskDetail(service.Task{ID: 7, Title: "Call mum", Description: "about the weekend"})
	for _, want := range []string{"Task #7", "Title:       Call mum", "Description: about the weekend", "Status:      ○ Incomplete"} {
		if !strings.Contains(got, want) {
			t.Errorf("TaskDetail missing %q:\n%s", want, got)
		}
	}
}

func TestTaskDetail_EmptyDescription(t *testing.T) {
	r := plain(true)

	got := r.TaskDetail(service.Task{ID: 1, Title: "bare"})
	if !strings.Contains(got, "Description: (none)") {
		t.Errorf("TaskDetail missing (none) placeholder:\n%s", got)
	}
}

func TestSummaryBlock(t *testing.T) {
	r := plain(true)

	got := r.SummaryBlock(service.Summary{Total: 4, Completed: 1, Incomplete: 3})
	for _, want := range []string{"Total:      4", "Completed:  1", "Incomplete: 3", "25%"} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryBlock missing %q:\n%s", want, got)
		}
	}
}

func TestSummaryBlock_EmptyStoreHasNoBar(t *testing.T) {
	r := plain(true)

	got := r.SummaryBlock(service.Summary{})
	if strings.Contains(got, "%") {
		t.Errorf("empty summary should not draw a progress bar:\n%s", got)
	}
}
