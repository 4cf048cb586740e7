// Package output renders tasks and messages for the terminal.
package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"todo/internal/service"
)

// Divider is the separator line used between task detail sections.
const Divider = "------------------------------"

// Options controls how a Renderer decorates its output.
type Options struct {
	// Color enables lipgloss styling. With Color off every style is a
	// no-op and the rendered bytes are fully deterministic.
	Color bool

	// Icons selects unicode status markers over ASCII ones.
	Icons bool
}

// Renderer formats tasks, summaries, and shell messages. Methods return
// strings; writing them stays with the caller.
type Renderer struct {
	icons bool

	header     lipgloss.Style
	success    lipgloss.Style
	failure    lipgloss.Style
	muted      lipgloss.Style
	complete   lipgloss.Style
	incomplete lipgloss.Style
	prompt     lipgloss.Style
}

// NewRenderer creates a renderer for the given options.
func NewRenderer(opts Options) *Renderer {
	r := &Renderer{icons: opts.Icons}

	plain := lipgloss.NewStyle()
	r.header = plain
	r.success = plain
	r.failure = plain
	r.muted = plain
	r.complete = plain
	r.incomplete = plain
	r.prompt = plain

	if opts.Color {
		r.header = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
		r.success = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
		r.failure = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
		r.muted = lipgloss.NewStyle().Faint(true)
		r.complete = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
		r.incomplete = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
		r.prompt = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	}

	return r
}

// StatusIcon returns the completion marker for a task.
func (r *Renderer) StatusIcon(t service.Task) string {
	if r.icons {
		if t.Completed {
			return r.complete.Render("✓")
		}
		return r.incomplete.Render("○")
	}
	if t.Completed {
		return r.complete.Render("[x]")
	}
	return r.incomplete.Render("[ ]")
}

// TaskLine formats one task for a listing.
// Format: "{ID:>4}  {ICON} {TITLE}" (4-wide right-aligned id).
func (r *Renderer) TaskLine(t service.Task) string {
	return fmt.Sprintf("%4d  %s %s", t.ID, r.StatusIcon(t), normalizeTitle(t.Title))
}

// TaskDetail formats a full single-task view.
func (r *Renderer) TaskDetail(t service.Task) string {
	status := "Incomplete"
	if t.Completed {
		status = "Complete"
	}
	description := t.Description
	if description == "" {
		description = r.muted.Render("(none)")
	}

	var b strings.Builder
	b.WriteString(r.header.Render(fmt.Sprintf("Task #%d", t.ID)) + "\n")
	b.WriteString(Divider + "\n")
	b.WriteString("Title:       " + normalizeTitle(t.Title) + "\n")
	b.WriteString("Description: " + description + "\n")
	b.WriteString("Status:      " + r.StatusIcon(t) + " " + status + "\n")
	b.WriteString(Divider)
	return b.String()
}

// SummaryBlock formats the per-status counts with a progress bar.
func (r *Renderer) SummaryBlock(s service.Summary) string {
	var b strings.Builder
	b.WriteString(r.header.Render("Task Summary") + "\n")
	b.WriteString(fmt.Sprintf("Total:      %d\n", s.Total))
	b.WriteString(fmt.Sprintf("Completed:  %d\n", s.Completed))
	b.WriteString(fmt.Sprintf("Incomplete: %d", s.Incomplete))
	if s.Total > 0 {
		b.WriteString("\n" + r.progressBar(s))
	}
	return b.String()
}

// progressBar draws completion progress over a fixed 20-cell bar.
func (r *Renderer) progressBar(s service.Summary) string {
	const width = 20
	filled := s.Completed * width / s.Total
	percent := s.Completed * 100 / s.Total
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %d%%", r.complete.Render(bar), percent)
}

// Success decorates an informational success message.
func (r *Renderer) Success(msg string) string {
	return r.success.Render(msg)
}

// Failure decorates an error message.
func (r *Renderer) Failure(msg string) string {
	return r.failure.Render(msg)
}

// Prompt decorates the shell prompt.
func (r *Renderer) Prompt(text string) string {
	return r.prompt.Render(text)
}

// Welcome returns the session banner.
func (r *Renderer) Welcome() string {
	return r.header.Render("todo — in-memory task manager") + "\n" +
		r.muted.Render("Tasks live for this session only. Type 'help' for commands, 'quit' to leave.")
}

// Goodbye returns the session closing line.
func (r *Renderer) Goodbye() string {
	return r.muted.Render("Session ended. All tasks discarded.")
}

// normalizeTitle normalizes a task title for display.
// Newlines become spaces; blank titles become "(untitled)".
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
