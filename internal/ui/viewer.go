// Package ui provides the optional full-screen task viewer.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"todo/internal/service"
)

// Run starts the viewer over the session store. It is read-only:
// mutations stay in the shell, the viewer only browses.
func Run(ctx context.Context, svc service.Service) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("view requires a TTY")
	}

	model := newViewerModel(ctx, svc)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type viewerModel struct {
	ctx      context.Context
	svc      service.Service
	filter   service.StatusFilter
	tasks    []service.Task
	summary  service.Summary
	loadErr  error
	showHelp bool
}

func newViewerModel(ctx context.Context, svc service.Service) *viewerModel {
	return &viewerModel{ctx: ctx, svc: svc}
}

func (m *viewerModel) Init() tea.Cmd {
	m.refresh()
	return nil
}

func (m *viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "r", "f5":
			m.refresh()
			return m, nil
		case "a":
			m.filter = service.FilterAll
			m.refresh()
			return m, nil
		case "c":
			m.filter = service.FilterComplete
			m.refresh()
			return m, nil
		case "i":
			m.filter = service.FilterIncomplete
			m.refresh()
			return m, nil
		case "h", "?":
			m.showHelp = !m.showHelp
			return m, nil
		}
	}
	return m, nil
}

func (m *viewerModel) View() string {
	var b strings.Builder
	writeTitle(&b)

	if m.showHelp {
		writeHelp(&b)
		writeFooter(&b)
		return b.String()
	}

	if m.loadErr != nil {
		b.WriteString("Error reading tasks:\n")
		b.WriteString("  " + m.loadErr.Error() + "\n\n")
		writeFooter(&b)
		return b.String()
	}

	b.WriteString(fmt.Sprintf("  Total: %d  Complete: %d  Incomplete: %d\n\n",
		m.summary.Total, m.summary.Completed, m.summary.Incomplete))

	if m.filter != service.FilterAll {
		b.WriteString(fmt.Sprintf("Filter: %s (a to clear)\n\n", m.filter))
	}

	if len(m.tasks) == 0 {
		b.WriteString("  No tasks.\n\n")
	} else {
		for _, task := range m.tasks {
			b.WriteString(formatTask(task) + "\n")
		}
		b.WriteString("\n")
	}

	writeFooter(&b)
	return b.String()
}

func (m *viewerModel) refresh() {
	tasks, err := m.svc.ListTasks(m.ctx, m.filter)
	if err != nil {
		m.loadErr = err
		return
	}
	summary, err := m.svc.Summary(m.ctx)
	if err != nil {
		m.loadErr = err
		return
	}
	m.loadErr = nil
	m.tasks = tasks
	m.summary = summary
}

func writeTitle(b *strings.Builder) {
	title := "todo viewer"
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  q, esc, ctrl+c   Back to the shell\n")
	b.WriteString("  r, F5            Refresh\n")
	b.WriteString("  a                Show all tasks\n")
	b.WriteString("  c                Show completed tasks\n")
	b.WriteString("  i                Show incomplete tasks\n")
	b.WriteString("  h, ?             Toggle this help screen\n\n")
}

func writeFooter(b *strings.Builder) {
	b.WriteString("Press h for help | q to return to the shell\n")
}

func formatTask(t service.Task) string {
	icon := " "
	if t.Completed {
		icon = "x"
	}
	line := fmt.Sprintf("  [%s] #%d %s", icon, t.ID, t.Title)
	if t.Description == "" {
		return line
	}
	description := t.Description
	if len(description) > 60 {
		description = description[:57] + "..."
	}
	return line + "\n      " + description
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
