package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/ui"
)

// taskItem adapts model.Task to bubbles/list.Item
type taskItem model.Task

func (i taskItem) FilterValue() string { return i.Text }

func toItems(tasks []model.Task) []list.Item {
	out := make([]list.Item, len(tasks))
	for i, t := range tasks {
		out[i] = taskItem(t)
	}
	return out
}

// Custom delegate to control how tasks render (single line)
type taskDelegate struct {
	theme ui.Theme
}

func (d taskDelegate) Height() int                               { return 1 }
func (d taskDelegate) Spacing() int                              { return 0 }
func (d taskDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(taskItem)
	if !ok {
		return
	}
	task := model.Task(it)

	prefix := "  "
	if index == m.Index() {
		prefix = d.theme.Selected.Render(d.theme.Cursor)
	}
	box := d.theme.Checkbox(task.Completed)
	room := m.Width() - lipgloss.Width(prefix) - lipgloss.Width(box) - 1
	fmt.Fprintf(w, "%s%s %s", prefix, box, d.theme.TaskText(task, room))
}
