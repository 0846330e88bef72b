package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/model"
)

const maxTitleWidth = 80

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel frames lines with the theme's border.
func (t Theme) Panel(lines []string) string {
	return t.frame().Render(strings.Join(lines, "\n"))
}

func (t Theme) frame() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
}

// Header is the one-line title with live counts.
func (t Theme) Header(st model.Status) string {
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), st.Completed,
		t.Pending.Render(t.SymPending), st.Pending,
		t.Accent.Render("Total"), st.Total,
	)
}

// Checkbox renders the completed/pending marker for a task.
func (t Theme) Checkbox(done bool) string {
	if done {
		return t.Success.Render(t.BoxChecked)
	}
	return t.Muted.Render(t.BoxUnchecked)
}

// TaskText renders a task's text cut to width cells, struck through once
// it is done.
func (t Theme) TaskText(task model.Task, width int) string {
	text := Truncate(task.Text, width)
	if task.Completed {
		return t.Done.Render(text)
	}
	return text
}

// TaskLine renders "NN. [box] text" with a 1-based number.
func (t Theme) TaskLine(number int, task model.Task) string {
	idx := fmt.Sprintf("%2d.", number)
	return fmt.Sprintf("%s %s %s", t.Muted.Render(idx), t.Checkbox(task.Completed), t.TaskText(task, maxTitleWidth))
}

// Truncate shortens s to at most width cells, ending in "...".
func Truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	if width <= 0 {
		return ""
	}
	ellipsis := "..."
	if width <= len(ellipsis) {
		ellipsis = ""
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+len(ellipsis) > width {
		r = r[:len(r)-1]
	}
	return string(r) + ellipsis
}
