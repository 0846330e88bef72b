// Package tasklist holds the in-memory task list and every operation that
// mutates it. Presentation layers call into a Controller and render the
// snapshots it hands back; they never touch the list directly.
package tasklist

import (
	"fmt"
	"strings"

	"github.com/Makepad-fr/tada/internal/model"
)

// NoSelection is the index used when nothing is selected.
const NoSelection = -1

// CompletionOutcome reports what MarkComplete did.
type CompletionOutcome int

const (
	MarkedComplete CompletionOutcome = iota
	AlreadyComplete
)

func (o CompletionOutcome) String() string {
	switch o {
	case MarkedComplete:
		return "marked complete"
	case AlreadyComplete:
		return "already complete"
	}
	return fmt.Sprintf("CompletionOutcome(%d)", int(o))
}

// ClearOutcome reports what ClearAll did.
type ClearOutcome int

const (
	Cleared ClearOutcome = iota
	AlreadyEmpty
)

func (o ClearOutcome) String() string {
	switch o {
	case Cleared:
		return "cleared"
	case AlreadyEmpty:
		return "already empty"
	}
	return fmt.Sprintf("ClearOutcome(%d)", int(o))
}

// Controller owns an ordered list of tasks and the index the presentation
// layer reports as selected. It is not safe for concurrent use; callers
// drive it from a single event loop.
type Controller struct {
	tasks    []model.Task
	selected int
}

func New() *Controller {
	return &Controller{selected: NoSelection}
}

// Add trims text and appends it as a pending task.
func (c *Controller) Add(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrValidation
	}
	c.tasks = append(c.tasks, model.Task{Text: text})
	return nil
}

// Delete removes the task at index. Confirmation is the caller's job.
func (c *Controller) Delete(index int) error {
	if err := c.check(index); err != nil {
		return err
	}
	c.tasks = append(c.tasks[:index], c.tasks[index+1:]...)

	switch {
	case c.selected == index:
		c.selected = NoSelection
	case c.selected > index:
		c.selected--
	}
	return nil
}

// MarkComplete flags the task at index as done. There is no way back.
func (c *Controller) MarkComplete(index int) (CompletionOutcome, error) {
	if err := c.check(index); err != nil {
		return 0, err
	}
	if c.tasks[index].Completed {
		return AlreadyComplete, nil
	}
	c.tasks[index].Completed = true
	return MarkedComplete, nil
}

// ClearAll drops every task. Confirmation is the caller's job.
func (c *Controller) ClearAll() ClearOutcome {
	if len(c.tasks) == 0 {
		return AlreadyEmpty
	}
	c.tasks = nil
	c.selected = NoSelection
	return Cleared
}

// Snapshot returns a copy of the list in display order.
func (c *Controller) Snapshot() []model.Task {
	out := make([]model.Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

func (c *Controller) Status() model.Status {
	var done int
	for _, t := range c.tasks {
		if t.Completed {
			done++
		}
	}
	return model.Status{
		Total:     len(c.tasks),
		Completed: done,
		Pending:   len(c.tasks) - done,
	}
}

func (c *Controller) Len() int { return len(c.tasks) }

// Select mirrors the presentation layer's selection. NoSelection clears it.
func (c *Controller) Select(index int) error {
	if index == NoSelection {
		c.selected = NoSelection
		return nil
	}
	if err := c.check(index); err != nil {
		return err
	}
	c.selected = index
	return nil
}

// Selected returns the selected index, if any.
func (c *Controller) Selected() (int, bool) {
	return c.selected, c.selected != NoSelection
}

func (c *Controller) ClearSelection() { c.selected = NoSelection }

func (c *Controller) check(index int) error {
	if index == NoSelection {
		return ErrNoSelection
	}
	if index < 0 || index >= len(c.tasks) {
		return fmt.Errorf("%w: index out of range: have %d, got %d", ErrNoSelection, len(c.tasks), index)
	}
	return nil
}
