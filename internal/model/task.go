package model

import "fmt"

// Task is a single todo entry. Text is never empty once a Task is in a list.
type Task struct {
	Text      string
	Completed bool
}

// Status describes the composition of a task list at a point in time.
type Status struct {
	Total     int
	Completed int
	Pending   int
}

func (s Status) String() string {
	return fmt.Sprintf("Total: %d | Completed: %d | Pending: %d", s.Total, s.Completed, s.Pending)
}
