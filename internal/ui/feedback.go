package ui

import (
	"fmt"
	"io"
)

// Level classifies a feedback message.
type Level int

const (
	Info Level = iota
	Success
	Warning
	Failure
)

// Feedback is a one-line message shown after a user action.
type Feedback struct {
	Level Level
	Text  string
}

func (f Feedback) Empty() bool { return f.Text == "" }

// Feedback renders f with the symbol and color for its level.
func (t Theme) Feedback(f Feedback) string {
	if f.Empty() {
		return ""
	}
	switch f.Level {
	case Success:
		return t.Success.Render(t.SymOK + " " + f.Text)
	case Warning:
		return t.Warning.Render(t.SymWarn + " " + f.Text)
	case Failure:
		return t.Err.Render(t.SymFail + " " + f.Text)
	}
	return t.Accent.Render(t.SymInfo + " " + f.Text)
}

// OK writes a success line to w.
func (t Theme) OK(w io.Writer, msg string) {
	fmt.Fprintln(w, t.Feedback(Feedback{Level: Success, Text: msg}))
}

// Fail writes a failure line to w.
func (t Theme) Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, t.Feedback(Feedback{Level: Failure, Text: msg}))
}
