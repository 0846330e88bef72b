// Package cli is the line-oriented front end: one command per input line,
// tasks kept in memory for as long as the loop runs.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"unicode"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/tasklist"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Exit codes returned by Exec.
const (
	CodeOK    = 0
	CodeError = 1
	CodeUsage = 2
)

// Options tune output behavior from root flags.
type Options struct {
	Theme     ui.Theme
	Group     bool   // ls grouped by pending/done
	AssumeYes bool   // skip the [y/N] prompts
	Prompt    string // printed before each command; empty for none
}

// maxLine is the longest input line the shell accepts.
const maxLine = 1 << 20

// Shell reads commands from in and applies them to ctrl.
type Shell struct {
	ctrl   *tasklist.Controller
	opt    Options
	in     *bufio.Scanner
	out    io.Writer
	errOut io.Writer
	quit   bool
}

func NewShell(ctrl *tasklist.Controller, in io.Reader, out, errOut io.Writer, opt Options) *Shell {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	return &Shell{
		ctrl:   ctrl,
		opt:    opt,
		in:     sc,
		out:    out,
		errOut: errOut,
	}
}

// Run executes lines until quit or EOF. Only read errors are returned;
// command failures are reported and the loop goes on.
func (s *Shell) Run() error {
	for !s.quit {
		if s.opt.Prompt != "" {
			fmt.Fprint(s.out, s.opt.Prompt)
		}
		if !s.in.Scan() {
			break
		}
		line := s.in.Text()
		if code := s.Exec(line); code != CodeOK {
			log.Printf("shell: %q exited %d", line, code)
		}
	}
	if err := s.in.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// Exec runs one command line and returns an exit code (0 ok, 1 error, 2 usage).
func (s *Shell) Exec(line string) int {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return CodeOK
	}
	cmd, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		cmd, rest = line[:i], strings.TrimSpace(line[i:])
	}
	a := strings.Fields(rest)

	switch cmd {
	case "help", "-h", "--help":
		s.PrintHelp()
		return CodeOK

	case "quit", "exit":
		s.quit = true
		return CodeOK

	case "ls":
		return s.doList()

	case "status":
		fmt.Fprintln(s.out, s.ctrl.Status())
		return CodeOK

	case "add":
		if rest == "" {
			s.fail("usage: add <text...>")
			return CodeUsage
		}
		return s.doAdd(rest)

	case "done":
		n, code := s.indexArg("done", a)
		if code != CodeOK {
			return code
		}
		return s.doComplete(n)

	case "rm":
		n, code := s.indexArg("rm", a)
		if code != CodeOK {
			return code
		}
		return s.doRemove(n)

	case "clear":
		if len(a) != 0 {
			s.fail("usage: clear")
			return CodeUsage
		}
		return s.doClear()
	}

	s.fail("unknown command: " + cmd)
	s.PrintHelp()
	return CodeUsage
}

func (s *Shell) PrintHelp() {
	fmt.Fprint(s.out, `Commands:
  add <text...>     Add a new task (text can be multiple words)
  ls                List tasks
  done <index>      Mark the task at 1-based index as complete
  rm <index>        Delete the task at 1-based index
  clear             Delete every task
  status            Print total / completed / pending counts
  help              Show this help
  quit              Leave the shell

Examples:
  add Buy milk
  done 1
  rm 2

Lines longer than 1 MiB end the shell.
`)
}

// -------------- command impls ----------------

func (s *Shell) doList() int {
	tasks := s.ctrl.Snapshot()
	st := s.ctrl.Status()
	t := s.opt.Theme

	lines := []string{
		t.Header(st),
		t.Muted.Render(ui.ProgressBar(st.Completed, st.Total, 28)),
		"",
	}
	if s.opt.Group {
		lines = append(lines, groupLines(t, tasks)...)
	} else {
		lines = append(lines, flatLines(t, tasks)...)
	}
	lines = append(lines, "", t.Muted.Render("Tip: add with `add Buy milk`"))
	fmt.Fprintln(s.out, t.Panel(lines))
	return CodeOK
}

func (s *Shell) doAdd(text string) int {
	if err := s.ctrl.Add(text); err != nil {
		s.fail("add: " + err.Error())
		return CodeUsage
	}
	s.ok(fmt.Sprintf("added #%d", s.ctrl.Len()))
	return CodeOK
}

func (s *Shell) doComplete(userIndex int) int {
	out, err := s.ctrl.MarkComplete(userIndex - 1)
	if err != nil {
		return s.indexErr("done", userIndex, err)
	}
	if out == tasklist.AlreadyComplete {
		s.info(fmt.Sprintf("#%d is already complete", userIndex))
		return CodeOK
	}
	s.ok(fmt.Sprintf("completed #%d", userIndex))
	return CodeOK
}

func (s *Shell) doRemove(userIndex int) int {
	tasks := s.ctrl.Snapshot()
	if userIndex < 1 || userIndex > len(tasks) {
		return s.indexErr("rm", userIndex, tasklist.ErrNoSelection)
	}
	if !s.confirm(fmt.Sprintf("Delete %q?", tasks[userIndex-1].Text)) {
		s.info("kept")
		return CodeOK
	}
	if err := s.ctrl.Delete(userIndex - 1); err != nil {
		return s.indexErr("rm", userIndex, err)
	}
	s.ok(fmt.Sprintf("removed #%d", userIndex))
	return CodeOK
}

func (s *Shell) doClear() int {
	if s.ctrl.Len() == 0 {
		s.info("the task list is already empty")
		return CodeOK
	}
	if !s.confirm(fmt.Sprintf("Clear ALL %d tasks?", s.ctrl.Len())) {
		s.info("kept")
		return CodeOK
	}
	s.ctrl.ClearAll()
	s.ok("cleared")
	return CodeOK
}

// -------------- helpers --------------

func (s *Shell) indexArg(cmd string, a []string) (int, int) {
	if len(a) != 1 {
		s.fail(fmt.Sprintf("usage: %s <index>", cmd))
		return 0, CodeUsage
	}
	n, err := strconv.Atoi(a[0])
	if err != nil {
		s.fail(fmt.Sprintf("%s: not a number: %s", cmd, a[0]))
		return 0, CodeUsage
	}
	return n, CodeOK
}

func (s *Shell) indexErr(cmd string, userIndex int, err error) int {
	if !errors.Is(err, tasklist.ErrNoSelection) {
		s.fail(cmd + ": " + err.Error())
		return CodeError
	}
	s.fail(fmt.Sprintf("%s: index out of range: have %d, got %d", cmd, s.ctrl.Len(), userIndex))
	fmt.Fprintln(s.errOut, s.opt.Theme.Muted.Render("Hint: run `ls` to see valid indexes"))
	return CodeUsage
}

// confirm asks on the same input the commands come from. EOF means no.
func (s *Shell) confirm(question string) bool {
	if s.opt.AssumeYes {
		return true
	}
	fmt.Fprintf(s.out, "%s [y/N] ", question)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(s.in.Text())) {
	case "y", "yes":
		return true
	}
	return false
}

func (s *Shell) ok(msg string)   { s.opt.Theme.OK(s.out, msg) }
func (s *Shell) fail(msg string) { s.opt.Theme.Fail(s.errOut, msg) }
func (s *Shell) info(msg string) {
	fmt.Fprintln(s.out, s.opt.Theme.Feedback(ui.Feedback{Level: ui.Info, Text: msg}))
}

// -------------- rendering helpers --------------

func flatLines(t ui.Theme, tasks []model.Task) []string {
	if len(tasks) == 0 {
		return []string{t.Muted.Render("no tasks")}
	}
	out := make([]string, 0, len(tasks))
	for i, task := range tasks {
		out = append(out, t.TaskLine(i+1, task))
	}
	return out
}

// groupLines keeps each task's list number so done/rm still apply.
func groupLines(t ui.Theme, tasks []model.Task) []string {
	var pend, done []string
	for i, task := range tasks {
		if task.Completed {
			done = append(done, t.TaskLine(i+1, task))
		} else {
			pend = append(pend, t.TaskLine(i+1, task))
		}
	}
	section := func(title string, lines []string) []string {
		out := []string{t.Accent.Render(title)}
		if len(lines) == 0 {
			return append(out, t.Muted.Render("(none)"))
		}
		return append(out, lines...)
	}
	lines := section("Pending", pend)
	lines = append(lines, "")
	return append(lines, section("Done", done)...)
}
