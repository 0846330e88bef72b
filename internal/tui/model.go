// Package tui is the interactive Bubble Tea front end for a task list.
package tui

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/tasklist"
	"github.com/Makepad-fr/tada/internal/ui"
)

const (
	placeholder   = "Enter your task here..."
	readyStatus   = "Ready to add tasks! Total: 0"
	defaultWidth  = 80
	defaultHeight = 24
	inputLimit    = 200
)

// Options tune the interactive view.
type Options struct {
	Theme   ui.Theme
	Confirm bool // ask before delete / clear-all
}

type mode int

const (
	modeInput mode = iota
	modeBrowse
	modeConfirm
)

type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmDelete
	confirmClear
)

// Model is the Bubble Tea model. It holds widget state only; tasks live in
// the controller and are re-read after every call into it.
type Model struct {
	ctrl    *tasklist.Controller
	theme   ui.Theme
	confirm bool

	list  list.Model
	input textinput.Model
	help  help.Model
	keys  keyMap

	mode         mode
	pending      confirmKind
	pendingIndex int
	pendingText  string

	feedback ui.Feedback
	touched  bool // a mutation happened; status bar stops showing the greeting

	width, height int
}

func New(ctrl *tasklist.Controller, opt Options) Model {
	l := list.New(toItems(ctrl.Snapshot()), taskDelegate{theme: opt.Theme}, 0, 0)
	l.Title = opt.Theme.Header(ctrl.Status())
	l.Styles.Title = lipgloss.NewStyle()
	l.Styles.TitleBar = lipgloss.NewStyle().Padding(0, 0, 1, 0)
	l.Styles.PaginationStyle = opt.Theme.Help
	l.Styles.NoItems = opt.Theme.Muted
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.SetStatusBarItemName("task", "tasks")

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = placeholder
	ti.CharLimit = inputLimit
	ti.Focus()

	h := help.New()
	h.Styles.ShortKey = opt.Theme.Help
	h.Styles.ShortDesc = opt.Theme.Help
	h.Styles.FullKey = opt.Theme.Help
	h.Styles.FullDesc = opt.Theme.Help

	m := Model{
		ctrl:         ctrl,
		theme:        opt.Theme,
		confirm:      opt.Confirm,
		list:         l,
		input:        ti,
		help:         h,
		keys:         defaultKeyMap(),
		mode:         modeInput,
		pendingIndex: tasklist.NoSelection,
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		switch m.mode {
		case modeConfirm:
			return m.updateConfirm(msg)
		case modeInput:
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)
	}

	var cmd tea.Cmd
	if m.mode == modeInput {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		cmd := m.addTask()
		return m, cmd
	case key.Matches(msg, m.keys.Blur):
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Focus):
		m.mode = modeInput
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Complete):
		cmd := m.markComplete()
		return m, cmd
	case key.Matches(msg, m.keys.Delete):
		cmd := m.requestDelete()
		return m, cmd
	case key.Matches(msg, m.keys.ClearAll):
		cmd := m.requestClear()
		return m, cmd
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.mirrorSelection()
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		kind, idx := m.pending, m.pendingIndex
		m.endConfirm()
		switch kind {
		case confirmDelete:
			cmd := m.deleteTask(idx)
			return m, cmd
		case confirmClear:
			cmd := m.clearAll()
			return m, cmd
		}
	case key.Matches(msg, m.keys.No):
		log.Printf("confirmation declined")
		m.endConfirm()
		m.feedback = ui.Feedback{}
	}
	return m, nil
}

// ---------------------------------------------------
// Actions (each maps to one controller call)
// ---------------------------------------------------

func (m *Model) addTask() tea.Cmd {
	err := m.ctrl.Add(m.input.Value())
	if errors.Is(err, tasklist.ErrValidation) {
		log.Printf("add rejected: %v", err)
		m.warn("Please enter a task!")
		return nil
	}
	if err != nil {
		m.fail(err)
		return nil
	}
	log.Printf("added task %d", m.ctrl.Len())
	m.input.SetValue("")
	cmd := m.sync(m.ctrl.Len() - 1)
	m.succeed("Task added successfully!")
	return cmd
}

func (m *Model) markComplete() tea.Cmd {
	idx := m.selectedIndex()
	out, err := m.ctrl.MarkComplete(idx)
	if errors.Is(err, tasklist.ErrNoSelection) {
		log.Printf("complete rejected: %v", err)
		m.warn("Please select a task to mark as complete!")
		return nil
	}
	if err != nil {
		m.fail(err)
		return nil
	}
	log.Printf("complete %d: %s", idx, out)
	if out == tasklist.AlreadyComplete {
		m.inform("This task is already completed!")
		return nil
	}
	cmd := m.sync(idx)
	m.succeed("Task marked as complete! Great job! 🎉")
	return cmd
}

func (m *Model) requestDelete() tea.Cmd {
	idx := m.selectedIndex()
	if idx == tasklist.NoSelection {
		m.warn("Please select a task to delete!")
		return nil
	}
	if !m.confirm {
		return m.deleteTask(idx)
	}
	m.mode = modeConfirm
	m.pending = confirmDelete
	m.pendingIndex = idx
	m.pendingText = m.ctrl.Snapshot()[idx].Text
	m.resize(m.width, m.height)
	return nil
}

func (m *Model) deleteTask(idx int) tea.Cmd {
	if err := m.ctrl.Delete(idx); err != nil {
		log.Printf("delete rejected: %v", err)
		m.warn("Please select a task to delete!")
		return nil
	}
	log.Printf("deleted task %d", idx)
	cmd := m.sync(idx)
	m.succeed("Task deleted successfully!")
	return cmd
}

func (m *Model) requestClear() tea.Cmd {
	if m.ctrl.Len() == 0 {
		m.inform("The task list is already empty!")
		return nil
	}
	if !m.confirm {
		return m.clearAll()
	}
	m.mode = modeConfirm
	m.pending = confirmClear
	m.resize(m.width, m.height)
	return nil
}

func (m *Model) clearAll() tea.Cmd {
	out := m.ctrl.ClearAll()
	log.Printf("clear all: %s", out)
	if out == tasklist.AlreadyEmpty {
		m.inform("The task list is already empty!")
		return nil
	}
	cmd := m.sync(0)
	m.succeed("All tasks cleared!")
	return cmd
}

func (m *Model) endConfirm() {
	m.mode = modeBrowse
	m.pending = confirmNone
	m.pendingIndex = tasklist.NoSelection
	m.pendingText = ""
	m.resize(m.width, m.height)
}

// sync re-reads the controller after a mutation and moves the cursor to sel.
func (m *Model) sync(sel int) tea.Cmd {
	cmd := m.list.SetItems(toItems(m.ctrl.Snapshot()))
	if n := len(m.list.Items()); n > 0 {
		m.list.Select(min(max(sel, 0), n-1))
	}
	m.list.Title = m.theme.Header(m.ctrl.Status())
	m.mirrorSelection()
	m.touched = true
	return cmd
}

// mirrorSelection reports the list cursor to the controller.
func (m *Model) mirrorSelection() {
	if err := m.ctrl.Select(m.selectedIndex()); err != nil {
		m.ctrl.ClearSelection()
	}
}

func (m Model) selectedIndex() int {
	if len(m.list.Items()) == 0 {
		return tasklist.NoSelection
	}
	return m.list.Index()
}

func (m *Model) succeed(s string) { m.feedback = ui.Feedback{Level: ui.Success, Text: s} }
func (m *Model) warn(s string)    { m.feedback = ui.Feedback{Level: ui.Warning, Text: s} }
func (m *Model) inform(s string)  { m.feedback = ui.Feedback{Level: ui.Info, Text: s} }
func (m *Model) fail(err error)   { m.feedback = ui.Feedback{Level: ui.Failure, Text: err.Error()} }

// ---------------------------------------------------
// View
// ---------------------------------------------------

func (m *Model) resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	m.width, m.height = w, h
	inner := m.innerWidth()
	m.input.Width = max(inner-8, 10) // box border, padding, prompt and cursor
	m.help.Width = inner
	m.list.SetSize(inner, max(h-m.chrome(), 3))
}

// chrome is the number of rows View spends outside the list.
func (m Model) chrome() int {
	top, bottom := m.sections()
	rows := 2 // outer border
	for _, s := range append(top, bottom...) {
		rows += lipgloss.Height(s)
	}
	return rows
}

// sections renders what View stacks above and below the list.
func (m Model) sections() (top, bottom []string) {
	inner := m.innerWidth()
	box := lipgloss.NewStyle().
		Border(m.theme.Border).
		BorderForeground(m.theme.BorderColor).
		Padding(0, 1).
		Width(inner - 2)

	inputTitle := m.theme.Accent.Render("Add new task")
	if m.mode != modeInput {
		inputTitle = m.theme.Muted.Render("Add new task")
	}
	top = []string{box.Render(inputTitle + "\n" + m.input.View())}

	if m.mode == modeConfirm {
		bottom = append(bottom, box.BorderForeground(lipgloss.Color("9")).Render(m.confirmPrompt()))
	}
	bottom = append(bottom,
		m.theme.Feedback(m.feedback),
		m.theme.Muted.Render(m.statusText()),
		m.help.View(m.helpKeys()),
	)
	return top, bottom
}

func (m Model) innerWidth() int { return max(m.width-4, 10) }

func (m Model) View() string {
	m.resize(m.width, m.height)
	top, bottom := m.sections()
	parts := append(append(top, m.list.View()), bottom...)
	return m.theme.Panel([]string{lipgloss.JoinVertical(lipgloss.Left, parts...)})
}

func (m Model) confirmPrompt() string {
	switch m.pending {
	case confirmDelete:
		return fmt.Sprintf("Are you sure you want to delete this task?\n%s [y/N]", ui.Truncate(m.pendingText, max(m.innerWidth()-10, 10)))
	case confirmClear:
		return "Are you sure you want to clear ALL tasks? [y/N]"
	}
	return ""
}

func (m Model) statusText() string {
	if !m.touched {
		return readyStatus
	}
	return m.ctrl.Status().String()
}

func (m Model) helpKeys() help.KeyMap {
	switch m.mode {
	case modeInput:
		return bindingList{m.keys.Submit, m.keys.Blur, m.keys.ForceQuit}
	case modeConfirm:
		return bindingList{m.keys.Yes, m.keys.No}
	}
	return m.keys
}

// Status is the status-bar text as currently shown.
func (m Model) Status() string { return strings.TrimSpace(m.statusText()) }

// Feedback is the last message shown to the user.
func (m Model) Feedback() ui.Feedback { return m.feedback }
