package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Focus    key.Binding
	Complete key.Binding
	Delete   key.Binding
	ClearAll key.Binding
	Help     key.Binding
	Quit     key.Binding

	// input mode
	Submit key.Binding
	Blur   key.Binding

	// confirm mode
	Yes key.Binding
	No  key.Binding

	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Focus:    key.NewBinding(key.WithKeys("a", "i", "tab"), key.WithHelp("a", "add")),
		Complete: key.NewBinding(key.WithKeys("enter", " ", "c"), key.WithHelp("enter/space", "complete")),
		Delete:   key.NewBinding(key.WithKeys("d", "delete", "backspace"), key.WithHelp("d/del", "delete")),
		ClearAll: key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear all")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add task")),
		Blur:   key.NewBinding(key.WithKeys("esc", "tab"), key.WithHelp("esc/tab", "back to list")),

		Yes: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		No:  key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n/esc", "no")),

		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp and FullHelp implement help.KeyMap for the list view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Complete, k.Delete, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Focus, k.Complete, k.Delete, k.ClearAll},
		{k.Help, k.Quit, k.ForceQuit},
	}
}

// bindingList shows a fixed set of bindings in the help line.
type bindingList []key.Binding

func (b bindingList) ShortHelp() []key.Binding  { return b }
func (b bindingList) FullHelp() [][]key.Binding { return [][]key.Binding{b} }
