package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// Renderers receive a Theme value; nothing reads a package-level current theme.
type Theme struct {
	Name string

	Title, Muted, Accent  lipgloss.Style
	Success, Warning, Err lipgloss.Style
	Pending, Selected     lipgloss.Style
	Done, Help            lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
	SymOK, SymFail, SymWarn  string
	SymInfo                  string
	Cursor                   string
}

const DefaultTheme = "classic"

// ThemeNames lists every name ThemeByName accepts.
func ThemeNames() []string { return []string{"classic", "neon", "mono"} }

func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "classic":
		return classic(), nil
	case "neon":
		return neon(), nil
	case "mono":
		return mono(), nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q (want one of %s)", name, strings.Join(ThemeNames(), ", "))
}

func classic() Theme {
	return Theme{
		Name:     "classic",
		Title:    lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Faint(true),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Err:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Help:     lipgloss.NewStyle().Faint(true),

		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),

		BoxUnchecked: "☐", BoxChecked: "☑",
		SymDone: "✔", SymPending: "•",
		SymOK: "✔", SymFail: "✖", SymWarn: "!", SymInfo: "i",
		Cursor: "> ",
	}
}

func neon() Theme {
	t := classic()
	t.Name = "neon"
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	t.Selected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	t.BorderColor = lipgloss.Color("13")
	t.BoxUnchecked, t.BoxChecked = "◻", "◼"
	t.Cursor = "❯ "
	return t
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:  "mono",
		Title: plain, Muted: plain, Accent: plain,
		Success: plain, Warning: plain, Err: plain,
		Pending: plain, Selected: plain,
		Done: plain, Help: plain,

		Border: lipgloss.Border{
			Top: "-", Bottom: "-", Left: "|", Right: "|",
			TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
		},
		BorderColor: lipgloss.NoColor{},

		BoxUnchecked: "[ ]", BoxChecked: "[x]",
		SymDone: "x", SymPending: "-",
		SymOK: "ok", SymFail: "error:", SymWarn: "warning:", SymInfo: "info:",
		Cursor: "> ",
	}
}
