package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/tasklist"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Version is set at build time
var Version = "dev"

type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

// rootFlags are the flags shared by every subcommand.
type rootFlags struct {
	configPath string
	theme      string
	logFile    string
	yes        bool
	group      bool

	resolved *ui.Theme // set once load has picked the theme
}

// settings is config.Config after flags are applied, plus the resolved theme.
type settings struct {
	config.Config
	theme ui.Theme
}

// runTUI is swapped in tests; the real one needs a terminal.
var runTUI = tui.Run

// Execute runs the CLI with the given arguments and IO and returns an exit
// code (0 ok, 1 error, 2 usage).
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root, f := newRootCmd(stdin, stdout, stderr)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		th := f.errTheme(stderr)
		th.Fail(stderr, err.Error())
		var ue usageError
		if errors.As(err, &ue) {
			fmt.Fprintln(stderr, th.Muted.Render("Run `tada --help` for usage."))
			return CodeUsage
		}
		return CodeError
	}
	return CodeOK
}

// NewRootCmd creates the root command with injectable IO.
func NewRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	root, _ := newRootCmd(stdin, stdout, stderr)
	return root
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) (*cobra.Command, *rootFlags) {
	f := &rootFlags{}

	root := &cobra.Command{
		Use:   "tada",
		Short: "A tiny in-memory todo list",
		Long: "tada keeps a list of short tasks for as long as it runs.\n" +
			"Without a subcommand it opens the interactive view.",
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closeLog, err := f.load(cmd)
			if err != nil {
				return err
			}
			defer closeLog()

			log.Printf("starting interactive view (theme=%s confirm=%t)", s.theme.Name, s.Confirm)
			return runTUI(tasklist.New(), tui.Options{Theme: s.theme, Confirm: s.Confirm})
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "config file (default ~/.tada/config.yaml)")
	pf.StringVar(&f.theme, "theme", "", "color theme: classic, neon or mono")
	pf.StringVar(&f.logFile, "log-file", "", "write diagnostic logs to this file")
	pf.BoolVarP(&f.yes, "yes", "y", false, "do not ask before delete / clear-all")

	root.AddCommand(newShellCmd(f), newVersionCmd())
	return root, f
}

func newShellCmd(f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Read commands line by line (add, done, rm, clear, ls, status)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closeLog, err := f.load(cmd)
			if err != nil {
				return err
			}
			defer closeLog()

			in := cmd.InOrStdin()
			opt := Options{
				Theme:     s.theme,
				Group:     s.Group,
				AssumeYes: !s.Confirm,
			}
			if isTTY(in) {
				opt.Prompt = "tada> "
			}
			log.Printf("starting shell (theme=%s group=%t)", s.theme.Name, s.Group)
			return NewShell(tasklist.New(), in, cmd.OutOrStdout(), cmd.ErrOrStderr(), opt).Run()
		},
	}
	cmd.Flags().BoolVar(&f.group, "group", false, "group ls output by pending/done")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "tada "+Version)
		},
	}
}

// load merges the config file, environment and explicit flags, and opens the
// log file. The returned func closes it.
func (f *rootFlags) load(cmd *cobra.Command) (settings, func(), error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return settings{}, nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = f.theme
	}
	if flags.Changed("log-file") {
		cfg.LogFile = f.logFile
	}
	if flags.Changed("group") {
		cfg.Group = f.group
	}
	if f.yes {
		cfg.Confirm = false
	}

	th, err := ui.ThemeByName(cfg.Theme)
	if err != nil {
		return settings{}, nil, usageError{err}
	}
	f.resolved = &th

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return settings{}, nil, err
	}
	return settings{Config: cfg, theme: th}, closeLog, nil
}

// errTheme is the theme for errors Execute reports: the resolved one if load
// got that far, otherwise classic on a terminal and mono elsewhere.
func (f *rootFlags) errTheme(w io.Writer) ui.Theme {
	if f.resolved != nil {
		return *f.resolved
	}
	name := "mono"
	if isTTY(w) {
		name = ui.DefaultTheme
	}
	th, _ := ui.ThemeByName(name)
	return th
}

// setupLogging points the standard logger at path, or discards it. Writing
// to the terminal would corrupt the interactive view.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	lf, err := tea.LogToFile(path, "tada")
	if err != nil {
		return nil, fmt.Errorf("log file: %w", err)
	}
	return func() {
		log.SetOutput(io.Discard)
		lf.Close()
	}, nil
}

// isTTY reports whether v is a terminal. It takes either end of the IO.
func isTTY(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
