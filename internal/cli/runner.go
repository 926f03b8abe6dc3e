package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/todo/internal/config"
	"github.com/idilsaglam/todo/internal/logging"
	"github.com/idilsaglam/todo/internal/tui"
	"github.com/idilsaglam/todo/internal/ui"
	"github.com/idilsaglam/todo/internal/version"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// usageError marks errors caused by bad arguments or flags.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// ErrNotATerminal is returned when stdout cannot host the session.
var ErrNotATerminal = errors.New("stdout is not a terminal")

// Env is what the commands need from the process.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// IsTerminal reports whether the session can own the terminal.
	IsTerminal func() bool

	// Session runs the interactive list. Tests replace it.
	Session func(ctx context.Context, st *tui.State, opts tui.Options) error
}

// DefaultEnv wires the real process streams and terminal.
func DefaultEnv() Env {
	return Env{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
		Session: tui.Run,
	}
}

type rootFlags struct {
	configPath string
	theme      string
	logLevel   string
	logFile    string
}

// Run executes the command line and returns an exit code
// (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, env Env) int {
	cmd := NewRootCommand(env)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}
	ui.Fail(env.Stderr, ui.ThemeByName(""), err.Error())

	var ue usageError
	if errors.As(err, &ue) {
		return ExitUsage
	}
	return ExitError
}

// NewRootCommand builds the command tree. The root command starts the
// interactive session.
func NewRootCommand(env Env) *cobra.Command {
	var f rootFlags

	root := &cobra.Command{
		Use:   "todo",
		Short: "A single-screen terminal todo list",
		Long: `todo opens an interactive todo list in the terminal.

List view:  j/k or arrows move, enter toggles, D deletes, A adds, q or esc quits.
Add view:   type a title, enter submits, esc cancels.

Items live for the session only.`,
		Version:       version.Version,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, env, f)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetIn(env.Stdin)
	root.SetOut(env.Stdout)
	root.SetErr(env.Stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/tada/config.yaml)")
	pf.StringVar(&f.theme, "theme", "", "colour theme: classic, neon or mono")
	pf.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&f.logFile, "log-file", "", "append logs to this file")

	root.AddCommand(newVersionCommand(), newConfigCommand(&f))
	return root
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return usageError{err}
	}
	return nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  noArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "todo %s (commit: %s)\n", version.Version, version.Commit)
		},
	}
}

func newConfigCommand(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return enc.Close()
		},
	}
}

// loadConfig merges flags over file and env settings.
func loadConfig(cmd *cobra.Command, f *rootFlags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.UI.Theme = f.theme
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = f.logFile
	}

	if !knownTheme(cfg.UI.Theme) {
		return config.Config{}, usageError{fmt.Errorf("unknown theme %q", cfg.UI.Theme)}
	}
	return cfg, nil
}

func knownTheme(name string) bool {
	for _, t := range ui.Themes() {
		if strings.EqualFold(t, name) {
			return true
		}
	}
	return false
}

func runSession(cmd *cobra.Command, env Env, f rootFlags) error {
	cfg, err := loadConfig(cmd, &f)
	if err != nil {
		return err
	}
	if err := logging.Initialize(cfg.Log.Level, cfg.Log.File); err != nil {
		return err
	}
	defer logging.Sync()

	if env.IsTerminal != nil && !env.IsTerminal() {
		return ErrNotATerminal
	}

	keys := tui.DefaultKeyMap()
	opts := tui.Options{
		Keys:     keys,
		Renderer: tui.NewRenderer(ui.ThemeByName(cfg.UI.Theme), keys),
	}
	return env.Session(cmd.Context(), tui.NewState(), opts)
}
