package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/idilsaglam/todo/internal/logging"
)

// Model is the Bubble Tea model for a session: Update dispatches key
// presses, View renders. Bubble Tea only delivers key presses, so there is
// no release filtering here.
type Model struct {
	state    *State
	keys     KeyMap
	renderer Renderer

	width, height int
}

// NewModel wraps st. The same State pointer is used for the whole session.
func NewModel(st *State, keys KeyMap, r Renderer) Model {
	return Model{state: st, keys: keys, renderer: r}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if Dispatch(m.state, m.keys, msg) == Quit {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	return m.renderer.Render(m.state, m.width, m.height)
}

// Options configure Run.
type Options struct {
	Keys     KeyMap
	Renderer Renderer

	// Input and Output default to the process terminal when nil.
	Input  io.Reader
	Output io.Writer
}

// Run drives the session until the user quits or ctx is cancelled.
// Bubble Tea enters the alternate screen and raw mode on start and
// restores the terminal on every exit path, including panics.
func Run(ctx context.Context, st *State, opts Options) error {
	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}

	logging.Info("session started", zap.Int("items", st.Items.Len()))
	p := tea.NewProgram(NewModel(st, opts.Keys, opts.Renderer), progOpts...)
	if _, err := p.Run(); err != nil {
		logging.Error("session failed", zap.Error(err))
		return fmt.Errorf("run tui: %w", err)
	}

	done, pending := st.Items.Stats()
	logging.Info("session ended", zap.Int("done", done), zap.Int("pending", pending))
	return nil
}
