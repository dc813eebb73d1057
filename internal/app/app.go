package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/compatquiz/internal/quiz"
	"github.com/abhisek/compatquiz/internal/router"
	"github.com/abhisek/compatquiz/internal/screen"
	"github.com/abhisek/compatquiz/internal/screens/loading"
	"github.com/abhisek/compatquiz/internal/screens/wizard"
	"github.com/abhisek/compatquiz/internal/ui/layout"
)

// Client is the part of the API client the TUI needs.
type Client interface {
	FetchQuestions(ctx context.Context) (quiz.QuestionSet, error)
	Score(ctx context.Context, p quiz.Payload) (quiz.ScoreResponse, error)
}

// Options holds the dependencies for the TUI.
type Options struct {
	Client Client
	Logger *slog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel that starts by loading the questions.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	next := func(set quiz.QuestionSet) screen.Screen {
		return wizard.New(set, opts.Client, logger)
	}
	return AppModel{
		router: router.New(loading.New(opts.Client, next, logger)),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Only ctrl+c is global. Esc and every other key go to the active screen.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	var title, status string
	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Esci"},
	}
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if kp, ok := active.(screen.KeyHintProvider); ok {
			if hints := kp.KeyHints(); len(hints) > 0 {
				footerHints = hints
			}
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(footerHints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Client == nil {
		return fmt.Errorf("app: no API client")
	}
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
