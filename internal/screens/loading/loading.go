// Package loading fetches the question set before the quiz starts.
package loading

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/compatquiz/internal/quiz"
	"github.com/abhisek/compatquiz/internal/router"
	"github.com/abhisek/compatquiz/internal/screen"
	"github.com/abhisek/compatquiz/internal/ui/layout"
	"github.com/abhisek/compatquiz/internal/ui/theme"
)

// LoadFailedText replaces the quiz when the questions cannot be loaded.
const LoadFailedText = "Errore nel caricamento delle domande"

// QuestionFetcher loads the question catalog.
type QuestionFetcher interface {
	FetchQuestions(ctx context.Context) (quiz.QuestionSet, error)
}

// questionsLoadedMsg carries the result of the startup fetch.
type questionsLoadedMsg struct {
	Set quiz.QuestionSet
	Err error
}

// LoadingScreen fetches questions once and then hands over to the quiz.
type LoadingScreen struct {
	fetcher   QuestionFetcher
	next      func(quiz.QuestionSet) screen.Screen
	logger    *slog.Logger
	failed    bool
	handedOff bool
}

var _ screen.Screen = (*LoadingScreen)(nil)
var _ screen.KeyHintProvider = (*LoadingScreen)(nil)

// New creates a LoadingScreen. next builds the screen that replaces it once
// the questions are loaded.
func New(fetcher QuestionFetcher, next func(quiz.QuestionSet) screen.Screen, logger *slog.Logger) *LoadingScreen {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LoadingScreen{
		fetcher: fetcher,
		next:    next,
		logger:  logger,
	}
}

func (s *LoadingScreen) Init() tea.Cmd {
	fetcher := s.fetcher
	return func() tea.Msg {
		set, err := fetcher.FetchQuestions(context.Background())
		return questionsLoadedMsg{Set: set, Err: err}
	}
}

func (s *LoadingScreen) Title() string {
	return "Quiz di compatibilità"
}

func (s *LoadingScreen) KeyHints() []layout.KeyHint {
	if s.failed {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Esci"},
		}
	}
	return []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Esci"},
	}
}

func (s *LoadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		return s.handleLoaded(msg)

	case tea.KeyMsg:
		// No retry after a load failure; the only way out is quitting.
		if s.failed {
			switch msg.String() {
			case "esc", "q", "enter":
				return s, tea.Quit
			}
		}
	}
	return s, nil
}

func (s *LoadingScreen) handleLoaded(msg questionsLoadedMsg) (screen.Screen, tea.Cmd) {
	if s.handedOff {
		return s, nil
	}
	if msg.Err != nil {
		s.failed = true
		s.logger.Error("load questions", "err", msg.Err)
		return s, nil
	}

	s.handedOff = true
	s.logger.Info("questions loaded", "questions", len(msg.Set.Questions))
	next := s.next(msg.Set)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *LoadingScreen) View(width, height int) string {
	if s.failed {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("\n\n\n" + LoadFailedText)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Caricamento domande...")
}
