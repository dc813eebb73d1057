// Package wizard is the paginated quiz: one page per question between a
// name page and an open-questions page, then the scored result.
package wizard

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/compatquiz/internal/quiz"
	"github.com/abhisek/compatquiz/internal/render"
	"github.com/abhisek/compatquiz/internal/screen"
	"github.com/abhisek/compatquiz/internal/screens/result"
	"github.com/abhisek/compatquiz/internal/ui/components"
	"github.com/abhisek/compatquiz/internal/ui/layout"
)

// Scorer submits a payload for scoring.
type Scorer interface {
	Score(ctx context.Context, p quiz.Payload) (quiz.ScoreResponse, error)
}

// pageElement is the display element of one page. Exactly one is active.
type pageElement struct {
	page   quiz.Page
	active bool
}

// WizardScreen implements screen.Screen for the quiz.
type WizardScreen struct {
	session *quiz.Session
	scorer  Scorer
	logger  *slog.Logger

	elements []pageElement

	// Controls are built once with the pages and keep their values across
	// navigation; only restart clears them.
	name           *components.TextInput
	selects        map[string]*components.OptionSelect
	whyUs          *components.TextInput
	nonNegotiables *components.TextInput

	notice     string
	submitting bool
	submitErr  string
	viewer     *result.Viewer
}

var _ screen.Screen = (*WizardScreen)(nil)
var _ screen.KeyHintProvider = (*WizardScreen)(nil)
var _ screen.StatusProvider = (*WizardScreen)(nil)

// New creates a WizardScreen over a loaded question set.
func New(set quiz.QuestionSet, scorer Scorer, logger *slog.Logger) *WizardScreen {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	w := &WizardScreen{
		session: quiz.NewSession(set),
		scorer:  scorer,
		logger:  logger,
		name:    components.NewTextInput("Come ti chiami?", "Il tuo nome", 80),
		selects: make(map[string]*components.OptionSelect, len(set.Questions)),
	}

	for _, p := range w.session.Pages() {
		w.elements = append(w.elements, pageElement{page: p})
	}
	for _, q := range set.Questions {
		w.selects[q.ID] = components.NewOptionSelect(q.Text, q.Options.Values(), q.Options.Labels())
	}
	w.whyUs = components.NewTextInput(openPrompt(set, quiz.KeyWhyUs), "Scrivi qui...", 0)
	w.nonNegotiables = components.NewTextInput(openPrompt(set, quiz.KeyNonNegotiables), "Facoltativo", 0)

	w.showPage(0)
	w.logger.Info("quiz started", "session_id", w.session.ID(), "pages", w.session.TotalPages())
	return w
}

func openPrompt(set quiz.QuestionSet, id string) string {
	o, _ := set.OpenQuestion(id)
	if o.Required {
		return o.Text + " *"
	}
	return o.Text
}

// Session exposes the underlying session.
func (w *WizardScreen) Session() *quiz.Session {
	return w.session
}

func (w *WizardScreen) Init() tea.Cmd {
	return w.showPage(w.session.Index())
}

func (w *WizardScreen) Title() string {
	return "Quiz di compatibilità"
}

func (w *WizardScreen) Status() string {
	if w.session.OnResult() {
		return "Risultato"
	}
	return "Pagina " + components.NewProgressBar("", w.session.Index()+1, w.session.TotalPages(), 0).Counter()
}

func (w *WizardScreen) KeyHints() []layout.KeyHint {
	if w.session.OnResult() {
		switch {
		case w.submitting:
			return nil
		case w.submitErr != "":
			return []layout.KeyHint{
				{Key: "Enter", Description: "Riprova"},
				{Key: "Esc", Description: "Torna alle domande"},
			}
		default:
			return []layout.KeyHint{
				{Key: "↑↓", Description: "Scorri"},
				{Key: "R", Description: "Ricomincia"},
				{Key: "Q", Description: "Esci"},
			}
		}
	}

	p := w.session.Current()
	hints := make([]layout.KeyHint, 0, 4)
	switch p.Kind {
	case quiz.PageQuestion:
		hints = append(hints, layout.KeyHint{Key: "↑↓/1-9", Description: "Scegli"})
	case quiz.PageOpenQuestions:
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Campo"})
	}
	if w.session.Index() == w.session.LastIndex() {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Invia"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Avanti"})
	}
	if w.session.Index() > 0 {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Indietro"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+R", Description: "Ricomincia"})
}

func (w *WizardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case scoreDoneMsg:
		return w.handleScoreDone(msg)

	case RestartMsg:
		return w, w.restart()

	case tea.KeyMsg:
		if w.session.OnResult() {
			return w.handleResultKey(msg)
		}
		return w.handleFormKey(msg)
	}

	// Cursor blink and the like go to the focused inputs.
	if w.session.OnResult() {
		return w, nil
	}
	return w, w.forwardToInputs(msg)
}

func (w *WizardScreen) handleFormKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "ctrl+r":
		return w, restartCmd
	case "enter":
		return w.advance()
	case "esc", "pgup":
		return w.back()
	}

	p := w.session.Current()
	switch p.Kind {
	case quiz.PageName:
		w.notice = ""
		return w, w.name.Update(msg)

	case quiz.PageQuestion:
		if w.selects[p.Question.ID].Update(msg) {
			w.notice = ""
		}
		return w, nil

	case quiz.PageOpenQuestions:
		switch msg.String() {
		case "tab", "shift+tab":
			return w, w.toggleOpenFocus()
		}
		w.notice = ""
		return w, w.forwardToInputs(msg)
	}
	return w, nil
}

func (w *WizardScreen) handleResultKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if w.submitting {
		return w, nil
	}
	key := msg.String()

	if w.submitErr != "" {
		switch key {
		case "enter":
			return w.submit()
		case "esc":
			w.session.LeaveResult()
			w.submitErr = ""
			return w, w.showPage(w.session.Index())
		case "ctrl+r":
			return w, restartCmd
		}
		return w, nil
	}

	switch key {
	case "r", "ctrl+r":
		return w, restartCmd
	case "q":
		return w, tea.Quit
	}
	if w.viewer != nil {
		w.viewer.Update(msg)
	}
	return w, nil
}

// advance saves the current page and moves forward, submitting from the
// last page.
func (w *WizardScreen) advance() (screen.Screen, tea.Cmd) {
	w.saveCurrentAnswer()
	if w.session.Index() == w.session.LastIndex() {
		return w.submit()
	}
	if err := w.session.Next(); err != nil {
		w.notice = err.Error()
		return w, nil
	}
	w.notice = ""
	return w, w.showPage(w.session.Index())
}

// back never validates and never saves.
func (w *WizardScreen) back() (screen.Screen, tea.Cmd) {
	if !w.session.Prev() {
		return w, nil
	}
	w.notice = ""
	return w, w.showPage(w.session.Index())
}

func (w *WizardScreen) submit() (screen.Screen, tea.Cmd) {
	payload, err := w.session.Submit()
	if err != nil {
		w.notice = err.Error()
		return w, nil
	}
	w.notice = ""
	w.submitting = true
	w.submitErr = ""
	w.viewer = nil
	w.logger.Info("submitting answers", "session_id", w.session.ID(), "answers", len(payload.Answers))
	return w, w.submitCmd(payload)
}

func (w *WizardScreen) submitCmd(p quiz.Payload) tea.Cmd {
	scorer := w.scorer
	id := w.session.ID()
	return func() tea.Msg {
		resp, err := scorer.Score(context.Background(), p)
		return scoreDoneMsg{SessionID: id, Response: resp, Err: err}
	}
}

func (w *WizardScreen) handleScoreDone(msg scoreDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.SessionID != w.session.ID() || !w.submitting {
		return w, nil
	}
	w.submitting = false
	if msg.Err != nil {
		w.submitErr = render.ErrorText(msg.Err)
		w.logger.Warn("score failed", "session_id", msg.SessionID, "err", msg.Err)
		return w, nil
	}
	w.viewer = result.NewViewer(render.Build(msg.Response))
	w.logger.Info("scored",
		"session_id", msg.SessionID,
		"final_score", msg.Response.FinalScore,
		"level", msg.Response.CompatibilityLevel)
	return w, nil
}

// saveCurrentAnswer copies the current page's controls into the session.
func (w *WizardScreen) saveCurrentAnswer() {
	p := w.session.Current()
	switch p.Kind {
	case quiz.PageName:
		w.session.Record(quiz.KeyName, w.name.Value())
	case quiz.PageQuestion:
		w.session.Record(p.Question.ID, w.selects[p.Question.ID].Value())
	case quiz.PageOpenQuestions:
		w.session.Record(quiz.KeyWhyUs, w.whyUs.Value())
		w.session.Record(quiz.KeyNonNegotiables, w.nonNegotiables.Value())
	}
}

func (w *WizardScreen) restart() tea.Cmd {
	w.session.Restart()
	w.name.Reset()
	for _, sel := range w.selects {
		sel.Reset()
	}
	w.whyUs.Reset()
	w.nonNegotiables.Reset()
	w.notice = ""
	w.submitting = false
	w.submitErr = ""
	w.viewer = nil
	w.logger.Info("quiz restarted", "session_id", w.session.ID())
	return w.showPage(0)
}

// showPage activates the element for page i and focuses its input.
func (w *WizardScreen) showPage(i int) tea.Cmd {
	for j := range w.elements {
		w.elements[j].active = j == i
	}
	w.name.Blur()
	w.whyUs.Blur()
	w.nonNegotiables.Blur()

	p, ok := w.session.PageAt(i)
	if !ok {
		return nil
	}
	switch p.Kind {
	case quiz.PageName:
		return w.name.Focus()
	case quiz.PageOpenQuestions:
		return w.whyUs.Focus()
	}
	return nil
}

func (w *WizardScreen) activeElement() (pageElement, bool) {
	for _, el := range w.elements {
		if el.active {
			return el, true
		}
	}
	return pageElement{}, false
}

func (w *WizardScreen) toggleOpenFocus() tea.Cmd {
	if w.whyUs.Focused() {
		w.whyUs.Blur()
		return w.nonNegotiables.Focus()
	}
	w.nonNegotiables.Blur()
	return w.whyUs.Focus()
}

func (w *WizardScreen) forwardToInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, in := range []*components.TextInput{w.name, w.whyUs, w.nonNegotiables} {
		if in.Focused() {
			cmds = append(cmds, in.Update(msg))
		}
	}
	return tea.Batch(cmds...)
}

func restartCmd() tea.Msg {
	return RestartMsg{}
}
