package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/compatquiz/internal/quiz"
	"github.com/abhisek/compatquiz/internal/ui/components"
	"github.com/abhisek/compatquiz/internal/ui/theme"
)

// SubmittingText is shown while the score request is in flight.
const SubmittingText = "Calcolo compatibilità..."

func (w *WizardScreen) View(width, height int) string {
	if w.session.OnResult() {
		return w.renderResultTarget(width, height)
	}
	return w.renderPage(width)
}

// renderResultTarget renders the pending, failed or successful submission.
func (w *WizardScreen) renderResultTarget(width, height int) string {
	switch {
	case w.submitting:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n" + SubmittingText)

	case w.submitErr != "":
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("\n\n\n" + w.submitErr + "\n\n" +
				theme.Hint.Render("Invio per riprovare, Esc per tornare alle domande"))

	case w.viewer != nil:
		return w.viewer.View(width, height)
	}
	return ""
}

// renderPage renders the progress bar and the active page element.
func (w *WizardScreen) renderPage(width int) string {
	el, ok := w.activeElement()
	if !ok {
		return ""
	}

	barWidth := min(width-8, 60)
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.NewProgressBar("Pagina", el.page.Index+1, w.session.TotalPages(), barWidth).View()))
	b.WriteString("\n\n")

	var body string
	switch el.page.Kind {
	case quiz.PageName:
		body = w.name.View()
	case quiz.PageQuestion:
		body = w.selects[el.page.Question.ID].View()
	case quiz.PageOpenQuestions:
		body = w.whyUs.View() + "\n\n\n" + w.nonNegotiables.View()
	}

	cardWidth := min(width-4, 72)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Card.Width(cardWidth).Render(body)))
	b.WriteString("\n")

	if w.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Notice.Render("⚠ "+w.notice)))
	}

	return b.String()
}
