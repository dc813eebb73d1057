// Package result lays a rendered score result out for the terminal.
package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/compatquiz/internal/render"
	"github.com/abhisek/compatquiz/internal/ui/theme"
)

// pageStep is how many lines pgup/pgdown move.
const pageStep = 10

// Viewer shows a result with line-offset scrolling.
type Viewer struct {
	result render.Result
	offset int

	// Set by View so scrolling can clamp to what was last drawn.
	lineCount int
	height    int
}

// NewViewer creates a viewer scrolled to the top.
func NewViewer(r render.Result) *Viewer {
	return &Viewer{result: r}
}

// Update handles scroll keys. It reports whether the key was consumed.
func (v *Viewer) Update(msg tea.Msg) bool {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false
	}
	switch kmsg.String() {
	case "up", "k":
		v.scroll(-1)
	case "down", "j":
		v.scroll(1)
	case "pgup", "b":
		v.scroll(-pageStep)
	case "pgdown", "f", "space":
		v.scroll(pageStep)
	case "home", "g":
		v.offset = 0
	case "end", "G":
		v.offset = v.maxOffset()
	default:
		return false
	}
	return true
}

func (v *Viewer) scroll(delta int) {
	v.offset += delta
	if limit := v.maxOffset(); v.offset > limit {
		v.offset = limit
	}
	if v.offset < 0 {
		v.offset = 0
	}
}

func (v *Viewer) maxOffset() int {
	if v.lineCount == 0 {
		// Nothing drawn yet; allow scrolling and clamp in View.
		return v.offset + pageStep
	}
	limit := v.lineCount - v.height
	if limit < 0 {
		return 0
	}
	return limit
}

// View renders the visible window of the result.
func (v *Viewer) View(width, height int) string {
	lines := strings.Split(Render(v.result, width), "\n")
	v.lineCount = len(lines)
	v.height = height
	if v.offset > v.maxOffset() {
		v.offset = v.maxOffset()
	}

	end := v.offset + height
	if end > len(lines) || height <= 0 {
		end = len(lines)
	}
	return strings.Join(lines[v.offset:end], "\n")
}

// Render lays out the whole result for the given width.
func Render(r render.Result, width int) string {
	inner := width - 8
	if inner < 20 {
		inner = 20
	}
	var b strings.Builder

	// Score header.
	b.WriteString(center(width, theme.Title.Render(r.Score)))
	b.WriteString("\n")
	b.WriteString(center(width, theme.Body.Bold(true).Render(r.Level)))
	b.WriteString("\n")
	if r.Verdict != "" {
		b.WriteString(center(width, theme.Body.Width(inner).Align(lipgloss.Center).Render(r.Verdict)))
		b.WriteString("\n")
	}
	if r.EvaluationID != "" {
		b.WriteString(center(width, theme.Subtitle.Render(r.EvaluationID)))
		b.WriteString("\n")
	}

	for _, blk := range []*render.Block{r.FinalReport, r.Interpretation} {
		if blk == nil {
			continue
		}
		b.WriteString("\n")
		b.WriteString(heading(blk.Title))
		b.WriteString(theme.Body.Width(inner).Render(blk.Body))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(heading(render.TitleIndices))
	for _, idx := range r.Indices {
		b.WriteString(fmt.Sprintf("    %-24s %s\n",
			idx.Label, lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(idx.Value)))
	}

	b.WriteString("\n")
	b.WriteString(heading(render.TitleBreakdown))
	for _, line := range r.Breakdown {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			pointsStyle(line.Class).Width(6).Align(lipgloss.Right).Render(line.Points),
			theme.Body.Bold(true).Render(line.Question)))
		b.WriteString("          " + theme.Subtitle.Render("Risposta: "+line.Answer) + "\n")
		if line.Reason != "" {
			b.WriteString("          " + theme.Hint.Render(line.Reason) + "\n")
		}
	}

	for _, sec := range r.Sections {
		b.WriteString("\n")
		b.WriteString(renderSection(sec, inner))
	}

	if r.FinalMessage != "" {
		b.WriteString("\n")
		b.WriteString(theme.Card.Width(inner).Render(theme.Body.Italic(true).Render(r.FinalMessage)))
		b.WriteString("\n")
	}

	return b.String()
}

func renderSection(sec render.Section, width int) string {
	var items strings.Builder
	for _, item := range sec.Items {
		items.WriteString("  • " + item + "\n")
	}
	body := strings.TrimSuffix(items.String(), "\n")

	if sec.Alert {
		title := theme.Notice.Render(sec.Title)
		return theme.AlertCard.Width(width).Render(title+"\n"+body) + "\n"
	}
	if body == "" {
		return heading(sec.Title)
	}
	return heading(sec.Title) + theme.Body.Render(body) + "\n"
}

func heading(title string) string {
	return "  " + lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(title) + "\n"
}

func pointsStyle(c render.PointClass) lipgloss.Style {
	switch c {
	case render.Positive:
		return theme.Positive
	case render.Negative:
		return theme.Negative
	default:
		return theme.Neutral
	}
}

func center(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
