// Package render turns a score response into a display structure. It knows
// nothing about terminals; screens and commands lay the structure out.
package render

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/abhisek/compatquiz/internal/api"
	"github.com/abhisek/compatquiz/internal/quiz"
)

// levelLabels decorates the four known compatibility levels.
var levelLabels = map[string]string{
	"non compatibile": "❌ Non compatibile",
	"potenziale":      "⚠️ Potenziale",
	"compatibile":     "✅ Compatibile",
	"wife material":   "💍 Wife Material",
}

// Section titles.
const (
	TitleFinalReport    = "📋 Resoconto finale"
	TitleInterpretation = "🧠 Interpretazione avanzata"
	TitleIndices        = "Indici di compatibilità"
	TitleBreakdown      = "Dettaglio punteggi"
	TitleStrengths      = "Punti di forza"
	TitleConcerns       = "Criticità"
	TitleRedFlags       = "Red flags"
)

// PointClass classifies a breakdown entry by the sign of its points.
type PointClass int

const (
	Neutral PointClass = iota
	Positive
	Negative
)

func (c PointClass) String() string {
	switch c {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "neutral"
	}
}

// Block is a titled paragraph.
type Block struct {
	Title string
	Body  string
}

// Index is one 0-10 compatibility index.
type Index struct {
	Label string
	Value string
}

// BreakdownLine is one formatted breakdown entry.
type BreakdownLine struct {
	Question string
	Answer   string
	Points   string
	Class    PointClass
	Reason   string
}

// Section is a titled bullet list. Alert marks the red-flags section.
type Section struct {
	Title string
	Items []string
	Alert bool
}

// Result is the display structure of a score response. FinalReport and
// Interpretation are nil when the server sent none.
type Result struct {
	Score          string
	Level          string
	Verdict        string
	EvaluationID   string
	FinalReport    *Block
	Interpretation *Block
	Indices        []Index
	Breakdown      []BreakdownLine
	Sections       []Section
	FinalMessage   string
}

// Section returns the section with the given title.
func (r Result) Section(title string) (Section, bool) {
	for _, s := range r.Sections {
		if s.Title == title {
			return s, true
		}
	}
	return Section{}, false
}

// Build maps a score response to its display structure.
func Build(resp quiz.ScoreResponse) Result {
	r := Result{
		Score:        formatNumber(resp.FinalScore) + "/100",
		Level:        LevelLabel(resp.CompatibilityLevel),
		Verdict:      resp.Verdict,
		FinalMessage: resp.FinalMessage,
	}
	if resp.EvaluationID != 0 {
		r.EvaluationID = fmt.Sprintf("ID valutazione: #%d", resp.EvaluationID)
	}
	if resp.FinalReport != "" {
		r.FinalReport = &Block{Title: TitleFinalReport, Body: resp.FinalReport}
	}
	if resp.Interpretation != "" {
		r.Interpretation = &Block{Title: TitleInterpretation, Body: resp.Interpretation}
	}

	r.Indices = []Index{
		{Label: "Fiducia", Value: formatNumber(resp.TrustIndex) + "/10"},
		{Label: "Visione", Value: formatNumber(resp.VisionIndex) + "/10"},
		{Label: "Maturità emotiva", Value: formatNumber(resp.EmotionalMaturityIndex) + "/10"},
		{Label: "Allineamento ambizione", Value: formatNumber(resp.AmbitionAlignmentIndex) + "/10"},
	}

	r.Breakdown = make([]BreakdownLine, 0, len(resp.PointsBreakdown))
	for _, item := range resp.PointsBreakdown {
		r.Breakdown = append(r.Breakdown, BreakdownLine{
			Question: item.Question,
			Answer:   item.Answer,
			Points:   FormatPoints(item.Points),
			Class:    Classify(item.Points),
			Reason:   item.Reason,
		})
	}

	r.Sections = []Section{
		{Title: TitleStrengths, Items: resp.Strengths},
		{Title: TitleConcerns, Items: resp.Concerns},
	}
	if len(resp.RedFlags) > 0 {
		r.Sections = append(r.Sections, Section{Title: TitleRedFlags, Items: resp.RedFlags, Alert: true})
	}
	return r
}

// LevelLabel decorates a known compatibility level; unknown levels are
// returned unchanged.
func LevelLabel(level string) string {
	if label, ok := levelLabels[level]; ok {
		return label
	}
	return level
}

// FormatPoints renders points with one decimal and an explicit plus sign
// for positive values.
func FormatPoints(p float64) string {
	if p == 0 {
		return "0.0"
	}
	s := strconv.FormatFloat(p, 'f', 1, 64)
	if p > 0 {
		return "+" + s
	}
	return s
}

// Classify returns the styling class for a points value.
func Classify(p float64) PointClass {
	switch {
	case p > 0:
		return Positive
	case p < 0:
		return Negative
	default:
		return Neutral
	}
}

// ErrorText is the inline message for a failed submission.
func ErrorText(err error) string {
	var se *api.StatusError
	if errors.As(err, &se) {
		msg := se.Message
		if msg == "" {
			msg = "sconosciuto"
		}
		return "Errore: " + msg
	}
	var te *api.TransportError
	if errors.As(err, &te) {
		return "Errore di connessione: " + te.Err.Error()
	}
	return "Errore: " + err.Error()
}

// formatNumber prints a number the shortest way that round-trips, so 8
// stays "8" and 8.3 stays "8.3".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
