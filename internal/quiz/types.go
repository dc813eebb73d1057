package quiz

// Answer keys that are not question ids.
const (
	KeyName           = "name"
	KeyWhyUs          = "why_us"
	KeyNonNegotiables = "non_negotiables"
)

// Question is a single-choice prompt as served by GET /api/questions.
type Question struct {
	ID      string  `json:"id"`
	Text    string  `json:"text"`
	Options Options `json:"options"`
}

// OpenQuestion is a free-text prompt.
type OpenQuestion struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Required bool   `json:"required"`
}

// DefaultOpenQuestions returns the two fixed free-text fields. why_us is
// required, non_negotiables is not.
func DefaultOpenQuestions() []OpenQuestion {
	return []OpenQuestion{
		{ID: KeyWhyUs, Text: "Perché io e te funzioneremmo davvero?", Required: true},
		{ID: KeyNonNegotiables, Text: "C'è qualcosa che dovrei sapere (limiti, bisogni, non negoziabili)?", Required: false},
	}
}

// QuestionSet is the loaded question catalog. Read-only after load.
type QuestionSet struct {
	Questions     []Question
	OpenQuestions []OpenQuestion
}

// NewQuestionSet builds a set from the server's questions. The server's
// open_questions may only change the prompt text of the two fixed fields.
func NewQuestionSet(questions []Question, open []OpenQuestion) QuestionSet {
	fixed := DefaultOpenQuestions()
	for i := range fixed {
		for _, o := range open {
			if o.ID == fixed[i].ID && o.Text != "" {
				fixed[i].Text = o.Text
			}
		}
	}
	return QuestionSet{Questions: questions, OpenQuestions: fixed}
}

// OpenQuestion returns the open question with the given id.
func (s QuestionSet) OpenQuestion(id string) (OpenQuestion, bool) {
	for _, o := range s.OpenQuestions {
		if o.ID == id {
			return o, true
		}
	}
	return OpenQuestion{}, false
}

// AnswerSet maps a field key (name, question id, why_us, non_negotiables)
// to the selected or typed value.
type AnswerSet map[string]string

// Clone returns an independent copy of the set.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// BreakdownItem is one scored contribution.
type BreakdownItem struct {
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Points   float64 `json:"points"`
	Reason   string  `json:"reason"`
}

// ScoreResponse is the body returned by POST /api/score.
type ScoreResponse struct {
	FinalScore             float64         `json:"final_score"`
	CompatibilityLevel     string          `json:"compatibility_level"`
	Verdict                string          `json:"verdict"`
	TrustIndex             float64         `json:"trust_index"`
	VisionIndex            float64         `json:"vision_index"`
	EmotionalMaturityIndex float64         `json:"emotional_maturity_index"`
	AmbitionAlignmentIndex float64         `json:"ambition_alignment_index"`
	PointsBreakdown        []BreakdownItem `json:"points_breakdown"`
	Strengths              []string        `json:"strengths"`
	Concerns               []string        `json:"concerns"`
	RedFlags               []string        `json:"red_flags"`
	FinalMessage           string          `json:"final_message"`
	FinalReport            string          `json:"final_report,omitempty"`
	Interpretation         string          `json:"interpretation,omitempty"`
	EvaluationID           int             `json:"evaluation_id,omitempty"`
}
