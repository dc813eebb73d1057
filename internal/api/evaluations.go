package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/abhisek/compatquiz/internal/quiz"
)

// EvaluationSummary is one row of GET /api/evaluations.
type EvaluationSummary struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	FinalScore         float64 `json:"final_score"`
	CompatibilityLevel string  `json:"compatibility_level"`
	Verdict            string  `json:"verdict"`
	CreatedAt          string  `json:"created_at"`
}

// Evaluation is a stored evaluation from GET /api/evaluations/{id}.
type Evaluation struct {
	quiz.ScoreResponse
	ID        int               `json:"id"`
	Name      string            `json:"name"`
	Answers   map[string]string `json:"answers"`
	CreatedAt string            `json:"created_at"`
}

// Response returns the evaluation as a score response carrying its id.
func (e Evaluation) Response() quiz.ScoreResponse {
	resp := e.ScoreResponse
	resp.EvaluationID = e.ID
	return resp
}

// Statistics is the body of GET /api/statistics. AvgScore is nil when no
// evaluation exists yet.
type Statistics struct {
	Total             int      `json:"total"`
	AvgScore          *float64 `json:"avg_score"`
	WifeMaterialCount int      `json:"wife_material_count"`
	CompatibleCount   int      `json:"compatible_count"`
	PotentialCount    int      `json:"potential_count"`
	IncompatibleCount int      `json:"incompatible_count"`
}

// ListEvaluations returns the most recent stored evaluations, newest first.
func (c *Client) ListEvaluations(ctx context.Context) ([]EvaluationSummary, error) {
	raw, err := c.do(ctx, http.MethodGet, pathEvaluations, nil)
	if err != nil {
		return nil, err
	}
	var body struct {
		Evaluations []EvaluationSummary `json:"evaluations"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("decode evaluations: %w", err)
	}
	return body.Evaluations, nil
}

// GetEvaluation returns one stored evaluation. A missing id yields a
// *StatusError whose NotFound reports true.
func (c *Client) GetEvaluation(ctx context.Context, id int) (Evaluation, error) {
	raw, err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", pathEvaluations, id), nil)
	if err != nil {
		return Evaluation{}, err
	}
	var e Evaluation
	if err := json.Unmarshal(raw, &e); err != nil {
		return Evaluation{}, fmt.Errorf("decode evaluation: %w", err)
	}
	return e, nil
}

// Statistics returns aggregate counts over all stored evaluations.
func (c *Client) Statistics(ctx context.Context) (Statistics, error) {
	raw, err := c.do(ctx, http.MethodGet, pathStatistics, nil)
	if err != nil {
		return Statistics{}, err
	}
	var s Statistics
	if err := json.Unmarshal(raw, &s); err != nil {
		return Statistics{}, fmt.Errorf("decode statistics: %w", err)
	}
	return s, nil
}
