// Package api talks to the quiz server: the question catalog, scoring and
// the stored evaluations.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/abhisek/compatquiz/internal/quiz"
	"github.com/abhisek/compatquiz/internal/schema"
)

const (
	pathQuestions   = "/api/questions"
	pathScore       = "/api/score"
	pathEvaluations = "/api/evaluations"
	pathStatistics  = "/api/statistics"
)

// Client is an HTTP client for the quiz server. Requests carry no timeout
// and are never retried.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a Client for the server at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the server address.
func (c *Client) BaseURL() string { return c.baseURL }

type questionsBody struct {
	Questions     []quiz.Question     `json:"questions"`
	OpenQuestions []quiz.OpenQuestion `json:"open_questions"`
}

// FetchQuestions loads the question catalog.
func (c *Client) FetchQuestions(ctx context.Context) (quiz.QuestionSet, error) {
	raw, err := c.do(ctx, http.MethodGet, pathQuestions, nil)
	if err != nil {
		return quiz.QuestionSet{}, err
	}
	if err := schema.Check(schema.Questions, raw); err != nil {
		return quiz.QuestionSet{}, fmt.Errorf("check questions: %w", err)
	}

	var body questionsBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return quiz.QuestionSet{}, fmt.Errorf("decode questions: %w", err)
	}
	return quiz.NewQuestionSet(body.Questions, body.OpenQuestions), nil
}

// Score submits the collected answers and returns the evaluation.
func (c *Client) Score(ctx context.Context, p quiz.Payload) (quiz.ScoreResponse, error) {
	reqBody, err := json.Marshal(p)
	if err != nil {
		return quiz.ScoreResponse{}, fmt.Errorf("encode payload: %w", err)
	}
	raw, err := c.do(ctx, http.MethodPost, pathScore, reqBody)
	if err != nil {
		return quiz.ScoreResponse{}, err
	}

	var resp quiz.ScoreResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return quiz.ScoreResponse{}, fmt.Errorf("decode score: %w", err)
	}
	return resp, nil
}

// do sends one request and returns the body of a 2xx response.
func (c *Client) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "request failed",
			"method", method, "path", path, "error", err)
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: fmt.Errorf("read body: %w", err)}
	}

	c.logger.InfoContext(ctx, "request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start).String(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Method:  method,
			Path:    path,
			Code:    resp.StatusCode,
			Message: errorMessage(raw),
		}
	}
	return raw, nil
}

// errorMessage extracts the "error" field of a failure body.
func errorMessage(raw []byte) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Error
}
