package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/compatquiz/internal/quiz"
)

const questionsJSON = `{
  "questions": [
    {"id": "q1", "text": "Mare o montagna?", "options": {"b": {"label": "Spiaggia"}, "m": {"label": "Montagna"}}},
    {"id": "q2", "text": "Cane o gatto?", "options": {"x": {"label": "Cane"}, "y": {"label": "Gatto"}}}
  ]
}`

func testServer(t *testing.T) (*httptest.Server, *[]quiz.Payload) {
	t.Helper()
	var got []quiz.Payload
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/questions", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(questionsJSON))
	})
	mux.HandleFunc("POST /api/score", func(w http.ResponseWriter, r *http.Request) {
		var p quiz.Payload
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		got = append(got, p)
		json.NewEncoder(w).Encode(quiz.ScoreResponse{
			FinalScore:         72,
			CompatibilityLevel: "compatibile",
			Verdict:            "Buona compatibilità.",
			Strengths:          []string{"Ironia"},
		})
	})
	mux.HandleFunc("GET /api/statistics", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total": 3, "avg_score": 61.25, "wife_material_count": 1, "compatible_count": 1, "potential_count": 0, "incompatible_count": 1}`))
	})
	mux.HandleFunc("GET /api/evaluations", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"evaluations": [
		  {"id": 2, "name": "Giulia", "final_score": 72, "compatibility_level": "compatibile", "verdict": "ok", "created_at": "2026-10-01T18:30:00.123456"},
		  {"id": 1, "name": "Marta", "final_score": 40, "compatibility_level": "non compatibile", "verdict": "no", "created_at": "2026-09-30T10:00:00"}
		]}`))
	})
	mux.HandleFunc("GET /api/evaluations/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "2" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": "Valutazione non trovata"}`))
			return
		}
		w.Write([]byte(`{"id": 2, "name": "Giulia", "final_score": 72, "compatibility_level": "compatibile",
		  "verdict": "ok", "answers": {"q1": "b", "why_us": "insieme"}, "created_at": "2026-10-01T18:30:00"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &got
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func testQuestionSet() quiz.QuestionSet {
	return quiz.NewQuestionSet([]quiz.Question{
		{ID: "q1", Text: "Mare o montagna?", Options: quiz.Options{{Value: "b", Label: "Spiaggia"}}},
		{ID: "q2", Text: "Cane o gatto?", Options: quiz.Options{{Value: "x", Label: "Cane"}}},
	}, nil)
}

func TestLoadAnswersFile(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "answers.yml", "name: Giulia\nanswers:\n  q1: b\n  why_us: insieme\n")
		set, err := loadAnswersFile(path)
		require.NoError(t, err)
		assert.Equal(t, quiz.AnswerSet{"name": "Giulia", "q1": "b", "why_us": "insieme"}, set)
	})

	t.Run("json", func(t *testing.T) {
		path := writeFile(t, "answers.json", `{"name": "Giulia", "answers": {"q2": "x"}}`)
		set, err := loadAnswersFile(path)
		require.NoError(t, err)
		assert.Equal(t, "x", set["q2"])
	})

	t.Run("missing answers", func(t *testing.T) {
		path := writeFile(t, "answers.yml", "name: Giulia\n")
		_, err := loadAnswersFile(path)
		require.Error(t, err)
	})

	t.Run("non-string answer", func(t *testing.T) {
		path := writeFile(t, "answers.yml", "name: Giulia\nanswers:\n  q1: 3\n")
		_, err := loadAnswersFile(path)
		require.Error(t, err)
	})

	t.Run("no path", func(t *testing.T) {
		_, err := loadAnswersFile("")
		require.Error(t, err)
	})
}

func TestBuildSubmission(t *testing.T) {
	tests := []struct {
		name    string
		answers quiz.AnswerSet
		wantErr error
	}{
		{"complete", quiz.AnswerSet{"name": "Giulia", "q1": "b", "q2": "x", "why_us": "insieme"}, nil},
		{"no name", quiz.AnswerSet{"q1": "b", "q2": "x", "why_us": "insieme"}, quiz.ErrNameRequired},
		{"blank name", quiz.AnswerSet{"name": "  ", "q1": "b", "q2": "x", "why_us": "insieme"}, quiz.ErrNameRequired},
		{"missing question", quiz.AnswerSet{"name": "Giulia", "q1": "b", "why_us": "insieme"}, quiz.ErrAnswerRequired},
		{"missing why_us", quiz.AnswerSet{"name": "Giulia", "q1": "b", "q2": "x"}, quiz.ErrWhyUsRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := buildSubmission(testQuestionSet(), tt.answers)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Giulia", p.Name)
			assert.Equal(t, map[string]string{"q1": "b", "q2": "x", "why_us": "insieme"}, p.Answers)
		})
	}
}

func TestBuildSubmissionUnknownKey(t *testing.T) {
	_, err := buildSubmission(testQuestionSet(), quiz.AnswerSet{"name": "Giulia", "q9": "z"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"q9"`)
}

func TestBuildSubmissionNamesFailingQuestion(t *testing.T) {
	_, err := buildSubmission(testQuestionSet(), quiz.AnswerSet{"name": "Giulia", "q1": "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question q2")
}

func TestSubmitCommand(t *testing.T) {
	srv, got := testServer(t)
	path := writeFile(t, "answers.yml", "name: Giulia\nanswers:\n  q1: b\n  q2: x\n  why_us: insieme\n  non_negotiables: \"\"\n")

	out, err := runCommand(t, "--server", srv.URL, "submit", "--answers", path)
	require.NoError(t, err)
	assert.Contains(t, out, "72/100  ✅ Compatibile")
	assert.Contains(t, out, "• Ironia")

	require.Len(t, *got, 1)
	assert.Equal(t, map[string]string{"q1": "b", "q2": "x", "why_us": "insieme", "non_negotiables": ""}, (*got)[0].Answers)
}

func TestSubmitCommandValidationFails(t *testing.T) {
	srv, got := testServer(t)
	path := writeFile(t, "answers.yml", "name: Giulia\nanswers:\n  q1: b\n  q2: x\n")

	_, err := runCommand(t, "--server", srv.URL, "submit", "--answers", path)
	require.ErrorIs(t, err, quiz.ErrWhyUsRequired)
	assert.Empty(t, *got, "nothing is sent when validation fails")
}

func TestStatsCommand(t *testing.T) {
	srv, _ := testServer(t)
	out, err := runCommand(t, "--server", srv.URL, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Valutazioni:      3")
	assert.Contains(t, out, "61.2/100")
	assert.Contains(t, out, "💍 Wife Material")
}

func TestEvaluationsCommands(t *testing.T) {
	srv, _ := testServer(t)

	out, err := runCommand(t, "--server", srv.URL, "evaluations", "list", "-n", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Giulia")
	assert.Contains(t, out, "2026-10-01 18:30:00")
	assert.NotContains(t, out, "Marta", "limit trims the list")

	out, err = runCommand(t, "--server", srv.URL, "evaluations", "view", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Nome:  Giulia")
	assert.Contains(t, out, "why_us")
	assert.Regexp(t, `q1\s+Spiaggia`, out, "answers print option labels")
	assert.Contains(t, out, "ID valutazione: #2")

	_, err = runCommand(t, "--server", srv.URL, "evaluations", "view", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = runCommand(t, "--server", srv.URL, "evaluations", "view", "abc")
	require.Error(t, err)
}

func TestAnswerLabel(t *testing.T) {
	set := testQuestionSet()
	assert.Equal(t, "Spiaggia", answerLabel(set, "q1", "b"))
	assert.Equal(t, "z", answerLabel(set, "q1", "z"), "unknown value")
	assert.Equal(t, "insieme", answerLabel(set, "why_us", "insieme"))
	assert.Equal(t, "b", answerLabel(quiz.QuestionSet{}, "q1", "b"), "no catalog")
}

func TestQuestionsCommand(t *testing.T) {
	srv, _ := testServer(t)
	out, err := runCommand(t, "--server", srv.URL, "questions")
	require.NoError(t, err)
	assert.Contains(t, out, "[q1] Mare o montagna?")
	assert.Contains(t, out, "Spiaggia")
	assert.Contains(t, out, "[why_us]")
	assert.Contains(t, out, "(obbligatoria)")
}

func TestInvalidServerFlag(t *testing.T) {
	_, err := runCommand(t, "--server", "ftp://example.com", "stats")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "compatquiz")
}
