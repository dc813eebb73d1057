package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionsSchema(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"questions":[{"id":"q1","text":"T","options":{"a":{"label":"A"}}}]}`, false},
		{"valid with open questions", `{"questions":[],"open_questions":[{"id":"why_us","text":"?"}]}`, false},
		{"extra fields ignored", `{"questions":[{"id":"q1","text":"T","options":{},"type":"interpretive"}],"x":1}`, false},
		{"missing questions", `{"open_questions":[]}`, true},
		{"item missing options", `{"questions":[{"id":"q1","text":"T"}]}`, true},
		{"questions not array", `{"questions":{}}`, true},
		{"not json", `<html>`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(Questions, []byte(tt.raw))
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, "questions", ve.Schema)
		})
	}
}

func TestAnswersFileSchema(t *testing.T) {
	ok := map[string]any{
		"name":    "Alice",
		"answers": map[string]any{"q1": "b"},
	}
	require.NoError(t, CheckValue(AnswersFile, ok))

	bad := map[string]any{
		"name":    "Alice",
		"answers": map[string]any{"q1": 3.0},
	}
	require.Error(t, CheckValue(AnswersFile, bad))

	require.Error(t, CheckValue(AnswersFile, map[string]any{"name": "Alice"}))
}

func TestCompileOnce(t *testing.T) {
	first, err := Questions.compile()
	require.NoError(t, err)
	second, err := Questions.compile()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestBrokenSourceFailsCheck(t *testing.T) {
	broken := &Schema{Name: "broken", Source: `{"type": `}

	err := Check(broken, []byte(`{}`))
	require.Error(t, err)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "broken", ve.Schema)
	assert.Contains(t, err.Error(), "parse schema source")
}
