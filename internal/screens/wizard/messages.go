package wizard

import (
	"github.com/abhisek/compatquiz/internal/quiz"
)

// scoreDoneMsg is sent when POST /api/score returns. SessionID ties the
// reply to the session that submitted it.
type scoreDoneMsg struct {
	SessionID string
	Response  quiz.ScoreResponse
	Err       error
}

// RestartMsg clears every answer and returns to the name page.
type RestartMsg struct{}
