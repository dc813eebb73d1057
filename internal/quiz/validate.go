package quiz

import (
	"errors"
	"strings"
)

// Validation failures. The messages are shown to the user as-is.
var (
	ErrNameRequired   = errors.New("Inserisci il tuo nome per continuare")
	ErrAnswerRequired = errors.New("Seleziona una risposta per continuare")
	ErrWhyUsRequired  = errors.New("Rispondi a «Perché funzioneremmo» per continuare")
)

// ValidatePage runs the presence check for page p against a.
// non_negotiables has no requirement.
func ValidatePage(p Page, a AnswerSet) error {
	switch p.Kind {
	case PageName:
		if strings.TrimSpace(a[KeyName]) == "" {
			return ErrNameRequired
		}
	case PageQuestion:
		if p.Question == nil || a[p.Question.ID] == "" {
			return ErrAnswerRequired
		}
	case PageOpenQuestions:
		if strings.TrimSpace(a[KeyWhyUs]) == "" {
			return ErrWhyUsRequired
		}
	}
	return nil
}
