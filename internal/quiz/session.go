package quiz

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrNotLastPage is returned by Submit from any page other than the
	// open-questions page.
	ErrNotLastPage = errors.New("submit is only possible from the last page")

	// ErrResultShown is returned by Next while the result page is showing.
	ErrResultShown = errors.New("result page is showing")
)

// Session is one pass through the quiz: the page sequence, the current
// position and the collected answers. The page list is fixed at creation.
type Session struct {
	id       string
	set      QuestionSet
	pages    []Page
	index    int
	answers  AnswerSet
	onResult bool
}

// NewSession creates a session positioned on the name page.
func NewSession(set QuestionSet) *Session {
	return &Session{
		id:      uuid.New().String(),
		set:     set,
		pages:   BuildPages(set.Questions),
		answers: AnswerSet{},
	}
}

// ID identifies the session in logs. It changes on Restart.
func (s *Session) ID() string { return s.id }

// Pages returns the answerable pages in order.
func (s *Session) Pages() []Page { return s.pages }

// TotalPages returns the number of answerable pages.
func (s *Session) TotalPages() int { return len(s.pages) }

// Index returns the current page index.
func (s *Session) Index() int { return s.index }

// LastIndex returns the index of the open-questions page.
func (s *Session) LastIndex() int { return len(s.pages) - 1 }

// PageAt returns the page at index i.
func (s *Session) PageAt(i int) (Page, bool) {
	return pageAt(s.set.Questions, i)
}

// Current returns the current page, or the result page once submitted.
func (s *Session) Current() Page {
	if s.onResult {
		return Page{Kind: PageResult, Index: s.index}
	}
	p, _ := s.PageAt(s.index)
	return p
}

// OnResult reports whether the result page is the active target.
func (s *Session) OnResult() bool { return s.onResult }

// Answers returns a copy of the collected answers.
func (s *Session) Answers() AnswerSet { return s.answers.Clone() }

// Answer returns the stored value for key.
func (s *Session) Answer(key string) (string, bool) {
	v, ok := s.answers[key]
	return v, ok
}

// Record stores one answer. Recording the same value twice is a no-op.
func (s *Session) Record(key, value string) {
	s.answers[key] = value
}

// Validate checks the current page against the collected answers.
func (s *Session) Validate() error {
	p, _ := s.PageAt(s.index)
	return ValidatePage(p, s.answers)
}

// Next validates the current page and moves forward one page. It stays put
// on the last page and when validation fails.
func (s *Session) Next() error {
	if s.onResult {
		return ErrResultShown
	}
	if err := s.Validate(); err != nil {
		return err
	}
	if s.index < s.LastIndex() {
		s.index++
	}
	return nil
}

// Prev moves back one page without validating.
func (s *Session) Prev() bool {
	if s.onResult || s.index == 0 {
		return false
	}
	s.index--
	return true
}

// Submit validates the last page, moves to the result page and returns the
// request payload. It may be called again after a failed submission.
func (s *Session) Submit() (Payload, error) {
	if s.index != s.LastIndex() {
		return Payload{}, ErrNotLastPage
	}
	if err := s.Validate(); err != nil {
		return Payload{}, err
	}
	s.onResult = true
	return BuildPayload(s.answers), nil
}

// LeaveResult returns from the result page to the open-questions page.
func (s *Session) LeaveResult() {
	s.onResult = false
}

// Restart clears all answers and returns to the name page.
func (s *Session) Restart() {
	s.id = uuid.New().String()
	s.index = 0
	s.answers = AnswerSet{}
	s.onResult = false
}
