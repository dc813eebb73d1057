package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/compatquiz/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestNewActive(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
	if s1.initRan {
		t.Error("New should leave Init() to the caller")
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
	if s1.updates != 0 || s2.updates != 0 {
		t.Errorf("ReplaceScreenMsg should not reach screens, got %d/%d updates", s1.updates, s2.updates)
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)
	r.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})

	if s2.updates != 1 {
		t.Errorf("expected active screen to get 1 update, got %d", s2.updates)
	}
	if s1.updates != 0 {
		t.Errorf("expected replaced screen to get no updates, got %d", s1.updates)
	}
	if got := r.View(80, 24); got != "second" {
		t.Errorf("expected view 'second', got %q", got)
	}
}

func TestNilActive(t *testing.T) {
	r := New(nil)

	if cmd := r.Update(tea.KeyPressMsg{Code: 'a', Text: "a"}); cmd != nil {
		t.Error("expected no command without an active screen")
	}
	if got := r.View(80, 24); got != "" {
		t.Errorf("expected empty view, got %q", got)
	}
}
