package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{MinWidth, MinHeight, false},
		{MinWidth - 1, MinHeight, true},
		{MinWidth, MinHeight - 1, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Quiz", "Pagina 2/5", 80)
	for _, want := range []string{"compatquiz", "Quiz", "Pagina 2/5"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderFrameFillsHeight(t *testing.T) {
	header := RenderHeader("Quiz", "", 80)
	footer := RenderFooter([]KeyHint{{Key: "Enter", Description: "Avanti"}}, 80)
	frame := RenderFrame(header, "contenuto", footer, 80, 30)

	if got := lipgloss.Height(frame); got != 30 {
		t.Errorf("frame height = %d, want 30", got)
	}
	if !strings.Contains(frame, "Avanti") {
		t.Error("footer hint missing")
	}
}

func TestMinSizeMessage(t *testing.T) {
	msg := RenderMinSizeMessage(40, 10)
	if !strings.Contains(msg, "Terminale troppo piccolo") {
		t.Error("expected min size message")
	}
}
