package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testSelect() *OptionSelect {
	return NewOptionSelect("Mare o montagna?", []string{"beach", "mountain", "city"}, []string{"Spiaggia", "Montagna", "Città"})
}

func TestOptionSelectStartsOnPlaceholder(t *testing.T) {
	o := testSelect()
	assert.Equal(t, -1, o.Chosen)
	assert.Equal(t, "", o.Value())
	assert.Contains(t, o.View(), Placeholder)
}

func TestOptionSelectArrows(t *testing.T) {
	o := testSelect()

	assert.True(t, o.Update(tea.KeyPressMsg{Code: tea.KeyDown}))
	assert.Equal(t, "beach", o.Value())

	o.Update(key('j'))
	o.Update(key('j'))
	assert.Equal(t, "city", o.Value())

	assert.False(t, o.Update(tea.KeyPressMsg{Code: tea.KeyDown}), "bottom is sticky")
	assert.Equal(t, "city", o.Value())

	o.Update(key('k'))
	o.Update(key('k'))
	o.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, "", o.Value(), "placeholder is reachable again")
	assert.False(t, o.Update(tea.KeyPressMsg{Code: tea.KeyUp}))
}

func TestOptionSelectNumberKeys(t *testing.T) {
	o := testSelect()

	o.Update(key('2'))
	assert.Equal(t, "mountain", o.Value())

	assert.False(t, o.Update(key('7')), "out of range number is ignored")
	assert.Equal(t, "mountain", o.Value())
}

func TestOptionSelectReset(t *testing.T) {
	o := testSelect()

	o.Update(key('3'))
	assert.Equal(t, 2, o.Chosen)

	o.Reset()
	assert.Equal(t, -1, o.Chosen)
	assert.Equal(t, "", o.Value())
}

func TestOptionSelectViewListsLabels(t *testing.T) {
	view := testSelect().View()
	for _, want := range []string{"Mare o montagna?", "1) Spiaggia", "2) Montagna", "3) Città"} {
		assert.Contains(t, view, want)
	}
}

func TestTextInput(t *testing.T) {
	in := NewTextInput("Come ti chiami?", "Il tuo nome", 50)
	assert.False(t, in.Focused())

	in.Focus()
	assert.True(t, in.Focused())
	in.Update(key('A'))
	in.Update(key('n'))
	assert.Equal(t, "An", in.Value())

	in.Reset()
	assert.Equal(t, "", in.Value())

	in.Update(key('G'))
	in.Blur()
	assert.False(t, in.Focused())
	assert.Equal(t, "G", in.Value())
	assert.Contains(t, in.View(), "Come ti chiami?")
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		current, total int
		want           float64
	}{
		{0, 4, 0},
		{2, 4, 0.5},
		{4, 4, 1},
		{5, 4, 1},
		{1, 0, 0},
	}
	for _, tt := range tests {
		p := NewProgressBar("", tt.current, tt.total, 40)
		assert.InDelta(t, tt.want, p.Percent(), 1e-9, "%d/%d", tt.current, tt.total)
	}

	view := NewProgressBar("Pagina", 3, 7, 40).View()
	assert.Contains(t, view, "Pagina")
	assert.Contains(t, view, "3/7")
}
