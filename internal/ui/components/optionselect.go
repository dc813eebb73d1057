package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/compatquiz/internal/ui/theme"
)

// Placeholder is the row shown before any option is chosen.
const Placeholder = "Seleziona…"

// OptionSelect is a single-choice selector. The first row is an empty
// placeholder, so Chosen is -1 until the user picks an option.
type OptionSelect struct {
	Prompt string
	Values []string
	Labels []string
	Chosen int
}

// NewOptionSelect creates a selector over parallel value/label slices.
func NewOptionSelect(prompt string, values, labels []string) *OptionSelect {
	return &OptionSelect{
		Prompt: prompt,
		Values: values,
		Labels: labels,
		Chosen: -1,
	}
}

// Update handles arrow, j/k and number keys. It reports whether the
// selection changed.
func (o *OptionSelect) Update(msg tea.Msg) bool {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false
	}

	prev := o.Chosen
	switch key := kmsg.String(); key {
	case "up", "k":
		if o.Chosen > -1 {
			o.Chosen--
		}
	case "down", "j":
		if o.Chosen < len(o.Values)-1 {
			o.Chosen++
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if n := int(key[0] - '1'); n < len(o.Values) {
			o.Chosen = n
		}
	}
	return o.Chosen != prev
}

// Value returns the chosen option value, or "" on the placeholder.
func (o *OptionSelect) Value() string {
	if o.Chosen < 0 || o.Chosen >= len(o.Values) {
		return ""
	}
	return o.Values[o.Chosen]
}

// Reset returns the selector to the placeholder.
func (o *OptionSelect) Reset() {
	o.Chosen = -1
}

// View renders the prompt and the option list.
func (o *OptionSelect) View() string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(o.Prompt))
	b.WriteString("\n\n")

	b.WriteString(o.row(-1, "   "+Placeholder))
	for i, label := range o.Labels {
		b.WriteString(o.row(i, fmt.Sprintf("%d) %s", i+1, label)))
	}
	return b.String()
}

func (o *OptionSelect) row(i int, text string) string {
	if i == o.Chosen {
		style := theme.Selected
		if i < 0 {
			style = theme.Hint
		}
		return style.Render("▸ "+text) + "\n"
	}
	if i < 0 {
		return theme.Hint.Render("  "+text) + "\n"
	}
	return theme.Unselected.Render("  "+text) + "\n"
}
