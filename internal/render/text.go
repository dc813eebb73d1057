package render

import (
	"fmt"
	"strings"
)

// Text lays a Result out as plain text for non-interactive output.
func Text(r Result) string {
	var b strings.Builder
	sep := strings.Repeat("─", 60)

	fmt.Fprintf(&b, "%s  %s\n", r.Score, r.Level)
	if r.Verdict != "" {
		b.WriteString(r.Verdict + "\n")
	}
	if r.EvaluationID != "" {
		b.WriteString(r.EvaluationID + "\n")
	}

	for _, blk := range []*Block{r.FinalReport, r.Interpretation} {
		if blk == nil {
			continue
		}
		fmt.Fprintf(&b, "\n%s\n%s\n%s\n", blk.Title, sep, blk.Body)
	}

	fmt.Fprintf(&b, "\n%s\n%s\n", TitleIndices, sep)
	for _, idx := range r.Indices {
		fmt.Fprintf(&b, "%-24s %s\n", idx.Label, idx.Value)
	}

	fmt.Fprintf(&b, "\n%s\n%s\n", TitleBreakdown, sep)
	for _, line := range r.Breakdown {
		fmt.Fprintf(&b, "%6s  %s\n", line.Points, line.Question)
		fmt.Fprintf(&b, "        Risposta: %s\n", line.Answer)
		if line.Reason != "" {
			fmt.Fprintf(&b, "        %s\n", line.Reason)
		}
	}

	for _, sec := range r.Sections {
		fmt.Fprintf(&b, "\n%s\n%s\n", sec.Title, sep)
		for _, item := range sec.Items {
			fmt.Fprintf(&b, "  • %s\n", item)
		}
	}

	if r.FinalMessage != "" {
		fmt.Fprintf(&b, "\n%s\n", r.FinalMessage)
	}
	return b.String()
}
