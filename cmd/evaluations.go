package cmd

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/compatquiz/internal/api"
	"github.com/abhisek/compatquiz/internal/quiz"
	"github.com/abhisek/compatquiz/internal/render"
)

var evaluationsCmd = &cobra.Command{
	Use:     "evaluations",
	Aliases: []string{"evals"},
	Short:   "Inspect stored evaluations",
}

var evaluationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent evaluations",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		evals, err := e.client.ListEvaluations(cmd.Context())
		if err != nil {
			return fmt.Errorf("list evaluations: %w", err)
		}

		out := e.out
		if len(evals) == 0 {
			fmt.Fprintln(out, "Nessuna valutazione.")
			return nil
		}
		if limit > 0 && len(evals) > limit {
			evals = evals[:limit]
		}

		// Header.
		fmt.Fprintf(out, "%-5s  %-19s  %-24s  %-7s  %s\n",
			"ID", "Data", "Nome", "Punti", "Livello")
		fmt.Fprintln(out, strings.Repeat("─", 80))

		for _, ev := range evals {
			name := ev.Name
			if r := []rune(name); len(r) > 24 {
				name = string(r[:24])
			}
			fmt.Fprintf(out, "%-5d  %-19s  %-24s  %-7s  %s\n",
				ev.ID,
				shortTime(ev.CreatedAt),
				name,
				strconv.FormatFloat(ev.FinalScore, 'f', -1, 64),
				render.LevelLabel(ev.CompatibilityLevel),
			)
		}
		return nil
	},
}

var evaluationsViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show a stored evaluation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		ev, err := e.client.GetEvaluation(cmd.Context(), id)
		if err != nil {
			var se *api.StatusError
			if errors.As(err, &se) && se.NotFound() {
				return fmt.Errorf("evaluation %d not found", id)
			}
			return fmt.Errorf("get evaluation: %w", err)
		}

		// Without the catalog, answers print as raw values.
		set, err := e.client.FetchQuestions(cmd.Context())
		if err != nil {
			e.logger.Warn("fetch questions for labels", "err", err)
		}

		sep := strings.Repeat("─", 60)
		out := e.out

		fmt.Fprintf(out, "Nome:  %s\n", ev.Name)
		fmt.Fprintf(out, "Data:  %s\n", shortTime(ev.CreatedAt))
		if len(ev.Answers) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Risposte")
			fmt.Fprintln(out, sep)
			keys := make([]string, 0, len(ev.Answers))
			for k := range ev.Answers {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			for _, k := range keys {
				fmt.Fprintf(out, "  %-18s %s\n", k, answerLabel(set, k, ev.Answers[k]))
			}
		}
		fmt.Fprintln(out)
		fmt.Fprint(out, render.Text(render.Build(ev.Response())))
		return nil
	},
}

// answerLabel returns the option label for a question answer. Free-text
// answers and unknown questions come back unchanged.
func answerLabel(set quiz.QuestionSet, key, value string) string {
	for _, q := range set.Questions {
		if q.ID == key {
			return q.Options.Label(value)
		}
	}
	return value
}

// shortTime trims an ISO timestamp to "2006-01-02 15:04:05".
func shortTime(ts string) string {
	ts = strings.Replace(ts, "T", " ", 1)
	if len(ts) > 19 {
		ts = ts[:19]
	}
	return ts
}

func init() {
	evaluationsListCmd.Flags().IntP("limit", "n", 20, "Maximum number of evaluations to show")

	evaluationsCmd.AddCommand(evaluationsListCmd)
	evaluationsCmd.AddCommand(evaluationsViewCmd)
}
