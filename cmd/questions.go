package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the question catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		set, err := e.client.FetchQuestions(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch questions: %w", err)
		}

		out := e.out
		if len(set.Questions) == 0 {
			fmt.Fprintln(out, "Nessuna domanda.")
		}
		for i, q := range set.Questions {
			fmt.Fprintf(out, "%2d. [%s] %s\n", i+1, q.ID, q.Text)
			for _, o := range q.Options {
				fmt.Fprintf(out, "      %-14s %s\n", o.Value, o.Label)
			}
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, strings.Repeat("─", 60))
		for _, o := range set.OpenQuestions {
			req := ""
			if o.Required {
				req = " (obbligatoria)"
			}
			fmt.Fprintf(out, "[%s] %s%s\n", o.ID, o.Text, req)
		}
		return nil
	},
}
