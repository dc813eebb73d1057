package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/compatquiz/internal/quiz"
	"github.com/abhisek/compatquiz/internal/render"
	"github.com/abhisek/compatquiz/internal/schema"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit an answers file and print the result",
	Long: `Submit reads a YAML or JSON answers file of the form

  name: Giulia
  answers:
    q1: b
    why_us: ...

checks it with the same rules as the interactive quiz and prints the score.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("answers")
		asJSON, _ := cmd.Flags().GetBool("json")

		answers, err := loadAnswersFile(path)
		if err != nil {
			return err
		}

		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		ctx := cmd.Context()
		set, err := e.client.FetchQuestions(ctx)
		if err != nil {
			return fmt.Errorf("fetch questions: %w", err)
		}

		payload, err := buildSubmission(set, answers)
		if err != nil {
			return err
		}

		resp, err := e.client.Score(ctx, payload)
		if err != nil {
			e.logger.Warn("score failed", "err", err)
			return errors.New(render.ErrorText(err))
		}

		if asJSON {
			enc := json.NewEncoder(e.out)
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		}
		fmt.Fprint(e.out, render.Text(render.Build(resp)))
		return nil
	},
}

// answersFile is the on-disk shape read by submit.
type answersFile struct {
	Name    string            `json:"name"`
	Answers map[string]string `json:"answers"`
}

// loadAnswersFile reads a YAML or JSON answers file. YAML is a superset of
// JSON so one decoder covers both; the value is then checked against the
// answers schema in its JSON form.
func loadAnswersFile(path string) (quiz.AnswerSet, error) {
	if path == "" {
		return nil, fmt.Errorf("--answers is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse answers %s: %w", path, err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("parse answers %s: %w", path, err)
	}
	if err := schema.Check(schema.AnswersFile, raw); err != nil {
		return nil, fmt.Errorf("answers %s: %w", path, err)
	}

	var f answersFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode answers %s: %w", path, err)
	}

	set := quiz.AnswerSet{quiz.KeyName: f.Name}
	for k, v := range f.Answers {
		set[k] = v
	}
	return set, nil
}

// buildSubmission replays the answers through a session page by page, so
// a file is held to exactly the rules of the interactive quiz.
func buildSubmission(set quiz.QuestionSet, answers quiz.AnswerSet) (quiz.Payload, error) {
	s := quiz.NewSession(set)

	known := map[string]bool{
		quiz.KeyName:           true,
		quiz.KeyWhyUs:          true,
		quiz.KeyNonNegotiables: true,
	}
	for _, q := range set.Questions {
		known[q.ID] = true
	}
	for k, v := range answers {
		if !known[k] {
			return quiz.Payload{}, fmt.Errorf("unknown question id %q", k)
		}
		s.Record(k, v)
	}

	for s.Index() < s.LastIndex() {
		if err := s.Next(); err != nil {
			return quiz.Payload{}, pageError(s.Current(), err)
		}
	}
	payload, err := s.Submit()
	if err != nil {
		return quiz.Payload{}, pageError(s.Current(), err)
	}
	return payload, nil
}

func pageError(p quiz.Page, err error) error {
	if p.Question != nil {
		return fmt.Errorf("question %s: %w", p.Question.ID, err)
	}
	return fmt.Errorf("%s page: %w", p.Kind, err)
}

func init() {
	submitCmd.Flags().String("answers", "", "Path to a YAML or JSON answers file")
	submitCmd.Flags().Bool("json", false, "Print the raw score response as JSON")
}
