package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/compatquiz/internal/render"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate evaluation statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		st, err := e.client.Statistics(cmd.Context())
		if err != nil {
			return fmt.Errorf("get statistics: %w", err)
		}

		avg := "n/d"
		if st.AvgScore != nil {
			avg = fmt.Sprintf("%.1f/100", *st.AvgScore)
		}

		out := e.out
		fmt.Fprintf(out, "Valutazioni:      %d\n", st.Total)
		fmt.Fprintf(out, "Punteggio medio:  %s\n", avg)
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  %-22s %d\n", render.LevelLabel("wife material"), st.WifeMaterialCount)
		fmt.Fprintf(out, "  %-22s %d\n", render.LevelLabel("compatibile"), st.CompatibleCount)
		fmt.Fprintf(out, "  %-22s %d\n", render.LevelLabel("potenziale"), st.PotentialCount)
		fmt.Fprintf(out, "  %-22s %d\n", render.LevelLabel("non compatibile"), st.IncompatibleCount)
		return nil
	},
}
