package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/compatquiz/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Take the quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp resolves config and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	e.logger.Info("starting tui", "server_url", e.client.BaseURL())
	return app.Run(app.Options{
		Client: e.client,
		Logger: e.logger,
	})
}
