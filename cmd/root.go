package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/compatquiz/internal/api"
	"github.com/abhisek/compatquiz/internal/config"
	"github.com/abhisek/compatquiz/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "compatquiz",
	Short: "Terminal compatibility quiz",
	Long:  "compatquiz walks you through the compatibility quiz one page at a time and shows the scored result.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("server", "", "Quiz server base URL (overrides COMPATQUIZ_SERVER_URL)")
	pf.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/compatquiz/config.yml)")
	pf.String("log-file", "", "Write logs to this file (overrides COMPATQUIZ_LOG_FILE)")
	pf.String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(evaluationsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig layers --config (or the default path), the environment and
// the remaining persistent flags, highest priority last.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	required := path != ""
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return config.Config{}, err
	}

	if v, _ := cmd.Flags().GetString("server"); v != "" {
		cfg.ServerURL = v
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.LogFile = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// env is what every command needs: an API client and a logger.
type env struct {
	client *api.Client
	logger *slog.Logger
	out    io.Writer
	close  func() error
}

func newEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger, closeLog, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	logger = logger.With("cmd", cmd.Name())
	logger.Debug("config resolved", "server_url", cfg.ServerURL)

	return &env{
		client: api.New(cfg.ServerURL, api.WithLogger(logger)),
		logger: logger,
		out:    cmd.OutOrStdout(),
		close:  closeLog,
	}, nil
}
