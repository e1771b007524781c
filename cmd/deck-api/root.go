// README: Root command and shared wiring (config, logger, diagnostic backend).
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ridedeck/internal/config"
	"ridedeck/internal/logger"
	"ridedeck/internal/modules/diagnostic"
)

const serviceName = "deck-api"

var configFile string

var rootCmd = &cobra.Command{
	Use:           serviceName,
	Short:         "Ride-hailing labour deck API",
	Long:          "Serves the chart data, earnings simulator and platform comparison behind the ride-hailing labour deck.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a config file (default ./deck.yaml if present)")
}

func loadConfig() (config.Config, logger.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}
	if !logger.ValidLevel(cfg.Log.Level) {
		return config.Config{}, nil, fmt.Errorf("invalid log level %q", cfg.Log.Level)
	}
	return cfg, logger.New(serviceName, cfg.Log.Level), nil
}

// newDiagnostic opens the configured backend. A bad URL is logged and the probe
// falls back to reporting no database.
func newDiagnostic(ctx context.Context, cfg config.Config, log logger.Logger) *diagnostic.Service {
	db, err := diagnostic.Open(ctx, cfg.Database.URL, cfg.Database.Name)
	if err != nil {
		log.Warn(ctx, "diagnostic backend unavailable", "error", err.Error())
		db = diagnostic.NoopDatabase{}
	}
	return diagnostic.NewService(db, diagnostic.Settings{
		URLSet:  cfg.Database.URL != "",
		NameSet: cfg.Database.Name != "",
		Timeout: cfg.Diagnostic.Timeout,
	})
}
