package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/bookstore-api/internal/config"
)

// loadAppConfig loads the application configuration from the environment,
// an optional .env file and an optional config.yaml.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"environment", cfg.Server.Environment)

	return cfg, nil
}
