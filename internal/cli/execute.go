package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/JonMunkholm/creational/internal/config"
	"github.com/JonMunkholm/creational/internal/logging"
)

// Execute bootstraps configuration and logging, runs p, and exits with
// status 1 if the command fails.
func Execute(p Program) {
	// Load .env file if it exists; real environment variables win
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	if envErr != nil {
		slog.Debug("no .env file found, using environment variables")
	}
	slog.Debug("configuration loaded", "config", cfg.String())

	if err := NewCommand(p, cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
