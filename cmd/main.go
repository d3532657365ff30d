package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/urfave/cli/v3"

	"steamgen/internal/shared"
	"steamgen/internal/steam"
	"steamgen/internal/tasks"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}
	shared.ApplyEnv(config)

	var client tasks.Client
	if config.Credentials.Steam.APIKey != "" {
		client = steam.NewClient(config.Credentials.Steam.APIKey, steam.ClientOpts{
			HTTPClient:  &http.Client{Timeout: config.Client.Timeout()},
			Logger:      logger,
			MinInterval: config.Client.MinInterval(),
			Cooldown:    config.Client.CooldownDuration(),
		})
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Client: client,
		DB:     openDatabase(config, logger),
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "steamgen",
		Usage:    "Generate JSON datasets from the Steam Web API",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
