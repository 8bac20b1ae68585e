package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/kylejschultz/caddyy-sub000/internal/services"
	"github.com/kylejschultz/caddyy-sub000/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	httpClient := &http.Client{Timeout: config.Timeout()}
	client := services.NewCaddyyService(config.Server.BaseURL, httpClient)
	api := services.NewAPIService(config.Server.BaseURL, httpClient)

	runner := NewRunner(RunnerOpts{
		Config: config,
		Client: client,
		API:    api,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "caddyy",
		Usage:    "Manage a Caddyy media server from the terminal",
		Version:  "0.1.0",
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
