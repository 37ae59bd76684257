// embyassist serves a JSON status API for an Emby media server. It polls
// nothing itself; every request fans out to Emby on demand and the
// front-end pollers decide their own refresh cadence.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"embyassist/internal/api/emby"
	"embyassist/internal/config"
	"embyassist/internal/logger"
	"embyassist/internal/server"
)

var (
	version = "dev" // Set during build
	commit  = "none"
	date    = "unknown"
)

func main() {
	app := &cli.App{
		Name:    "embyassist",
		Usage:   "Emby server monitoring service",
		Version: fmt.Sprintf("%s (%s) %s", version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Load configuration from `FILE`",
			},
			&cli.StringFlag{
				Name:    "emby-url",
				Usage:   "Emby server base URL",
				EnvVars: []string{"EMBY_SERVER_URL"},
			},
			&cli.StringFlag{
				Name:    "emby-token",
				Usage:   "Emby API key",
				EnvVars: []string{"EMBY_API_KEY"},
			},
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port for the status API",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Log format (json, console)",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logger.Get().Error("Error running application", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	// Flags win over the environment, which wins over the config file.
	setEnvFromFlag(c.String("emby-url"), "EMBY_SERVER_URL")
	setEnvFromFlag(c.String("emby-token"), "EMBY_API_KEY")
	setEnvFromFlag(c.String("port"), "PORT")
	setEnvFromFlag(c.String("log-level"), "LOG_LEVEL")
	setEnvFromFlag(c.String("log-format"), "LOG_FORMAT")

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Setup(logger.Config{
		Level:      cfg.Logging.Level,
		Format:     logger.ParseLogFormat(cfg.Logging.Format),
		Output:     os.Stdout,
		TimeFormat: time.RFC3339,
	})
	log := logger.Get()

	log.Info("Starting embyassist", map[string]interface{}{
		"version":   version,
		"emby_url":  cfg.Emby.URL,
		"port":      cfg.Server.Port,
		"log_level": cfg.Logging.Level,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := emby.NewClient(cfg.Emby.URL, cfg.Emby.Token)
	srv := server.New(cfg, client, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		log.Info("Received shutdown signal")
	case err := <-errCh:
		if err != nil {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down cleanly: %w", err)
	}

	log.Info("Shutdown complete")
	return nil
}

func setEnvFromFlag(value, envVar string) {
	if value != "" {
		os.Setenv(envVar, value)
	}
}
