package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/preston-bernstein/nhl-player-db/internal/app"
	"github.com/preston-bernstein/nhl-player-db/internal/config"
	"github.com/preston-bernstein/nhl-player-db/internal/logging"
)

const (
	serviceName = "nhl-player-db"
	appVersion  = "dev"
)

func main() {
	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[0], os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

// loadDotEnv populates the environment from the given files. Missing files are ignored.
func loadDotEnv(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

func run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Parse(name, args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: serviceName,
		Version: appVersion,
		Output:  stdout,
	})
	if err != nil {
		logging.Error(logger, "invalid configuration", err)
		return err
	}

	a, err := app.New(cfg, logger)
	if err != nil {
		logging.Error(logger, "startup failed", err)
		return err
	}
	if err := a.Run(ctx); err != nil {
		logging.Error(logger, "collection failed", err, slog.String(logging.FieldPath, cfg.Output))
		return err
	}
	return nil
}
