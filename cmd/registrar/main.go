package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/registrar/internal/cli"
	"github.com/alexanderramin/registrar/internal/config"
	"github.com/alexanderramin/registrar/internal/importer"
	"github.com/alexanderramin/registrar/internal/logger"
	"github.com/alexanderramin/registrar/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	log := logger.Configure(cfg.Logger(os.Stderr))
	for _, w := range cfg.Warnings {
		log.Warn().Err(w).Msg("skipping unreadable dotenv file")
	}

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(log)
	}

	app := &cli.App{
		DefaultFile: cfg.File,
		Options: importer.Options{
			DefaultCapacity: cfg.DefaultCapacity,
			MaxEnrollments:  cfg.MaxEnrollments,
		},
		Observer: observer,
	}

	// Prompts only make sense on a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Debug().Str("file", cfg.File).Str("log_level", string(cfg.LogLevel)).Msg("starting registrar")
	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
