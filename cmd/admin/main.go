package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/Dowlet20/ecom-admin/internal/admin/cli"
	"github.com/Dowlet20/ecom-admin/internal/admin/config"
	"github.com/Dowlet20/ecom-admin/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.Setup(cfg.Env, os.Stderr)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app.Run(ctx)
}
