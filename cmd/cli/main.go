package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/ecotracker/internal/client/cli"
	"github.com/dmitrijs2005/ecotracker/internal/client/config"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	if err := cli.Run(ctx, cfg, os.Args[1:], cli.NewApp); err != nil {
		stop()
		os.Exit(1)
	}

}
