// Command server runs the EcoTracker gRPC and REST APIs until SIGINT or
// SIGTERM.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/ecotracker/internal/server"
	"github.com/dmitrijs2005/ecotracker/internal/server/config"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "ecotracker server: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	app, err := server.NewApp(ctx, config.LoadConfig())
	if err != nil {
		return err
	}
	app.Run(ctx)
	return nil
}
