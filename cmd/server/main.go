// Command server runs the LinguaWeb backend HTTP API.
//
// Configuration is read from the YAML file named by CONFIG_PATH, with
// environment variables taking precedence. The process shuts down
// gracefully on SIGINT or SIGTERM.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/linguaweb/linguaweb-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
