// Command server assembles the application and keeps it running until
// interrupted. Transports are attached to app.App as they are built.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/wordcurve-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer a.Close()

	<-ctx.Done()
	a.Log.Info("shutting down")
}
