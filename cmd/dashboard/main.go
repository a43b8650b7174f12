package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/WareOnGo/wag-dashboard/app/dashboard"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := dashboard.NewApp(ctx)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
