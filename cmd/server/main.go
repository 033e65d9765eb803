// Package main implements the entry point for the bingo API server,
// which generates educational bingo cards with LLM-backed item generation.
package main

import (
	"context"
	"log"
	"log/slog"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.startHTTPServer(context.Background()); err != nil {
		slog.Error("server exited with error", "error", err)
	}
}
