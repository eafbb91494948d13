// Command newsctl maintains the journal snapshot and queries the news collection from local files.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/neuravox/newsfeed/internal/domain"
)

import _ "github.com/joho/godotenv/autoload"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	ctx := domain.ContextWithLogger(context.Background(), logger)

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
