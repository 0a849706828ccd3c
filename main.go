package main

import (
	"context"
	"os"

	"github.com/videonotes/icongen/internal/app"
)

func main() {
	logger := app.NewConsoleLogger(os.Stderr)

	a := app.New(logger)
	if err := a.Run(context.Background()); err != nil {
		logger.Errorf("main", "icon generation failed: %v", err)
		os.Exit(1)
	}
}
