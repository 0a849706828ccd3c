package app

import (
	"context"
	"time"

	"github.com/videonotes/icongen/internal/artwork"
	"github.com/videonotes/icongen/internal/export"
	"github.com/videonotes/icongen/internal/render"
)

// App renders the artwork once at Size and hands it to Exporter.
type App struct {
	Size     int
	Exporter *export.Exporter
	Logger   Logger
}

// New returns an App wired with the fixed base size, sizes and output directory.
func New(logger Logger) *App {
	if logger == nil {
		logger = NoopLogger{}
	}
	return &App{
		Size:     render.BaseSize,
		Exporter: &export.Exporter{Dir: render.OutputDir, Sizes: render.TargetSizes, Logger: logger},
		Logger:   logger,
	}
}

// Run generates every icon. It stops at the first error.
func (app *App) Run(ctx context.Context) error {
	started := time.Now()
	app.Logger.Infof("app", "composing %dx%d artwork", app.Size, app.Size)
	base, err := artwork.Compose(app.Size)
	if err != nil {
		app.Logger.Errorf("app", "compose failed: %v", err)
		return err
	}

	paths, err := app.Exporter.Export(ctx, base)
	if err != nil {
		return err
	}
	app.Logger.Infof("app", "wrote %d icons to %s in %s", len(paths), app.Exporter.Dir, time.Since(started).Round(time.Millisecond))
	return nil
}
