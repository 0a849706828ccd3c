// Package export downsamples the base artwork and writes one PNG per icon size.
package export

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/videonotes/icongen/internal/render"
)

// Exporter writes icon-<size>.png files into Dir.
type Exporter struct {
	Dir    string
	Sizes  []int
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

// FileName returns the file name used for an icon of the given size.
func FileName(size int) string {
	return fmt.Sprintf("icon-%d.png", size)
}

// Export creates Dir if needed, then resamples base to every size in Sizes
// and writes it out, in order. It returns the paths written so far; a failed
// write stops the run and leaves earlier files in place.
func (e *Exporter) Export(ctx context.Context, base image.Image) ([]string, error) {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", e.Dir, err)
	}

	paths := make([]string, 0, len(e.Sizes))
	for _, size := range e.Sizes {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		path := filepath.Join(e.Dir, FileName(size))
		if err := writePNG(path, render.Resize(base, size)); err != nil {
			if e.Logger != nil {
				e.Logger.Errorf("export", "write %s failed: %v", path, err)
			}
			return paths, err
		}
		if e.Logger != nil {
			e.Logger.Infof("export", "wrote %s (%dx%d)", path, size, size)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// withAlpha keeps the PNG encoder from dropping the alpha channel of fully
// opaque icons.
type withAlpha struct{ *image.RGBA }

func (withAlpha) Opaque() bool { return false }

func writePNG(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, withAlpha{img}); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
