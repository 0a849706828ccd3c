// Package artwork builds the icon layers and composes them at full resolution.
package artwork

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/videonotes/icongen/internal/render"
	"github.com/videonotes/icongen/internal/render/layout"
)

// TrianglePoints returns the vertices of the right-pointing triangle for a
// size×size canvas: top-left, bottom-left and the tip at the vertical middle.
func TrianglePoints(size int) [3]image.Point {
	inner := layout.Inset(layout.Square(size), layout.Scale(size, render.TriangleMarginRatio))
	return [3]image.Point{
		{X: inner.Min.X, Y: inner.Min.Y},
		{X: inner.Min.X, Y: inner.Max.Y},
		{X: inner.Max.X, Y: size / 2},
	}
}

// TriangleLayer paints the red triangle on a transparent canvas and softens
// its edges with a light blur.
func TriangleLayer(size int) (*image.RGBA, error) {
	dc := gg.NewContext(size, size)
	defer func() { _ = dc.Close() }()

	pts := TrianglePoints(size)
	dc.SetColor(render.TriangleColor)
	dc.MoveTo(pixelCenter(pts[0].X), pixelCenter(pts[0].Y))
	for _, p := range pts[1:] {
		dc.LineTo(pixelCenter(p.X), pixelCenter(p.Y))
	}
	dc.ClosePath()
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("fill triangle: %w", err)
	}

	// Only the coverage is taken from gg; the colour is stamped through it so
	// the layer stays premultiplied.
	layer := render.Stencil(render.TriangleColor, render.AlphaOf(dc.Image()))
	blurred := render.GaussianBlur(layer, float64(layout.Scale(size, render.TriangleBlurRatio)))
	return render.Composite(render.NewCanvas(size, color.Transparent), blurred), nil
}

// pixelCenter maps a pixel index to the center of that pixel.
func pixelCenter(v int) float64 {
	return float64(v) + 0.5
}
