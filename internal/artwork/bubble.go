package artwork

import (
	"image"
	"image/color"
	"math"

	"github.com/golang/freetype/raster"
	"github.com/videonotes/icongen/internal/render"
	"github.com/videonotes/icongen/internal/render/layout"
	"golang.org/x/image/math/fixed"
)

// circleSegments is the number of quadratic arcs approximating a circle.
const circleSegments = 16

// BubbleMask returns the coverage mask of the speech cloud: the union of the
// bubble circles and the tail triangle.
//
// Each shape is rasterized on its own and painted over the mask, so
// overlapping shapes never cancel out regardless of their winding.
func BubbleMask(size int) *image.Alpha {
	mask := render.NewMask(size)
	r := raster.NewRasterizer(size, size)
	painter := raster.NewAlphaOverPainter(mask)

	for _, c := range render.BubbleCircles {
		center := layout.ScalePoint(size, c.X, c.Y)
		addCircle(r, pixelCenter(center.X), pixelCenter(center.Y), float64(layout.Scale(size, c.R)))
		r.Rasterize(painter)
		r.Clear()
	}

	addPolygon(r, layout.ScalePolygon(size, render.BubbleTail))
	r.Rasterize(painter)
	return mask
}

// SpeechBubbleLayer returns the white speech cloud over its soft drop shadow
// on a transparent canvas.
func SpeechBubbleLayer(size int) *image.RGBA {
	mask := BubbleMask(size)

	shadow := render.Stencil(render.ShadowColor, mask)
	shadow = render.GaussianBlur(shadow, float64(layout.Scale(size, render.ShadowBlurRatio)))
	offset := layout.ScalePoint(size, render.ShadowOffsetRatio, render.ShadowOffsetRatio)
	layer := render.PasteMasked(render.NewCanvas(size, color.Transparent), shadow, offset)

	bubble := render.Stencil(render.BubbleColor, mask)
	return render.Composite(layer, bubble)
}

func addCircle(r *raster.Rasterizer, cx, cy, radius float64) {
	if radius <= 0 {
		return
	}
	step := 2 * math.Pi / circleSegments
	ctrl := radius / math.Cos(step/2)
	r.Start(point(cx+radius, cy))
	for i := 1; i <= circleSegments; i++ {
		mid := (float64(i) - 0.5) * step
		end := float64(i) * step
		r.Add2(
			point(cx+ctrl*math.Cos(mid), cy+ctrl*math.Sin(mid)),
			point(cx+radius*math.Cos(end), cy+radius*math.Sin(end)),
		)
	}
}

func addPolygon(r *raster.Rasterizer, pts []image.Point) {
	if len(pts) < 3 {
		return
	}
	start := point(pixelCenter(pts[0].X), pixelCenter(pts[0].Y))
	r.Start(start)
	for _, p := range pts[1:] {
		r.Add1(point(pixelCenter(p.X), pixelCenter(p.Y)))
	}
	r.Add1(start)
}

func point(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(math.Round(x * 64)), Y: fixed.Int26_6(math.Round(y * 64))}
}
