package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/videonotes/icongen/internal/render/layout"
)

// NewCanvas returns a square canvas filled with c.
func NewCanvas(size int, c color.Color) *image.RGBA {
	canvas := image.NewRGBA(layout.Square(size))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return canvas
}

// NewMask returns a square coverage mask with no coverage.
func NewMask(size int) *image.Alpha {
	return image.NewAlpha(layout.Square(size))
}

// Clone returns a copy of canvas that shares no pixel memory with it.
func Clone(canvas *image.RGBA) *image.RGBA {
	out := image.NewRGBA(canvas.Bounds())
	copy(out.Pix, canvas.Pix)
	return out
}

// Composite returns a new canvas holding src composited over dst (source-over).
func Composite(dst, src *image.RGBA) *image.RGBA {
	out := Clone(dst)
	draw.Draw(out, out.Bounds(), src, src.Bounds().Min, draw.Over)
	return out
}

// Stencil returns a transparent canvas carrying c wherever mask has coverage,
// scaled by that coverage.
func Stencil(c color.Color, mask *image.Alpha) *image.RGBA {
	bounds := mask.Bounds()
	out := image.NewRGBA(bounds)
	draw.DrawMask(out, bounds, &image.Uniform{C: c}, image.Point{}, mask, bounds.Min, draw.Src)
	return out
}

// PasteMasked returns a copy of dst with src placed at offset, using src's own
// alpha as the paste mask. Pixels under src are replaced by src weighted by
// that alpha, so partially covered pixels end up with their alpha multiplied
// by itself. Parts of src falling outside dst are dropped.
func PasteMasked(dst, src *image.RGBA, offset image.Point) *image.RGBA {
	out := Clone(dst)
	target := src.Bounds().Add(offset).Intersect(out.Bounds())
	if target.Empty() {
		return out
	}
	sp := target.Min.Sub(offset)
	draw.DrawMask(out, target, src, sp, src, sp, draw.Src)
	return out
}

// AlphaOf extracts the alpha channel of img as a coverage mask.
func AlphaOf(img image.Image) *image.Alpha {
	bounds := img.Bounds()
	mask := image.NewAlpha(bounds)
	draw.Draw(mask, bounds, img, bounds.Min, draw.Src)
	return mask
}

// toRGBA converts img to a premultiplied canvas with the same bounds.
func toRGBA(img image.Image) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}
