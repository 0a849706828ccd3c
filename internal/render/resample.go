package render

import (
	"image"

	"github.com/disintegration/imaging"
)

// Resize resamples src to a sizePx×sizePx canvas with a Lanczos (three lobe)
// filter.
func Resize(src image.Image, sizePx int) *image.RGBA {
	return toRGBA(imaging.Resize(src, sizePx, sizePx, imaging.Lanczos))
}
