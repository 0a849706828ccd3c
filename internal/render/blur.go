package render

import (
	"image"

	"github.com/disintegration/imaging"
)

// GaussianBlur returns a blurred copy of src, using radius as the Gaussian
// sigma. Colour is weighted by alpha, so a soft edge keeps the hue of the
// shape it fades out of.
func GaussianBlur(src *image.RGBA, radius float64) *image.RGBA {
	if radius <= 0 {
		return Clone(src)
	}
	return toRGBA(imaging.Blur(src, radius))
}
