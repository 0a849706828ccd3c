package artwork

import (
	"image"

	"github.com/videonotes/icongen/internal/render"
)

// Compose renders the full icon at size×size: the opaque background, the
// triangle layer over it and the speech bubble layer on top.
func Compose(size int) (*image.RGBA, error) {
	triangle, err := TriangleLayer(size)
	if err != nil {
		return nil, err
	}
	canvas := render.NewCanvas(size, render.Background)
	canvas = render.Composite(canvas, triangle)
	return render.Composite(canvas, SpeechBubbleLayer(size)), nil
}
