package render

import "image/color"

// Global render configuration for colors, canvas and outputs.
var (
	TriangleColor = color.RGBA{R: 0xFF, G: 0x30, B: 0x30, A: 0xFF} // #ff3030
	Background    = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	BubbleColor   = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ShadowColor   = color.RGBA{A: 120} // black, premultiplied

	// Artwork is drawn at BaseSize and downsampled to each TargetSizes entry.
	BaseSize    = 1024
	TargetSizes = []int{128, 48, 16}

	// OutputDir is relative, so it resolves against the working directory.
	// Run the command from the project root.
	OutputDir = "icons"
)

// Geometry, as fractions of the canvas size.
var (
	TriangleMarginRatio = 0.08
	// TriangleBlurRatio only softens the edges; it is cosmetic.
	TriangleBlurRatio = 0.002

	ShadowBlurRatio   = 0.008
	ShadowOffsetRatio = 0.01

	BubbleCircles = []Circle{
		{X: 0.48, Y: 0.40, R: 0.17},
		{X: 0.60, Y: 0.45, R: 0.16},
		{X: 0.44, Y: 0.55, R: 0.18},
		{X: 0.58, Y: 0.60, R: 0.15},
		{X: 0.34, Y: 0.50, R: 0.14},
	}
	BubbleTail = [][2]float64{
		{0.34, 0.63},
		{0.27, 0.77},
		{0.39, 0.62},
	}
)

// Circle is a disc whose center and radius are fractions of the canvas size.
type Circle struct {
	X, Y, R float64
}
