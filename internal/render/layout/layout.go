package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Square returns the sizePx×sizePx rectangle anchored at the origin.
func Square(sizePx int) image.Rectangle {
	if sizePx < 0 {
		sizePx = 0
	}
	return image.Rect(0, 0, sizePx, sizePx)
}

// Scale returns ratio of sizePx, truncated toward zero.
func Scale(sizePx int, ratio float64) int {
	return int(float64(sizePx) * ratio)
}

// ScalePoint scales both coordinates with Scale.
func ScalePoint(sizePx int, rx, ry float64) image.Point {
	return image.Pt(Scale(sizePx, rx), Scale(sizePx, ry))
}

// ScalePolygon scales every vertex of a polygon given in fractions of sizePx.
func ScalePolygon(sizePx int, ratios [][2]float64) []image.Point {
	out := make([]image.Point, 0, len(ratios))
	for _, r := range ratios {
		out = append(out, ScalePoint(sizePx, r[0], r[1]))
	}
	return out
}
