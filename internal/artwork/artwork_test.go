package artwork

import (
	"image"
	"image/color"
	"testing"

	"github.com/videonotes/icongen/internal/render"
	"github.com/videonotes/icongen/internal/render/layout"
)

const baseSize = 1024

var opaqueWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func TestTrianglePoints(t *testing.T) {
	got := TrianglePoints(baseSize)
	want := [3]image.Point{{81, 81}, {81, 943}, {943, 512}}
	if got != want {
		t.Errorf("TrianglePoints(%d) = %v, want %v", baseSize, got, want)
	}
}

func TestTriangleLayer(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"base", baseSize},
		{"no blur", 128},
		{"tiny", 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layer, err := TriangleLayer(tt.size)
			if err != nil {
				t.Fatalf("TriangleLayer() error = %v", err)
			}
			if layer.Bounds() != layout.Square(tt.size) {
				t.Fatalf("Bounds() = %v", layer.Bounds())
			}

			pts := TrianglePoints(tt.size)
			cx := (pts[0].X + pts[1].X + pts[2].X) / 3
			cy := (pts[0].Y + pts[1].Y + pts[2].Y) / 3
			if got := layer.RGBAAt(cx, cy); got != render.TriangleColor {
				t.Errorf("centroid (%d,%d) = %v, want %v", cx, cy, got, render.TriangleColor)
			}
			for _, p := range []image.Point{{0, 0}, {tt.size - 1, 0}, {tt.size - 1, tt.size - 1}} {
				if got := layer.RGBAAt(p.X, p.Y); got.A != 0 {
					t.Errorf("corner %v = %v, want transparent", p, got)
				}
			}
		})
	}
}

func TestTriangleLayerSoftEdge(t *testing.T) {
	layer, err := TriangleLayer(baseSize)
	if err != nil {
		t.Fatalf("TriangleLayer() error = %v", err)
	}

	// Left edge of the triangle sits at x=81; the blur spreads it a few pixels.
	y := baseSize / 2
	if got := layer.RGBAAt(70, y).A; got != 0 {
		t.Errorf("alpha well outside edge = %d, want 0", got)
	}
	if got := layer.RGBAAt(100, y).A; got != 255 {
		t.Errorf("alpha well inside edge = %d, want 255", got)
	}
	soft := false
	for x := 76; x <= 88; x++ {
		if a := layer.RGBAAt(x, y).A; a > 0 && a < 255 {
			soft = true
		}
	}
	if !soft {
		t.Error("no partially transparent pixels along the left edge")
	}
}

func TestBubbleMask(t *testing.T) {
	mask := BubbleMask(baseSize)
	if mask.Bounds() != layout.Square(baseSize) {
		t.Fatalf("Bounds() = %v", mask.Bounds())
	}

	for _, c := range render.BubbleCircles {
		p := layout.ScalePoint(baseSize, c.X, c.Y)
		if got := mask.AlphaAt(p.X, p.Y).A; got != 255 {
			t.Errorf("circle center %v coverage = %d, want 255", p, got)
		}
	}

	// Overlap of the first two circles is still fully covered.
	if got := mask.AlphaAt(545, 425).A; got != 255 {
		t.Errorf("overlap coverage = %d, want 255", got)
	}

	tail := layout.ScalePolygon(baseSize, render.BubbleTail)
	tip := tail[1]
	if got := mask.AlphaAt(tip.X+10, tip.Y-17).A; got == 0 {
		t.Errorf("tail near tip %v has no coverage", tip)
	}

	for _, p := range []image.Point{{0, 0}, {1023, 0}, {0, 1023}, {1023, 1023}, {512, 950}, {900, 100}} {
		if got := mask.AlphaAt(p.X, p.Y).A; got != 0 {
			t.Errorf("outside point %v coverage = %d, want 0", p, got)
		}
	}
}

func TestBubbleMaskIsUnion(t *testing.T) {
	mask := BubbleMask(baseSize)
	for y := 0; y < baseSize; y += 7 {
		for x := 0; x < baseSize; x += 7 {
			if !insideAnyCircle(baseSize, x, y, -2) {
				continue
			}
			if got := mask.AlphaAt(x, y).A; got != 255 {
				t.Fatalf("(%d,%d) inside a circle has coverage %d, want 255", x, y, got)
			}
		}
	}
}

func TestSpeechBubbleLayer(t *testing.T) {
	layer := SpeechBubbleLayer(baseSize)
	if layer.Bounds() != layout.Square(baseSize) {
		t.Fatalf("Bounds() = %v", layer.Bounds())
	}

	center := layout.ScalePoint(baseSize, 0.48, 0.40)
	if got := layer.RGBAAt(center.X, center.Y); got != opaqueWhite {
		t.Errorf("bubble center = %v, want %v", got, opaqueWhite)
	}
	if got := layer.RGBAAt(5, 5); got != (color.RGBA{}) {
		t.Errorf("corner = %v, want transparent", got)
	}

	// Just below the lower right circle only the offset shadow remains.
	c := render.BubbleCircles[3]
	p := layout.ScalePoint(baseSize, c.X, c.Y)
	r := layout.Scale(baseSize, c.R)
	shadowAt := image.Pt(p.X, p.Y+r+6)
	got := layer.RGBAAt(shadowAt.X, shadowAt.Y)
	if got.A == 0 || got.A >= 120 {
		t.Errorf("shadow pixel %v alpha = %d, want translucent", shadowAt, got.A)
	}
	if got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("shadow pixel %v = %v, want black", shadowAt, got)
	}
}

func TestCompose(t *testing.T) {
	canvas, err := Compose(baseSize)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if canvas.Bounds() != layout.Square(baseSize) {
		t.Fatalf("Bounds() = %v", canvas.Bounds())
	}

	tests := []struct {
		name string
		at   image.Point
		want color.RGBA
		tol  int
	}{
		{"triangle center-left", layout.ScalePoint(baseSize, 0.12, 0.50), render.TriangleColor, 2},
		{"bubble centroid", layout.ScalePoint(baseSize, 0.48, 0.40), opaqueWhite, 0},
		{"top-left corner", image.Pt(0, 0), opaqueWhite, 0},
		{"top-right corner", image.Pt(baseSize-1, 0), opaqueWhite, 0},
		{"bottom-left corner", image.Pt(0, baseSize-1), opaqueWhite, 0},
		{"bottom-right corner", image.Pt(baseSize-1, baseSize-1), opaqueWhite, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := canvas.RGBAAt(tt.at.X, tt.at.Y)
			if !closeRGBA(got, tt.want, tt.tol) {
				t.Errorf("pixel %v = %v, want %v", tt.at, got, tt.want)
			}
		})
	}

	for i := 3; i < len(canvas.Pix); i += 4 {
		if canvas.Pix[i] != 255 {
			t.Fatalf("pixel %d alpha = %d, want fully opaque artwork", i/4, canvas.Pix[i])
		}
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	a, err := Compose(256)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	b, err := Compose(256)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("byte %d differs between runs: %d != %d", i, a.Pix[i], b.Pix[i])
		}
	}
}

func insideAnyCircle(size, x, y, marginPx int) bool {
	for _, c := range render.BubbleCircles {
		p := layout.ScalePoint(size, c.X, c.Y)
		r := layout.Scale(size, c.R) + marginPx
		dx, dy := x-p.X, y-p.Y
		if dx*dx+dy*dy <= r*r {
			return true
		}
	}
	return false
}

func closeRGBA(a, b color.RGBA, tol int) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) <= tol && d(a.G, b.G) <= tol && d(a.B, b.B) <= tol && d(a.A, b.A) <= tol
}
