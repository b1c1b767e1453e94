package raster

import (
	"image"
	"image/color"
	"math"
)

type point struct {
	x, y float64
}

// vertexStage mirrors the embedded vertex shader: playfield pixels are
// scaled by the resolution uniform into clip space with y flipped, then the
// viewport maps clip space onto the framebuffer.
type vertexStage struct {
	resW, resH float64
	fbW, fbH   float64
}

func (s vertexStage) transform(x, y float64) point {
	clipX := (x/s.resW)*2 - 1
	clipY := -((y/s.resH)*2 - 1)
	return point{
		x: (clipX + 1) / 2 * s.fbW,
		y: (1 - clipY) / 2 * s.fbH,
	}
}

// orient is twice the signed area of (a, b, c).
func orient(a, b, c point) float64 {
	return (b.x-a.x)*(c.y-a.y) - (b.y-a.y)*(c.x-a.x)
}

// topLeft reports whether edge a->b of a positively oriented triangle is a
// top or left edge. Pixels exactly on such edges are filled, so triangles
// sharing an edge never double-cover or leave a seam.
func topLeft(a, b point) bool {
	dx, dy := b.x-a.x, b.y-a.y
	return (dy == 0 && dx > 0) || dy < 0
}

func fillTriangle(img *image.RGBA, tri [3]point, c color.RGBA) {
	v0, v1, v2 := tri[0], tri[1], tri[2]
	area := orient(v0, v1, v2)
	if area == 0 {
		return
	}
	if area < 0 {
		v1, v2 = v2, v1
	}

	bounds := img.Rect
	minX := max(bounds.Min.X, int(math.Floor(min(v0.x, v1.x, v2.x))))
	maxX := min(bounds.Max.X-1, int(math.Ceil(max(v0.x, v1.x, v2.x))))
	minY := max(bounds.Min.Y, int(math.Floor(min(v0.y, v1.y, v2.y))))
	maxY := min(bounds.Max.Y-1, int(math.Ceil(max(v0.y, v1.y, v2.y))))

	tl0, tl1, tl2 := topLeft(v1, v2), topLeft(v2, v0), topLeft(v0, v1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := point{x: float64(x) + 0.5, y: float64(y) + 0.5}
			if !inside(orient(v1, v2, p), tl0) || !inside(orient(v2, v0, p), tl1) || !inside(orient(v0, v1, p), tl2) {
				continue
			}
			off := img.PixOffset(x, y)
			img.Pix[off] = c.R
			img.Pix[off+1] = c.G
			img.Pix[off+2] = c.B
			img.Pix[off+3] = c.A
		}
	}
}

func inside(w float64, onEdgeFills bool) bool {
	return w > 0 || (w == 0 && onEdgeFills)
}
