// Package geometry builds flat triangle-list vertex data for the shapes the
// game draws. Every function is pure: the same arguments always produce the
// same vertices. Output is a flat list of x, y pairs ready for upload.
package geometry

import (
	"math"

	"github.com/vovakirdan/brick-breaker/internal/core"
)

// DefaultSegmentDegrees is the angular step used for the ball.
const DefaultSegmentDegrees = 10

// Rectangle returns two triangles covering the rectangle at (x, y) with the
// given size. Winding is fixed: top-left, top-right, bottom-left, then
// bottom-left, top-right, bottom-right.
func Rectangle(x, y, w, h float64) []float32 {
	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+w), float32(y+h)
	return []float32{
		x0, y0,
		x1, y0,
		x0, y1,
		x0, y1,
		x1, y0,
		x1, y1,
	}
}

// RectangleOf is Rectangle for a core.Rect.
func RectangleOf(r core.Rect) []float32 {
	return Rectangle(r.X, r.Y, r.W, r.H)
}

// Circle approximates a circle as a triangle fan of 360/segmentDegrees
// triangles, each made of the center, the rim point at angle θ and the rim
// point at θ+step. The last triangle ends on the first one's start angle.
// segmentDegrees <= 0 falls back to DefaultSegmentDegrees.
func Circle(cx, cy, radius float64, segmentDegrees int) []float32 {
	if segmentDegrees <= 0 {
		segmentDegrees = DefaultSegmentDegrees
	}
	segments := SegmentCount(segmentDegrees)
	step := float64(segmentDegrees) * math.Pi / 180

	vertices := make([]float32, 0, segments*6)
	for i := range segments {
		a0 := float64(i) * step
		a1 := float64(i+1) * step
		if i == segments-1 {
			a1 = 0 // Meet the first segment exactly
		}
		vertices = append(vertices,
			float32(cx), float32(cy),
			float32(cx+math.Cos(a0)*radius), float32(cy+math.Sin(a0)*radius),
			float32(cx+math.Cos(a1)*radius), float32(cy+math.Sin(a1)*radius),
		)
	}
	return vertices
}

// SegmentCount returns the number of fan triangles Circle emits for the
// given angular step. A step that does not divide 360 is rounded up so the
// fan still closes.
func SegmentCount(segmentDegrees int) int {
	if segmentDegrees <= 0 {
		segmentDegrees = DefaultSegmentDegrees
	}
	return (360 + segmentDegrees - 1) / segmentDegrees
}

// CircleVertexCount returns the number of points Circle emits.
func CircleVertexCount(segmentDegrees int) int {
	return SegmentCount(segmentDegrees) * 3
}

// VertexCount returns the number of x, y points in a flat vertex list.
func VertexCount(flat []float32) int {
	return len(flat) / 2
}

// Bounds returns the axis-aligned bounding box of a flat vertex list.
// An empty list yields the zero Rect.
func Bounds(flat []float32) core.Rect {
	if len(flat) < 2 {
		return core.Rect{}
	}
	minX, minY := float64(flat[0]), float64(flat[1])
	maxX, maxY := minX, minY
	for i := 2; i+1 < len(flat); i += 2 {
		x, y := float64(flat[i]), float64(flat[i+1])
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	return core.NewRect(minX, minY, maxX-minX, maxY-minY)
}
