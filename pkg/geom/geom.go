package geom

import (
	"math"
)

// Point is a canvas coordinate. Points are compared exactly: every point
// produced by the sampler is grid-snapped, so no epsilon is needed.
type Point struct {
	X float64
	Y float64
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Mag() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// OutOfBounds reports whether p lies outside [0,w) x [0,h).
func (p Point) OutOfBounds(w, h float64) bool {
	return p.X < 0 || p.Y < 0 || p.X >= w || p.Y >= h
}

// Orient is twice the signed area of abc. Positive means abc turns
// counter-clockwise in a y-up frame.
func Orient(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Triangle is an ordered vertex triple. Triangles built with NewTriangle
// are always wound so that Orient(A, B, C) >= 0.
type Triangle struct {
	A, B, C Point
}

// NewTriangle returns the triangle abc, swapping b and c when needed so the
// result is counter-clockwise.
func NewTriangle(a, b, c Point) Triangle {
	if Orient(a, b, c) < 0 {
		b, c = c, b
	}
	return Triangle{A: a, B: b, C: c}
}

func (t Triangle) Area() float64 {
	return math.Abs(Orient(t.A, t.B, t.C)) / 2
}

func (t Triangle) HasVertex(p Point) bool {
	return t.A == p || t.B == p || t.C == p
}

// Edges returns ab, bc and ca, all active.
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{
		{A: t.A, B: t.B, Active: true},
		{A: t.B, B: t.C, Active: true},
		{A: t.C, B: t.A, Active: true},
	}
}

// InCircumcircle reports whether p lies strictly inside the circumcircle of
// t. t must be counter-clockwise, see NewTriangle.
func (t Triangle) InCircumcircle(p Point) bool {
	ax, ay := t.A.X-p.X, t.A.Y-p.Y
	bx, by := t.B.X-p.X, t.B.Y-p.Y
	cx, cy := t.C.X-p.X, t.C.Y-p.Y

	det := (ax*ax+ay*ay)*(bx*cy-cx*by) -
		(bx*bx+by*by)*(ax*cy-cx*ay) +
		(cx*cx+cy*cy)*(ax*by-bx*ay)

	return det > 0
}
