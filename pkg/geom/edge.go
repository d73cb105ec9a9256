package geom

// Edge is a directed segment between two points. Inactive edges are
// logically deleted but stay in their collection.
type Edge struct {
	A      Point
	B      Point
	Active bool
}

func NewEdge(a, b Point) Edge {
	return Edge{A: a, B: b, Active: true}
}

func (e Edge) Len() float64 {
	return e.B.Sub(e.A).Mag()
}

// Same reports whether e and o run between the same points in the same
// direction.
func (e Edge) Same(o Edge) bool {
	return e.A == o.A && e.B == o.B
}

// Mirrors reports whether o is e reversed.
func (e Edge) Mirrors(o Edge) bool {
	return e.A == o.B && e.B == o.A
}

// Aligned reports whether e and o join the same unordered pair of points.
func (e Edge) Aligned(o Edge) bool {
	return e.Same(o) || e.Mirrors(o)
}

func (e Edge) OutOfBounds(w, h float64) bool {
	return e.A.OutOfBounds(w, h) || e.B.OutOfBounds(w, h)
}

// Elbow splits e into a horizontal leg from A followed by a vertical leg
// into B. The returned polyline is A, corner, B.
func (e Edge) Elbow() [3]Point {
	return [3]Point{e.A, {X: e.B.X, Y: e.A.Y}, e.B}
}

type edges []Edge

func (s edges) Len() int      { return len(s) }
func (s edges) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// EdgesByLengthDesc sorts longest first.
type EdgesByLengthDesc struct{ edges }

func ByLengthDesc(s []Edge) EdgesByLengthDesc {
	return EdgesByLengthDesc{edges(s)}
}

func (s EdgesByLengthDesc) Less(i, j int) bool { return s.edges[i].Len() > s.edges[j].Len() }
