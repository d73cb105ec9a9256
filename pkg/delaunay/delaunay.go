// Package delaunay builds a Delaunay triangle mesh by inserting points one at
// a time into an enclosing super-triangle (Bowyer-Watson).
package delaunay

import (
	"math"

	"github.com/0x0FACED/go-dungen/pkg/bounded"
	"github.com/0x0FACED/go-dungen/pkg/geom"
	"github.com/0x0FACED/go-dungen/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrDegenerateGeometry is reported for zero-area or clockwise triangles.
var ErrDegenerateGeometry = errors.New("degenerate geometry")

// superScale is how many canvas extents the super-triangle reaches past the
// canvas centre.
const superScale = 10

// Limits bounds the scratch space of one triangulation.
type Limits struct {
	// Triangles caps the mesh and the bad/kept partitions.
	Triangles int
	// Cavity caps the edges collected from bad triangles for one insertion.
	Cavity int
}

// LimitsFor sizes the buffers for up to n inserted points. n distinct points
// inside the super-triangle always produce 2n+1 triangles.
func LimitsFor(n int) Limits {
	t := 2*n + 1
	return Limits{Triangles: t, Cavity: 3 * t}
}

type Mesh struct {
	Super     geom.Triangle
	Triangles []geom.Triangle
}

// SuperTriangle returns a counter-clockwise triangle strictly containing
// the w x h canvas, with every vertex far outside it.
func SuperTriangle(w, h int) geom.Triangle {
	d := math.Max(float64(w), float64(h))
	if d < 1 {
		d = 1
	}
	cx, cy := float64(w)/2, float64(h)/2
	return geom.NewTriangle(
		geom.Point{X: cx - superScale*d, Y: cy - d},
		geom.Point{X: cx + superScale*d, Y: cy - d},
		geom.Point{X: cx, Y: cy + superScale*d},
	)
}

// IsSuperVertex reports whether p is one of the seed triangle's corners.
func (m *Mesh) IsSuperVertex(p geom.Point) bool {
	return m.Super.HasVertex(p)
}

// Inner returns the triangles that do not touch the super-triangle.
func (m *Mesh) Inner() []geom.Triangle {
	var inner []geom.Triangle
	for _, t := range m.Triangles {
		if m.IsSuperVertex(t.A) || m.IsSuperVertex(t.B) || m.IsSuperVertex(t.C) {
			continue
		}
		inner = append(inner, t)
	}
	return inner
}

// Validate checks that every triangle is counter-clockwise with non-zero
// area.
func (m *Mesh) Validate() error {
	for i, t := range m.Triangles {
		if geom.Orient(t.A, t.B, t.C) <= 0 {
			return errors.Wrapf(ErrDegenerateGeometry, "triangle %d %v", i, t)
		}
	}
	return nil
}

type Triangulator struct {
	width  int
	height int
	limits Limits
	logger *logger.ZapLogger
}

func New(width, height int, limits Limits, logger *logger.ZapLogger) *Triangulator {
	return &Triangulator{
		width:  width,
		height: height,
		limits: limits,
		logger: logger,
	}
}

// Triangulate inserts points in order. After each insertion every triangle
// has an empty circumcircle with respect to the points inserted so far.
func (t *Triangulator) Triangulate(points []geom.Point) (*Mesh, error) {
	super := SuperTriangle(t.width, t.height)

	tris := bounded.New[geom.Triangle]("tris", t.limits.Triangles, t.logger)
	next := bounded.New[geom.Triangle]("tris", t.limits.Triangles, t.logger)
	bad := bounded.New[geom.Triangle]("bad", t.limits.Triangles, t.logger)
	cavity := bounded.New[geom.Edge]("cavity", t.limits.Cavity, t.logger)

	if err := tris.Add(super, "super"); err != nil {
		return nil, err
	}

	t.logger.Info("[d] Triangulation started",
		zap.Int("points", len(points)),
		zap.Any("super", super))

	for i, p := range points {
		bad.Reset()
		next.Reset()
		cavity.Reset()

		// split into triangles whose circumcircle holds p and the rest
		for _, tri := range tris.Items() {
			var err error
			if tri.InCircumcircle(p) {
				err = bad.Add(tri, "bad")
			} else {
				err = next.Add(tri, "kept")
			}
			if err != nil {
				return nil, err
			}
		}

		for _, tri := range bad.Items() {
			for _, e := range tri.Edges() {
				if err := cavity.Add(e, "cavity"); err != nil {
					return nil, err
				}
			}
		}

		markShared(cavity.Items())

		for _, e := range cavity.Items() {
			if !e.Active {
				continue
			}
			if geom.Orient(e.A, e.B, p) == 0 {
				return nil, errors.Wrapf(ErrDegenerateGeometry, "point %d %v is collinear with cavity edge %v-%v", i, p, e.A, e.B)
			}
			if err := next.Add(geom.NewTriangle(e.A, e.B, p), "join"); err != nil {
				return nil, err
			}
		}

		if bad.Len() == 0 {
			t.logger.Debug("[d] Point already in mesh, skipped", zap.Int("i", i), zap.Any("point", p))
		}

		tris, next = next, tris
	}

	mesh := &Mesh{
		Super:     super,
		Triangles: append([]geom.Triangle(nil), tris.Items()...),
	}

	t.logger.Info("[d] Triangulation finished", zap.Int("triangles", len(mesh.Triangles)))

	return mesh, nil
}

// markShared deactivates every edge that appears more than once among the
// bad triangles' edges, leaving only the cavity boundary active.
func markShared(edges []geom.Edge) {
	for i := range edges {
		for j := range edges {
			if i == j {
				continue
			}
			if edges[i].Aligned(edges[j]) {
				edges[j].Active = false
			}
		}
	}
}
