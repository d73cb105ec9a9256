// Package graph turns a triangle mesh into a sparse corridor graph: edge
// extraction, reachability queries, reverse-delete pruning and the final
// mirrored-duplicate pass.
//
// Edges are directed. A mesh edge shared by two triangles is stored once per
// direction, one copy from each triangle, and reachability follows the
// stored direction.
package graph

import (
	"github.com/0x0FACED/go-dungen/pkg/bounded"
	"github.com/0x0FACED/go-dungen/pkg/geom"
	"github.com/0x0FACED/go-dungen/pkg/logger"
	"go.uber.org/zap"
)

// Extract flattens triangles into their ab, bc, ca edges and deactivates
// repeats, so no two active edges run between the same points in the same
// direction. capacity bounds the number of stored edges.
func Extract(triangles []geom.Triangle, capacity int, logger *logger.ZapLogger) (*bounded.List[geom.Edge], error) {
	edges := bounded.New[geom.Edge]("edges", capacity, logger)

	for _, tri := range triangles {
		for i, e := range tri.Edges() {
			if err := edges.Add(e, [3]string{"ab", "bc", "ca"}[i]); err != nil {
				return nil, err
			}
		}
	}

	repeats := MarkRepeats(edges.Items())

	logger.Info("[g] Edges extracted",
		zap.Int("triangles", len(triangles)),
		zap.Int("edges", edges.Len()),
		zap.Int("repeats", repeats))

	return edges, nil
}

// MarkRepeats keeps the first of every group of same-direction edges and
// deactivates the rest. It returns the number of edges deactivated.
func MarkRepeats(edges []geom.Edge) int {
	n := 0
	for i := range edges {
		if !edges[i].Active {
			continue
		}
		for j := i + 1; j < len(edges); j++ {
			if edges[j].Active && edges[i].Same(edges[j]) {
				edges[j].Active = false
				n++
			}
		}
	}
	return n
}

// Active returns the active edges in order.
func Active(edges []geom.Edge) []geom.Edge {
	out := make([]geom.Edge, 0, len(edges))
	for _, e := range edges {
		if e.Active {
			out = append(out, e)
		}
	}
	return out
}
