package graph

import (
	"github.com/0x0FACED/go-dungen/pkg/bounded"
	"github.com/0x0FACED/go-dungen/pkg/geom"
	"github.com/0x0FACED/go-dungen/pkg/logger"
)

// Oracle answers reachability queries over an edge slice. It indexes the
// slice by first endpoint once; active flags are read at query time, so the
// owner may toggle them between queries but must not reorder the slice.
type Oracle struct {
	edges   []geom.Edge
	out     map[geom.Point][]int
	scratch int
	logger  *logger.ZapLogger
}

// NewOracle indexes edges. scratch bounds the number of points a single
// traversal may queue.
func NewOracle(edges []geom.Edge, scratch int, logger *logger.ZapLogger) *Oracle {
	out := make(map[geom.Point][]int)
	for i, e := range edges {
		out[e.A] = append(out[e.A], i)
	}
	return &Oracle{
		edges:   edges,
		out:     out,
		scratch: scratch,
		logger:  logger,
	}
}

// Connected reports whether b can be reached from a by following active
// edges from their first endpoint to their second. The path must use at
// least one edge.
func (o *Oracle) Connected(a, b geom.Point) (bool, error) {
	queue := bounded.New[geom.Point]("todo", o.scratch, o.logger)
	visited := map[geom.Point]bool{a: true}

	if err := queue.Add(a, "first todo"); err != nil {
		return false, err
	}

	// queue keeps every point ever queued; head walks it front to back
	for head := 0; head < queue.Len(); head++ {
		from := queue.Items()[head]
		for _, i := range o.out[from] {
			e := o.edges[i]
			if !e.Active {
				continue
			}
			if e.B == b {
				return true, nil
			}
			if visited[e.B] {
				continue
			}
			visited[e.B] = true
			if err := queue.Add(e.B, "todo reachable"); err != nil {
				return false, err
			}
		}
	}

	return false, nil
}
