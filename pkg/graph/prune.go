package graph

import (
	"sort"

	"github.com/0x0FACED/go-dungen/pkg/geom"
	"github.com/0x0FACED/go-dungen/pkg/logger"
	"go.uber.org/zap"
)

type PruneStats struct {
	OutOfBounds int
	Removed     int
	Bridges     int
}

// Prune runs reverse-delete over edges in place. edges is first sorted
// longest first. Edges with an endpoint outside [0,w) x [0,h) are dropped
// up front, then each remaining active edge is removed unless that leaves
// its endpoints unreachable from one another.
//
// The result is not a minimum spanning tree. Each check only sees the edges
// still active at that moment, and some cycles survive; they make for less
// monotonous layouts than a pure tree.
func Prune(edges []geom.Edge, w, h float64, scratch int, logger *logger.ZapLogger) (PruneStats, error) {
	var stats PruneStats

	sort.Stable(geom.ByLengthDesc(edges))

	for i := range edges {
		if edges[i].Active && edges[i].OutOfBounds(w, h) {
			edges[i].Active = false
			stats.OutOfBounds++
		}
	}

	oracle := NewOracle(edges, scratch, logger)

	for i := range edges {
		edge := &edges[i]
		if !edge.Active {
			continue
		}

		// break the connection and put it back if nothing else joins a to b
		edge.Active = false
		connected, err := oracle.Connected(edge.A, edge.B)
		if err != nil {
			return stats, err
		}
		if connected {
			stats.Removed++
			continue
		}
		edge.Active = true
		stats.Bridges++
	}

	logger.Info("[p] Reverse-delete finished",
		zap.Int("edges", len(edges)),
		zap.Int("out_of_bounds", stats.OutOfBounds),
		zap.Int("removed", stats.Removed),
		zap.Int("kept", stats.Bridges))

	return stats, nil
}
