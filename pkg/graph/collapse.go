package graph

import "github.com/0x0FACED/go-dungen/pkg/geom"

// Collapse deactivates the later edge of every active mirrored pair, so each
// surviving corridor is drawn once. Running it twice changes nothing. It
// returns the number of edges deactivated.
func Collapse(edges []geom.Edge) int {
	n := 0
	for i := range edges {
		if !edges[i].Active {
			continue
		}
		for j := range edges {
			if i == j || !edges[j].Active {
				continue
			}
			if edges[i].Mirrors(edges[j]) {
				edges[j].Active = false
				n++
			}
		}
	}
	return n
}
