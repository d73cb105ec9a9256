package sampler

import (
	"math"

	"github.com/0x0FACED/go-dungen/pkg/bounded"
	"github.com/0x0FACED/go-dungen/pkg/geom"
	"github.com/0x0FACED/go-dungen/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Rand is the uniform source the sampler draws from. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type Params struct {
	Width    int
	Height   int
	Count    int
	Grid     int
	Border   int
	Capacity int
}

// Sample draws Count points inside the canvas inset by Border/2 on every
// side and snaps each one to the nearest multiple of Grid. Coincident points
// are kept. Requesting more points than Capacity fails before anything is
// drawn.
func Sample(p Params, rng Rand, logger *logger.ZapLogger) (*bounded.List[geom.Point], error) {
	if p.Count > p.Capacity {
		return nil, &bounded.CapacityError{Collection: "points", Site: "sample", Capacity: p.Capacity}
	}
	if p.Grid < 1 {
		return nil, errors.Errorf("grid spacing must be positive, got %d", p.Grid)
	}
	spanX, spanY := p.Width-p.Border, p.Height-p.Border
	if spanX <= 0 || spanY <= 0 {
		return nil, errors.Errorf("border %d leaves no room in %dx%d canvas", p.Border, p.Width, p.Height)
	}

	points := bounded.New[geom.Point]("points", p.Capacity, logger)
	grid := float64(p.Grid)
	for i := 0; i < p.Count; i++ {
		x := float64(rng.Intn(spanX) + p.Border/2)
		y := float64(rng.Intn(spanY) + p.Border/2)
		snapped := geom.Point{
			X: math.Round(x/grid) * grid,
			Y: math.Round(y/grid) * grid,
		}
		if err := points.Add(snapped, "sample"); err != nil {
			return nil, err
		}
	}

	logger.Info("[s] Points sampled",
		zap.Int("count", points.Len()),
		zap.Int("grid", p.Grid),
		zap.Int("border", p.Border))

	return points, nil
}
