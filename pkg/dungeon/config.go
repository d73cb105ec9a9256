package dungeon

import (
	"fmt"
	"time"

	"github.com/0x0FACED/go-dungen/pkg/delaunay"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config describes one generation run. Capacity bounds every collection the
// run allocates; asking for more Points than Capacity fails before any
// geometry is computed.
type Config struct {
	Width    int
	Height   int
	Points   int
	Grid     int
	Border   int
	Capacity int
	Seed     int64
}

func DefaultConfig() Config {
	return Config{
		Width:    800,
		Height:   600,
		Points:   200,
		Grid:     40,
		Border:   300,
		Capacity: 200,
		Seed:     time.Now().UnixNano(),
	}
}

// Validate reports every problem at once. Points > Capacity is not checked
// here; Generate reports it as a capacity failure.
func (c Config) Validate() error {
	var err error
	if c.Width <= 0 || c.Height <= 0 {
		err = multierr.Append(err, errors.Errorf("canvas must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.Border < 0 {
		err = multierr.Append(err, errors.Errorf("border must not be negative, got %d", c.Border))
	}
	if c.Border >= c.Width || c.Border >= c.Height {
		err = multierr.Append(err, errors.Errorf("border %d must be smaller than the canvas %dx%d", c.Border, c.Width, c.Height))
	}
	if c.Grid < 1 {
		err = multierr.Append(err, errors.Errorf("grid must be at least 1, got %d", c.Grid))
	}
	if c.Points < 0 {
		err = multierr.Append(err, errors.Errorf("points must not be negative, got %d", c.Points))
	}
	if c.Capacity < 0 {
		err = multierr.Append(err, errors.Errorf("capacity must not be negative, got %d", c.Capacity))
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Limits are the collection sizes derived from Capacity.
type Limits struct {
	Points    int
	Mesh      delaunay.Limits
	Edges     int
	Traversal int
}

func (c Config) Limits() Limits {
	mesh := delaunay.LimitsFor(c.Capacity)
	edges := 3 * mesh.Triangles
	return Limits{
		Points:    c.Capacity,
		Mesh:      mesh,
		Edges:     edges,
		Traversal: edges + 1,
	}
}
