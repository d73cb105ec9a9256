package sampler

import (
	"math"
	"math/rand"
	"testing"

	"github.com/0x0FACED/go-dungen/pkg/bounded"
	"github.com/0x0FACED/go-dungen/pkg/logger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultParams() Params {
	return Params{Width: 800, Height: 600, Count: 200, Grid: 40, Border: 300, Capacity: 200}
}

func TestSampleSnapsInsideInset(t *testing.T) {
	p := defaultParams()
	points, err := Sample(p, rand.New(rand.NewSource(1)), logger.New())
	require.NoError(t, err)
	require.Equal(t, p.Count, points.Len())

	for _, pt := range points.Items() {
		assert.Zero(t, math.Mod(pt.X, 40), "x snapped: %v", pt)
		assert.Zero(t, math.Mod(pt.Y, 40), "y snapped: %v", pt)
		// The inset is [150, 650) x [150, 450) before snapping, so a snapped
		// coordinate can move at most half a grid cell outward.
		assert.GreaterOrEqual(t, pt.X, 150.0-20)
		assert.LessOrEqual(t, pt.X, 650.0+20)
		assert.GreaterOrEqual(t, pt.Y, 150.0-20)
		assert.LessOrEqual(t, pt.Y, 450.0+20)
	}
}

func TestSampleDeterministic(t *testing.T) {
	a, err := Sample(defaultParams(), rand.New(rand.NewSource(7)), logger.New())
	require.NoError(t, err)
	b, err := Sample(defaultParams(), rand.New(rand.NewSource(7)), logger.New())
	require.NoError(t, err)
	assert.Equal(t, a.Items(), b.Items())
}

func TestSampleZero(t *testing.T) {
	p := defaultParams()
	p.Count = 0
	points, err := Sample(p, rand.New(rand.NewSource(1)), logger.New())
	require.NoError(t, err)
	assert.Equal(t, 0, points.Len())
}

type countingRand struct{ calls int }

func (r *countingRand) Intn(n int) int {
	r.calls++
	return 0
}

func TestSampleOverCapacity(t *testing.T) {
	p := defaultParams()
	p.Count = p.Capacity + 1
	rng := &countingRand{}

	_, err := Sample(p, rng, logger.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, bounded.ErrCapacityExceeded))
	assert.Zero(t, rng.calls, "nothing drawn before failing")
}

func TestSampleRejectsBadGeometry(t *testing.T) {
	p := defaultParams()
	p.Border = 800
	_, err := Sample(p, rand.New(rand.NewSource(1)), logger.New())
	assert.Error(t, err)

	p = defaultParams()
	p.Grid = 0
	_, err = Sample(p, rand.New(rand.NewSource(1)), logger.New())
	assert.Error(t, err)
}
