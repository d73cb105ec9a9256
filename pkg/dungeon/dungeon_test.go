package dungeon

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/0x0FACED/go-dungen/pkg/bounded"
	"github.com/0x0FACED/go-dungen/pkg/geom"
	"github.com/0x0FACED/go-dungen/pkg/logger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed int64) Config {
	cfg := DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := Config{Width: 100, Height: 0, Points: -1, Grid: 0, Border: 300, Capacity: -5}
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	// multierr joins the five problems with "; "
	assert.Equal(t, 4, strings.Count(err.Error(), "; "))
	assert.Contains(t, err.Error(), "grid must be at least 1")
}

func TestValidateDefault(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.Points = cfg.Capacity + 10
	assert.NoError(t, cfg.Validate(), "over-capacity is reported by Generate")
}

func TestLimits(t *testing.T) {
	l := Config{Capacity: 10}.Limits()
	assert.Equal(t, 10, l.Points)
	assert.Equal(t, 21, l.Mesh.Triangles)
	assert.Equal(t, 63, l.Mesh.Cavity)
	assert.Equal(t, 63, l.Edges)
	assert.Equal(t, 64, l.Traversal)
}

func TestGenerate(t *testing.T) {
	for _, seed := range []int64{1, 2, 2024} {
		cfg := seeded(seed)
		layout, err := New(cfg, logger.New()).Run()
		require.NoError(t, err, "seed %d", seed)

		assert.Len(t, layout.Points, cfg.Points)
		assert.Equal(t, layout.Stats.Corridors, len(layout.Corridors))
		assert.NoError(t, layout.Mesh.Validate())
		require.NotEmpty(t, layout.Corridors)

		w, h := float64(cfg.Width), float64(cfg.Height)
		for i, e := range layout.Corridors {
			assert.True(t, e.Active)
			assert.False(t, e.OutOfBounds(w, h), "seed %d: %v", seed, e)
			for j, o := range layout.Corridors {
				if i != j {
					assert.False(t, e.Mirrors(o), "seed %d: %v", seed, e)
				}
			}
		}

		// every sampled position is reachable walking corridors both ways
		reach := walk(layout.Corridors, layout.Points[0])
		for _, p := range layout.Points {
			assert.True(t, reach[p], "seed %d: %v cut off", seed, p)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := New(seeded(99), logger.New()).Run()
	require.NoError(t, err)
	b, err := New(seeded(99), logger.New()).Run()
	require.NoError(t, err)
	assert.Equal(t, a.Corridors, b.Corridors)
}

func TestGenerateNoPoints(t *testing.T) {
	cfg := seeded(1)
	cfg.Points = 0
	layout, err := New(cfg, logger.New()).Run()
	require.NoError(t, err)
	assert.Empty(t, layout.Corridors)
	assert.Equal(t, 3, layout.Stats.OutOfBounds, "only the super-triangle")
}

func TestGenerateOverCapacity(t *testing.T) {
	cfg := seeded(1)
	cfg.Points = cfg.Capacity + 1
	log := logger.New()

	_, err := New(cfg, log).Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, bounded.ErrCapacityExceeded))
	assert.NotContains(t, log.Raw(), "[d] Triangulation started")
}

func TestGenerateMeshLimit(t *testing.T) {
	g := New(seeded(1), logger.New())
	g.Limits.Mesh.Triangles = 50

	_, err := g.Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, bounded.ErrCapacityExceeded))
	assert.Contains(t, err.Error(), "triangulate")
}

func TestGenerateInvalidConfig(t *testing.T) {
	cfg := seeded(1)
	cfg.Grid = 0
	_, err := New(cfg, logger.New()).Generate(rand.New(rand.NewSource(1)))
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func walk(edges []geom.Edge, from geom.Point) map[geom.Point]bool {
	adj := map[geom.Point][]geom.Point{}
	for _, e := range edges {
		adj[e.A] = append(adj[e.A], e.B)
		adj[e.B] = append(adj[e.B], e.A)
	}
	seen := map[geom.Point]bool{from: true}
	queue := []geom.Point{from}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, q := range adj[p] {
			if !seen[q] {
				seen[q] = true
				queue = append(queue, q)
			}
		}
	}
	return seen
}
