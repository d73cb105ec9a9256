// Package dungeon runs the whole generator: sample points, triangulate,
// extract edges, prune them down to corridors and drop mirrored copies.
package dungeon

import (
	"math/rand"

	"github.com/0x0FACED/go-dungen/pkg/delaunay"
	"github.com/0x0FACED/go-dungen/pkg/geom"
	"github.com/0x0FACED/go-dungen/pkg/graph"
	"github.com/0x0FACED/go-dungen/pkg/logger"
	"github.com/0x0FACED/go-dungen/pkg/sampler"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Stats struct {
	Points      int
	Triangles   int
	Extracted   int
	OutOfBounds int
	Pruned      int
	Mirrored    int
	Corridors   int
}

// Layout is the finished graph. Corridors holds only active edges; the
// consumer owns it.
type Layout struct {
	Width     int
	Height    int
	Points    []geom.Point
	Mesh      *delaunay.Mesh
	Corridors []geom.Edge
	Stats     Stats
}

// Generator carries the configuration and limits of a run. Override Limits
// before calling Generate to shrink or grow individual collections.
type Generator struct {
	Config Config
	Limits Limits
	logger *logger.ZapLogger
}

func New(cfg Config, logger *logger.ZapLogger) *Generator {
	return &Generator{
		Config: cfg,
		Limits: cfg.Limits(),
		logger: logger,
	}
}

// Run generates with a source seeded from Config.Seed.
func (g *Generator) Run() (*Layout, error) {
	return g.Generate(rand.New(rand.NewSource(g.Config.Seed)))
}

// Generate runs every stage in order. Any failure aborts the run.
func (g *Generator) Generate(rng sampler.Rand) (*Layout, error) {
	cfg := g.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g.logger.Info("[gen] Generation started",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("points", cfg.Points),
		zap.Int("grid", cfg.Grid),
		zap.Int64("seed", cfg.Seed))

	points, err := sampler.Sample(sampler.Params{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Count:    cfg.Points,
		Grid:     cfg.Grid,
		Border:   cfg.Border,
		Capacity: g.Limits.Points,
	}, rng, g.logger)
	if err != nil {
		return nil, errors.Wrap(err, "sample points")
	}

	mesh, err := delaunay.New(cfg.Width, cfg.Height, g.Limits.Mesh, g.logger).Triangulate(points.Items())
	if err != nil {
		return nil, errors.Wrap(err, "triangulate")
	}

	edges, err := graph.Extract(mesh.Triangles, g.Limits.Edges, g.logger)
	if err != nil {
		return nil, errors.Wrap(err, "extract edges")
	}
	extracted := len(graph.Active(edges.Items()))

	pruned, err := graph.Prune(edges.Items(), float64(cfg.Width), float64(cfg.Height), g.Limits.Traversal, g.logger)
	if err != nil {
		return nil, errors.Wrap(err, "prune edges")
	}

	mirrored := graph.Collapse(edges.Items())
	corridors := graph.Active(edges.Items())

	layout := &Layout{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Points:    points.Items(),
		Mesh:      mesh,
		Corridors: corridors,
		Stats: Stats{
			Points:      points.Len(),
			Triangles:   len(mesh.Triangles),
			Extracted:   extracted,
			OutOfBounds: pruned.OutOfBounds,
			Pruned:      pruned.Removed,
			Mirrored:    mirrored,
			Corridors:   len(corridors),
		},
	}

	g.logger.Info("[gen] Generation finished", zap.Any("stats", layout.Stats))

	return layout, nil
}
