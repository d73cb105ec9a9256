package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/0x0FACED/go-dungen/pkg/dungeon"
	"github.com/0x0FACED/go-dungen/pkg/logger"
	"github.com/0x0FACED/go-dungen/pkg/render"
)

func main() {
	def := dungeon.DefaultConfig()

	var (
		destination = flag.String("out", "dungeon.png", "Destination PNG")
		width       = flag.Int("width", def.Width, "Canvas width")
		height      = flag.Int("height", def.Height, "Canvas height")
		points      = flag.Int("points", def.Points, "Number of rooms")
		grid        = flag.Int("grid", def.Grid, "Grid spacing rooms snap to")
		border      = flag.Int("border", def.Border, "Total margin kept free of rooms")
		capacity    = flag.Int("capacity", def.Capacity, "Maximum number of rooms")
		seed        = flag.Int64("seed", def.Seed, "Random seed")
		lineWidth   = flag.Float64("line", 2, "Corridor line width")
		verbose     = flag.Bool("v", false, "Print the generation log")
	)
	flag.Parse()

	cfg := dungeon.Config{
		Width:    *width,
		Height:   *height,
		Points:   *points,
		Grid:     *grid,
		Border:   *border,
		Capacity: *capacity,
		Seed:     *seed,
	}

	var zl *logger.ZapLogger
	if *verbose {
		zl = logger.New(os.Stderr)
	} else {
		zl = logger.New()
	}
	defer zl.Sync()

	start := time.Now()
	layout, err := dungeon.New(cfg, zl).Run()
	if err != nil {
		log.Fatalf("Unable to generate dungeon: %v", err)
	}

	fq, err := os.Create(*destination)
	if err != nil {
		log.Fatalf("Unable to create destination: %v", err)
	}
	defer fq.Close()

	style := render.DefaultStyle()
	style.LineWidth = *lineWidth
	if err := render.PNG(fq, layout, style); err != nil {
		log.Fatalf("Unable to encode PNG: %v", err)
	}

	fmt.Printf("Generated in %.2fs: %d rooms, %d corridors (seed %d)\n",
		time.Since(start).Seconds(), layout.Stats.Points, layout.Stats.Corridors, cfg.Seed)
	fmt.Printf("Saved as: %s\n", *destination)
}
