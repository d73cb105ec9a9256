package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/0x0FACED/go-dungen/pkg/dungeon"
	"github.com/0x0FACED/go-dungen/pkg/logger"
	"github.com/0x0FACED/go-dungen/pkg/render"
	"github.com/0x0FACED/go-dungen/static"

	"go.uber.org/zap"
)

// configFromForm reads the generation form. Missing or unparsable fields
// keep their defaults.
func configFromForm(r *http.Request) dungeon.Config {
	cfg := dungeon.DefaultConfig()
	if r.Method != http.MethodPost {
		return cfg
	}
	r.ParseForm()

	fields := []struct {
		name string
		dst  *int
	}{
		{"width", &cfg.Width},
		{"height", &cfg.Height},
		{"points", &cfg.Points},
		{"grid", &cfg.Grid},
		{"border", &cfg.Border},
	}
	for _, f := range fields {
		if v, err := strconv.Atoi(r.FormValue(f.name)); err == nil {
			*f.dst = v
		}
	}
	if seed, err := strconv.ParseInt(r.FormValue("seed"), 10, 64); err == nil && seed != 0 {
		cfg.Seed = seed
	}
	if cfg.Points > cfg.Capacity {
		// the form may ask for more rooms than the default budget
		cfg.Capacity = min(cfg.Points, maxCapacity)
	}
	return cfg
}

const maxCapacity = 1000

// page with the chart on the left and the generation log on the right
func dungeonHandler(w http.ResponseWriter, r *http.Request) {
	cfg := configFromForm(r)

	logger := logger.New(os.Stdout)
	defer logger.ClearLogs()

	layout, err := dungeon.New(cfg, logger).Run()
	if err != nil {
		logger.Error("[app] Generation failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	fmt.Fprintln(w, static.Part1)

	if err := render.Chart(layout).Render(w); err != nil {
		logger.Error("[app] Chart rendering failed", zap.Error(err))
	}

	fmt.Fprintln(w, static.Part2)

	for _, log := range logger.Logs {
		fmt.Fprintln(w, log)
	}

	fmt.Fprintln(w, static.Part3)
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	http.HandleFunc("/", dungeonHandler)

	srv := &http.Server{
		Addr:              *addr,
		ReadHeaderTimeout: 5 * time.Second,
	}
	fmt.Printf("Server started at http://localhost%s\n", *addr)
	if err := srv.ListenAndServe(); err != nil {
		fmt.Println("ListenAndServe:", err)
		os.Exit(1)
	}
}
