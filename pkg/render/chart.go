package render

import (
	"github.com/0x0FACED/go-dungen/pkg/dungeon"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func prepareScatter(scatter *charts.Scatter, layout *dungeon.Layout) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                "Dungeon layout (Delaunay + reverse-delete)",
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "Width",
			Min:  0,
			Max:  layout.Width,
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Height",
			Min:  0,
			Max:  layout.Height,
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// Chart draws rooms as scatter points and every corridor as an elbow line.
// The canvas has y growing downwards, the chart upwards, so y is flipped.
func Chart(layout *dungeon.Layout) *charts.Scatter {
	scatter := charts.NewScatter()
	prepareScatter(scatter, layout)

	flip := func(y float64) float64 { return float64(layout.Height) - y }

	rooms := make([]opts.ScatterData, 0, len(layout.Points))
	for _, p := range layout.Points {
		rooms = append(rooms, opts.ScatterData{
			Value: []float64{p.X, flip(p.Y)},
		})
	}

	scatter.AddSeries("Rooms", rooms).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	for _, edge := range layout.Corridors {
		elbow := edge.Elbow()

		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
			charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
		)

		data := make([]opts.LineData, 0, len(elbow))
		for _, p := range elbow {
			data = append(data, opts.LineData{Value: []float64{p.X, flip(p.Y)}})
		}

		line.AddSeries("Corridors", data).SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{
				Width: 2,
				Color: "red",
			}),
		)

		scatter.Overlap(line)
	}

	return scatter
}
