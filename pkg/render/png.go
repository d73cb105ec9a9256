package render

import (
	"image/color"
	"io"

	"github.com/0x0FACED/go-dungen/pkg/dungeon"
	"github.com/fogleman/gg"
)

type Style struct {
	Background color.Color
	Corridor   color.Color
	Room       color.Color
	LineWidth  float64
	RoomRadius float64
}

func DefaultStyle() Style {
	return Style{
		Background: color.Black,
		Corridor:   color.RGBA{R: 0xFF, A: 0xFF},
		Room:       color.RGBA{R: 0x90, G: 0xEE, B: 0x90, A: 0xFF},
		LineWidth:  2,
		RoomRadius: 4,
	}
}

// Image rasterises layout on a canvas of the layout's size. Rooms go down
// first so corridors stay visible on top of them.
func Image(layout *dungeon.Layout, style Style) *gg.Context {
	ctx := gg.NewContext(layout.Width, layout.Height)
	ctx.SetColor(style.Background)
	ctx.Clear()

	ctx.SetColor(style.Room)
	for _, p := range layout.Points {
		ctx.DrawCircle(p.X, p.Y, style.RoomRadius)
		ctx.Fill()
	}

	ctx.SetColor(style.Corridor)
	ctx.SetLineWidth(style.LineWidth)
	for _, e := range layout.Corridors {
		elbow := e.Elbow()
		ctx.MoveTo(elbow[0].X, elbow[0].Y)
		ctx.LineTo(elbow[1].X, elbow[1].Y)
		ctx.LineTo(elbow[2].X, elbow[2].Y)
		ctx.Stroke()
	}

	return ctx
}

func PNG(w io.Writer, layout *dungeon.Layout, style Style) error {
	return Image(layout, style).EncodePNG(w)
}
