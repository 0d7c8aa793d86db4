package chart

import (
	"fmt"
	"io"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"ecovolt/internal/model"
)

const (
	DefaultWidth  = 640
	DefaultHeight = 320

	padding       = 16
	gridDivisions = 5
)

var (
	gridColor       = drawing.ColorFromHex("374151")
	backgroundColor = drawing.ColorFromHex("1e293b")
)

// RenderOptions sizes the rendered chart. Zero values fall back to the defaults.
type RenderOptions struct {
	Width  int
	Height int
}

// RenderSVG draws the actual (solid) and forecast (dashed) lines of sel over
// the fixed Y domain of the selection.
func RenderSVG(w io.Writer, series model.Series, sel Selection, opts RenderOptions) error {
	return build(series, sel, opts).Render(gochart.SVG, w)
}

// RenderPNG is RenderSVG for raster output.
func RenderPNG(w io.Writer, series model.Series, sel Selection, opts RenderOptions) error {
	return build(series, sel, opts).Render(gochart.PNG, w)
}

func build(series model.Series, sel Selection, opts RenderOptions) gochart.Chart {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}

	v := ViewFor(sel)
	color := drawing.ColorFromHex(strings.TrimPrefix(v.Color, "#"))
	xs := series.Hours()
	actual, forecast := Values(series, sel)

	lines := gridLines(xs, v.Domain)
	lines = append(lines,
		gochart.ContinuousSeries{
			Name:    v.ValueField,
			XValues: xs,
			YValues: actual,
			Style: gochart.Style{
				StrokeColor: color,
				StrokeWidth: 3,
			},
		},
		gochart.ContinuousSeries{
			Name:    v.ForecastField,
			XValues: xs,
			YValues: forecast,
			Style: gochart.Style{
				StrokeColor:     color,
				StrokeWidth:     2,
				StrokeDashArray: []float64{5, 5},
			},
		},
	)

	return gochart.Chart{
		Width:  opts.Width,
		Height: opts.Height,
		Background: gochart.Style{
			FillColor: backgroundColor,
			Padding:   gochart.Box{Top: padding, Left: padding, Right: padding, Bottom: padding},
		},
		Canvas:         gochart.Style{FillColor: backgroundColor},
		XAxis:          gochart.XAxis{Style: gochart.Hidden()},
		YAxis:          gochart.YAxis{Style: gochart.Hidden(), Range: &gochart.ContinuousRange{Min: v.Domain[0], Max: v.Domain[1]}},
		YAxisSecondary: gochart.YAxis{Style: gochart.Hidden()},
		Series:         lines,
	}
}

// gridLines returns the dashed horizontal guides splitting the domain into
// gridDivisions bands. Axes are hidden, so go-chart would not draw a grid itself.
func gridLines(xs []float64, domain [2]float64) []gochart.Series {
	if len(xs) == 0 {
		return nil
	}
	minX, maxX := xs[0], xs[len(xs)-1]
	step := (domain[1] - domain[0]) / gridDivisions
	lines := make([]gochart.Series, 0, gridDivisions-1)
	for i := 1; i < gridDivisions; i++ {
		y := domain[0] + step*float64(i)
		lines = append(lines, gochart.ContinuousSeries{
			XValues: []float64{minX, maxX},
			YValues: []float64{y, y},
			Style: gochart.Style{
				StrokeColor:     gridColor,
				StrokeWidth:     1,
				StrokeDashArray: []float64{3, 3},
			},
		})
	}
	return lines
}

// Title returns the caption used for a rendered chart, e.g. "Wind (offset 12)".
func Title(sel Selection, offset int) string {
	return fmt.Sprintf("%s (offset %d)", sel.Label(), offset)
}
