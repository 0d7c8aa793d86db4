package chart

import (
	"bytes"
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecovolt/internal/waveform"
)

func TestRenderSVG(t *testing.T) {
	for _, sel := range Selections {
		t.Run(string(sel), func(t *testing.T) {
			var buf bytes.Buffer
			err := RenderSVG(&buf, waveform.Generate(0), sel, RenderOptions{})
			require.NoError(t, err)

			out := buf.String()
			assert.Contains(t, out, "<svg")
			assert.Contains(t, out, "</svg>")
			// The forecast line is dashed, and so are the grid guides.
			assert.Contains(t, out, `stroke-dasharray="5.0, 5.0"`)
			assert.Equal(t, gridDivisions-1, strings.Count(out, `stroke-dasharray="3.0, 3.0"`))

			// No axis is drawn, so there are no tick labels.
			assert.NotContains(t, out, "<text")
			assert.NotContains(t, out, "9223372036854775")
		})
	}
}

// valueLinePath matches the first point of the solid actual line.
var valueLinePath = regexp.MustCompile(`<path\s+d="M (\d+) (\d+)[^"]*" style="stroke-width:3;`)

func TestRenderSVG_PlotsWithinDomain(t *testing.T) {
	for _, sel := range Selections {
		t.Run(string(sel), func(t *testing.T) {
			series := waveform.Generate(0)
			var buf bytes.Buffer
			require.NoError(t, RenderSVG(&buf, series, sel, RenderOptions{}))

			m := valueLinePath.FindStringSubmatch(buf.String())
			require.NotNil(t, m, "actual line not found")
			x, err := strconv.Atoi(m[1])
			require.NoError(t, err)
			y, err := strconv.Atoi(m[2])
			require.NoError(t, err)

			v := ViewFor(sel)
			actual, _ := Values(series, sel)
			top, bottom := padding, DefaultHeight-padding
			ratio := (actual[0] - v.Domain[0]) / (v.Domain[1] - v.Domain[0])
			want := bottom - int(math.Ceil(ratio*float64(bottom-top)))

			assert.Equal(t, padding, x)
			assert.InDelta(t, want, y, 1)
			assert.GreaterOrEqual(t, y, top)
			assert.LessOrEqual(t, y, bottom)
		})
	}
}

func TestRenderPNG(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPNG(&buf, waveform.Generate(3), Demand, RenderOptions{Width: 320, Height: 160})
	require.NoError(t, err)
	require.Greater(t, buf.Len(), 8)
	assert.Equal(t, []byte("\x89PNG"), buf.Bytes()[:4])
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Solar (offset 12)", Title(Solar, 12))
}
