package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecovolt/internal/chart"
)

func TestPreview(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, preview(&buf, chart.Solar, 12, 1, 8, 40))

	out := buf.String()
	assert.Contains(t, out, "Solar (offset 12)")
	assert.Contains(t, out, "solarValue / solarForecast")
}

func TestPreview_MultipleTicks(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, preview(&buf, chart.Wind, 0, 3, 6, 30))

	out := buf.String()
	for _, caption := range []string{"Wind (offset 0)", "Wind (offset 1)", "Wind (offset 2)"} {
		assert.Equal(t, 1, strings.Count(out, caption), caption)
	}
}

func TestPreview_InvalidArgs(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, preview(&buf, chart.Demand, 0, 0, 6, 30))
	assert.Error(t, preview(&buf, chart.Demand, -1, 1, 6, 30))
	assert.Empty(t, buf.String())
}
