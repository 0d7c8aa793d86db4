package chart

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecovolt/internal/model"
	"ecovolt/internal/waveform"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		input    string
		expected Selection
	}{
		{"wind", Wind},
		{"solar", Solar},
		{"demand", Demand},
		{"Solar", Solar},
		{" DEMAND ", Demand},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			sel, err := ParseSelection(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, sel)
		})
	}
}

func TestParseSelection_Unknown(t *testing.T) {
	for _, input := range []string{"", "grid", "windy"} {
		_, err := ParseSelection(input)
		assert.ErrorIs(t, err, ErrUnknownSelection, "input %q", input)
	}
}

func TestSelection_Label(t *testing.T) {
	assert.Equal(t, "Wind", Wind.Label())
	assert.Equal(t, "Solar", Solar.Label())
	assert.Equal(t, "Demand", Demand.Label())
	assert.Equal(t, "", Selection("").Label())
}

func TestViewFor(t *testing.T) {
	tests := []struct {
		sel           Selection
		valueField    string
		forecastField string
		domain        [2]float64
		color         string
	}{
		{Wind, model.FieldWindValue, model.FieldWindForecast, [2]float64{0, 1000}, "#60a5fa"},
		{Solar, model.FieldSolarValue, model.FieldSolarForecast, [2]float64{0, 500}, "#fbbf24"},
		{Demand, model.FieldDemandValue, model.FieldDemandForecast, [2]float64{10000, 15500}, "#ef4444"},
	}

	for _, tt := range tests {
		t.Run(string(tt.sel), func(t *testing.T) {
			v := ViewFor(tt.sel)
			assert.Equal(t, tt.sel, v.Selection)
			assert.Equal(t, tt.valueField, v.ValueField)
			assert.Equal(t, tt.forecastField, v.ForecastField)
			assert.Equal(t, tt.domain, v.Domain)
			assert.Equal(t, tt.color, v.Color)
		})
	}
}

func TestViewFor_OtherDomain(t *testing.T) {
	v := ViewFor(Selection("grid"))
	assert.Equal(t, [2]float64{0, 500}, v.Domain)
}

func TestSelector_DefaultsToWind(t *testing.T) {
	s := NewSelector()
	assert.Equal(t, Wind, s.Current())
	assert.Equal(t, model.FieldWindValue, s.View().ValueField)
}

func TestSelector_Set(t *testing.T) {
	s := NewSelector()

	v := s.Set(Solar)
	assert.Equal(t, Solar, s.Current())
	assert.Equal(t, "solarValue", v.ValueField)
	assert.Equal(t, "solarForecast", v.ForecastField)
	assert.Equal(t, [2]float64{0, 500}, v.Domain)

	s.Set(Demand)
	assert.Equal(t, Demand, s.Current())
	assert.Equal(t, [2]float64{10000, 15500}, s.View().Domain)
}

func TestSelector_Concurrent(t *testing.T) {
	s := NewSelector()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Set(Selections[i%len(Selections)])
			_ = s.View()
		}(i)
	}
	wg.Wait()
	assert.Contains(t, Selections, s.Current())
}

func TestValues(t *testing.T) {
	series := waveform.Generate(4)

	actual, forecast := Values(series, Solar)
	require.Len(t, actual, model.HoursPerDay)
	require.Len(t, forecast, model.HoursPerDay)
	for i := range series {
		assert.Equal(t, series[i].SolarValue, actual[i])
		assert.Equal(t, series[i].SolarForecast, forecast[i])
	}

	actual, forecast = Values(series, Wind)
	assert.Equal(t, series[5].WindValue, actual[5])
	assert.Equal(t, series[5].WindForecast, forecast[5])
}
