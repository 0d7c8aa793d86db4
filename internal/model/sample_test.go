package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSample_Field(t *testing.T) {
	s := Sample{
		Hour:           3,
		WindValue:      1,
		WindForecast:   2,
		SolarValue:     3,
		SolarForecast:  4,
		DemandValue:    5,
		DemandForecast: 6,
	}

	tests := []struct {
		name     string
		expected float64
	}{
		{FieldWindValue, 1},
		{FieldWindForecast, 2},
		{FieldSolarValue, 3},
		{FieldSolarForecast, 4},
		{FieldDemandValue, 5},
		{FieldDemandForecast, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := s.Field(tt.name)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, v)
		})
	}

	_, ok := s.Field("gridValue")
	assert.False(t, ok)
}

func TestSeries_Clone(t *testing.T) {
	s := Series{{Hour: 0, WindValue: 600}, {Hour: 1, WindValue: 610}}
	cp := s.Clone()
	cp[0].WindValue = 0

	assert.Equal(t, 600.0, s[0].WindValue)
	assert.Nil(t, Series(nil).Clone())
}

func TestSeries_Hours(t *testing.T) {
	s := Series{{Hour: 0}, {Hour: 1}, {Hour: 2}}
	assert.Equal(t, []float64{0, 1, 2}, s.Hours())
}
