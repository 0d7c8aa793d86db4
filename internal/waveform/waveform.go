// Package waveform builds the synthetic wind, solar and demand curves shown in
// the live demo chart.
package waveform

import (
	"math"
	"math/rand/v2"

	"ecovolt/internal/model"
)

const (
	windBase         = 600.0
	windAmplitude    = 100.0
	windPhaseDivisor = 8.0
	windRampPerHour  = 10.0

	// WindForecastBias is the constant under-forecast of the wind curve.
	WindForecastBias = 10.0

	solarPeak         = 300.0
	solarForecastPeak = 290.0
	sunrise           = 6
	sunset            = 18

	// DemandJitter bounds the random demand forecast error in either direction.
	DemandJitter = 25.0
)

// Source yields uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Generate returns a fresh 24-sample series phase-shifted by offset. The demand
// forecast jitter comes from the global random source.
func Generate(offset int) model.Series {
	return GenerateWith(offset, globalSource{})
}

// GenerateWith is Generate with an explicit jitter source.
func GenerateWith(offset int, jitter Source) model.Series {
	series := make(model.Series, model.HoursPerDay)
	for i := range series {
		demand := DemandValue(i)
		windValue := wind(i, offset)
		series[i] = model.Sample{
			Hour:           i,
			WindValue:      windValue,
			WindForecast:   windValue - WindForecastBias,
			SolarValue:     solar(solarPeak, i),
			SolarForecast:  solar(solarForecastPeak, i),
			DemandValue:    demand,
			DemandForecast: demand + jitter.Float64()*2*DemandJitter - DemandJitter,
		}
	}
	return series
}

func wind(hour, offset int) float64 {
	return windBase + math.Sin(float64(hour+offset)/windPhaseDivisor)*windAmplitude + float64(hour)*windRampPerHour
}

func solar(peak float64, hour int) float64 {
	if hour < sunrise || hour > sunset {
		return 0
	}
	return math.Sin(float64(hour-sunrise)*math.Pi/12) * peak
}

// DemandValue is the demand curve at the given hour. Segments are not
// continuous at their boundaries.
func DemandValue(hour int) float64 {
	h := float64(hour)
	switch {
	case hour <= 3: // night trough
		return 15000 - h*700
	case hour <= 6: // morning ramp down
		return 13000 - (h-3)*600
	case hour <= 9:
		return 11000 + math.Sin(h)*100
	case hour <= 12:
		return 11000 + (h-9)*400
	case hour <= 15: // afternoon decline
		return 12200 - (h-12)*200
	case hour <= 18:
		return 11500 + math.Sin(h)*200
	case hour <= 21: // evening ramp
		return 11500 + (h-18)*1000
	default:
		return 14500 + math.Sin(h)*100
	}
}
