package model

// HoursPerDay is the fixed length of every Series.
const HoursPerDay = 24

// Sample is one hour of the synthetic demo dataset.
type Sample struct {
	Hour           int     `json:"time"`
	WindValue      float64 `json:"windValue"`
	WindForecast   float64 `json:"windForecast"`
	SolarValue     float64 `json:"solarValue"`
	SolarForecast  float64 `json:"solarForecast"`
	DemandValue    float64 `json:"demandValue"`
	DemandForecast float64 `json:"demandForecast"`
}

// Field names as they appear on the wire and in chart views.
const (
	FieldWindValue      = "windValue"
	FieldWindForecast   = "windForecast"
	FieldSolarValue     = "solarValue"
	FieldSolarForecast  = "solarForecast"
	FieldDemandValue    = "demandValue"
	FieldDemandForecast = "demandForecast"
)

// Field returns the named value of the sample. ok is false for unknown names.
func (s Sample) Field(name string) (v float64, ok bool) {
	switch name {
	case FieldWindValue:
		return s.WindValue, true
	case FieldWindForecast:
		return s.WindForecast, true
	case FieldSolarValue:
		return s.SolarValue, true
	case FieldSolarForecast:
		return s.SolarForecast, true
	case FieldDemandValue:
		return s.DemandValue, true
	case FieldDemandForecast:
		return s.DemandForecast, true
	}
	return 0, false
}

// Series is a full day of samples, indexed by hour.
type Series []Sample

// Clone returns an independent copy of the series.
func (s Series) Clone() Series {
	if s == nil {
		return nil
	}
	cp := make(Series, len(s))
	copy(cp, s)
	return cp
}

// Hours returns the hour of every sample as float64, for plotting.
func (s Series) Hours() []float64 {
	xs := make([]float64, len(s))
	for i, sample := range s {
		xs[i] = float64(sample.Hour)
	}
	return xs
}
