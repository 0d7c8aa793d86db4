package chart

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"ecovolt/internal/model"
)

// ErrUnknownSelection is returned when parsing a name that is not a chart toggle.
var ErrUnknownSelection = errors.New("unknown chart selection")

// Selection names the signal family plotted in the live chart.
type Selection string

const (
	Wind   Selection = "wind"
	Solar  Selection = "solar"
	Demand Selection = "demand"
)

// Default is the selection a freshly mounted view shows.
const Default = Wind

// Selections lists the toggle buttons in display order.
var Selections = []Selection{Wind, Solar, Demand}

// ParseSelection maps a toggle name to a Selection. Matching ignores case and
// surrounding whitespace.
func ParseSelection(name string) (Selection, error) {
	s := Selection(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Selections {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSelection, name)
}

// Label returns the button caption, e.g. "Solar".
func (s Selection) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// View describes how a selection is plotted.
type View struct {
	Selection     Selection  `json:"selection"`
	Label         string     `json:"label"`
	ValueField    string     `json:"value_field"`
	ForecastField string     `json:"forecast_field"`
	Domain        [2]float64 `json:"domain"`
	Color         string     `json:"color"`
}

// ViewFor returns the plotted fields, Y domain and colour for sel.
func ViewFor(sel Selection) View {
	v := View{
		Selection:     sel,
		Label:         sel.Label(),
		ValueField:    string(sel) + "Value",
		ForecastField: string(sel) + "Forecast",
	}

	switch sel {
	case Demand:
		v.Domain = [2]float64{10000, 15500}
	case Wind:
		v.Domain = [2]float64{0, 1000}
	default:
		v.Domain = [2]float64{0, 500}
	}

	switch sel {
	case Wind:
		v.Color = "#60a5fa"
	case Solar:
		v.Color = "#fbbf24"
	default:
		v.Color = "#ef4444"
	}
	return v
}

// Values projects the actual and forecast lines of sel out of a series.
func Values(series model.Series, sel Selection) (actual, forecast []float64) {
	v := ViewFor(sel)
	actual = make([]float64, len(series))
	forecast = make([]float64, len(series))
	for i, s := range series {
		actual[i], _ = s.Field(v.ValueField)
		forecast[i], _ = s.Field(v.ForecastField)
	}
	return actual, forecast
}

// Selector holds the current selection of one view.
type Selector struct {
	mu      sync.RWMutex
	current Selection
}

func NewSelector() *Selector {
	return &Selector{current: Default}
}

// Current returns the selected signal.
func (s *Selector) Current() Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set overwrites the selection and returns the new view.
func (s *Selector) Set(sel Selection) View {
	s.mu.Lock()
	s.current = sel
	s.mu.Unlock()
	return ViewFor(sel)
}

// View returns the view of the current selection.
func (s *Selector) View() View {
	return ViewFor(s.Current())
}
