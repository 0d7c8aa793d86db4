// Package metrics holds the Prometheus instruments exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Ticks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ecovolt_ticks_total",
		Help: "Series regenerations across all views",
	})
	RunningEngines = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ecovolt_running_engines",
		Help: "Tick drivers currently running",
	})
	ConnectedViews = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ecovolt_connected_views",
		Help: "Open live demo WebSocket connections",
	})
	Selections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ecovolt_chart_selections_total",
		Help: "Chart toggle changes by selection",
	}, []string{"selection"})
	DroppedUpdates = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ecovolt_dropped_updates_total",
		Help: "Series updates dropped because a view's send buffer was full",
	})
)
