package simulator

import (
	"sync"
	"time"

	"ecovolt/internal/metrics"
	"ecovolt/internal/model"
	"ecovolt/internal/waveform"
)

// DefaultTickInterval is how often a running engine regenerates its series.
const DefaultTickInterval = 100 * time.Millisecond

// State represents the current tick driver state.
type State struct {
	Offset   int           `json:"offset"`
	Running  bool          `json:"running"`
	Interval time.Duration `json:"interval"`
}

// Update is emitted after every tick.
type Update struct {
	Offset int
	Series model.Series
}

// Callback receives tick events.
type Callback interface {
	OnSeries(update Update)
}

// Generator produces the series for a given offset.
type Generator func(offset int) model.Series

// Option configures an Engine.
type Option func(*Engine)

// WithInterval overrides the tick interval. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.interval = d
		}
	}
}

// WithGenerator overrides the waveform generator.
func WithGenerator(g Generator) Option {
	return func(e *Engine) {
		if g != nil {
			e.generate = g
		}
	}
}

// Engine owns the offset counter and the current series of one view, and
// replaces the series on every tick while running.
type Engine struct {
	mu       sync.Mutex
	callback Callback
	generate Generator
	interval time.Duration

	running bool
	offset  int
	series  model.Series

	stopCh chan struct{}
	doneCh chan struct{}
}

func New(cb Callback, opts ...Option) *Engine {
	e := &Engine{
		callback: cb,
		generate: waveform.Generate,
		interval: DefaultTickInterval,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.series = e.generate(0)
	return e
}

// State returns the current driver state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return State{
		Offset:   e.offset,
		Running:  e.running,
		Interval: e.interval,
	}
}

// Series returns a copy of the current series.
func (e *Engine) Series() model.Series {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.series.Clone()
}

// Snapshot returns the current offset and a copy of the series together.
func (e *Engine) Snapshot() Update {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Update{Offset: e.offset, Series: e.series.Clone()}
}

// Start begins the tick loop.
func (e *Engine) Start() {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return
	}
	e.running = true
	e.stopCh = make(chan struct{})
	e.doneCh = make(chan struct{})
	stopCh, doneCh := e.stopCh, e.doneCh
	e.mu.Unlock()

	metrics.RunningEngines.Inc()
	go e.loop(stopCh, doneCh)
}

// Stop cancels the tick loop and waits for it to exit. No tick runs after
// Stop returns.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.running = false
	close(e.stopCh)
	doneCh := e.doneCh
	e.mu.Unlock()

	<-doneCh
	metrics.RunningEngines.Dec()
}

// Step advances one tick synchronously and emits the update.
// Useful for deterministic testing. Does not require Start().
func (e *Engine) Step() {
	e.emit(e.advance())
}

func (e *Engine) loop(stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			// Stop may have raced the ticker; it wins.
			select {
			case <-stopCh:
				return
			default:
			}
			e.emit(e.advance())
		}
	}
}

// advance applies one tick under the lock.
func (e *Engine) advance() Update {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.offset++
	e.series = e.generate(e.offset)
	metrics.Ticks.Inc()
	return Update{Offset: e.offset, Series: e.series.Clone()}
}

func (e *Engine) emit(u Update) {
	if e.callback != nil {
		e.callback.OnSeries(u)
	}
}
