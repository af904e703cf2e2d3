package app

import (
	"sync/atomic"
	"time"
)

// Metrics tracks run loop counters. Counters are updated by the loop
// goroutine and may be read from any goroutine.
type Metrics struct {
	// Tick timing
	tickCount   atomic.Uint64
	tickTotalNs atomic.Int64
	tickMaxNs   atomic.Int64

	// Terminal events
	eventCount   atomic.Uint64
	inputDropped atomic.Uint64

	// Render timing
	renderCount   atomic.Uint64
	renderTotalNs atomic.Int64

	reloads      atomic.Uint64
	reloadErrors atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordTick records the processing time of one tick.
func (m *Metrics) RecordTick(d time.Duration) {
	ns := d.Nanoseconds()
	m.tickCount.Add(1)
	m.tickTotalNs.Add(ns)
	for {
		old := m.tickMaxNs.Load()
		if ns <= old || m.tickMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordEvent records a terminal event read by the loop.
func (m *Metrics) RecordEvent() {
	m.eventCount.Add(1)
}

// RecordInputDropped records a terminal event the sampler could not use.
func (m *Metrics) RecordInputDropped() {
	m.inputDropped.Add(1)
}

// RecordRender records render timing.
func (m *Metrics) RecordRender(d time.Duration) {
	m.renderCount.Add(1)
	m.renderTotalNs.Add(d.Nanoseconds())
}

// RecordReload records a configuration reload attempt.
func (m *Metrics) RecordReload(err error) {
	if err != nil {
		m.reloadErrors.Add(1)
		return
	}
	m.reloads.Add(1)
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	ticks := m.tickCount.Load()
	renders := m.renderCount.Load()

	var avgTick, avgRender time.Duration
	if ticks > 0 {
		avgTick = time.Duration(m.tickTotalNs.Load() / int64(ticks))
	}
	if renders > 0 {
		avgRender = time.Duration(m.renderTotalNs.Load() / int64(renders))
	}

	return MetricsSnapshot{
		Uptime:       time.Since(m.startTime),
		Ticks:        ticks,
		AvgTick:      avgTick,
		MaxTick:      time.Duration(m.tickMaxNs.Load()),
		Events:       m.eventCount.Load(),
		InputDropped: m.inputDropped.Load(),
		Renders:      renders,
		AvgRender:    avgRender,
		Reloads:      m.reloads.Load(),
		ReloadErrors: m.reloadErrors.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime       time.Duration
	Ticks        uint64
	AvgTick      time.Duration
	MaxTick      time.Duration
	Events       uint64
	InputDropped uint64
	Renders      uint64
	AvgRender    time.Duration
	Reloads      uint64
	ReloadErrors uint64
}

// Fields returns the snapshot as logger fields.
func (s MetricsSnapshot) Fields() map[string]any {
	return map[string]any{
		"uptime":        s.Uptime.Round(time.Millisecond).String(),
		"ticks":         s.Ticks,
		"avg_tick":      s.AvgTick.String(),
		"max_tick":      s.MaxTick.String(),
		"events":        s.Events,
		"input_dropped": s.InputDropped,
		"renders":       s.Renders,
		"avg_render":    s.AvgRender.String(),
		"reloads":       s.Reloads,
		"reload_errors": s.ReloadErrors,
	}
}
