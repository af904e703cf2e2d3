package app

import (
	"context"
	"time"

	"github.com/dshills/fieldkit/internal/render/backend"
)

// Run drives the tick loop until the form requests quit (ErrQuit), ctx is
// cancelled (ctx.Err()) or Shutdown is called (nil).
func (a *App) Run(ctx context.Context) error {
	if a.backend == nil {
		return ErrNoBackend
	}
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	go a.pollEvents(a.backend)

	interval := a.settings.Input.TickInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	a.log.Info("running at %d ticks per second", a.settings.Input.TickRate)
	a.draw()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-a.done:
			return nil

		case <-a.reloads:
			_ = a.Reload()
			if next := a.settings.Input.TickInterval(); next != interval {
				interval = next
				ticker.Reset(interval)
			}
			a.draw()

		case now := <-ticker.C:
			elapsed := now.Sub(last)
			last = now
			if a.Step(elapsed) {
				a.draw()
			}
			if a.form.QuitRequested() {
				return ErrQuit
			}
		}
	}
}

// Step runs one tick: queued terminal events are fed to the sampler, one
// snapshot is taken and the form processes it. It reports whether anything
// may have changed on screen.
func (a *App) Step(elapsed time.Duration) bool {
	start := time.Now()

	changed := a.drainEvents()
	if a.sampler.Pending() {
		changed = true
	}
	a.form.Tick(a.sampler.Sample(), elapsed)

	a.metrics.RecordTick(time.Since(start))
	return changed
}

// HandleEvent processes one terminal event. It reports whether the event
// affects the screen.
func (a *App) HandleEvent(ev backend.Event) bool {
	a.metrics.RecordEvent()
	switch ev.Type {
	case backend.EventKey, backend.EventMouse:
		if !a.sampler.Feed(ev) {
			a.metrics.RecordInputDropped()
			return false
		}
		return true
	case backend.EventResize:
		a.log.Debug("resize %dx%d", ev.Width, ev.Height)
		return true
	case backend.EventFocus:
		a.log.Debug("terminal focused=%t", ev.Focused)
		return false
	default:
		return false
	}
}

func (a *App) drainEvents() bool {
	changed := false
	for {
		select {
		case ev := <-a.events:
			if a.HandleEvent(ev) {
				changed = true
			}
		default:
			return changed
		}
	}
}

// pollEvents forwards backend events to the loop until Shutdown.
func (a *App) pollEvents(b backend.Backend) {
	for {
		ev := b.PollEvent()
		select {
		case <-a.done:
			return
		default:
		}
		if ev.Type == backend.EventInterrupt {
			continue
		}
		select {
		case a.events <- ev:
		case <-a.done:
			return
		}
	}
}

func (a *App) draw() {
	if a.renderer == nil {
		return
	}
	start := time.Now()
	a.renderer.Draw(a.form, a.status)
	a.metrics.RecordRender(time.Since(start))
}
