// Package app runs the fieldkit terminal host. It wires the terminal
// backend, the input sampler, a form built from settings and the renderer
// into a fixed-rate tick loop, and applies configuration reloads between
// ticks.
package app

import (
	"fmt"
	"path/filepath"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/dshills/fieldkit/internal/config"
	"github.com/dshills/fieldkit/internal/config/watcher"
	"github.com/dshills/fieldkit/internal/input/sample"
	"github.com/dshills/fieldkit/internal/logging"
	"github.com/dshills/fieldkit/internal/plugin/filter"
	"github.com/dshills/fieldkit/internal/render"
	"github.com/dshills/fieldkit/internal/render/backend"
	"github.com/dshills/fieldkit/internal/textedit/buffer"
	"github.com/dshills/fieldkit/internal/textedit/controller"
	"github.com/dshills/fieldkit/internal/widget"
)

// helpText is the default status line.
const helpText = "Tab/Shift+Tab: move  Enter: commit  Esc: quit"

// eventQueueSize bounds terminal events waiting for the next tick.
const eventQueueSize = 256

// Options configures the application.
type Options struct {
	// Config selects the configuration sources. It is re-read on reload.
	Config config.Options

	// Settings are the initial settings. Nil loads them from Config.
	Settings *config.Settings

	// Logger receives application logs. Nil discards them.
	Logger *logging.Logger

	// Watch reloads the configuration when Config.Path or a field filter
	// script changes.
	Watch bool
}

// App is the terminal host. All methods except Shutdown must be called
// from the goroutine running Run.
type App struct {
	opts Options
	log  *logging.Logger

	settings *config.Settings
	form     *widget.Form
	filters  []*filter.Filter

	sampler  *sample.TerminalSampler
	backend  backend.Backend
	renderer *render.Renderer
	metrics  *Metrics

	watcher       *watcher.Watcher
	reloadFilters atomic.Bool
	reloads       chan struct{}
	events        chan backend.Event

	status string

	running      atomic.Bool
	done         chan struct{}
	shutdownOnce sync.Once
}

// New loads settings if needed and builds the form.
func New(opts Options) (*App, error) {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	settings := opts.Settings
	if settings == nil {
		s, err := config.Load(opts.Config)
		if err != nil {
			return nil, NewComponentError("config", "load", err)
		}
		settings = s
	}
	log.SetLevel(settings.Logging.LogLevel())

	a := &App{
		opts:     opts,
		log:      log.WithComponent("app"),
		settings: settings,
		sampler:  sample.NewTerminalSampler(log.WithComponent("sampler")),
		metrics:  NewMetrics(),
		reloads:  make(chan struct{}, 1),
		events:   make(chan backend.Event, eventQueueSize),
		status:   helpText,
		done:     make(chan struct{}),
	}

	form, filters, err := a.buildForm(settings, nil)
	if err != nil {
		return nil, err
	}
	a.setForm(form, filters)

	if opts.Watch && opts.Config.Path != "" {
		if err := a.startWatcher(opts.Config.Path); err != nil {
			a.closeFilters(a.filters)
			return nil, NewComponentError("watcher", "watch "+opts.Config.Path, err)
		}
	}

	return a, nil
}

// buildForm creates a form for settings. Fields that exist in prev with
// the same name and constraints keep their current text.
func (a *App) buildForm(s *config.Settings, prev *widget.Form) (*widget.Form, []*filter.Filter, error) {
	form := widget.NewForm(
		widget.WithKeyConfig(s.Input.KeyConfig()),
		widget.WithDoubleClickTime(s.Input.DoubleClick()),
		widget.WithOrigin(1, 1),
		widget.WithFormLogger(a.log.WithComponent("form")),
	)

	var filters []*filter.Filter
	for _, fs := range s.Fields {
		constraints := fs.Constraints()
		text := fs.Text
		if prev != nil {
			if old, ok := prev.Field(fs.Name); ok && !fs.ReadOnly && old.Buffer().Constraints() == constraints {
				text = old.Text()
			}
		}
		buf := newBuffer(constraints, text)

		copts := []controller.Option{
			controller.WithClassifier(fs.Classifier()),
			controller.WithLogger(a.log.WithComponent("field").WithField("field", fs.Name)),
		}
		if fs.Filter != "" {
			path := a.resolvePath(fs.Filter)
			f, err := filter.LoadFile(path, filter.WithLogger(a.log.WithComponent("filter")))
			if err != nil {
				a.closeFilters(filters)
				return nil, nil, NewComponentError("filter", fmt.Sprintf("load %s for field %s", path, fs.Name), err)
			}
			filters = append(filters, f)
			copts = append(copts, controller.WithFilter(f))
		}

		form.AddField(fs.DisplayLabel(), widget.NewTextField(fs.Name, fs.Width, buf,
			widget.WithControllerOptions(copts...)))
	}

	if prev != nil {
		if focused := prev.Focused(); focused != nil {
			for i, fld := range form.Fields() {
				if fld.Name() == focused.Name() {
					form.FocusIndex(i)
					break
				}
			}
		}
	}

	return form, filters, nil
}

// resolvePath makes filter paths relative to the config file's directory.
func (a *App) resolvePath(path string) string {
	if filepath.IsAbs(path) || a.opts.Config.Path == "" {
		return path
	}
	return filepath.Join(filepath.Dir(a.opts.Config.Path), path)
}

func (a *App) setForm(form *widget.Form, filters []*filter.Filter) {
	old := a.filters
	a.form = form
	a.filters = filters
	form.OnSignal(a.onSignal)
	a.closeFilters(old)
}

func (a *App) closeFilters(filters []*filter.Filter) {
	for _, f := range filters {
		f.Close()
	}
}

func (a *App) onSignal(field *widget.TextField, sig controller.Signal) {
	if sig == controller.Enter {
		a.status = fmt.Sprintf("%s = %q", field.Name(), field.Text())
		a.log.Info("%s entered %q", field.Name(), field.Text())
	}
}

// ApplySettings switches to new settings. Input timing and the log level
// change in place; the form is rebuilt only when the fields changed. On
// error the previous form stays active.
func (a *App) ApplySettings(s *config.Settings) error {
	return a.applySettings(s, false)
}

func (a *App) applySettings(s *config.Settings, rebuild bool) error {
	a.log.SetLevel(s.Logging.LogLevel())

	if rebuild || !reflect.DeepEqual(a.settings.Fields, s.Fields) {
		form, filters, err := a.buildForm(s, a.form)
		if err != nil {
			return err
		}
		a.setForm(form, filters)
		a.watchScripts(s)
	} else {
		a.form.SetKeyConfig(s.Input.KeyConfig())
		a.form.SetDoubleClickTime(s.Input.DoubleClick())
	}

	a.settings = s
	return nil
}

// Form returns the active form.
func (a *App) Form() *widget.Form {
	return a.form
}

// Settings returns the active settings.
func (a *App) Settings() *config.Settings {
	return a.settings
}

// Metrics returns the run loop metrics.
func (a *App) Metrics() *Metrics {
	return a.metrics
}

// Status returns the status line text.
func (a *App) Status() string {
	return a.status
}

// SetBackend initializes b and draws onto it.
func (a *App) SetBackend(b backend.Backend) error {
	if err := b.Init(); err != nil {
		return NewComponentError("backend", "init", err)
	}
	a.backend = b
	a.renderer = render.New(b, render.DefaultTheme())
	return nil
}

// Shutdown stops a running loop and the config watcher. It is safe to call
// more than once and from any goroutine.
func (a *App) Shutdown() {
	a.shutdownOnce.Do(func() {
		close(a.done)
		if a.watcher != nil {
			_ = a.watcher.Close()
		}
		if a.backend != nil {
			a.backend.PostEvent(backend.Event{Type: backend.EventInterrupt})
		}
	})
}

// Close shuts the application down and releases the backend and filters.
// Call it after Run has returned.
func (a *App) Close() {
	a.Shutdown()
	if a.backend != nil {
		a.backend.Shutdown()
		a.backend = nil
	}
	a.closeFilters(a.filters)
	a.filters = nil
	a.log.WithFields(a.metrics.Snapshot().Fields()).Info("closed")
}

func newBuffer(c buffer.Constraints, text string) *buffer.Buffer {
	return buffer.New(buffer.WithConstraints(c), buffer.WithText(text))
}
