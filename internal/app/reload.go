package app

import (
	"path/filepath"

	"github.com/dshills/fieldkit/internal/config"
	"github.com/dshills/fieldkit/internal/config/watcher"
)

func (a *App) startWatcher(path string) error {
	w, err := watcher.New(watcher.WithLogger(a.log.WithComponent("watcher")))
	if err != nil {
		return err
	}
	if err := w.Watch(path); err != nil {
		_ = w.Close()
		return err
	}
	configPath := absPath(path)
	w.OnChange(func(e watcher.Event) {
		a.log.Debug("%s: %s", e.Op, e.Path)
		if e.Path != configPath {
			a.reloadFilters.Store(true)
		}
		a.requestReload()
	})
	a.watcher = w
	a.watchScripts(a.settings)
	w.Start()
	return nil
}

// watchScripts makes the watcher follow the filter scripts of s, dropping
// scripts that are no longer used. The config file itself stays watched.
func (a *App) watchScripts(s *config.Settings) {
	if a.watcher == nil {
		return
	}
	keep := map[string]bool{absPath(a.opts.Config.Path): true}
	for _, fs := range s.Fields {
		if fs.Filter == "" {
			continue
		}
		path := absPath(a.resolvePath(fs.Filter))
		keep[path] = true
		if err := a.watcher.Watch(path); err != nil {
			a.log.Warn("cannot watch filter %s: %v", path, err)
		}
	}
	for _, path := range a.watcher.WatchedFiles() {
		if keep[path] {
			continue
		}
		if err := a.watcher.Unwatch(path); err != nil {
			a.log.Warn("cannot unwatch %s: %v", path, err)
		}
	}
}

// requestReload asks the loop to reload at the next opportunity. Requests
// made while one is pending are merged.
func (a *App) requestReload() {
	select {
	case a.reloads <- struct{}{}:
	default:
	}
}

// Reload re-reads the configuration and applies it. A configuration that
// fails to load or validate is reported and the current settings stay.
// When a filter script changed since the last reload the form is rebuilt
// so the scripts are loaded again.
func (a *App) Reload() error {
	rebuild := a.reloadFilters.Swap(false)
	s, err := config.Load(a.opts.Config)
	if err == nil {
		err = a.applySettings(s, rebuild)
	}
	a.metrics.RecordReload(err)
	if err != nil {
		if rebuild {
			a.reloadFilters.Store(true)
		}
		a.log.Error("config reload failed: %v", err)
		a.status = "config error: " + err.Error()
		return err
	}
	a.log.Info("config reloaded from %s", a.opts.Config.Path)
	a.status = "config reloaded"
	return nil
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
