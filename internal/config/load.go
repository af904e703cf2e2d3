package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/dshills/fieldkit/internal/config/loader"
)

// Source identifies where a configuration layer came from.
type Source uint8

const (
	// SourceDefaults is the built-in configuration.
	SourceDefaults Source = iota
	// SourceFile is the configuration file.
	SourceFile
	// SourceEnv is FIELDKIT_* environment variables.
	SourceEnv
	// SourceFlags is command-line overrides.
	SourceFlags
)

// String returns a human-readable name for the source.
func (s Source) String() string {
	switch s {
	case SourceDefaults:
		return "defaults"
	case SourceFile:
		return "file"
	case SourceEnv:
		return "environment"
	case SourceFlags:
		return "flags"
	default:
		return "unknown"
	}
}

// Layer is one configuration source. Later layers override earlier ones.
type Layer struct {
	Source Source
	Path   string
	Data   map[string]any
}

// Options selects the sources Load reads.
type Options struct {
	// Path is the config file. Empty means no file; a named file that
	// doesn't exist is an error.
	Path string

	// FS reads the config file. Nil means the OS file system.
	FS loader.FileSystem

	// Env loads the environment layer. Nil skips it.
	Env loader.Loader

	// Overrides is the highest-priority layer, keyed by nested maps.
	Overrides map[string]any
}

// Layers reads every configured source in priority order, lowest first.
// Sources that yield nothing are omitted.
func Layers(opts Options) ([]Layer, error) {
	layers := []Layer{{Source: SourceDefaults, Data: Defaults()}}

	if opts.Path != "" {
		fsys := opts.FS
		if fsys == nil {
			fsys = loader.DefaultFS()
		}
		if _, err := fsys.Stat(opts.Path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrFileNotFound, opts.Path)
			}
			return nil, fmt.Errorf("stat config file: %w", err)
		}
		l, err := loader.ForPath(fsys, opts.Path)
		if err != nil {
			return nil, err
		}
		data, err := l.Load()
		if err != nil {
			return nil, err
		}
		if data != nil {
			layers = append(layers, Layer{Source: SourceFile, Path: opts.Path, Data: data})
		}
	}

	if opts.Env != nil {
		data, err := opts.Env.Load()
		if err != nil {
			return nil, fmt.Errorf("loading environment: %w", err)
		}
		if len(data) > 0 {
			layers = append(layers, Layer{Source: SourceEnv, Data: data})
		}
	}

	if len(opts.Overrides) > 0 {
		layers = append(layers, Layer{Source: SourceFlags, Data: opts.Overrides})
	}

	return layers, nil
}

// Merge combines layers in order into one map.
func Merge(layers []Layer) map[string]any {
	merged := make(map[string]any)
	for _, l := range layers {
		merged = loader.DeepMerge(merged, loader.Clone(l.Data))
	}
	return merged
}

// Load reads, merges, decodes and validates the configuration.
func Load(opts Options) (*Settings, error) {
	layers, err := Layers(opts)
	if err != nil {
		return nil, err
	}
	s, err := Decode(Merge(layers))
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
