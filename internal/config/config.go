// Package config holds fieldkit's typed settings.
//
// Settings are assembled from layers (built-in defaults, a TOML, YAML or
// JSON file, FIELDKIT_* environment variables and command-line overrides),
// merged as generic maps by the loader package and decoded into Settings
// through go-toml with unknown keys rejected.
package config

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/fieldkit/internal/config/loader"
	"github.com/dshills/fieldkit/internal/input/key"
	"github.com/dshills/fieldkit/internal/logging"
	"github.com/dshills/fieldkit/internal/textedit/buffer"
	"github.com/dshills/fieldkit/internal/textedit/group"
)

// Settings is the complete fieldkit configuration.
type Settings struct {
	Input   InputSettings   `toml:"input"`
	Logging LoggingSettings `toml:"logging"`
	Fields  []FieldSettings `toml:"fields"`
}

// InputSettings configures input normalization. Times are in seconds.
type InputSettings struct {
	InitialRepeatDelay float64 `toml:"initialRepeatDelay" comment:"Seconds a key is held before it starts repeating."`
	RepeatInterval     float64 `toml:"repeatInterval" comment:"Seconds between later repeats; 0 reuses initialRepeatDelay."`
	DoubleClickTime    float64 `toml:"doubleClickTime" comment:"Maximum seconds between clicks of a double or triple click."`
	TickRate           int     `toml:"tickRate" comment:"Input ticks per second."`
}

// KeyConfig returns the key repeat timing.
func (s InputSettings) KeyConfig() key.Config {
	return key.Config{
		InitialDelay:   seconds(s.InitialRepeatDelay),
		RepeatInterval: seconds(s.RepeatInterval),
	}
}

// DoubleClick returns the multi-click window.
func (s InputSettings) DoubleClick() time.Duration {
	return seconds(s.DoubleClickTime)
}

// TickInterval returns the time between input ticks.
func (s InputSettings) TickInterval() time.Duration {
	if s.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(s.TickRate)
}

// LoggingSettings configures the log output.
type LoggingSettings struct {
	Level string `toml:"level" comment:"debug, info, warn or error."`
	File  string `toml:"file" comment:"Log file; empty disables logging in the terminal host."`
}

// LogLevel returns the parsed level, falling back to info.
func (s LoggingSettings) LogLevel() logging.Level {
	if level, ok := logging.ParseLevel(s.Level); ok {
		return level
	}
	return logging.LevelInfo
}

// FieldSettings describes one text field of the form.
type FieldSettings struct {
	Name            string `toml:"name"`
	Label           string `toml:"label,omitempty"`
	Text            string `toml:"text,omitempty"`
	Width           int    `toml:"width"`
	MaxLength       int    `toml:"maxLength,omitempty"`
	NumericOnly     bool   `toml:"numericOnly,omitempty"`
	MaxNumericValue int    `toml:"maxNumericValue,omitempty"`
	ReadOnly        bool   `toml:"readOnly,omitempty"`
	WordGrouping    string `toml:"wordGrouping,omitempty"`
	Filter          string `toml:"filter,omitempty"`
}

// DisplayLabel returns the label, defaulting to the name.
func (f FieldSettings) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// Constraints returns the buffer constraints of the field.
func (f FieldSettings) Constraints() buffer.Constraints {
	return buffer.Constraints{
		MaxLength:       f.MaxLength,
		NumericOnly:     f.NumericOnly,
		MaxNumericValue: f.MaxNumericValue,
		ReadOnly:        f.ReadOnly,
	}
}

// Classifier returns the word-grouping classifier. Unknown modes are
// rejected by Validate; here they fall back to whitespace grouping.
func (f FieldSettings) Classifier() group.Classifier {
	c, err := group.ClassifierFor(group.Mode(f.WordGrouping))
	if err != nil {
		return group.ByWhitespace
	}
	return c
}

// Field returns the settings of the named field.
func (s *Settings) Field(name string) (FieldSettings, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSettings{}, false
}

// Defaults returns the built-in configuration layer.
func Defaults() map[string]any {
	return map[string]any{
		"input": map[string]any{
			"initialRepeatDelay": 0.3,
			"repeatInterval":     0.0,
			"doubleClickTime":    0.4,
			"tickRate":           int64(60),
		},
		"logging": map[string]any{
			"level": "info",
			"file":  "",
		},
		"fields": []any{
			map[string]any{
				"name":      "name",
				"label":     "Name",
				"width":     int64(24),
				"maxLength": int64(64),
			},
			map[string]any{
				"name":            "age",
				"label":           "Age",
				"width":           int64(5),
				"maxLength":       int64(3),
				"numericOnly":     true,
				"maxNumericValue": int64(150),
			},
			map[string]any{
				"name":            "port",
				"label":           "Port",
				"text":            "8080",
				"width":           int64(7),
				"maxLength":       int64(5),
				"numericOnly":     true,
				"maxNumericValue": int64(65535),
			},
			map[string]any{
				"name":         "path",
				"label":        "Path",
				"text":         "/usr/local/share/fieldkit",
				"width":        int64(24),
				"wordGrouping": string(group.ModePunctuation),
			},
			map[string]any{
				"name":     "id",
				"label":    "Id",
				"text":     "fieldkit-1",
				"width":    int64(12),
				"readOnly": true,
			},
		},
	}
}

// DefaultSettings returns the decoded built-in configuration.
func DefaultSettings() *Settings {
	s, err := Decode(Defaults())
	if err != nil {
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	return s
}

// floatPaths lists the settings decoded as float64; integral values read
// from a file or the environment are widened before decoding.
var floatPaths = []string{
	"input.initialRepeatDelay",
	"input.repeatInterval",
	"input.doubleClickTime",
}

// Decode converts a merged configuration map into Settings. Unknown keys
// are rejected. The input map is not modified.
func Decode(data map[string]any) (*Settings, error) {
	prepared, _ := dropNil(loader.Clone(data)).(map[string]any)
	if prepared == nil {
		prepared = map[string]any{}
	}
	for _, path := range floatPaths {
		if v, ok := loader.GetPath(prepared, path); ok {
			if i, ok := v.(int64); ok {
				loader.SetPath(prepared, path, float64(i))
			}
		}
	}

	raw, err := toml.Marshal(prepared)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	var s Settings
	dec := toml.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return &s, nil
}

// Encode renders settings as a commented TOML document.
func Encode(s *Settings) ([]byte, error) {
	return toml.Marshal(s)
}

// dropNil removes null values so they read as unset.
func dropNil(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			if val == nil {
				delete(t, k)
				continue
			}
			t[k] = dropNil(val)
		}
		return t
	case []any:
		out := t[:0]
		for _, val := range t {
			if val != nil {
				out = append(out, dropNil(val))
			}
		}
		return out
	default:
		return v
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
