package loader

import (
	"errors"
	"io/fs"
	"testing"
	"time"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) Open(name string) (fs.File, error) {
	return nil, fs.ErrNotExist
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *MemFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return &memFileInfo{name: path}, nil
	}
	return nil, fs.ErrNotExist
}

type memFileInfo struct {
	name string
}

func (f *memFileInfo) Name() string       { return f.name }
func (f *memFileInfo) Size() int64        { return 0 }
func (f *memFileInfo) Mode() fs.FileMode  { return 0644 }
func (f *memFileInfo) ModTime() time.Time { return time.Now() }
func (f *memFileInfo) IsDir() bool        { return false }
func (f *memFileInfo) Sys() any           { return nil }

func TestForPath(t *testing.T) {
	memfs := NewMemFS()
	tests := []struct {
		path string
		want string
	}{
		{"/a/config.toml", "*loader.TOMLLoader"},
		{"/a/config.TOML", "*loader.TOMLLoader"},
		{"/a/config.yaml", "*loader.YAMLLoader"},
		{"/a/config.yml", "*loader.YAMLLoader"},
		{"/a/config.json", "*loader.JSONLoader"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			l, err := ForPath(memfs, tt.path)
			if err != nil {
				t.Fatalf("ForPath(%q) error = %v", tt.path, err)
			}
			var got string
			switch l.(type) {
			case *TOMLLoader:
				got = "*loader.TOMLLoader"
			case *YAMLLoader:
				got = "*loader.YAMLLoader"
			case *JSONLoader:
				got = "*loader.JSONLoader"
			}
			if got != tt.want {
				t.Errorf("ForPath(%q) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}

func TestForPathUnsupported(t *testing.T) {
	for _, path := range []string{"/config.ini", "/config", "/config.toml.bak"} {
		_, err := ForPath(nil, path)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("ForPath(%q) error = %v, want ErrUnsupportedFormat", path, err)
		}
	}
}

func TestLoadersMissingFile(t *testing.T) {
	memfs := NewMemFS()
	for _, path := range []string{"/none.toml", "/none.yaml", "/none.json"} {
		l, err := ForPath(memfs, path)
		if err != nil {
			t.Fatalf("ForPath(%q) error = %v", path, err)
		}
		config, err := l.Load()
		if err != nil {
			t.Errorf("%s: Load error = %v, want nil", path, err)
		}
		if config != nil {
			t.Errorf("%s: Load = %v, want nil", path, config)
		}
	}
}

func TestLoadersAgreeOnTypes(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/c.toml", `
[input]
tickRate = 30
doubleClickTime = 0.5
[[fields]]
name = "age"
numericOnly = true
`)
	memfs.AddFile("/c.yaml", `
input:
  tickRate: 30
  doubleClickTime: 0.5
fields:
  - name: age
    numericOnly: true
`)
	memfs.AddFile("/c.json", `{
  "input": {"tickRate": 30, "doubleClickTime": 0.5},
  "fields": [{"name": "age", "numericOnly": true}]
}`)

	for _, path := range []string{"/c.toml", "/c.yaml", "/c.json"} {
		t.Run(path, func(t *testing.T) {
			l, err := ForPath(memfs, path)
			if err != nil {
				t.Fatalf("ForPath error = %v", err)
			}
			config, err := l.Load()
			if err != nil {
				t.Fatalf("Load error = %v", err)
			}
			if v, _ := GetPath(config, "input.tickRate"); v != int64(30) {
				t.Errorf("input.tickRate = %v (%T), want int64 30", v, v)
			}
			if v, _ := GetPath(config, "input.doubleClickTime"); v != 0.5 {
				t.Errorf("input.doubleClickTime = %v (%T), want 0.5", v, v)
			}
			fields, ok := config["fields"].([]any)
			if !ok || len(fields) != 1 {
				t.Fatalf("fields = %#v, want one entry", config["fields"])
			}
			field, ok := fields[0].(map[string]any)
			if !ok {
				t.Fatalf("fields[0] = %T, want map", fields[0])
			}
			if field["name"] != "age" || field["numericOnly"] != true {
				t.Errorf("fields[0] = %v", field)
			}
		})
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"input":   map[string]any{"tickRate": int64(60), "doubleClickTime": 0.4},
		"logging": map[string]any{"level": "info"},
		"fields":  []any{"a"},
	}
	src := map[string]any{
		"input":  map[string]any{"tickRate": int64(30)},
		"fields": []any{"b", "c"},
	}

	got := DeepMerge(dst, src)

	if v, _ := GetPath(got, "input.tickRate"); v != int64(30) {
		t.Errorf("input.tickRate = %v, want 30", v)
	}
	if v, _ := GetPath(got, "input.doubleClickTime"); v != 0.4 {
		t.Errorf("input.doubleClickTime = %v, want 0.4", v)
	}
	if v, _ := GetPath(got, "logging.level"); v != "info" {
		t.Errorf("logging.level = %v, want info", v)
	}
	if fields := got["fields"].([]any); len(fields) != 2 {
		t.Errorf("fields = %v, want arrays replaced", fields)
	}
}

func TestDeepMergeNil(t *testing.T) {
	got := DeepMerge(nil, map[string]any{"a": int64(1)})
	if got["a"] != int64(1) {
		t.Errorf("DeepMerge(nil, src)[a] = %v, want 1", got["a"])
	}
	got = DeepMerge(map[string]any{"a": int64(1)}, nil)
	if got["a"] != int64(1) {
		t.Errorf("DeepMerge(dst, nil)[a] = %v, want 1", got["a"])
	}
}

func TestClone(t *testing.T) {
	src := map[string]any{
		"input":  map[string]any{"tickRate": int64(60)},
		"fields": []any{map[string]any{"name": "a"}},
	}
	dst := Clone(src)

	SetPath(dst, "input.tickRate", int64(1))
	dst["fields"].([]any)[0].(map[string]any)["name"] = "b"

	if v, _ := GetPath(src, "input.tickRate"); v != int64(60) {
		t.Errorf("source tickRate = %v after clone mutation, want 60", v)
	}
	if name := src["fields"].([]any)[0].(map[string]any)["name"]; name != "a" {
		t.Errorf("source fields[0].name = %v after clone mutation, want a", name)
	}
	if Clone(nil) != nil {
		t.Error("Clone(nil) should be nil")
	}
}

func TestGetSetPath(t *testing.T) {
	m := make(map[string]any)
	SetPath(m, "a.b.c", "x")
	if v, ok := GetPath(m, "a.b.c"); !ok || v != "x" {
		t.Errorf("GetPath(a.b.c) = %v, %v; want x, true", v, ok)
	}
	if _, ok := GetPath(m, "a.b.c.d"); ok {
		t.Error("GetPath through a scalar should fail")
	}
	if _, ok := GetPath(m, "a.z"); ok {
		t.Error("GetPath of a missing key should fail")
	}
	SetPath(m, "", "ignored")
	if len(m) != 1 {
		t.Errorf("SetPath with empty path changed the map: %v", m)
	}
}
