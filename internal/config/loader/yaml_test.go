package loader

import (
	"errors"
	"testing"
)

func TestYAMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.yaml", `
logging:
  level: warn
  file: /tmp/fieldkit.log
input:
  repeatInterval: 0.05
`)

	config, err := NewYAMLLoaderWithFS(memfs, "/config.yaml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if v, _ := GetPath(config, "logging.file"); v != "/tmp/fieldkit.log" {
		t.Errorf("logging.file = %v, want /tmp/fieldkit.log", v)
	}
	if v, _ := GetPath(config, "input.repeatInterval"); v != 0.05 {
		t.Errorf("input.repeatInterval = %v, want 0.05", v)
	}
}

func TestYAMLLoader_Empty(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/empty.yaml", "")

	config, err := NewYAMLLoaderWithFS(memfs, "/empty.yaml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(config) != 0 {
		t.Errorf("config = %v, want empty", config)
	}
}

func TestYAMLLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "input: [1, 2\n"},
		{"scalar root", "42\n"},
		{"sequence root", "- a\n- b\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			memfs := NewMemFS()
			memfs.AddFile("/bad.yaml", tt.content)

			_, err := NewYAMLLoaderWithFS(memfs, "/bad.yaml").Load()
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error = %v, want *ParseError", err)
			}
			if perr.Path != "/bad.yaml" {
				t.Errorf("Path = %q, want /bad.yaml", perr.Path)
			}
		})
	}
}
