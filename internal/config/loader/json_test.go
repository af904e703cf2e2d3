package loader

import (
	"errors"
	"strings"
	"testing"
)

func TestJSONLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.json", `{
  "logging": {"level": "error"},
  "input": {"tickRate": 1e2, "initialRepeatDelay": 0.3},
  "fields": [{"name": "port", "maxNumericValue": 65535, "filter": null}]
}`)

	config, err := NewJSONLoaderWithFS(memfs, "/config.json").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if v, _ := GetPath(config, "logging.level"); v != "error" {
		t.Errorf("logging.level = %v, want error", v)
	}
	if v, _ := GetPath(config, "input.tickRate"); v != 100.0 {
		t.Errorf("input.tickRate = %v (%T), want float 100 for exponent form", v, v)
	}
	field := config["fields"].([]any)[0].(map[string]any)
	if field["maxNumericValue"] != int64(65535) {
		t.Errorf("maxNumericValue = %v (%T), want int64 65535", field["maxNumericValue"], field["maxNumericValue"])
	}
	if v, ok := field["filter"]; !ok || v != nil {
		t.Errorf("filter = %v, %v; want nil, true", v, ok)
	}
}

func TestJSONLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", `{"input": }`},
		{"array root", `[1, 2]`},
		{"string root", `"x"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewJSONLoader("").LoadFromReader(strings.NewReader(tt.content))
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Errorf("error = %v, want *ParseError", err)
			}
		})
	}
}
