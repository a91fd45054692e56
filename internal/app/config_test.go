package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseConfig_YAML(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
port: 8080
pageUrl: http://localhost:9000/__/
viewport:
  width: 1280
  height: 720
implicitDefaultPort: false
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 || cfg.PageURL != "http://localhost:9000/__/" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Viewport != (ViewportSize{Width: 1280, Height: 720}) {
		t.Errorf("viewport = %+v", cfg.Viewport)
	}
	if cfg.ImplicitDefaultPort {
		t.Error("implicitDefaultPort should be false")
	}
	if cfg.ConfigFile != DefaultConfigFile {
		t.Errorf("ConfigFile = %q, want default", cfg.ConfigFile)
	}
}

func TestParseConfig_JSONKeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{"viewport": {"width": 500}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("Port = %d, want default", cfg.Port)
	}
	if cfg.Viewport.Width != 500 || cfg.Viewport.Height != DefaultViewportHeight {
		t.Errorf("viewport = %+v", cfg.Viewport)
	}
	if !cfg.ImplicitDefaultPort {
		t.Error("implicitDefaultPort should default to true")
	}
}

func TestParseConfig_Empty(t *testing.T) {
	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("empty config should equal defaults, got %+v", cfg)
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"port out of range", "port: 70000"},
		{"port wrong type", "port: abc"},
		{"unknown key", "colour: blue"},
		{"viewport zero", "viewport: {width: 0}"},
		{"not an object", "- a\n- b"},
		{"broken yaml", "port: [1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.doc))
			var appErr *Error
			if !errors.As(err, &appErr) || appErr.Code != ErrCodeConfigInvalid {
				t.Errorf("expected %s error, got %v", ErrCodeConfigInvalid, err)
			}
		})
	}
}

func TestLoadConfig_NamesConfigFileAfterPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "toolbar.json")
	if err := os.WriteFile(path, []byte(`{"port": 4000}`), FilePerm); err != nil {
		t.Fatal(err)
	}

	cfg, used, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if used != path {
		t.Errorf("used = %q", used)
	}
	if cfg.Port != 4000 || cfg.ConfigFile != "toolbar.json" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfig_ExplicitConfigFileWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "toolbar.yaml")
	if err := os.WriteFile(path, []byte("configFile: runner.config.js\n"), FilePerm); err != nil {
		t.Fatal(err)
	}
	cfg, _, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ConfigFile != "runner.config.js" {
		t.Errorf("ConfigFile = %q", cfg.ConfigFile)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	_, _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	var appErr *Error
	if !errors.As(err, &appErr) || appErr.Code != ErrCodeConfigRead {
		t.Errorf("expected %s error, got %v", ErrCodeConfigRead, err)
	}
}

func TestFindConfig(t *testing.T) {
	dir := t.TempDir()
	if got := FindConfig(dir); got != "" {
		t.Errorf("FindConfig() = %q, want empty", got)
	}
	path := filepath.Join(dir, "toolbar.yml")
	if err := os.WriteFile(path, []byte("port: 1\n"), FilePerm); err != nil {
		t.Fatal(err)
	}
	if got := FindConfig(dir); got != path {
		t.Errorf("FindConfig() = %q, want %q", got, path)
	}
}
