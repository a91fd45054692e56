package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// Config holds the toolbar settings. Files may be YAML or JSON.
type Config struct {
	// Port is the port the app under test is expected on.
	Port int `json:"port" yaml:"port"`

	// ConfigFile is the file name shown in the viewport help text.
	ConfigFile string `json:"configFile" yaml:"configFile"`

	// PageURL is the location the runner itself is served from.
	PageURL string `json:"pageUrl" yaml:"pageUrl"`

	// BaseURL is the URL the runner starts on. Empty means nothing is loaded.
	BaseURL string `json:"baseUrl,omitempty" yaml:"baseUrl,omitempty"`

	// Browser is the command used to open URLs; the URL is appended.
	Browser string `json:"browser,omitempty" yaml:"browser,omitempty"`

	Viewport ViewportSize `json:"viewport" yaml:"viewport"`

	// ImplicitDefaultPort makes a page URL without a port compare as the
	// scheme default port.
	ImplicitDefaultPort bool `json:"implicitDefaultPort" yaml:"implicitDefaultPort"`
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Port:       DefaultPort,
		ConfigFile: DefaultConfigFile,
		PageURL:    fmt.Sprintf("http://localhost:%d", DefaultPort),
		Viewport: ViewportSize{
			Width:  DefaultViewportWidth,
			Height: DefaultViewportHeight,
		},
		ImplicitDefaultPort: true,
	}
}

const configSchema = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "port": {"type": "integer", "minimum": 1, "maximum": 65535},
    "configFile": {"type": "string"},
    "pageUrl": {"type": "string"},
    "baseUrl": {"type": "string"},
    "browser": {"type": "string"},
    "implicitDefaultPort": {"type": "boolean"},
    "viewport": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "width": {"type": "integer", "minimum": 1},
        "height": {"type": "integer", "minimum": 1}
      }
    }
  }
}`

var compiledConfigSchema = mustCompileConfigSchema()

func mustCompileConfigSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("toolbar.schema.json", strings.NewReader(configSchema)); err != nil {
		panic(err)
	}
	return compiler.MustCompile("toolbar.schema.json")
}

// FindConfig returns the first config file in dir, or "" if there is none.
func FindConfig(dir string) string {
	for _, name := range configCandidates {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// LoadConfig reads and validates the config at path. An empty path looks for
// a config file in the working directory and falls back to defaults. The
// returned path is the file that was read, if any.
func LoadConfig(path string) (Config, string, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return DefaultConfig(), "", nil
		}
		path = FindConfig(wd)
		if path == "" {
			return DefaultConfig(), "", nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, path, newError(ErrCodeConfigRead, "failed to read config "+path, err)
	}
	cfg, doc, err := parseConfig(data)
	if err != nil {
		return Config{}, path, err
	}
	if _, ok := doc["configFile"]; !ok {
		cfg.ConfigFile = filepath.Base(path)
	}
	return cfg, path, nil
}

// ParseConfig validates a YAML or JSON document and applies it over the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg, _, err := parseConfig(data)
	return cfg, err
}

func parseConfig(data []byte) (Config, map[string]any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, nil, newError(ErrCodeConfigInvalid, "config is not valid YAML or JSON", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	if err := ValidateConfigDocument(doc); err != nil {
		return Config{}, nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, nil, newError(ErrCodeConfigInvalid, "failed to decode config", err)
	}
	m, _ := doc.(map[string]any)
	return cfg, m, nil
}

// ValidateConfigDocument checks a decoded document against the config schema.
func ValidateConfigDocument(doc any) error {
	// Round-trip through JSON so the validator sees JSON value types.
	b, err := json.Marshal(doc)
	if err != nil {
		return newError(ErrCodeConfigInvalid, "config cannot be represented as JSON", err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return newError(ErrCodeConfigInvalid, "config cannot be represented as JSON", err)
	}
	if err := compiledConfigSchema.Validate(v); err != nil {
		return newError(ErrCodeConfigInvalid, "invalid config", validationMessage(err))
	}
	return nil
}

// validationMessage flattens a schema error to its most specific cause.
func validationMessage(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	loc := ve.InstanceLocation
	if loc == "" {
		loc = "/"
	}
	return loc + ": " + ve.Message
}
