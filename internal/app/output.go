package app

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// OutputFormat represents a supported output format.
type OutputFormat string

const (
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatText OutputFormat = "text"
)

// ParseOutputFormat parses a string into an OutputFormat.
// Supports "text" as default human-readable format.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "", "text":
		return OutputFormatText, nil
	case "json":
		return OutputFormatJSON, nil
	case "yaml", "yml":
		return OutputFormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (valid: text, json, yaml)", s)
	}
}

// FormatOutput serializes v to the specified output format.
// JSON output is pretty-printed (indented).
func FormatOutput(v any, format OutputFormat) ([]byte, error) {
	switch format {
	case OutputFormatJSON:
		return json.MarshalIndent(v, "", "  ")
	case OutputFormatYAML:
		return yaml.Marshal(v)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// OutputResult renders v for stdout as an ExitResult. Text output uses textFn.
func OutputResult(v any, format string, textFn func() string) error {
	if format == "quiet" {
		return ExitResult{Code: 0}
	}
	outFormat, err := ParseOutputFormat(format)
	if err != nil {
		return UsageExit(err.Error())
	}
	if outFormat == OutputFormatText {
		return OKText(textFn())
	}
	b, err := FormatOutput(v, outFormat)
	if err != nil {
		return FailExit(err.Error())
	}
	return OKText(string(b))
}
