// Package app - constants.go centralizes magic strings and configuration values.
package app

// URL schemes.
const (
	// HTTPScheme is the HTTP URL prefix.
	HTTPScheme = "http://"

	// HTTPSScheme is the HTTPS URL prefix.
	HTTPSScheme = "https://"
)

// Bus event names.
const (
	// EventStudioCancel asks the studio session to stop recording.
	EventStudioCancel = "studio:cancel"
)

// Configuration defaults.
const (
	// DefaultPort is the expected port of the app under test.
	DefaultPort = 3000

	// DefaultConfigFile is the config file name shown in the viewport help text.
	DefaultConfigFile = "toolbar.yaml"

	// DefaultViewportWidth is the viewport width used until a test overrides it.
	DefaultViewportWidth = 1000

	// DefaultViewportHeight is the viewport height used until a test overrides it.
	DefaultViewportHeight = 660

	// DefaultDisplayScale is the percentage the viewport is scaled to fit the window.
	DefaultDisplayScale = 100
)

// Config file discovery.
var configCandidates = []string{"toolbar.yaml", "toolbar.yml", "toolbar.json"}

// File permissions.
const (
	// FilePerm is the permission mode for regular files.
	FilePerm = 0o644
)

// Environment variables.
const (
	// EnvLogLevel selects the slog level (DEBUG, INFO, WARN, ERROR).
	EnvLogLevel = "TOOLBAR_LOG_LEVEL"

	// EnvBrowser overrides the command used to open URLs.
	EnvBrowser = "BROWSER"
)
