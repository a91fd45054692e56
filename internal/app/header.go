package app

import (
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Mode is the toolbar mode derived from the collaborators.
type Mode string

const (
	ModeNormal         Mode = "normal"
	ModePlayground     Mode = "playground"
	ModeStudioNeedsURL Mode = "studio-needs-url"
	ModeStudioWithURL  Mode = "studio-with-url"
)

// Label is the human-readable mode name, e.g. "Studio Needs Url".
func (m Mode) Label() string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(m), "-", " "))
}

// HeaderDeps wires the header to its collaborators.
type HeaderDeps struct {
	Runner     RunnerModel
	Studio     StudioModel
	Playground PlaygroundModel
	Bus        EventEmitter
	Opener     URLOpener // optional; OpenCurrentURL fails without one
	Logger     *slog.Logger
}

// Header coordinates the toolbar modes. It owns only the viewport menu flag and
// the unsubmitted URL text; everything else is read from the collaborators on
// every call.
type Header struct {
	runner     RunnerModel
	studio     StudioModel
	playground PlaygroundModel
	bus        EventEmitter
	opener     URLOpener
	log        *slog.Logger

	port       int
	portPolicy PortPolicy
	pageURL    string
	configFile string

	showingViewportMenu bool
	urlInput            string

	resize *ResizeNotifier
}

// NewHeader mounts a header: the viewport menu starts closed, the URL input
// empty, and the current overlay state becomes the resize baseline.
func NewHeader(deps HeaderDeps, cfg Config) *Header {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	h := &Header{
		runner:     deps.Runner,
		studio:     deps.Studio,
		playground: deps.Playground,
		bus:        deps.Bus,
		opener:     deps.Opener,
		log:        logger,
		resize:     NewResizeNotifier(deps.Runner, deps.Playground.IsOpen(), deps.Studio.IsOpen()),
	}
	h.ApplyConfig(cfg)
	return h
}

// SetOpener replaces the opener used by OpenCurrentURL.
func (h *Header) SetOpener(o URLOpener) { h.opener = o }

// ApplyConfig updates the port comparison inputs. It is safe to call between
// events, e.g. after a config reload.
func (h *Header) ApplyConfig(cfg Config) {
	h.port = cfg.Port
	h.pageURL = cfg.PageURL
	h.configFile = cfg.ConfigFile
	h.portPolicy = PortImplicitDefault
	if !cfg.ImplicitDefaultPort {
		h.portPolicy = PortExplicitOnly
	}
}

// NeedsURL reports whether the studio is active but has nowhere to record yet.
func (h *Header) NeedsURL() bool {
	return h.studio.IsActive() && h.studio.URL() == "" && h.runner.State().URL == ""
}

// BaseOrigin returns the origin typed paths are resolved against, or "".
func (h *Header) BaseOrigin() string {
	return BaseOrigin(h.NeedsURL(), h.pageURL, h.port, h.portPolicy)
}

// Mode returns the current toolbar mode. The studio wins over the playground.
func (h *Header) Mode() Mode {
	switch {
	case h.NeedsURL():
		return ModeStudioNeedsURL
	case h.studio.IsActive():
		return ModeStudioWithURL
	case h.playground.IsOpen():
		return ModePlayground
	}
	return ModeNormal
}

// CanTogglePlayground reports whether the playground control is interactive.
func (h *Header) CanTogglePlayground() bool {
	st := h.runner.State()
	return !st.IsLoading && !st.IsRunning && !h.studio.IsActive()
}

// TogglePlayground flips the playground open flag. It is a no-op while the
// runner is loading or running, or while the studio is active.
func (h *Header) TogglePlayground() bool {
	if !h.CanTogglePlayground() {
		return false
	}
	h.playground.ToggleOpen()
	h.log.Debug("playground toggled", "open", h.playground.IsOpen())
	return true
}

// URLInput returns the unsubmitted URL text.
func (h *Header) URLInput() string {
	return h.urlInput
}

// SetURLInput stores text verbatim while the studio needs a URL.
func (h *Header) SetURLInput(text string) bool {
	if !h.NeedsURL() {
		return false
	}
	h.urlInput = text
	return true
}

// CanSubmit reports whether the submit control is enabled.
func (h *Header) CanSubmit() bool {
	return h.NeedsURL() && h.urlInput != ""
}

// SubmitURL resolves the typed text, hands it to the studio and clears the
// input. It returns the URL that was visited.
func (h *Header) SubmitURL() (string, bool) {
	if !h.CanSubmit() {
		return "", false
	}
	resolved := ResolveURL(h.urlInput, h.BaseOrigin())
	h.studio.VisitURL(resolved)
	h.log.Debug("studio url submitted", "input", h.urlInput, "url", resolved)
	h.urlInput = ""
	return resolved, true
}

// CancelStudio publishes a cancel request. The studio reacts to the event.
func (h *Header) CancelStudio() {
	h.log.Debug("studio cancel requested")
	h.bus.Emit(EventStudioCancel)
}

// OpenCurrentURL opens the runner URL in a new browsing context.
func (h *Header) OpenCurrentURL() error {
	if h.NeedsURL() {
		return nil
	}
	u := strings.TrimSpace(h.runner.State().URL)
	if u == "" {
		return newError(ErrCodeEmptyURL, "no url to open", nil)
	}
	if h.opener == nil {
		return newError(ErrCodeOpenFailed, "no browser configured", u)
	}
	if err := h.opener.Open(u); err != nil {
		return newError(ErrCodeOpenFailed, "failed to open url", err)
	}
	return nil
}

// ShowingViewportMenu reports whether the viewport popup is open.
func (h *Header) ShowingViewportMenu() bool {
	return h.showingViewportMenu
}

// ToggleViewportMenu flips the viewport popup and returns the new value.
func (h *Header) ToggleViewportMenu() bool {
	h.showingViewportMenu = !h.showingViewportMenu
	return h.showingViewportMenu
}

// SettleResult is what the caller must act on after a settling point.
type SettleResult struct {
	Resized      bool
	HeaderHeight int
	FocusURL     bool
}

// Settle runs the post-update checks: a height report when an overlay opened
// or closed, and URL input focus while the studio needs a URL.
func (h *Header) Settle(measure MeasureFunc) SettleResult {
	var res SettleResult
	res.HeaderHeight, res.Resized = h.resize.Observe(h.playground.IsOpen(), h.studio.IsOpen(), measure)
	if res.Resized {
		h.log.Debug("header resized", "height", res.HeaderHeight, "mode", h.Mode())
	}
	res.FocusURL = h.NeedsURL()
	return res
}
