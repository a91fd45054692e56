package app

// Runner is the in-process runner model driven by the TUI.
type Runner struct {
	state        RunnerState
	windowHeight int
	headerHeight int
	notified     int
}

// NewRunner creates a runner with the configured viewport as both the
// current size and the defaults.
func NewRunner(cfg Config) *Runner {
	return &Runner{
		state: RunnerState{
			URL:          cfg.BaseURL,
			Width:        cfg.Viewport.Width,
			Height:       cfg.Viewport.Height,
			DisplayScale: DefaultDisplayScale,
			Defaults:     cfg.Viewport,
		},
	}
}

func (r *Runner) State() RunnerState { return r.state }

// UpdateWindowDimensions records the header height reported by the toolbar.
func (r *Runner) UpdateWindowDimensions(d Dimensions) {
	r.headerHeight = d.HeaderHeight
	r.notified++
}

// Notifications counts UpdateWindowDimensions calls.
func (r *Runner) Notifications() int { return r.notified }

// HeaderHeight is the current header height, from the last notification or
// window resize.
func (r *Runner) HeaderHeight() int { return r.headerHeight }

// SetWindowHeight records the total height available to the runner and
// re-measures the header for the new layout. This is the runner's own layout
// pass, not a header notification. A nil measure keeps the known height.
func (r *Runner) SetWindowHeight(h int, measure MeasureFunc) {
	r.windowHeight = h
	if measure != nil {
		r.headerHeight = measure()
	}
}

// BodyHeight is the space left below the header.
func (r *Runner) BodyHeight() int {
	return clampMin(r.windowHeight-r.headerHeight, 0)
}

func (r *Runner) SetURL(u string)        { r.state.URL = u }
func (r *Runner) SetLoading(v bool)      { r.state.IsLoading = v }
func (r *Runner) SetRunning(v bool)      { r.state.IsRunning = v }
func (r *Runner) SetLoadingURL(v bool)   { r.state.IsLoadingURL = v }
func (r *Runner) SetHighlightURL(v bool) { r.state.HighlightURL = v }

// SetDefaults replaces the default viewport, e.g. after a config reload.
func (r *Runner) SetDefaults(v ViewportSize) {
	r.state.Defaults = v
}

func clampMin(v, min int) int {
	if v < min {
		return min
	}
	return v
}
