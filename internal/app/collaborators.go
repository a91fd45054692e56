package app

// ViewportSize is a width/height pair in pixels.
type ViewportSize struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Dimensions is what the header reports to the runner after it changes size.
type Dimensions struct {
	HeaderHeight int
}

// RunnerState is a read-only view of the runner. It is owned by the runner and
// only ever read by the header.
type RunnerState struct {
	URL          string
	IsLoading    bool
	IsRunning    bool
	IsLoadingURL bool
	HighlightURL bool
	Width        int
	Height       int
	DisplayScale int
	Defaults     ViewportSize
}

// RunnerModel exposes the runner state and the single callback the header may invoke.
type RunnerModel interface {
	State() RunnerState
	UpdateWindowDimensions(d Dimensions)
}

// StudioModel is the recording session the header coordinates with.
type StudioModel interface {
	IsOpen() bool
	IsActive() bool
	URL() string
	VisitURL(url string)
}

// PlaygroundModel is the selector playground overlay.
type PlaygroundModel interface {
	IsOpen() bool
	ToggleOpen()
}

// EventEmitter publishes named events on the shared bus.
type EventEmitter interface {
	Emit(name string)
}

// URLOpener opens a URL in a new browsing context.
type URLOpener interface {
	Open(url string) error
}

// MeasureFunc returns the current rendered height of the header.
type MeasureFunc func() int
