package app

// openSnapshot is the last observed open state of the overlays that change the
// header height.
type openSnapshot struct {
	playground bool
	studio     bool
}

// ResizeNotifier reports the header height to the runner whenever the
// playground or studio open state differs from what it last observed.
type ResizeNotifier struct {
	runner RunnerModel
	last   openSnapshot
}

// NewResizeNotifier records the initial open state. Nothing is reported for it.
func NewResizeNotifier(runner RunnerModel, playgroundOpen, studioOpen bool) *ResizeNotifier {
	return &ResizeNotifier{
		runner: runner,
		last:   openSnapshot{playground: playgroundOpen, studio: studioOpen},
	}
}

// Observe compares the current open state with the snapshot. On any
// difference it measures the header, calls UpdateWindowDimensions once and
// returns the measured height.
func (n *ResizeNotifier) Observe(playgroundOpen, studioOpen bool, measure MeasureFunc) (int, bool) {
	cur := openSnapshot{playground: playgroundOpen, studio: studioOpen}
	if cur == n.last {
		return 0, false
	}
	height := 0
	if measure != nil {
		height = measure()
	}
	n.runner.UpdateWindowDimensions(Dimensions{HeaderHeight: height})
	n.last = cur
	return height, true
}
