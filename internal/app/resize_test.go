package app

import "testing"

func TestResizeNotifier(t *testing.T) {
	tests := []struct {
		name       string
		playground bool
		studio     bool
		wantCalls  int
	}{
		{"unchanged", false, false, 0},
		{"playground opened", true, false, 1},
		{"studio opened", false, true, 1},
		{"both opened in one pass", true, true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeRunner{}
			n := NewResizeNotifier(r, false, false)
			measured := 0
			measure := func() int { measured++; return 3 }

			_, changed := n.Observe(tt.playground, tt.studio, measure)
			if changed != (tt.wantCalls > 0) {
				t.Errorf("changed = %v", changed)
			}
			if len(r.updates) != tt.wantCalls {
				t.Errorf("UpdateWindowDimensions called %d times, want %d", len(r.updates), tt.wantCalls)
			}
			if measured != tt.wantCalls {
				t.Errorf("measured %d times, want %d", measured, tt.wantCalls)
			}
		})
	}
}

func TestResizeNotifier_SnapshotAdvances(t *testing.T) {
	r := &fakeRunner{}
	n := NewResizeNotifier(r, true, false)

	n.Observe(true, false, nil)
	n.Observe(false, false, nil)
	n.Observe(false, false, nil)
	n.Observe(true, false, nil)

	if len(r.updates) != 2 {
		t.Errorf("updates = %d, want 2", len(r.updates))
	}
	if r.updates[0].HeaderHeight != 0 {
		t.Errorf("nil measure should report 0, got %d", r.updates[0].HeaderHeight)
	}
}
