package form

import (
	"fmt"
	"io"
	"sync"
)

// TextView renders form changes as lines of text, one per change.
type TextView struct {
	mu sync.Mutex
	w  io.Writer
}

func NewTextView(w io.Writer) *TextView {
	return &TextView{w: w}
}

func (v *TextView) SetStatus(role Role, s Status) {
	v.printf("[%s] %s\n", role, s.Message)
}

func (v *TextView) SetCalculateEnabled(enabled bool) {
	if enabled {
		v.printf("[calc] ready: type \"calc\" to calculate the distance\n")
		return
	}
	v.printf("[calc] disabled: resolve both places first\n")
}

func (v *TextView) SetCalculateLabel(label string) {
	if label == LabelCalculating {
		v.printf("[calc] %s\n", label)
	}
}

func (v *TextView) ShowResult(r Result) {
	v.printf("Distance: %s km\nMap: %s\n", r.DistanceKm, r.MapURL)
}

func (v *TextView) HideResult() {}

func (v *TextView) Alert(msg string) {
	v.printf("!! %s\n", msg)
}

func (v *TextView) printf(format string, args ...any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintf(v.w, format, args...)
}
