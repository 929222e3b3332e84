package scheduler

import (
	"sync"
	"time"
)

// DefaultDebounceDelay matches the input-quiet interval the directory
// front end uses before firing a search.
const DefaultDebounceDelay = 300 * time.Millisecond

// Debouncer is a cancellable delayed-task primitive with
// trailing-edge semantics: each Schedule cancels any pending task and
// arms a fresh timer, so a burst of calls runs the function exactly
// once, with the last call's closure, after the burst goes quiet.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given quiet interval.
// A non-positive delay falls back to the default.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	return &Debouncer{delay: delay}
}

// Schedule arms fn to run after the quiet interval, cancelling any
// previously scheduled task. fn runs on a timer goroutine.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending task. The debouncer remains usable.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
