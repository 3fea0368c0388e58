package service

import (
	"sync"
	"time"
)

// PreviewDelay is how long input must stay idle before a coalesced preview
// regeneration fires.
const PreviewDelay = 150 * time.Millisecond

// Debouncer coalesces regeneration requests: at most one callback runs per
// interval of inactivity. Each Trigger supersedes the pending one.
type Debouncer struct {
	interval time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Trigger schedules fn to run once the interval elapses without another
// Trigger call.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
