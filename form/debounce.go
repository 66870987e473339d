package form

import (
	"sync"
	"time"
)

// DefaultQuietPeriod is how long an input must stay untouched before the
// pending suggestion query fires.
const DefaultQuietPeriod = 300 * time.Millisecond

// Debouncer coalesces a burst of keystrokes into one callback after the input
// has been quiet for the configured period. Each Trigger cancels and replaces
// the pending timer, so at most one callback fires per quiet period. One
// Debouncer belongs to exactly one input.
type Debouncer struct {
	Quiet time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func (d *Debouncer) quiet() time.Duration {
	if d.Quiet > 0 {
		return d.Quiet
	}
	return DefaultQuietPeriod
}

// Trigger schedules fn after the quiet period, cancelling whatever was
// pending.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet(), fn)
}

// Stop cancels the pending callback, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
