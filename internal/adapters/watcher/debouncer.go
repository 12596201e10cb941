package watcher

import (
	"sync"
	"time"
	"unique"
)

// DefaultDebounceWindow is the default coalescing window for file events.
// Editors tend to emit bursts of writes for a single save.
const DefaultDebounceWindow = 50 * time.Millisecond

// Debouncer coalesces bursts of file change events into a single callback
// per path. The watch layer uses it to drive cache invalidation and
// re-parsing without doing the work once per raw event.
type Debouncer struct {
	mu      sync.Mutex
	window  time.Duration
	pending map[unique.Handle[string]]struct{}
	timer   *time.Timer
	fire    func(paths []string)
}

// NewDebouncer creates a debouncer that invokes fire with the coalesced set
// of changed paths once the window has elapsed without new events.
func NewDebouncer(window time.Duration, fire func(paths []string)) *Debouncer {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Debouncer{
		window:  window,
		pending: make(map[unique.Handle[string]]struct{}),
		fire:    fire,
	}
}

// Add records a changed path and resets the window.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[unique.Make(path)] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.flush)
}

// Flush fires immediately with whatever is pending. Used on shutdown so no
// event is lost.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	d.flush()
}

func (d *Debouncer) flush() {
	d.mu.Lock()
	if len(d.pending) == 0 {
		d.mu.Unlock()
		return
	}
	paths := make([]string, 0, len(d.pending))
	for handle := range d.pending {
		paths = append(paths, handle.Value())
	}
	clear(d.pending)
	d.mu.Unlock()

	d.fire(paths)
}
