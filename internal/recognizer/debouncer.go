package recognizer

import (
	"context"
	"sync"
	"time"

	pkgLog "homestead-voice-assistant/pkg/log"
)

// FireFunc receives the last final transcript once the grace window elapses.
type FireFunc func(transcript string)

// Debouncer gates the command pipeline behind a continuous speech-recognition
// stream. Only final transcript events are considered; after each final the
// debouncer waits a fixed grace window so that a user who keeps talking has
// their last final transcript used. A new final before the window elapses
// replaces the pending one and restarts the window. Stop cancels any pending
// invocation.
type Debouncer struct {
	l     pkgLog.Logger
	grace time.Duration
	fire  FireFunc

	mu      sync.Mutex
	timer   *time.Timer
	pending string
	stopped bool
}

// NewDebouncer creates a new Debouncer instance.
func NewDebouncer(l pkgLog.Logger, grace time.Duration, fire FireFunc) *Debouncer {
	return &Debouncer{
		l:     l,
		grace: grace,
		fire:  fire,
	}
}

// OnFinal records a final transcript event and (re)starts the grace window.
func (d *Debouncer) OnFinal(transcript string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.pending = transcript
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.grace, d.dispatch)
}

// OnInterim records an interim transcript event. Interim results never invoke
// the pipeline, so this is a no-op kept for symmetry with the event source.
func (d *Debouncer) OnInterim(transcript string) {}

// Stop cancels the recognition stream: any pending invocation is discarded.
// The debouncer cannot be re-armed after Stop.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = ""
}

func (d *Debouncer) dispatch() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	transcript := d.pending
	d.pending = ""
	d.timer = nil
	d.mu.Unlock()

	d.l.Debugf(context.Background(), "Debouncer: grace window elapsed, dispatching %q", transcript)
	d.fire(transcript)
}
