// Package saver coalesces bursts of settings changes into a single persist call.
package saver

import (
	"context"
	"sync"
	"time"

	"github.com/julianstephens/nyfont/internal/logger"
)

// Debouncer runs fn once delay has passed without another Trigger.
type Debouncer struct {
	delay time.Duration
	fn    func() error

	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	stopped bool
	lastErr error

	// inflight is closed when the most recent timer save returns
	inflight chan struct{}

	// run serializes calls to fn between the timer goroutine and Flush
	run sync.Mutex
}

// New returns a Debouncer that calls fn after delay.
func New(delay time.Duration, fn func() error) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger schedules a save, restarting the delay if one is already pending.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.pending = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

// Pending reports whether a save is scheduled and has not run yet.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Flush runs a pending save now and returns its error. When nothing is pending it waits
// for a save already in flight and returns the most recent save error.
func (d *Debouncer) Flush(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	pending := d.pending
	d.pending = false
	inflight := d.inflight
	d.mu.Unlock()

	if !pending {
		if inflight != nil {
			select {
			case <-inflight:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return d.Err()
	}
	return d.save()
}

// Stop cancels any pending save. Later Triggers are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
	}
}

// Err returns the error from the most recent save.
func (d *Debouncer) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastErr
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return
	}
	d.pending = false
	done := make(chan struct{})
	d.inflight = done
	d.mu.Unlock()
	defer close(done)

	if err := d.save(); err != nil {
		logger.Warn("Debounced save failed", "error", err)
	}
}

func (d *Debouncer) save() error {
	d.run.Lock()
	err := d.fn()
	d.run.Unlock()

	d.mu.Lock()
	d.lastErr = err
	d.mu.Unlock()
	return err
}
