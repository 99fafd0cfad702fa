package spin

import (
	"context"
	"sync/atomic"
	"time"
)

type driverState int

const (
	stateStopped driverState = iota
	stateRunning
)

// Driver fires a periodic tick while running. Ticks are not applied from the
// timer goroutine: each one is handed to post, which must run it on the UI
// event thread and return once it has run. Start, Stop and SetDelay are
// expected to be called from that same thread.
type Driver struct {
	post   func(func())
	onTick func()

	delay atomic.Int64 // nanoseconds, read by the timer goroutine

	state  driverState
	gen    uint64
	cancel context.CancelFunc
}

// NewDriver creates a stopped driver. onTick runs on the event thread for
// every delivered tick.
func NewDriver(post func(func()), onTick func()) *Driver {
	return &Driver{
		post:   post,
		onTick: onTick,
	}
}

// SetDelay changes the tick interval. A tick that is already scheduled keeps
// its deadline; the new interval applies from the next one.
func (d *Driver) SetDelay(delay time.Duration) {
	if delay < 0 {
		delay = 0
	}
	d.delay.Store(int64(delay))
}

// Delay returns the current tick interval.
func (d *Driver) Delay() time.Duration {
	return time.Duration(d.delay.Load())
}

// Running reports whether the driver is in the running state.
func (d *Driver) Running() bool {
	return d.state == stateRunning
}

// Start begins ticking at the current delay. It is a no-op while running.
func (d *Driver) Start() {
	if d.state == stateRunning {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	d.state = stateRunning
	d.gen++
	d.cancel = cancel
	go d.run(ctx, d.gen)
}

// Stop cancels ticking. Once Stop returns no further tick reaches onTick,
// including one that the timer goroutine has already queued. Stop does not
// wait for the goroutine: it may be blocked posting to the calling thread.
func (d *Driver) Stop() {
	if d.state == stateStopped {
		return
	}
	d.state = stateStopped
	d.gen++
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

func (d *Driver) run(ctx context.Context, gen uint64) {
	timer := time.NewTimer(d.Delay())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		if ctx.Err() != nil {
			return
		}
		d.post(func() { d.deliver(gen) })
		timer.Reset(d.Delay())
	}
}

// deliver runs on the event thread; ticks from an earlier run are dropped.
func (d *Driver) deliver(gen uint64) {
	if d.state != stateRunning || d.gen != gen {
		return
	}
	d.onTick()
}
