package craving

import (
	"context"
	"sync"

	"github.com/julianstephens/reboot/internal/clock"
	"github.com/julianstephens/reboot/internal/constants"
)

// Driver runs the breathing-phase tickers for a Session: a fast ticker for
// the breath sub-phase and a one-second ticker for the countdown. Both are
// created and stopped together. The driver's goroutine exits when the
// session leaves the breathing phase, when the session is closed, when the
// context is cancelled or when Stop is called.
type Driver struct {
	session *Session
	clock   clock.Clock

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	updates chan Snapshot
}

func NewDriver(s *Session, clk clock.Clock) *Driver {
	return &Driver{session: s, clock: clk}
}

// Start launches the tickers if the session is open and breathing and no
// run is active. It returns the channel on which snapshots are published;
// the channel is closed when the run ends. Snapshots are dropped, never
// queued, when the reader falls behind.
func (d *Driver) Start(ctx context.Context) <-chan Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running() {
		return d.updates
	}

	updates := make(chan Snapshot, 1)
	snap := d.session.Snapshot()
	if !snap.Open || snap.Finished || snap.Phase != PhaseBreathing {
		close(updates)
		d.updates = updates
		return updates
	}

	ctx, cancel := context.WithCancel(ctx)
	breath := d.clock.NewTicker(constants.BreathTick)
	countdown := d.clock.NewTicker(constants.CountdownTick)
	done := make(chan struct{})

	d.cancel = cancel
	d.done = done
	d.updates = updates

	go d.run(ctx, cancel, breath, countdown, d.session.BreathingDone(), updates, done)
	return updates
}

// Stop ends the current run and waits for its goroutine to exit. It is safe
// to call at any time and more than once.
func (d *Driver) Stop() {
	d.mu.Lock()
	cancel, done := d.cancel, d.done
	d.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the tickers are active.
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running()
}

func (d *Driver) running() bool {
	if d.done == nil {
		return false
	}
	select {
	case <-d.done:
		return false
	default:
		return true
	}
}

func (d *Driver) run(ctx context.Context, cancel context.CancelFunc, breath, countdown clock.Ticker, breathingDone <-chan struct{}, updates chan Snapshot, done chan struct{}) {
	defer close(updates)
	defer close(done)
	defer cancel()
	defer countdown.Stop()
	defer breath.Stop()

	for {
		var snap Snapshot
		select {
		case <-ctx.Done():
			return
		case <-breathingDone:
			return
		case now := <-breath.C():
			snap = d.session.TickBreath(now)
		case now := <-countdown.C():
			snap = d.session.TickCountdown(now)
		}

		if !snap.Open || snap.Phase != PhaseBreathing {
			return
		}
		publish(updates, snap)
	}
}

// publish keeps only the latest snapshot in the buffer.
func publish(updates chan Snapshot, snap Snapshot) {
	select {
	case updates <- snap:
		return
	default:
	}
	select {
	case <-updates:
	default:
	}
	select {
	case updates <- snap:
	default:
	}
}
