// Package gameserver runs a game session on a wall-clock tick and serializes
// access to it for concurrent frontends.
package gameserver

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/inferno/internal/game/session"
	"github.com/cory-johannsen/inferno/internal/game/state"
	"github.com/cory-johannsen/inferno/internal/game/world"
)

// Event is one non-empty tick result together with the state after it.
type Event struct {
	Result session.TickResult
	View   session.View
}

// Driver ticks a session every interval. All session access goes through mu,
// so Submit*, Move and View may be called from any goroutine.
//
// Invariant: the session is ticked at most once per interval and never concurrently.
type Driver struct {
	interval time.Duration
	logger   *zap.Logger

	mu   sync.Mutex
	sess *session.Session

	events chan Event
}

// NewDriver returns a stopped driver for sess.
//
// Precondition: sess and logger must be non-nil; interval must be > 0; buffer must be >= 0.
func NewDriver(sess *session.Session, interval time.Duration, buffer int, logger *zap.Logger) *Driver {
	if interval <= 0 {
		panic("gameserver.NewDriver: interval must be > 0")
	}
	if buffer < 0 {
		panic("gameserver.NewDriver: buffer must be >= 0")
	}
	return &Driver{
		interval: interval,
		logger:   logger,
		sess:     sess,
		events:   make(chan Event, buffer),
	}
}

// Events returns the channel of non-empty tick results. It is closed when the
// loop started by Start exits.
func (d *Driver) Events() <-chan Event { return d.events }

// SubmitCommand buffers a console line for the next tick.
func (d *Driver) SubmitCommand(line string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sess.SubmitCommand(line)
}

// SubmitAction buffers a player action for the next tick.
func (d *Driver) SubmitAction(a state.PlayerAction) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sess.SubmitAction(a)
}

// Move steps the player one tile.
func (d *Driver) Move(dir world.Direction) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sess.Move(dir)
}

// View returns the current renderable state.
func (d *Driver) View() session.View {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sess.View()
}

// Step runs a single tick synchronously.
//
// Postcondition: Returns the tick result and the view taken under the same lock.
func (d *Driver) Step() Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	res := d.sess.Tick()
	return Event{Result: res, View: d.sess.View()}
}

// Start begins the tick loop. Runs until ctx is cancelled, then closes Events.
// A slow reader delays ticks rather than losing events.
//
// Precondition: Start must be called at most once.
func (d *Driver) Start(ctx context.Context) {
	go func() {
		defer close(d.events)
		ticker := time.NewTicker(d.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				d.logger.Debug("tick loop stopped")
				return
			case <-ticker.C:
				ev := d.Step()
				if ev.Result.Empty() {
					continue
				}
				select {
				case d.events <- ev:
				case <-ctx.Done():
					d.logger.Debug("tick loop stopped")
					return
				}
			}
		}
	}()
}
