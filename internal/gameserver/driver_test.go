package gameserver_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/inferno/internal/config"
	"github.com/cory-johannsen/inferno/internal/game/command"
	"github.com/cory-johannsen/inferno/internal/game/session"
	"github.com/cory-johannsen/inferno/internal/game/state"
	"github.com/cory-johannsen/inferno/internal/game/world"
	"github.com/cory-johannsen/inferno/internal/gameserver"
)

const testWorld = `
world:
  width: 2
  height: 1
  start: {x: 0, y: 0}
  tiles: [".."]
  npcs:
    - {id: segfault, x: 1, y: 0}
`

func newDriver(t *testing.T, interval time.Duration) *gameserver.Driver {
	t.Helper()
	w, err := world.LoadFromBytes([]byte(testWorld))
	require.NoError(t, err)
	cfg := config.Default()
	cfg.Player.Level = 2
	logger := zap.NewNop()
	sess, err := session.New(cfg, w, command.NewDispatcher(command.DefaultRegistry(), logger), logger)
	require.NoError(t, err)
	return gameserver.NewDriver(sess, interval, 4, logger)
}

func TestNewDriver_PanicsOnBadInterval(t *testing.T) {
	assert.Panics(t, func() {
		gameserver.NewDriver(nil, 0, 0, zap.NewNop())
	})
}

func TestDriver_StepRunsOneTick(t *testing.T) {
	d := newDriver(t, time.Hour)
	require.True(t, d.SubmitCommand("commands"))

	ev := d.Step()
	assert.Equal(t, uint64(1), ev.Result.Tick)
	require.Len(t, ev.Result.Commands, 1)
	assert.Equal(t, "commands help man fireball", ev.Result.Commands[0].Display())
	assert.Equal(t, uint64(1), ev.View.Tick)
}

func TestDriver_MoveStartsEncounter(t *testing.T) {
	d := newDriver(t, time.Hour)
	require.NoError(t, d.Move(world.East))

	ev := d.Step()
	assert.Equal(t, "segfault", ev.Result.Started)
	assert.True(t, ev.View.State.InBattle)
	assert.ErrorIs(t, d.Move(world.West), world.ErrInEncounter)
}

func TestDriver_StartsAndStops(t *testing.T) {
	d := newDriver(t, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		for range d.Events() {
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("events channel not closed after cancel")
	}
}

func TestDriver_DeliversEvents(t *testing.T) {
	d := newDriver(t, 10*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	d.Start(ctx)

	require.NoError(t, d.Move(world.East))
	var ev gameserver.Event
	select {
	case ev = <-d.Events():
	case <-ctx.Done():
		t.Fatal("no event delivered")
	}
	assert.Equal(t, "segfault", ev.Result.Started)
	require.NotNil(t, ev.Result.Response)

	require.True(t, d.SubmitCommand("fireball 5"))
	select {
	case ev = <-d.Events():
	case <-ctx.Done():
		t.Fatal("no command event delivered")
	}
	require.Len(t, ev.Result.Commands, 1)
	assert.Equal(t, "Dealt 5 damage", ev.Result.Commands[0].Display())
	require.NotNil(t, ev.View.NPC)
	assert.Equal(t, 25, ev.View.NPC.HitPoints)
}

func TestDriver_ConcurrentSubmit(t *testing.T) {
	d := newDriver(t, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				d.SubmitAction(state.Ping())
				_ = d.View()
			}
		}()
	}
	// Drain so the loop never blocks on a full channel.
	done := make(chan struct{})
	go func() {
		for range d.Events() {
		}
		close(done)
	}()
	wg.Wait()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("tick loop did not stop")
	}
}
