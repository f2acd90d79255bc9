package command_test

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/inferno/internal/config"
	"github.com/cory-johannsen/inferno/internal/game/command"
	"github.com/cory-johannsen/inferno/internal/game/state"
)

func newDispatcher(t testing.TB) (*command.Dispatcher, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	return command.NewDispatcher(command.DefaultRegistry(), zap.New(core)), logs
}

func newState(level int) *state.GameState {
	gs := state.New(config.PlayerConfig{HitPoints: 20, MaxHP: 20, Atk: 5, Def: 2}, 8)
	gs.PlayerLevel = level
	return gs
}

func TestExecute_InvalidCommand(t *testing.T) {
	d, _ := newDispatcher(t)
	_, err := d.Execute(newState(0), "teleport home")
	require.Error(t, err)
	assert.Equal(t, "Invalid command: teleport", err.Error())
}

func TestExecute_EmptyLine(t *testing.T) {
	d, _ := newDispatcher(t)
	_, err := d.Execute(newState(0), "   ")
	require.Error(t, err)
	assert.Equal(t, "Invalid command: ", err.Error())
}

func TestExecute_AccessDenied(t *testing.T) {
	d, logs := newDispatcher(t)
	gs := newState(0)
	gs.InBattle = true

	_, err := d.Execute(gs, "fireball 3")
	require.ErrorIs(t, err, command.ErrAccessDenied)
	assert.Equal(t, "You do not have access to run that command.\nThis incident will be reported.", err.Error())
	assert.Equal(t, 0, gs.ActionQueue.Len(), "denied command must not run")
	assert.Equal(t, 1, logs.FilterMessage("command access denied").Len())
}

func TestExecute_CaseInsensitiveName(t *testing.T) {
	d, _ := newDispatcher(t)
	msg, err := d.Execute(newState(0), "  COMMANDS ")
	require.NoError(t, err)
	assert.Equal(t, "commands help man", msg)
}

func TestCommands_Verbose(t *testing.T) {
	d, _ := newDispatcher(t)
	msg, err := d.Execute(newState(2), "commands -v")
	require.NoError(t, err)
	assert.Equal(t, "commands [-v]\nhelp <command_name>\nman <command_name>\nfireball [damage]", msg)
}

func TestHelp_Synopsis(t *testing.T) {
	d, _ := newDispatcher(t)
	msg, err := d.Execute(newState(0), "help man")
	require.NoError(t, err)
	assert.Equal(t, "man <command_name>", msg)
}

func TestHelp_NoAccessIsNotNotFound(t *testing.T) {
	d, _ := newDispatcher(t)
	_, err := d.Execute(newState(0), "help fireball")
	require.ErrorIs(t, err, command.ErrNoAccess)
	assert.Equal(t, "You don't have access to that command", err.Error())
}

func TestHelp_NoSuchCommand(t *testing.T) {
	d, _ := newDispatcher(t)
	_, err := d.Execute(newState(0), "help teleport")
	require.Error(t, err)
	assert.Equal(t, "No such command: teleport", err.Error())
}

func TestHelp_Usage(t *testing.T) {
	d, _ := newDispatcher(t)
	_, err := d.Execute(newState(0), "help")
	require.Error(t, err)
	assert.Equal(t, "Usage: help <command_name>", err.Error())
}

func TestMan_AliasShowsManual(t *testing.T) {
	d, _ := newDispatcher(t)
	msg, err := d.Execute(newState(2), "manual fireball")
	require.NoError(t, err)
	assert.Contains(t, msg, "fireball - Summon a fireball")
}

func TestMan_UsageAndNoAccess(t *testing.T) {
	d, _ := newDispatcher(t)
	_, err := d.Execute(newState(0), "man")
	require.Error(t, err)
	assert.Equal(t, "Usage: man <command_name>", err.Error())

	_, err = d.Execute(newState(0), "man fireball")
	assert.ErrorIs(t, err, command.ErrNoAccess)
}

func TestFireball_NotInBattle(t *testing.T) {
	d, _ := newDispatcher(t)
	_, err := d.Execute(newState(2), "fireball")
	require.Error(t, err)
	assert.Equal(t, "Not in battle", err.Error())
}

func TestFireball_DealsDamage(t *testing.T) {
	d, _ := newDispatcher(t)
	gs := newState(2)
	gs.PlayerAtk = 12
	gs.InBattle = true

	msg, err := d.Execute(gs, "fireball 10")
	require.NoError(t, err)
	assert.Equal(t, "Dealt 10 damage", msg)
	assert.Equal(t, []state.PlayerAction{state.Attack(10)}, gs.ActionQueue.Items())
}

func TestFireball_DefaultsToAtk(t *testing.T) {
	d, _ := newDispatcher(t)
	gs := newState(2)
	gs.InBattle = true

	msg, err := d.Execute(gs, "fireball")
	require.NoError(t, err)
	assert.Equal(t, "Dealt 5 damage", msg)
	assert.Equal(t, []state.PlayerAction{state.Attack(5)}, gs.ActionQueue.Items())
}

func TestFireball_NegativeDamage(t *testing.T) {
	d, _ := newDispatcher(t)
	gs := newState(2)
	gs.InBattle = true

	_, err := d.Execute(gs, "fireball -5")
	require.Error(t, err)
	assert.Equal(t, "Damage should be positive and not larger than your ATK", err.Error())
	assert.Equal(t, 0, gs.ActionQueue.Len())
}

func TestFireball_AboveAtk(t *testing.T) {
	d, _ := newDispatcher(t)
	gs := newState(2)
	gs.InBattle = true

	msg, err := d.Execute(gs, "fireball 10")
	require.NoError(t, err)
	assert.Equal(t, "Dealt 10 damage", msg)
	assert.Equal(t, []state.PlayerAction{state.Attack(10)}, gs.ActionQueue.Items())
}

func TestPropertyFireballAcceptsAnyPositiveDamage(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := command.NewDispatcher(command.DefaultRegistry(), zap.NewNop())
		gs := newState(2)
		gs.InBattle = true
		n := rapid.IntRange(1, math.MaxInt32).Draw(t, "damage")

		msg, err := d.Execute(gs, "fireball "+strconv.Itoa(n))
		if err != nil {
			t.Fatalf("fireball %d rejected: %v", n, err)
		}
		if msg != fmt.Sprintf("Dealt %d damage", n) {
			t.Fatalf("unexpected message %q", msg)
		}
		if got := gs.ActionQueue.Items(); len(got) != 1 || got[0] != state.Attack(n) {
			t.Fatalf("queue %v, want [Attack(%d)]", got, n)
		}
	})
}

func TestFireball_NotANumber(t *testing.T) {
	d, _ := newDispatcher(t)
	gs := newState(2)
	gs.InBattle = true

	_, err := d.Execute(gs, "fireball abc")
	require.Error(t, err)
	assert.Equal(t, "`abc' is not a valid number", err.Error())
}

func TestFireball_QueueFull(t *testing.T) {
	d, _ := newDispatcher(t)
	gs := newState(2)
	gs.InBattle = true
	for gs.ActionQueue.Len() < gs.ActionQueue.Cap() {
		gs.ActionQueue.Push(state.Attack(1))
	}
	_, err := d.Execute(gs, "fireball")
	assert.Error(t, err)
}

func TestPropertyDeniedCommandsDoNotMutateState(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := command.NewDispatcher(command.DefaultRegistry(), zap.NewNop())
		level := rapid.IntRange(-100, 1).Draw(t, "level")
		arg := rapid.StringMatching(`[0-9a-z-]{0,4}`).Draw(t, "arg")
		gs := newState(level)
		gs.InBattle = true
		before := gs.Snapshot()

		_, err := d.Execute(gs, "fireball "+arg)
		if err != command.ErrAccessDenied {
			t.Fatalf("level %d: err = %v, want access denied", level, err)
		}
		if gs.Snapshot() != before || gs.ActionQueue.Len() != 0 {
			t.Fatalf("denied command mutated state")
		}
	})
}

func TestPropertyUnknownNamesAreInvalid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := command.NewDispatcher(command.DefaultRegistry(), zap.NewNop())
		name := rapid.StringMatching(`[a-z]{1,12}`).Filter(func(s string) bool {
			_, ok := command.DefaultRegistry().Resolve(s)
			return !ok
		}).Draw(t, "name")
		level := rapid.IntRange(-10, 10).Draw(t, "level")

		_, err := d.Execute(newState(level), name)
		if err == nil || err.Error() != "Invalid command: "+name {
			t.Fatalf("Execute(%q) err = %v", name, err)
		}
	})
}
