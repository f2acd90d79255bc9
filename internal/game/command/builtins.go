package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cory-johannsen/inferno/internal/game/state"
)

// ErrNoAccess is returned by help and man when the target exists but is above the caller's level.
var ErrNoAccess = errors.New("You don't have access to that command")

// runCommands lists runnable command names, or their synopses one per line with -v.
func (d *Dispatcher) runCommands(gs *state.GameState, p ParseResult) (string, error) {
	names := d.registry.ListCommands("", gs.PlayerLevel)
	if !p.HasFlag("-v") {
		return strings.Join(names, " "), nil
	}
	synopses := make([]string, 0, len(names))
	for _, name := range names {
		cmd, _ := d.registry.Resolve(name)
		synopses = append(synopses, cmd.Synopsis())
	}
	return strings.Join(synopses, "\n"), nil
}

// runLookup implements help and man: resolve the named command and render text for it.
func (d *Dispatcher) runLookup(gs *state.GameState, p ParseResult, self Kind, text func(*Command) string) (string, error) {
	name, ok := p.Arg(0)
	if !ok {
		return "", fmt.Errorf("Usage: %s", self.Synopsis())
	}
	cmd, ok := d.registry.Resolve(name)
	if !ok {
		return "", fmt.Errorf("No such command: %s", name)
	}
	if gs.PlayerLevel < cmd.RequiredLevel() {
		return "", ErrNoAccess
	}
	return text(cmd), nil
}

// runFireball queues an attack on the active NPC.
func runFireball(gs *state.GameState, p ParseResult) (string, error) {
	damage := gs.PlayerAtk
	if arg, ok := p.Arg(0); ok {
		n, err := strconv.ParseInt(arg, 10, 32)
		if err != nil {
			return "", fmt.Errorf("`%s' is not a valid number", arg)
		}
		if n <= 0 {
			return "", errors.New("Damage should be positive and not larger than your ATK")
		}
		damage = int(n)
	}
	if !gs.InBattle {
		return "", errors.New("Not in battle")
	}
	if !gs.ActionQueue.Push(state.Attack(damage)) {
		return "", errors.New("Too many actions queued")
	}
	return fmt.Sprintf("Dealt %d damage", damage), nil
}
