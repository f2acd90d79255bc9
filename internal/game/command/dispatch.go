package command

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/inferno/internal/game/state"
)

// ErrAccessDenied is returned when the player's level is below a command's requirement.
var ErrAccessDenied = errors.New("You do not have access to run that command.\nThis incident will be reported.")

// Dispatcher parses console lines and runs the resolved command against the game state.
type Dispatcher struct {
	registry *Registry
	logger   *zap.Logger
}

// NewDispatcher creates a Dispatcher.
//
// Precondition: registry and logger must be non-nil.
func NewDispatcher(registry *Registry, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{registry: registry, logger: logger}
}

// Registry returns the dispatcher's command registry.
func (d *Dispatcher) Registry() *Registry { return d.registry }

// Execute parses line, resolves the command, enforces the access level, and runs it.
// Unresolvable names run the invalid-command sentinel, which is never access-blocked.
//
// Precondition: gs must be non-nil.
// Postcondition: Returns the command's message, or an error whose text is meant
// for display. The command is not run when access is denied.
func (d *Dispatcher) Execute(gs *state.GameState, line string) (string, error) {
	parsed := Parse(line)

	kind := KindInvalid
	if cmd, ok := d.registry.Resolve(parsed.Name); ok {
		kind = cmd.Kind
	}

	if gs.PlayerLevel < kind.RequiredLevel() {
		d.logger.Warn("command access denied",
			zap.String("command", parsed.Name),
			zap.Int("player_level", gs.PlayerLevel),
			zap.Int("required_level", kind.RequiredLevel()),
		)
		return "", ErrAccessDenied
	}

	msg, err := d.run(kind, gs, parsed)
	d.logger.Debug("command executed",
		zap.String("command", parsed.Name),
		zap.Int("argc", len(parsed.Argv)),
		zap.Bool("ok", err == nil),
	)
	return msg, err
}

func (d *Dispatcher) run(kind Kind, gs *state.GameState, p ParseResult) (string, error) {
	switch kind {
	case KindInvalid:
		return "", fmt.Errorf("Invalid command: %s", p.Name)
	case KindCommands:
		return d.runCommands(gs, p)
	case KindHelp:
		return d.runLookup(gs, p, KindHelp, (*Command).Synopsis)
	case KindMan:
		return d.runLookup(gs, p, KindMan, (*Command).ManPage)
	case KindFireball:
		return runFireball(gs, p)
	default:
		panic(fmt.Sprintf("command: unknown kind %d", int(kind)))
	}
}
