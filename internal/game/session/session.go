// Package session drives one running game: console lines, player actions,
// encounter detection and the active NPC, advanced one tick at a time.
package session

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/inferno/internal/config"
	"github.com/cory-johannsen/inferno/internal/game/command"
	"github.com/cory-johannsen/inferno/internal/game/npc"
	"github.com/cory-johannsen/inferno/internal/game/state"
	"github.com/cory-johannsen/inferno/internal/game/world"
)

// Session owns the game state, the world and the active NPC slot.
// It is single-threaded: every method must be called by the tick driver's owner.
type Session struct {
	state      *state.GameState
	dispatcher *command.Dispatcher
	npcs       *npc.Registry
	world      *world.World
	logger     *zap.Logger

	commands *state.Queue[string]
	actions  *state.Queue[state.PlayerAction]

	active *npc.Instance
	// placementID is the world placement that started the active encounter.
	placementID string
	encounterID uuid.UUID
	dropped     int
	tick        uint64
}

// New creates a Session with the player standing on the world's start tile.
//
// Precondition: w, dispatcher, and logger must be non-nil.
// Postcondition: Returns an error if a world placement names an unknown NPC.
func New(cfg config.Config, w *world.World, dispatcher *command.Dispatcher, logger *zap.Logger) (*Session, error) {
	npcs := npc.NewRegistry(cfg.Session.OutboxCap)
	for _, p := range w.Placements() {
		if _, ok := npc.KindFromID(p.ID); !ok {
			return nil, fmt.Errorf("world places unknown npc %q", p.ID)
		}
	}

	gs := state.New(cfg.Player, cfg.Session.ActionQueueCap)
	w.Place(gs)

	return &Session{
		state:      gs,
		dispatcher: dispatcher,
		npcs:       npcs,
		world:      w,
		logger:     logger,
		commands:   state.NewQueue[string](cfg.Session.PendingCommandCap),
		actions:    state.NewQueue[state.PlayerAction](cfg.Session.ActionQueueCap),
	}, nil
}

// SubmitCommand buffers a console line for the next tick.
//
// Postcondition: Returns false and drops the line if the buffer is full.
func (s *Session) SubmitCommand(line string) bool {
	if s.commands.Push(line) {
		return true
	}
	s.logger.Warn("console line dropped", zap.Int("capacity", s.commands.Cap()))
	return false
}

// SubmitAction buffers a player action for the next tick.
//
// Postcondition: Returns false and drops the action if the buffer is full.
func (s *Session) SubmitAction(a state.PlayerAction) bool {
	if s.actions.Push(a) {
		return true
	}
	s.logger.Warn("player action dropped",
		zap.Stringer("action", a),
		zap.Int("capacity", s.actions.Cap()),
	)
	return false
}

// Move steps the player one tile. The encounter check happens on the next tick.
func (s *Session) Move(dir world.Direction) error {
	return s.world.Move(s.state, dir)
}

// NPCView describes the active NPC for rendering.
type NPCView struct {
	ID        string
	Name      string
	Info      string
	HitPoints int
	Progress  int
}

// View is everything a frontend renders between ticks.
type View struct {
	Tick       uint64
	State      state.Snapshot
	Map        *world.Map
	Placements []world.Placement
	// NPC is nil when no encounter is active.
	NPC *NPCView
}

// View copies the renderable state.
func (s *Session) View() View {
	v := View{
		Tick:       s.tick,
		State:      s.state.Snapshot(),
		Map:        s.world.Map,
		Placements: s.world.Placements(),
	}
	if s.active != nil {
		v.NPC = &NPCView{
			ID:        s.active.ID(),
			Name:      s.active.Name(),
			Info:      s.active.Info(),
			HitPoints: s.active.HitPoints(),
			Progress:  s.active.Progress(),
		}
	}
	return v
}

// State returns the session's game state.
// The returned value must only be touched by the session's owner.
func (s *Session) State() *state.GameState { return s.state }

// Dispatcher returns the console dispatcher.
func (s *Session) Dispatcher() *command.Dispatcher { return s.dispatcher }
