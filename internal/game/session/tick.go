package session

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/inferno/internal/game/npc"
	"github.com/cory-johannsen/inferno/internal/game/state"
	"github.com/cory-johannsen/inferno/internal/game/world"
)

// CommandResult is the outcome of one console line.
type CommandResult struct {
	Line    string
	Message string
	Err     error
}

// Display returns the scrollback text for the result.
func (r CommandResult) Display() string {
	if r.Err != nil {
		return "Error: " + r.Err.Error()
	}
	return r.Message
}

// TickResult is what one tick produced for the frontend.
type TickResult struct {
	Tick     uint64
	Commands []CommandResult
	// Response is nil when the NPC had nothing queued.
	Response *npc.Response
	// Started and Ended carry the NPC id of an encounter that began or finished this tick.
	Started string
	Ended   string
}

// Empty reports whether the tick produced nothing to show.
func (r TickResult) Empty() bool {
	return len(r.Commands) == 0 && r.Response == nil && r.Started == "" && r.Ended == ""
}

// Tick runs one game-loop step:
// console lines are dispatched, an encounter starts if the player stands on an NPC,
// queued actions are fed to the active NPC, at most one NPC response is forwarded,
// and a finished encounter is torn down.
//
// Postcondition: Both action queues are empty. No action is delivered to an NPC
// whose job is completed. An encounter ends only after its outbox is drained.
func (s *Session) Tick() TickResult {
	s.tick++
	res := TickResult{Tick: s.tick}
	gate := s.state.Progress()
	defer func() {
		if p := s.state.Progress(); p != gate {
			s.logger.Info("progress unlocked",
				zap.Stringer("from", gate),
				zap.Stringer("to", p),
				zap.Uint64("tick", s.tick),
			)
		}
	}()

	for _, line := range s.commands.Drain() {
		msg, err := s.dispatcher.Execute(s.state, line)
		res.Commands = append(res.Commands, CommandResult{Line: line, Message: msg, Err: err})
	}

	if s.active == nil {
		// Actions buffered outside an encounter have no receiver.
		s.discard(s.actions.Drain(), "no encounter")
		s.discard(s.state.ActionQueue.Drain(), "no encounter")
		s.startEncounter(&res)
	}

	if s.active != nil {
		for _, a := range s.actions.Drain() {
			s.deliver(a)
		}
		for _, a := range s.state.ActionQueue.Drain() {
			s.deliver(a)
		}

		if resp, ok := s.active.Response(); ok {
			res.Response = &resp
		}
		s.reportDrops()

		if s.active.JobCompleted() && s.active.Pending() == 0 {
			s.endEncounter(&res)
		}
	}
	return res
}

func (s *Session) startEncounter(res *TickResult) {
	p, ok := s.world.NPCAt(posOf(s.state))
	if !ok {
		return
	}
	inst, ok := s.npcs.New(p.ID)
	if !ok {
		// New rejects unknown placements, so this is a content defect.
		panic("session: world places unknown npc " + p.ID)
	}
	s.active = inst
	s.placementID = p.ID
	s.encounterID = uuid.New()
	s.dropped = 0
	s.state.InBattle = true
	s.logger.Info("encounter started",
		zap.String("encounter_id", s.encounterID.String()),
		zap.String("npc", p.ID),
		zap.Uint64("tick", s.tick),
	)
	inst.HandleAction(state.Ping(), s.state)
	res.Started = p.ID
}

func (s *Session) deliver(a state.PlayerAction) {
	if s.active.JobCompleted() {
		s.logger.Debug("action after completion ignored",
			zap.String("encounter_id", s.encounterID.String()),
			zap.Stringer("action", a),
		)
		return
	}
	s.active.HandleAction(a, s.state)
}

func (s *Session) endEncounter(res *TickResult) {
	id := s.active.ID()
	if !s.world.Remove(s.placementID) {
		s.logger.Warn("finished npc was not on the map",
			zap.String("encounter_id", s.encounterID.String()),
			zap.String("placement", s.placementID),
		)
	}
	s.logger.Info("encounter ended",
		zap.String("encounter_id", s.encounterID.String()),
		zap.String("npc", id),
		zap.Int("progress", s.active.Progress()),
		zap.Int("npc_hitpoints", s.active.HitPoints()),
		zap.Uint64("tick", s.tick),
	)
	s.active = nil
	s.placementID = ""
	s.encounterID = uuid.Nil
	s.state.InBattle = false
	res.Ended = id
}

func (s *Session) reportDrops() {
	if n := s.active.Dropped(); n > s.dropped {
		s.logger.Warn("npc responses dropped",
			zap.String("encounter_id", s.encounterID.String()),
			zap.Int("dropped", n-s.dropped),
		)
		s.dropped = n
	}
}

func (s *Session) discard(actions []state.PlayerAction, reason string) {
	if len(actions) == 0 {
		return
	}
	s.logger.Debug("player actions discarded",
		zap.Int("count", len(actions)),
		zap.String("reason", reason),
	)
}

func posOf(gs *state.GameState) world.Position {
	return world.Position{X: gs.PlayerX, Y: gs.PlayerY}
}
