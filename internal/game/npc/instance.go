package npc

import (
	"slices"
	"strings"

	"github.com/cory-johannsen/inferno/internal/game/state"
)

// Instance is a live NPC in an encounter. It is driven by exactly one owner and
// is not safe for concurrent use.
type Instance struct {
	kind           Kind
	progress       int
	previousChoice int
	hitpoints      int
	outbox         *state.Queue[Response]
	dropped        int
}

// NewInstance creates a fresh instance of kind with progress 0 and a full outbox capacity.
//
// Precondition: outboxCap must be > 0.
// Postcondition: Progress() == 0 and HitPoints() equals the kind's maximum.
func NewInstance(kind Kind, outboxCap int) *Instance {
	return &Instance{
		kind:      kind,
		hitpoints: kind.definition().maxHP,
		outbox:    state.NewQueue[Response](outboxCap),
	}
}

// ID returns the NPC identifier.
func (i *Instance) ID() string { return i.kind.ID() }

// Kind returns the NPC kind.
func (i *Instance) Kind() Kind { return i.kind }

// Name returns the display name, which may stay hidden until the script reveals it.
func (i *Instance) Name() string {
	def := i.kind.definition()
	if i.progress >= def.revealAt {
		return def.name
	}
	return def.hidden
}

// Info returns the description card for the NPC.
func (i *Instance) Info() string {
	def := i.kind.definition()
	if i.progress >= def.revealAt {
		return strings.Join(def.info, "\n")
	}
	return def.hidden
}

// Progress returns the script cursor.
func (i *Instance) Progress() int { return i.progress }

// PreviousChoice returns the last answer index recorded by a Respond action.
func (i *Instance) PreviousChoice() int { return i.previousChoice }

// HitPoints returns the remaining hitpoints.
func (i *Instance) HitPoints() int { return i.hitpoints }

// Dropped returns how many responses were discarded because the outbox was full.
func (i *Instance) Dropped() int { return i.dropped }

// Pending returns the number of queued responses.
func (i *Instance) Pending() int { return i.outbox.Len() }

// HandleAction applies one player action.
// Ping re-runs the current step with the recorded choice; Respond records the
// choice first; both advance progress by exactly one. Attack only subtracts hitpoints.
//
// Precondition: JobCompleted() is false for Ping and Respond; the caller stops
// delivering dialogue actions once the encounter is over.
func (i *Instance) HandleAction(action state.PlayerAction, gs *state.GameState) {
	switch action.Kind {
	case state.ActionPing:
		i.interact(gs)
	case state.ActionRespond:
		i.previousChoice = action.Choice
		i.interact(gs)
	case state.ActionAttack:
		i.hitpoints -= action.Damage
	}
}

func (i *Instance) interact(gs *state.GameState) {
	step := i.kind.definition().script.step(i.progress)
	name := i.Name()
	for _, line := range step.lines(i.previousChoice) {
		resp := Response{Message: line.Message, Choices: slices.Clone(line.Choices)}
		if line.Speaker {
			resp.Name = name
		}
		if !i.outbox.Push(resp) {
			i.dropped++
		}
	}
	gs.Unlock(step.Unlock)
	i.progress++
}

// Response pops the oldest queued response.
//
// Postcondition: Returns (zero, false) when nothing is queued.
func (i *Instance) Response() (Response, bool) {
	return i.outbox.Pop()
}

// JobCompleted reports whether the encounter is over.
func (i *Instance) JobCompleted() bool {
	return i.kind.jobCompleted(i.progress, i.hitpoints)
}
