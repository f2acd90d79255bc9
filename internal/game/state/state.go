// Package state holds the single mutable game state shared by the console and NPC engine.
package state

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/inferno/internal/config"
)

// GameState is the mutable state of one running game session.
// It is owned by the tick driver and lent to command and NPC handlers for the
// duration of one call; handlers must not retain it.
//
// PlayerHitPoints is not clamped to [0, PlayerMaxHP].
type GameState struct {
	PlayerLevel     int
	PlayerHitPoints int
	PlayerMaxHP     int
	PlayerAtk       int
	PlayerDef       int
	PlayerX         int
	PlayerY         int
	InBattle        bool
	IsShowingCG     bool
	// ActionQueue collects actions produced by commands during a tick.
	ActionQueue *Queue[PlayerAction]

	progress Progress
}

// New creates a GameState with the player's starting stats.
//
// Precondition: queueCap must be > 0.
// Postcondition: Progress() is ProgressIntro and InBattle is false.
func New(player config.PlayerConfig, queueCap int) *GameState {
	return &GameState{
		PlayerLevel:     player.Level,
		PlayerHitPoints: player.HitPoints,
		PlayerMaxHP:     player.MaxHP,
		PlayerAtk:       player.Atk,
		PlayerDef:       player.Def,
		ActionQueue:     NewQueue[PlayerAction](queueCap),
		progress:        ProgressIntro,
	}
}

// Progress returns the current story gate.
func (s *GameState) Progress() Progress {
	return s.progress
}

// Unlock advances the story gate to p.
//
// Postcondition: Progress() never decreases; returns true iff the gate moved.
func (s *GameState) Unlock(p Progress) bool {
	if p <= s.progress {
		return false
	}
	s.progress = p
	return true
}

// PlayerDetails renders the stats shown in the details panel.
func (s *GameState) PlayerDetails() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your access level: %d\n", s.PlayerLevel)
	fmt.Fprintf(&b, "HP: %d / %d\n", s.PlayerHitPoints, s.PlayerMaxHP)
	fmt.Fprintf(&b, "ATK: %d\n", s.PlayerAtk)
	fmt.Fprintf(&b, "DEF: %d", s.PlayerDef)
	return b.String()
}

// Snapshot is a read-only copy of the state fields collaborators render from.
type Snapshot struct {
	PlayerLevel     int
	PlayerHitPoints int
	PlayerMaxHP     int
	PlayerAtk       int
	PlayerDef       int
	PlayerX         int
	PlayerY         int
	InBattle        bool
	IsShowingCG     bool
	Progress        Progress
	Details         string
}

// Snapshot copies the queryable fields.
func (s *GameState) Snapshot() Snapshot {
	return Snapshot{
		PlayerLevel:     s.PlayerLevel,
		PlayerHitPoints: s.PlayerHitPoints,
		PlayerMaxHP:     s.PlayerMaxHP,
		PlayerAtk:       s.PlayerAtk,
		PlayerDef:       s.PlayerDef,
		PlayerX:         s.PlayerX,
		PlayerY:         s.PlayerY,
		InBattle:        s.InBattle,
		IsShowingCG:     s.IsShowingCG,
		Progress:        s.progress,
		Details:         s.PlayerDetails(),
	}
}
