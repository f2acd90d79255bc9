package world

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cory-johannsen/inferno/internal/game/state"
)

// ErrInEncounter is returned when the player tries to move during an encounter.
var ErrInEncounter = errors.New("you cannot move during an encounter")

// World is the loaded map plus the NPCs still waiting on it.
// It is owned by the tick driver and is not safe for concurrent use.
type World struct {
	Map        *Map
	placements []Placement
}

// New creates a World.
//
// Precondition: m must be validated.
// Postcondition: Returns an error if a placement is off the map, not walkable,
// duplicated ignoring case, or has an empty ID.
func New(m *Map, placements []Placement) (*World, error) {
	seen := make(map[string]bool, len(placements))
	for _, p := range placements {
		if p.ID == "" {
			return nil, errors.New("npc placement has an empty id")
		}
		key := strings.ToLower(p.ID)
		if seen[key] {
			return nil, fmt.Errorf("duplicate npc placement %q", p.ID)
		}
		seen[key] = true
		if !m.Walkable(p.Pos) {
			return nil, fmt.Errorf("npc %q placed on unwalkable tile (%d, %d)", p.ID, p.Pos.X, p.Pos.Y)
		}
		if p.Frames < 0 {
			return nil, fmt.Errorf("npc %q has negative frame count", p.ID)
		}
	}
	out := make([]Placement, len(placements))
	copy(out, placements)
	return &World{Map: m, placements: out}, nil
}

// Placements returns the remaining NPC placements in file order.
func (w *World) Placements() []Placement {
	out := make([]Placement, len(w.placements))
	copy(out, w.placements)
	return out
}

// NPCAt returns the first remaining NPC placed on pos.
//
// Postcondition: Returns (placement, true) if one is found.
func (w *World) NPCAt(pos Position) (Placement, bool) {
	for _, p := range w.placements {
		if p.Pos == pos {
			return p, true
		}
	}
	return Placement{}, false
}

// Remove takes the NPC off the map so it cannot be encountered again.
//
// Postcondition: Returns false if id was not placed.
func (w *World) Remove(id string) bool {
	for i, p := range w.placements {
		if p.ID == id {
			w.placements = append(w.placements[:i], w.placements[i+1:]...)
			return true
		}
	}
	return false
}

// Place puts the player on the map's start tile.
func (w *World) Place(gs *state.GameState) {
	gs.PlayerX = w.Map.Start.X
	gs.PlayerY = w.Map.Start.Y
}

// Move steps the player one tile in dir.
//
// Postcondition: On success the player's position is updated; on error it is unchanged.
func (w *World) Move(gs *state.GameState, dir Direction) error {
	if gs.InBattle {
		return ErrInEncounter
	}
	dx, dy, ok := dir.Delta()
	if !ok {
		return fmt.Errorf("unknown direction %q", dir)
	}
	next := Position{X: gs.PlayerX + dx, Y: gs.PlayerY + dy}
	if !w.Map.Walkable(next) {
		return fmt.Errorf("you cannot go %s", dir)
	}
	gs.PlayerX, gs.PlayerY = next.X, next.Y
	return nil
}
