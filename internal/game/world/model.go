// Package world provides the tile map the player walks and the NPC placements on it.
package world

import (
	"errors"
	"fmt"
)

// Direction is a movement direction on the tile map.
type Direction string

const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// Delta returns the tile offset for d. Y grows northward.
//
// Postcondition: Returns ok=false for an unknown direction.
func (d Direction) Delta() (dx, dy int, ok bool) {
	switch d {
	case North:
		return 0, 1, true
	case South:
		return 0, -1, true
	case East:
		return 1, 0, true
	case West:
		return -1, 0, true
	default:
		return 0, 0, false
	}
}

// Position is a tile coordinate. (0, 0) is the bottom-left tile.
type Position struct {
	X int
	Y int
}

// Placement puts an NPC on a tile.
type Placement struct {
	// ID is the NPC identifier passed to the NPC registry.
	ID string
	// Pos is the tile that triggers the encounter.
	Pos Position
	// Frames is the sprite animation frame count. The terminal renderer draws one glyph.
	Frames int
}

// Map is a rectangular grid of walkable and blocked tiles.
type Map struct {
	Width  int
	Height int
	Start  Position
	// walkable is indexed [x][y].
	walkable [][]bool
}

// Contains reports whether p lies on the map.
func (m *Map) Contains(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < m.Width && p.Y < m.Height
}

// Walkable reports whether the player may stand on p.
func (m *Map) Walkable(p Position) bool {
	return m.Contains(p) && m.walkable[p.X][p.Y]
}

// Validate checks map invariants.
//
// Postcondition: Returns nil if valid, or an error describing the first violation.
func (m *Map) Validate() error {
	if m.Width < 1 || m.Height < 1 {
		return fmt.Errorf("map size must be positive, got %dx%d", m.Width, m.Height)
	}
	if len(m.walkable) != m.Width {
		return errors.New("map tiles do not match width")
	}
	if !m.Walkable(m.Start) {
		return fmt.Errorf("start position (%d, %d) is not walkable", m.Start.X, m.Start.Y)
	}
	return nil
}
