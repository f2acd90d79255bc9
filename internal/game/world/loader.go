package world

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// walkableTile marks a road tile in the map rows.
const walkableTile = '.'

// yamlWorldFile is the top-level YAML structure for world files.
type yamlWorldFile struct {
	World yamlWorld `yaml:"world"`
}

// yamlWorld is the YAML representation of the world.
type yamlWorld struct {
	Width  int             `yaml:"width"`
	Height int             `yaml:"height"`
	Start  yamlPosition    `yaml:"start"`
	Tiles  []string        `yaml:"tiles"`
	NPCs   []yamlPlacement `yaml:"npcs"`
}

type yamlPosition struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type yamlPlacement struct {
	ID     string `yaml:"id"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Frames int    `yaml:"frames"`
}

// LoadFromFile reads and validates a world YAML file.
//
// Precondition: path must point to a world YAML file.
// Postcondition: Returns a validated World or a non-nil error.
func LoadFromFile(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading world file %s: %w", path, err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses and validates a world from YAML bytes.
// Tile rows are listed top to bottom, so the last row is y = 0. NPC ids are
// lower-cased to match the NPC registry.
//
// Postcondition: Returns a validated World or a non-nil error.
func LoadFromBytes(data []byte) (*World, error) {
	var file yamlWorldFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing world YAML: %w", err)
	}

	m, err := convertYAMLMap(file.World)
	if err != nil {
		return nil, fmt.Errorf("validating world: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("validating world: %w", err)
	}

	placements := make([]Placement, 0, len(file.World.NPCs))
	for _, yp := range file.World.NPCs {
		placements = append(placements, Placement{
			ID:     strings.ToLower(strings.TrimSpace(yp.ID)),
			Pos:    Position{X: yp.X, Y: yp.Y},
			Frames: yp.Frames,
		})
	}
	return New(m, placements)
}

// convertYAMLMap builds the walkability grid from the tile rows.
func convertYAMLMap(yw yamlWorld) (*Map, error) {
	if yw.Width < 1 || yw.Height < 1 {
		return nil, fmt.Errorf("map size must be positive, got %dx%d", yw.Width, yw.Height)
	}
	if len(yw.Tiles) != yw.Height {
		return nil, fmt.Errorf("expected %d tile rows, got %d", yw.Height, len(yw.Tiles))
	}
	m := &Map{
		Width:    yw.Width,
		Height:   yw.Height,
		Start:    Position{X: yw.Start.X, Y: yw.Start.Y},
		walkable: make([][]bool, yw.Width),
	}
	for x := range m.walkable {
		m.walkable[x] = make([]bool, yw.Height)
	}
	for row, line := range yw.Tiles {
		tiles := []rune(line)
		if len(tiles) != yw.Width {
			return nil, fmt.Errorf("tile row %d has %d tiles, expected %d", row, len(tiles), yw.Width)
		}
		y := yw.Height - 1 - row
		for x, tile := range tiles {
			m.walkable[x][y] = tile == walkableTile
		}
	}
	return m, nil
}
