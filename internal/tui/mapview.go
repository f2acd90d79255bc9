package tui

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cory-johannsen/inferno/internal/game/world"
)

const (
	glyphPlayer = '@'
	glyphRoad   = '.'
	glyphWall   = '#'
)

// npcGlyph is the upper-cased first letter of the NPC id.
func npcGlyph(id string) rune {
	r, _ := utf8.DecodeRuneInString(id)
	if r == utf8.RuneError {
		return '?'
	}
	return unicode.ToUpper(r)
}

// mapGlyphs lays the map out as plain rune rows, northmost row first.
func mapGlyphs(m *world.Map, placements []world.Placement, player world.Position) [][]rune {
	rows := make([][]rune, 0, m.Height)
	for y := m.Height - 1; y >= 0; y-- {
		row := make([]rune, m.Width)
		for x := 0; x < m.Width; x++ {
			row[x] = glyphWall
			if m.Walkable(world.Position{X: x, Y: y}) {
				row[x] = glyphRoad
			}
		}
		rows = append(rows, row)
	}
	at := func(p world.Position) *rune {
		if !m.Contains(p) {
			return nil
		}
		return &rows[m.Height-1-p.Y][p.X]
	}
	for _, p := range placements {
		if r := at(p.Pos); r != nil {
			*r = npcGlyph(p.ID)
		}
	}
	if r := at(player); r != nil {
		*r = glyphPlayer
	}
	return rows
}

// renderMap styles the map glyphs.
func renderMap(m *world.Map, placements []world.Placement, player world.Position) string {
	var b strings.Builder
	for i, row := range mapGlyphs(m, placements, player) {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, r := range row {
			s := string(r)
			switch r {
			case glyphPlayer:
				b.WriteString(stylePlayer.Render(s))
			case glyphRoad:
				b.WriteString(styleRoad.Render(s))
			case glyphWall:
				b.WriteString(styleWall.Render(s))
			default:
				b.WriteString(styleNPC.Render(s))
			}
		}
	}
	return b.String()
}
