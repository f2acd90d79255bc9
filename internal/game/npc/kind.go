package npc

import (
	"fmt"
	"math"
	"strings"
)

// Kind identifies an NPC implementation.
type Kind int

const (
	KindAlice Kind = iota + 1
	KindSegfault
)

// Kinds lists every NPC kind.
var Kinds = []Kind{KindAlice, KindSegfault}

// definition holds the static data of one NPC kind.
type definition struct {
	id       string
	maxHP    int
	hidden   string // name before reveal
	name     string
	revealAt int // progress at which name becomes visible
	info     []string
	script   Script
}

// KindFromID resolves an NPC identifier, ignoring surrounding whitespace and case.
//
// Postcondition: Returns (kind, true) if the identifier is known.
func KindFromID(id string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(id)) {
	case "alice":
		return KindAlice, true
	case "segfault":
		return KindSegfault, true
	default:
		return 0, false
	}
}

func (k Kind) definition() *definition {
	switch k {
	case KindAlice:
		return &aliceDefinition
	case KindSegfault:
		return &segfaultDefinition
	default:
		panic(fmt.Sprintf("npc: unknown kind %d", int(k)))
	}
}

// ID returns the identifier of the kind.
func (k Kind) ID() string { return k.definition().id }

// jobCompleted reports whether an instance of k with the given progress and
// hitpoints has finished its encounter.
func (k Kind) jobCompleted(progress, hitpoints int) bool {
	terminal := k.definition().script.Terminal()
	switch k {
	case KindAlice:
		return progress >= terminal
	case KindSegfault:
		return progress >= terminal || hitpoints <= 0
	default:
		panic(fmt.Sprintf("npc: unknown kind %d", int(k)))
	}
}

// unkillable is the hitpoint pool of NPCs that cannot be fought.
const unkillable = math.MaxInt32

func init() {
	for _, k := range Kinds {
		if err := k.definition().script.Validate(); err != nil {
			panic(fmt.Sprintf("npc: script for %q is malformed: %v", k.ID(), err))
		}
	}
}
