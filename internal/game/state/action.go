package state

import "fmt"

// ActionKind tags a PlayerAction variant.
type ActionKind int

const (
	// ActionPing starts or continues an encounter without a player choice.
	ActionPing ActionKind = iota
	// ActionRespond answers the current dialogue question.
	ActionRespond
	// ActionAttack damages the active NPC.
	ActionAttack
)

// PlayerAction is a discrete player input delivered to the active NPC.
// Choice is meaningful only for ActionRespond and Damage only for ActionAttack.
type PlayerAction struct {
	Kind   ActionKind
	Choice int
	Damage int
}

// Ping returns a Ping action.
func Ping() PlayerAction { return PlayerAction{Kind: ActionPing} }

// Respond returns a Respond action selecting the choice at index.
//
// Precondition: index must be >= 0.
func Respond(index int) PlayerAction {
	return PlayerAction{Kind: ActionRespond, Choice: index}
}

// Attack returns an Attack action dealing damage.
func Attack(damage int) PlayerAction {
	return PlayerAction{Kind: ActionAttack, Damage: damage}
}

// String renders the action for logs.
func (a PlayerAction) String() string {
	switch a.Kind {
	case ActionPing:
		return "Ping"
	case ActionRespond:
		return fmt.Sprintf("Respond(%d)", a.Choice)
	case ActionAttack:
		return fmt.Sprintf("Attack(%d)", a.Damage)
	default:
		return fmt.Sprintf("PlayerAction(%d)", int(a.Kind))
	}
}
