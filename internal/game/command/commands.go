// Package command provides the console command registry, parser, dispatcher, and built-in commands.
package command

import (
	"fmt"
	"math"
)

// LevelAny is the lowest access level; commands requiring it are runnable by everyone.
const LevelAny = math.MinInt

// Kind identifies a built-in command implementation.
type Kind int

const (
	// KindInvalid is the sentinel for names that resolve to nothing.
	KindInvalid Kind = iota
	KindCommands
	KindHelp
	KindMan
	KindFireball
)

// Command defines a console command entry.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Kind selects the implementation.
	Kind Kind
}

// Synopsis returns the one-line usage of the command.
func (c *Command) Synopsis() string { return c.Kind.Synopsis() }

// ManPage returns the full manual text of the command.
func (c *Command) ManPage() string { return c.Kind.ManPage() }

// RequiredLevel returns the minimum access level needed to run the command.
func (c *Command) RequiredLevel() int { return c.Kind.RequiredLevel() }

// BuiltinCommands returns all built-in commands in registration order.
func BuiltinCommands() []Command {
	return []Command{
		{Name: "commands", Kind: KindCommands},
		{Name: "help", Kind: KindHelp},
		{Name: "man", Aliases: []string{"manual"}, Kind: KindMan},
		{Name: "fireball", Kind: KindFireball},
	}
}

// Synopsis returns the one-line usage for k.
//
// Precondition: k must not be KindInvalid; the sentinel has no help text.
func (k Kind) Synopsis() string {
	switch k {
	case KindCommands:
		return "commands [-v]"
	case KindHelp:
		return "help <command_name>"
	case KindMan:
		return "man <command_name>"
	case KindFireball:
		return "fireball [damage]"
	case KindInvalid:
		panic("command: synopsis requested for the invalid command")
	default:
		panic(fmt.Sprintf("command: unknown kind %d", int(k)))
	}
}

// ManPage returns the manual text for k.
//
// Precondition: k must not be KindInvalid.
func (k Kind) ManPage() string {
	switch k {
	case KindCommands:
		return manCommands
	case KindHelp:
		return manHelp
	case KindMan:
		return manMan
	case KindFireball:
		return manFireball
	case KindInvalid:
		panic("command: manual requested for the invalid command")
	default:
		panic(fmt.Sprintf("command: unknown kind %d", int(k)))
	}
}

// RequiredLevel returns the minimum access level for k.
func (k Kind) RequiredLevel() int {
	switch k {
	case KindInvalid, KindCommands, KindHelp, KindMan:
		return LevelAny
	case KindFireball:
		return 2
	default:
		panic(fmt.Sprintf("command: unknown kind %d", int(k)))
	}
}

const manCommands = `commands - Show available commands

SYNOPSIS
    commands [-v]

DESCRIPTION
    Show a list of commands.

    -v
        Also show the synopses of commands.
`

const manHelp = `help - Display help about a command

SYNOPSIS
    help <command_name>

DESCRIPTION
    Display a brief help about the command given.
    For a more detailed description, use the "man" command.

EXAMPLES
    help fireball
        Show help about the command "fireball".
`

const manMan = `man - Display a command's manual

SYNOPSIS
    man <command_name>
    manual <command_name>

DESCRIPTION
    Show detailed help about the command given.
    For a brief description, use the "help" command.

EXAMPLES
    man fireball
        Show the manual of the command "fireball".
`

const manFireball = `fireball - Summon a fireball

SYNOPSIS
    fireball [damage]

DESCRIPTION
    Throw a fireball at your enemy that deals the damage amount specified.
    The number must be a positive integer not larger than your ATK stat.
    If ` + "`damage'" + ` is omitted, deal damage equal to your ATK.

EXAMPLES
    fireball 10
        Summon a fireball that deals 10 damage to the enemy.
`
