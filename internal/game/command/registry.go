package command

import (
	"fmt"
	"strings"
)

// Registry maps command names and aliases to Command definitions.
// Names are matched case-insensitively; listing preserves registration order.
type Registry struct {
	order    []*Command          // registration order
	commands map[string]*Command // canonical name → command
	aliases  map[string]string   // alias → canonical name
}

// NewRegistry creates a Registry populated with the given commands.
//
// Precondition: No two commands may share a canonical name or alias; no command
// may use KindInvalid.
// Postcondition: Returns a Registry or an error on name/alias collisions.
func NewRegistry(cmds []Command) (*Registry, error) {
	r := &Registry{
		commands: make(map[string]*Command, len(cmds)),
		aliases:  make(map[string]string),
	}

	for i := range cmds {
		cmd := &cmds[i]
		cmd.Name = strings.ToLower(strings.TrimSpace(cmd.Name))
		if cmd.Name == "" {
			return nil, fmt.Errorf("command %d has an empty name", i)
		}
		if cmd.Kind == KindInvalid {
			return nil, fmt.Errorf("command %q uses the invalid kind", cmd.Name)
		}
		if _, exists := r.commands[cmd.Name]; exists {
			return nil, fmt.Errorf("duplicate command name: %q", cmd.Name)
		}
		if _, exists := r.aliases[cmd.Name]; exists {
			return nil, fmt.Errorf("command name %q conflicts with an existing alias", cmd.Name)
		}
		r.commands[cmd.Name] = cmd
		r.order = append(r.order, cmd)

		for _, alias := range cmd.Aliases {
			alias = strings.ToLower(alias)
			if _, exists := r.commands[alias]; exists {
				return nil, fmt.Errorf("alias %q conflicts with command name %q", alias, alias)
			}
			if existing, exists := r.aliases[alias]; exists {
				return nil, fmt.Errorf("duplicate alias %q: used by %q and %q", alias, existing, cmd.Name)
			}
			r.aliases[alias] = cmd.Name
		}
	}

	return r, nil
}

// DefaultRegistry creates a Registry with all built-in commands.
//
// Postcondition: Returns a Registry with all built-in commands registered.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(BuiltinCommands())
	if err != nil {
		panic(fmt.Sprintf("building default registry: %v", err))
	}
	return r
}

// Resolve looks up a command by name or alias. Surrounding whitespace and
// letter case are ignored.
//
// Postcondition: Returns (command, true) if found, or (nil, false).
func (r *Registry) Resolve(name string) (*Command, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if cmd, ok := r.commands[key]; ok {
		return cmd, true
	}
	if canonical, ok := r.aliases[key]; ok {
		return r.commands[canonical], true
	}
	return nil, false
}

// ListCommands returns the canonical names starting with prefix whose required
// level is at most level, in registration order. The prefix match is case-sensitive.
//
// Postcondition: Returns a non-nil slice (may be empty).
func (r *Registry) ListCommands(prefix string, level int) []string {
	names := make([]string, 0, len(r.order))
	for _, cmd := range r.order {
		if strings.HasPrefix(cmd.Name, prefix) && cmd.RequiredLevel() <= level {
			names = append(names, cmd.Name)
		}
	}
	return names
}

// Commands returns all registered commands in registration order.
func (r *Registry) Commands() []*Command {
	out := make([]*Command, len(r.order))
	copy(out, r.order)
	return out
}
