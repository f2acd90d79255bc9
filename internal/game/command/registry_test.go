package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r)
	assert.Len(t, r.Commands(), 4)
}

func TestResolve_CanonicalName(t *testing.T) {
	r := DefaultRegistry()

	cmd, ok := r.Resolve("fireball")
	assert.True(t, ok)
	assert.Equal(t, "fireball", cmd.Name)
	assert.Equal(t, KindFireball, cmd.Kind)
}

func TestResolve_Alias(t *testing.T) {
	r := DefaultRegistry()

	cmd, ok := r.Resolve("manual")
	assert.True(t, ok)
	assert.Equal(t, "man", cmd.Name)
}

func TestResolve_CaseAndWhitespaceInsensitive(t *testing.T) {
	r := DefaultRegistry()

	for _, input := range []string{"HELP", " help ", "Help\t", "MaNuAl"} {
		_, ok := r.Resolve(input)
		assert.True(t, ok, "input %q should resolve", input)
	}
}

func TestResolve_NotFound(t *testing.T) {
	r := DefaultRegistry()

	_, ok := r.Resolve("teleport")
	assert.False(t, ok)
	_, ok = r.Resolve("")
	assert.False(t, ok)
}

func TestListCommands_LevelZero(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"commands", "help", "man"}, r.ListCommands("", 0))
}

func TestListCommands_LevelTwo(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"commands", "help", "man", "fireball"}, r.ListCommands("", 2))
}

func TestListCommands_Prefix(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"help"}, r.ListCommands("he", 0))
	assert.Equal(t, []string{"fireball"}, r.ListCommands("f", 5))
	assert.Empty(t, r.ListCommands("f", 1))
	assert.Empty(t, r.ListCommands("HE", 0), "prefix match is case-sensitive")
}

func TestListCommands_RegistrationOrder(t *testing.T) {
	r, err := NewRegistry([]Command{
		{Name: "man", Kind: KindMan},
		{Name: "commands", Kind: KindCommands},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"man", "commands"}, r.ListCommands("", 0))
}

func TestNewRegistry_DuplicateName(t *testing.T) {
	cmds := []Command{
		{Name: "help", Kind: KindHelp},
		{Name: "help", Kind: KindMan},
	}
	_, err := NewRegistry(cmds)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate command name")
}

func TestNewRegistry_DuplicateAlias(t *testing.T) {
	cmds := []Command{
		{Name: "help", Aliases: []string{"h"}, Kind: KindHelp},
		{Name: "man", Aliases: []string{"h"}, Kind: KindMan},
	}
	_, err := NewRegistry(cmds)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate alias")
}

func TestNewRegistry_InvalidKindRejected(t *testing.T) {
	_, err := NewRegistry([]Command{{Name: "bogus", Kind: KindInvalid}})
	assert.Error(t, err)
}

func TestKindInvalid_HelpTextPanics(t *testing.T) {
	assert.Panics(t, func() { _ = KindInvalid.Synopsis() })
	assert.Panics(t, func() { _ = KindInvalid.ManPage() })
	assert.Equal(t, LevelAny, KindInvalid.RequiredLevel())
}

func TestPropertyAllAliasesResolveToCanonical(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := DefaultRegistry()
		cmds := r.Commands()
		idx := rapid.IntRange(0, len(cmds)-1).Draw(t, "cmd_idx")
		cmd := cmds[idx]

		resolved, ok := r.Resolve(cmd.Name)
		if !ok || resolved.Name != cmd.Name {
			t.Fatalf("canonical name %q did not resolve to itself", cmd.Name)
		}
		for _, alias := range cmd.Aliases {
			aliasResolved, ok := r.Resolve(alias)
			if !ok || aliasResolved.Name != cmd.Name {
				t.Fatalf("alias %q did not resolve to %q", alias, cmd.Name)
			}
		}
	})
}

func TestPropertyListCommandsMatchesFilter(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := DefaultRegistry()
		prefix := rapid.StringMatching(`[a-z]{0,3}`).Draw(t, "prefix")
		level := rapid.IntRange(-5, 5).Draw(t, "level")

		got := r.ListCommands(prefix, level)
		var want []string
		for _, cmd := range r.Commands() {
			if len(cmd.Name) >= len(prefix) && cmd.Name[:len(prefix)] == prefix && cmd.RequiredLevel() <= level {
				want = append(want, cmd.Name)
			}
		}
		if len(got) != len(want) {
			t.Fatalf("ListCommands(%q, %d) = %v, want %v", prefix, level, got, want)
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("ListCommands(%q, %d) = %v, want %v", prefix, level, got, want)
			}
		}
	})
}
