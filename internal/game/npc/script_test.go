package npc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinScriptsValidate(t *testing.T) {
	for _, k := range Kinds {
		assert.NoError(t, k.definition().script.Validate(), "kind %q", k.ID())
	}
}

func TestScriptValidate_Empty(t *testing.T) {
	assert.Error(t, Script{}.Validate())
}

func TestScriptValidate_ReportsEveryBadStep(t *testing.T) {
	s := Script{Steps: []Step{
		{},
		{Lines: lines(narrate("ok"))},
		{Lines: lines(narrate("a")), Branches: [][]Line{lines(narrate("b"))}},
		{Branches: [][]Line{lines(narrate("a")), nil}},
		{Lines: lines(narrate(""))},
	}}
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 0: emits nothing")
	assert.Contains(t, err.Error(), "step 2: has both lines and branches")
	assert.Contains(t, err.Error(), "step 3: branch 1 emits nothing")
	assert.Contains(t, err.Error(), "step 4: empty message")
	assert.NotContains(t, err.Error(), "step 1")
}

func TestStepLines_ClampsChoice(t *testing.T) {
	step := Step{Branches: [][]Line{lines(narrate("zero")), lines(narrate("one"))}}
	assert.Equal(t, "zero", step.lines(0)[0].Message)
	assert.Equal(t, "one", step.lines(1)[0].Message)
	assert.Equal(t, "one", step.lines(7)[0].Message)
	assert.Equal(t, "zero", step.lines(-1)[0].Message)
}

func TestScriptStep_UnmappedProgressPanics(t *testing.T) {
	s := Script{Steps: []Step{{Lines: lines(narrate("only"))}}}
	assert.NotPanics(t, func() { s.step(0) })
	assert.Panics(t, func() { s.step(1) })
	assert.Panics(t, func() { s.step(-1) })
}
