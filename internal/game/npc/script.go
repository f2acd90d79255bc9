// Package npc provides the NPC interaction engine: progress-driven dialogue and
// battle scripts, live instances, and the registry that constructs them.
package npc

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/inferno/internal/game/state"
)

// Response is one outgoing NPC message.
type Response struct {
	// Message is the text shown to the player.
	Message string
	// Name labels the speaker; empty means the narrator.
	Name string
	// Choices are the answer labels; empty means a single continue affordance.
	Choices []string
}

// Line is a scripted response. When Speaker is set the line is labelled with
// the NPC's name as of the step that emits it.
type Line struct {
	Message string
	Speaker bool
	Choices []string
}

// Step is the script action for one progress value.
type Step struct {
	// Lines are emitted in order.
	Lines []Line
	// Branches replaces Lines when set: the previous choice selects the branch,
	// clamped to the last one.
	Branches [][]Line
	// Unlock is the story gate reached by running this step. The zero value
	// (ProgressIntro) never moves the gate.
	Unlock state.Progress
}

// lines returns the lines to emit for the given previous choice.
func (s Step) lines(choice int) []Line {
	if len(s.Branches) == 0 {
		return s.Lines
	}
	if choice < 0 {
		choice = 0
	}
	if choice >= len(s.Branches) {
		choice = len(s.Branches) - 1
	}
	return s.Branches[choice]
}

// Script maps every progress value in [0, len(Steps)) to a step.
// len(Steps) is the terminal progress.
type Script struct {
	Steps []Step
}

// Terminal returns the progress value at which the script is finished.
func (s Script) Terminal() int { return len(s.Steps) }

// Validate checks that every reachable progress value has a step that emits at
// least one line.
//
// Postcondition: Returns nil or an error naming every malformed step.
func (s Script) Validate() error {
	if len(s.Steps) == 0 {
		return errors.New("script has no steps")
	}
	var errs []error
	for i, step := range s.Steps {
		switch {
		case len(step.Lines) > 0 && len(step.Branches) > 0:
			errs = append(errs, fmt.Errorf("step %d: has both lines and branches", i))
		case len(step.Lines) == 0 && len(step.Branches) == 0:
			errs = append(errs, fmt.Errorf("step %d: emits nothing", i))
		}
		for b, branch := range step.Branches {
			if len(branch) == 0 {
				errs = append(errs, fmt.Errorf("step %d: branch %d emits nothing", i, b))
			}
		}
		for _, branch := range append([][]Line{step.Lines}, step.Branches...) {
			for _, line := range branch {
				if line.Message == "" {
					errs = append(errs, fmt.Errorf("step %d: empty message", i))
				}
			}
		}
	}
	return errors.Join(errs...)
}

// step returns the step for progress.
//
// Precondition: 0 <= progress < Terminal(). Any other value means the script
// does not cover a reachable progress value, which is an authoring defect.
func (s Script) step(progress int) Step {
	if progress < 0 || progress >= len(s.Steps) {
		panic(fmt.Sprintf("npc: script has no step for progress %d (terminal %d)", progress, len(s.Steps)))
	}
	return s.Steps[progress]
}
