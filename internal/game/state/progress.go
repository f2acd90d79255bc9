package state

// Progress is the global story gate. Values are ordered; the game only moves forward.
type Progress int

const (
	ProgressIntro Progress = iota
	ProgressTutorial
	ProgressHasPanel
	ProgressHasTerminal
)

// String returns the progress name.
func (p Progress) String() string {
	switch p {
	case ProgressIntro:
		return "Intro"
	case ProgressTutorial:
		return "Tutorial"
	case ProgressHasPanel:
		return "HasPanel"
	case ProgressHasTerminal:
		return "HasTerminal"
	default:
		return "Unknown"
	}
}

// AtLeast reports whether p has reached gate.
func (p Progress) AtLeast(gate Progress) bool {
	return p >= gate
}
