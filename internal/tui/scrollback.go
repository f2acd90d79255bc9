package tui

// Scrollback holds console output entries, discarding the oldest past its cap.
type Scrollback struct {
	entries []string
	max     int
}

// NewScrollback creates a scrollback of at most max entries.
//
// Precondition: max must be > 0.
func NewScrollback(max int) *Scrollback {
	if max <= 0 {
		panic("tui.NewScrollback: max must be > 0")
	}
	return &Scrollback{max: max}
}

// Append adds an entry.
//
// Postcondition: Len() <= the configured cap; the oldest entries go first.
func (s *Scrollback) Append(entry string) {
	s.entries = append(s.entries, entry)
	if over := len(s.entries) - s.max; over > 0 {
		s.entries = append(s.entries[:0:0], s.entries[over:]...)
	}
}

// Entries returns a copy of the entries, oldest first.
func (s *Scrollback) Entries() []string {
	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *Scrollback) Len() int { return len(s.entries) }
