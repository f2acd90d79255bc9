package tui

// History is the console's recall buffer. back counts how far the up arrow
// has walked from the newest line; zero means the player is typing fresh input.
type History struct {
	lines []string
	limit int
	back  int
}

// NewHistory creates a history holding at most limit lines. A limit of 0 disables recall.
//
// Precondition: limit must be >= 0.
func NewHistory(limit int) *History {
	if limit < 0 {
		panic("tui.NewHistory: limit must be >= 0")
	}
	return &History{limit: limit}
}

// Len reports how many lines are held.
func (h *History) Len() int { return len(h.lines) }

// Push records a submitted line and ends any recall in progress. Repeating the
// newest line is a no-op.
func (h *History) Push(line string) {
	h.back = 0
	if h.limit == 0 || h.newest() == line {
		return
	}
	if len(h.lines) == h.limit {
		copy(h.lines, h.lines[1:])
		h.lines[len(h.lines)-1] = line
		return
	}
	h.lines = append(h.lines, line)
}

// Prev steps one line further back, stopping at the oldest.
//
// Postcondition: Returns ("", false) if history is empty.
func (h *History) Prev() (string, bool) {
	if len(h.lines) == 0 {
		return "", false
	}
	if h.back < len(h.lines) {
		h.back++
	}
	return h.at(h.back), true
}

// Next steps one line forward. Stepping past the newest line returns to fresh input.
//
// Postcondition: Returns ("", false) when not recalling or once past the newest line.
func (h *History) Next() (string, bool) {
	if h.back == 0 {
		return "", false
	}
	h.back--
	if h.back == 0 {
		return "", false
	}
	return h.at(h.back), true
}

// ResetCursor returns to fresh input.
func (h *History) ResetCursor() {
	h.back = 0
}

func (h *History) at(back int) string {
	return h.lines[len(h.lines)-back]
}

func (h *History) newest() string {
	if len(h.lines) == 0 {
		return ""
	}
	return h.lines[len(h.lines)-1]
}
