package components

// History remembers submitted command lines for up/down recall.
// The zero value keeps nothing; use NewHistory.
type History struct {
	entries []string
	limit   int
	cursor  int
	draft   string
}

// NewHistory creates a history keeping at most limit entries.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Add records a submitted line and resets navigation. Blank lines and
// immediate repeats are not recorded.
func (h *History) Add(line string) {
	defer h.resetCursor()
	if line == "" || h.limit <= 0 {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}
	h.entries = append(h.entries, line)
	if len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
}

// Prev moves one entry back. current is the text being edited, restored
// when navigation returns past the newest entry.
func (h *History) Prev(current string) (string, bool) {
	if h.cursor == 0 {
		return current, false
	}
	if h.cursor == len(h.entries) {
		h.draft = current
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Next moves one entry forward, ending at the saved draft.
func (h *History) Next() (string, bool) {
	if h.cursor >= len(h.entries) {
		return "", false
	}
	h.cursor++
	if h.cursor == len(h.entries) {
		return h.draft, true
	}
	return h.entries[h.cursor], true
}

// Len returns the number of remembered entries.
func (h *History) Len() int { return len(h.entries) }

func (h *History) resetCursor() {
	h.cursor = len(h.entries)
	h.draft = ""
}
