package app

// History is the bounded list of submitted lines, newest last, with a
// cursor for walking through it from the scratchpad.
type History struct {
	entries []string
	limit   int
	// pos is the entry being shown; len(entries) means the draft.
	pos   int
	draft string
}

// NewHistory returns an empty history holding at most limit lines. A limit
// below one keeps nothing.
func NewHistory(limit int) *History {
	return &History{limit: max(0, limit)}
}

// Add appends line and resets the cursor. Repeating the newest line does
// not add it again.
func (h *History) Add(line string) {
	defer h.Reset()
	if line == "" || h.limit == 0 {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}
	h.entries = append(h.entries, line)
	if over := len(h.entries) - h.limit; over > 0 {
		h.entries = append(h.entries[:0], h.entries[over:]...)
	}
}

// Prev moves to the next older line. current is the scratchpad text,
// remembered as the draft when leaving it.
func (h *History) Prev(current string) (string, bool) {
	if h.pos == 0 || len(h.entries) == 0 {
		return "", false
	}
	if h.pos == len(h.entries) {
		h.draft = current
	}
	h.pos--
	return h.entries[h.pos], true
}

// Next moves to the next newer line, ending at the draft.
func (h *History) Next() (string, bool) {
	if h.pos >= len(h.entries) {
		return "", false
	}
	h.pos++
	if h.pos == len(h.entries) {
		return h.draft, true
	}
	return h.entries[h.pos], true
}

// Reset puts the cursor back after the newest line and forgets the draft.
func (h *History) Reset() {
	h.pos = len(h.entries)
	h.draft = ""
}

// Clear drops every line.
func (h *History) Clear() {
	h.entries = nil
	h.Reset()
}

// Len is the number of lines kept.
func (h *History) Len() int { return len(h.entries) }

// Entries returns the lines, oldest first.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}
