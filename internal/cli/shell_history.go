package cli

import "strings"

const maxHistoryLines = 500

// shellHistory is the in-memory command history of one shell run. It is
// never written to disk.
type shellHistory struct {
	lines []string
	idx   int
}

// add records line, skipping blanks and immediate repeats, and resets the
// cursor past the newest entry.
func (h *shellHistory) add(line string) {
	line = strings.TrimSpace(line)
	if line != "" && (len(h.lines) == 0 || h.lines[len(h.lines)-1] != line) {
		h.lines = append(h.lines, line)
		if len(h.lines) > maxHistoryLines {
			h.lines = h.lines[len(h.lines)-maxHistoryLines:]
		}
	}
	h.idx = len(h.lines)
}

// prev moves toward older entries. ok is false when there is none.
func (h *shellHistory) prev() (string, bool) {
	if h.idx == 0 {
		return "", false
	}
	h.idx--
	return h.lines[h.idx], true
}

// next moves toward newer entries; past the newest it yields "".
func (h *shellHistory) next() string {
	if h.idx < len(h.lines)-1 {
		h.idx++
		return h.lines[h.idx]
	}
	h.idx = len(h.lines)
	return ""
}
