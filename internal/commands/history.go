package commands

import "strings"

// History keeps submitted lines for recall with the arrow keys.
type History struct {
	lines []string
	limit int
	pos   int
}

// NewHistory keeps at most limit lines.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Add appends line unless it repeats the previous one, and resets the recall position.
func (h *History) Add(line string) {
	if line != "" && (len(h.lines) == 0 || h.lines[len(h.lines)-1] != line) {
		h.lines = append(h.lines, line)
		if h.limit > 0 && len(h.lines) > h.limit {
			h.lines = h.lines[len(h.lines)-h.limit:]
		}
	}
	h.pos = len(h.lines)
}

// Prev steps back one line. It stays on the oldest line.
func (h *History) Prev() (string, bool) {
	if len(h.lines) == 0 {
		return "", false
	}
	if h.pos > 0 {
		h.pos--
	}
	return h.lines[h.pos], true
}

// Next steps forward one line. Past the newest it returns "" so the input clears.
func (h *History) Next() string {
	if h.pos < len(h.lines) {
		h.pos++
	}
	if h.pos == len(h.lines) {
		return ""
	}
	return h.lines[h.pos]
}

// Complete extends a "cmd <partial>" line to the only command name starting with partial.
func (r *Registry) Complete(line string) (string, bool) {
	if !strings.HasPrefix(line, prefix) {
		return line, false
	}
	partial := strings.TrimLeft(line[len(prefix):], " ")
	if strings.Contains(partial, " ") {
		return line, false
	}
	var match string
	for _, n := range r.Names() {
		if strings.HasPrefix(n, partial) {
			if match != "" {
				return line, false
			}
			match = n
		}
	}
	if match == "" {
		return line, false
	}
	return prefix + match + " ", true
}
