package dropdown

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

// DefaultTypeaheadTimeout is the pause after which the typeahead buffer
// starts over.
const DefaultTypeaheadTimeout = 500 * time.Millisecond

// Typeahead resolves buffered keystrokes to a registered label.
type Typeahead struct {
	timeout time.Duration
	now     func() time.Time
	fuzzy   bool

	buffer    string
	last      time.Time
	anchor    int // index the current search scans after
	lastMatch int
}

// NewTypeahead creates a matcher. A zero timeout selects the default; a nil
// clock selects time.Now.
func NewTypeahead(timeout time.Duration, now func() time.Time) *Typeahead {
	if timeout <= 0 {
		timeout = DefaultTypeaheadTimeout
	}
	if now == nil {
		now = time.Now
	}
	return &Typeahead{timeout: timeout, now: now, anchor: NoIndex, lastMatch: NoIndex}
}

// SetFuzzy enables fuzzy ranking when no label starts with the buffer.
func (t *Typeahead) SetFuzzy(on bool) {
	t.fuzzy = on
}

// Typing reports whether a search is in progress, i.e. the buffer is
// non-empty and has not timed out. While typing, space is part of the query.
func (t *Typeahead) Typing() bool {
	return t.buffer != "" && t.now().Sub(t.last) <= t.timeout
}

// Buffer returns the current search text.
func (t *Typeahead) Buffer() string {
	return t.buffer
}

// Reset clears the buffer.
func (t *Typeahead) Reset() {
	t.buffer = ""
	t.anchor = NoIndex
	t.lastMatch = NoIndex
}

// Match appends r to the buffer and returns the index of the best matching
// label, or NoIndex. Empty labels never match but keep their slot.
func (t *Typeahead) Match(r rune, labels []string, activeIndex, selectedIndex int) int {
	now := t.now()
	if t.buffer != "" && now.Sub(t.last) > t.timeout {
		t.Reset()
	}
	t.last = now

	if t.buffer == "" {
		t.anchor = activeIndex
		if t.anchor == NoIndex {
			t.anchor = selectedIndex
		}
		t.lastMatch = NoIndex
	}
	t.buffer += strings.ToLower(string(r))

	idx := scanPrefix(labels, t.anchor, t.buffer)
	if idx == NoIndex {
		if single, ok := repeatedRune(t.buffer); ok {
			from := t.lastMatch
			if from == NoIndex {
				from = t.anchor
			}
			idx = scanPrefix(labels, from, single)
		}
	}
	if idx == NoIndex && t.fuzzy {
		idx = bestFuzzy(labels, t.buffer)
	}

	if idx == NoIndex {
		t.Reset()
		return NoIndex
	}
	t.lastMatch = idx
	return idx
}

// scanPrefix returns the first index after `after` (wrapping) whose label
// starts with prefix, ignoring case.
func scanPrefix(labels []string, after int, prefix string) int {
	n := len(labels)
	if n == 0 {
		return NoIndex
	}
	start := after + 1
	if start < 0 || start >= n {
		start = 0
	}
	for k := 0; k < n; k++ {
		i := (start + k) % n
		if labels[i] == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(labels[i]), prefix) {
			return i
		}
	}
	return NoIndex
}

// repeatedRune reports whether s is two or more copies of one rune.
func repeatedRune(s string) (string, bool) {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 || len(s) == size {
		return "", false
	}
	for _, r := range s[size:] {
		if r != first {
			return "", false
		}
	}
	return string(first), true
}

func bestFuzzy(labels []string, pattern string) int {
	candidates := make([]string, 0, len(labels))
	slots := make([]int, 0, len(labels))
	for i, l := range labels {
		if l == "" {
			continue
		}
		candidates = append(candidates, l)
		slots = append(slots, i)
	}
	matches := fuzzy.Find(pattern, candidates)
	if len(matches) == 0 {
		return NoIndex
	}
	return slots[matches[0].Index]
}
