// Package charmap holds the immutable source-character to substitute lookup.
package charmap

// Entry maps a source character to its lowercase and uppercase substitutes.
type Entry struct {
	Source rune `json:"source" yaml:"source"`
	Lower  rune `json:"lower" yaml:"lower"`
	Upper  rune `json:"upper" yaml:"upper"`
}

// Map is built once and never mutated, so it is safe for concurrent reads.
type Map struct {
	lower      map[rune]rune
	upper      map[rune]rune
	order      []rune
	duplicates []rune
}

// Build creates a Map from entries in order. When a source appears more than
// once the last entry wins; the repeated sources are reported by Duplicates.
func Build(entries []Entry) *Map {
	m := &Map{
		lower: make(map[rune]rune, len(entries)),
		upper: make(map[rune]rune, len(entries)),
	}
	seen := make(map[rune]bool, len(entries))
	for _, e := range entries {
		if _, ok := m.lower[e.Source]; ok {
			if !seen[e.Source] {
				m.duplicates = append(m.duplicates, e.Source)
				seen[e.Source] = true
			}
		} else {
			m.order = append(m.order, e.Source)
		}
		m.lower[e.Source] = e.Lower
		m.upper[e.Source] = e.Upper
	}
	return m
}

// Lookup returns the uppercase substitute when upper is set, the lowercase one otherwise.
func (m *Map) Lookup(source rune, upper bool) (rune, bool) {
	var (
		r  rune
		ok bool
	)
	if upper {
		r, ok = m.upper[source]
	} else {
		r, ok = m.lower[source]
	}
	return r, ok
}

// Len returns the number of distinct sources.
func (m *Map) Len() int {
	return len(m.order)
}

// Duplicates returns the sources that appeared more than once during Build,
// in the order they were first repeated.
func (m *Map) Duplicates() []rune {
	out := make([]rune, len(m.duplicates))
	copy(out, m.duplicates)
	return out
}

// Entries returns the effective table in first-seen order.
func (m *Map) Entries() []Entry {
	out := make([]Entry, 0, len(m.order))
	for _, src := range m.order {
		out = append(out, Entry{Source: src, Lower: m.lower[src], Upper: m.upper[src]})
	}
	return out
}
