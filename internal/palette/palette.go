// Package palette provides the muted-to-vivid color lookup table.
// Muted codes are 6-digit RGB hex strings, vivid codes are 8-digit RGBA
// hex strings. The table is built once and never mutated afterwards.
package palette

import (
	"sort"
	"strings"
)

// Resolver resolves a normalized muted code to its vivid code.
// Implementations never mutate their table after construction, so a
// Resolver is safe for concurrent reads.
type Resolver interface {
	// Resolve returns the vivid code for a normalized muted code.
	// The second return value is false when the code has no mapping.
	Resolve(code string) (string, bool)
}

// Entry is a single muted → vivid pair.
type Entry struct {
	Muted string
	Vivid string
}

// Palette is an immutable exact-match lookup table.
type Palette struct {
	table map[string]string
}

// New builds a palette from a muted → vivid mapping.
// The mapping is copied; later changes to the argument are not seen.
func New(table map[string]string) *Palette {
	m := make(map[string]string, len(table))
	for muted, vivid := range table {
		m[muted] = vivid
	}
	return &Palette{table: m}
}

// Resolve looks up a normalized muted code.
// No fuzzy matching, no case folding, no default value: the input must
// already have gone through Normalize. Any string is a legal key; a key
// of the wrong length or charset simply never matches.
func (p *Palette) Resolve(code string) (string, bool) {
	vivid, ok := p.table[code]
	return vivid, ok
}

// Len returns the number of entries in the table.
func (p *Palette) Len() int {
	return len(p.table)
}

// Entries returns all pairs sorted by muted code.
func (p *Palette) Entries() []Entry {
	entries := make([]Entry, 0, len(p.table))
	for muted, vivid := range p.table {
		entries = append(entries, Entry{Muted: muted, Vivid: vivid})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Muted < entries[j].Muted
	})

	return entries
}

// Normalize prepares raw user input for lookup: trims surrounding
// whitespace, lowercases, and strips exactly one leading '#'. A string
// with several leading '#' keeps the rest after removing the first.
// No length or charset validation happens here; an oversized or non-hex
// string is passed through and will simply miss.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if strings.HasPrefix(s, "#") {
		s = s[1:]
	}
	return s
}

// Ensure Palette implements Resolver
var _ Resolver = (*Palette)(nil)
