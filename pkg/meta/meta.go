// Package meta loads, edits and saves the game's meta.jkr file: the
// record of which items a profile has alerted, discovered and unlocked.
//
// A Meta always holds every catalog item plus any unknown (modded) names
// found in the file it was loaded from. A Meta is not safe for concurrent
// use.
package meta

import (
	"sort"
	"strings"

	"github.com/jwebster45206/balatro-meta/pkg/catalog"
)

// Meta maps item names to their state.
type Meta struct {
	items map[string]*MetaItem
}

func newMeta(size int) *Meta {
	return &Meta{items: make(map[string]*MetaItem, size)}
}

// Default returns the state of a fresh profile, built from the catalog
// alone.
func Default() *Meta {
	base := catalog.FullBaseline()
	m := newMeta(len(base))
	for _, e := range base {
		m.items[e.Name] = itemFromEntry(e)
	}
	return m
}

// Item returns the named item. The pointer stays owned by m.
func (m *Meta) Item(name string) (*MetaItem, bool) {
	it, ok := m.items[name]
	return it, ok
}

// Len returns the number of items.
func (m *Meta) Len() int { return len(m.items) }

// Names returns the sorted names starting with prefix. An empty prefix
// matches everything.
func (m *Meta) Names(prefix string) []string {
	return m.sortedNames(func(name string) bool { return strings.HasPrefix(name, prefix) })
}

// CategoryNames returns the sorted names belonging to c.
func (m *Meta) CategoryNames(c catalog.Category) []string {
	return m.sortedNames(c.Contains)
}

// Modded returns the sorted names the catalog does not know.
func (m *Meta) Modded() []string {
	return m.sortedNames(func(name string) bool { return !catalog.Contains(name) })
}

func (m *Meta) sortedNames(keep func(string) bool) []string {
	names := make([]string, 0, len(m.items))
	for name := range m.items {
		if keep(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Normalize clears every state field an item has no capability for.
func (m *Meta) Normalize() {
	for _, it := range m.items {
		it.Normalize()
	}
}

// Equal reports whether both hold the same names with the same state.
// Capability flags are not compared.
func (m *Meta) Equal(other *Meta) bool {
	if m == nil || other == nil {
		return m == other
	}
	if len(m.items) != len(other.items) {
		return false
	}
	for name, it := range m.items {
		o, ok := other.items[name]
		if !ok || it.state() != o.state() {
			return false
		}
	}
	return true
}

// Diff returns the sorted names whose state differs between m and other,
// including names present on only one side.
func (m *Meta) Diff(other *Meta) []string {
	seen := make(map[string]struct{})
	for name, it := range m.items {
		if o, ok := other.items[name]; !ok || it.state() != o.state() {
			seen[name] = struct{}{}
		}
	}
	for name := range other.items {
		if _, ok := m.items[name]; !ok {
			seen[name] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Clone returns a deep copy.
func (m *Meta) Clone() *Meta {
	c := newMeta(len(m.items))
	for name, it := range m.items {
		cp := *it
		c.items[name] = &cp
	}
	return c
}
