// Package catalog is the compiled-in list of every base-game item that can
// appear in a meta save, with which of the three state axes each item uses
// and the value a fresh profile starts with.
package catalog

import (
	"slices"
	"sort"
)

// Entry is one catalog row.
type Entry struct {
	Name       string
	Alerted    Flag
	Discovered Flag
	Unlocked   Flag
}

// Baseline returns the fresh-profile state of the three axes.
func (e Entry) Baseline() (alerted, discovered, unlocked bool) {
	return e.Alerted.Default(), e.Discovered.Default(), e.Unlocked.Default()
}

// HasBaseline reports whether any axis starts out true.
func (e Entry) HasBaseline() bool {
	a, d, u := e.Baseline()
	return a || d || u
}

// Capabilities reports which axes apply to the item.
func (e Entry) Capabilities() (alert, discover, unlock bool) {
	return e.Alerted.IsApplicable(), e.Discovered.IsApplicable(), e.Unlocked.IsApplicable()
}

// Seed returns the entry with every applicable default forced to false.
func (e Entry) Seed() Entry {
	return Entry{
		Name:       e.Name,
		Alerted:    e.Alerted.Seed(),
		Discovered: e.Discovered.Seed(),
		Unlocked:   e.Unlocked.Seed(),
	}
}

var (
	index      map[string]int
	capability []Entry
)

func init() {
	index = make(map[string]int, len(entries))
	capability = make([]Entry, len(entries))
	for i, e := range entries {
		if _, dup := index[e.Name]; dup {
			panic("catalog: duplicate entry " + e.Name)
		}
		index[e.Name] = i
		capability[i] = e.Seed()
	}
}

// Len returns the number of catalog entries.
func Len() int { return len(entries) }

// Lookup returns the entry for name.
func Lookup(name string) (Entry, bool) {
	i, ok := index[name]
	if !ok {
		return Entry{}, false
	}
	return entries[i], true
}

// Contains reports whether name is a known item.
func Contains(name string) bool {
	_, ok := index[name]
	return ok
}

// FullBaseline returns every entry with its true fresh-profile defaults,
// in catalog order.
func FullBaseline() []Entry { return slices.Clone(entries) }

// CapabilityOnly returns every entry with applicable defaults forced to
// false, in catalog order.
func CapabilityOnly() []Entry { return slices.Clone(capability) }

// Names returns every catalog name, sorted.
func Names() []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}

// Entries returns a copy of every catalog row in catalog order.
func Entries() []Entry { return slices.Clone(entries) }
