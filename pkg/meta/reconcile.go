package meta

import (
	"sort"
	"strings"

	"github.com/jwebster45206/balatro-meta/pkg/catalog"
	"github.com/jwebster45206/balatro-meta/pkg/luatable"
)

// Subtable names at the root of a meta document, in file order.
const (
	SubtableAlerted    = "alerted"
	SubtableDiscovered = "discovered"
	SubtableUnlocked   = "unlocked"
)

var subtables = []string{SubtableAlerted, SubtableDiscovered, SubtableUnlocked}

// Decode pulls the three flat name to bool maps out of a parsed document.
// Entries with non-string keys or non-boolean values are ignored.
func Decode(root *luatable.Table) (alerted, discovered, unlocked map[string]bool, err error) {
	maps := make([]map[string]bool, len(subtables))
	for i, name := range subtables {
		sub, err := luatable.LookupSubtable(root, name)
		if err != nil {
			return nil, nil, nil, &Error{Kind: KindMissingSubtable, Subtable: name, Err: err}
		}
		maps[i], _ = sub.BoolMap()
	}
	return maps[0], maps[1], maps[2], nil
}

// Reconcile merges decoded maps with the catalog.
//
// Catalog items start from their capability shape with every state false.
// A name present in any decoded map takes the decoded value on each axis,
// false where that map lacks it. Unknown names become items with every
// capability. A catalog item the file never mentions gets its fresh-profile
// baseline. Finally every item is normalized against its capabilities.
func Reconcile(alerted, discovered, unlocked map[string]bool) *Meta {
	seed := catalog.CapabilityOnly()
	m := newMeta(len(seed))
	for _, e := range seed {
		m.items[e.Name] = itemFromEntry(e)
	}

	mentioned := make(map[string]struct{}, len(alerted)+len(discovered)+len(unlocked))
	for _, src := range []map[string]bool{alerted, discovered, unlocked} {
		for name := range src {
			mentioned[name] = struct{}{}
		}
	}

	for name := range mentioned {
		a, d, u := alerted[name], discovered[name], unlocked[name]
		if it, ok := m.items[name]; ok {
			it.Alerted, it.Discovered, it.Unlocked = a, d, u
			continue
		}
		m.items[name] = moddedItem(a, d, u)
	}

	for _, e := range catalog.FullBaseline() {
		if !e.HasBaseline() {
			continue
		}
		if _, ok := mentioned[e.Name]; ok {
			continue
		}
		it := m.items[e.Name]
		it.Alerted, it.Discovered, it.Unlocked = e.Baseline()
	}

	m.Normalize()
	return m
}

// ToTable projects m into a document root with the three subtables. Every
// item is written on every axis and names are sorted.
func ToTable(m *Meta) *luatable.Table {
	names := make([]string, 0, len(m.items))
	for name := range m.items {
		names = append(names, name)
	}
	sort.Strings(names)

	alerted := luatable.NewTable()
	discovered := luatable.NewTable()
	unlocked := luatable.NewTable()
	for _, name := range names {
		it := m.items[name]
		alerted.SetString(name, luatable.Bool(it.Alerted))
		discovered.SetString(name, luatable.Bool(it.Discovered))
		unlocked.SetString(name, luatable.Bool(it.Unlocked))
	}

	root := luatable.NewTable()
	root.SetString(SubtableAlerted, luatable.TableValue(alerted))
	root.SetString(SubtableDiscovered, luatable.TableValue(discovered))
	root.SetString(SubtableUnlocked, luatable.TableValue(unlocked))
	return root
}

// UnlockAll turns on every applicable axis of each item whose name starts
// with prefix and returns how many items matched. Catalog items keep
// inapplicable axes off; unknown items get all three.
func UnlockAll(m *Meta, prefix string) int {
	return unlockWhere(m, func(name string) bool { return strings.HasPrefix(name, prefix) })
}

// UnlockCategory is UnlockAll over every prefix of c.
func UnlockCategory(m *Meta, c catalog.Category) int {
	return unlockWhere(m, c.Contains)
}

func unlockWhere(m *Meta, match func(string) bool) int {
	n := 0
	for name, it := range m.items {
		if !match(name) {
			continue
		}
		n++
		e, known := catalog.Lookup(name)
		if !known {
			it.Alerted, it.Discovered, it.Unlocked = true, true, true
			continue
		}
		// Applicable axes go to true, the rest stay false.
		it.Alerted, _ = axisFrom(e.Alerted)
		it.Discovered, _ = axisFrom(e.Discovered)
		it.Unlocked, _ = axisFrom(e.Unlocked)
	}
	return n
}
