package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// modMarkers are substrings that identify items added by well-known mods.
// Derive leaves them out of generated rows.
var modMarkers = []string{"cry_", "mp_", "mtg_"}

// IsModMarked reports whether name carries one of the known mod markers.
func IsModMarked(name string) bool {
	for _, m := range modMarkers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

// Derive builds catalog rows from the three decoded maps of a reference
// save, normally a fresh profile. An axis is Applicable(value) when the
// name appears in that map and NotApplicable otherwise. Rows come back
// sorted by name.
func Derive(alerted, discovered, unlocked map[string]bool) []Entry {
	seen := make(map[string]struct{}, len(alerted))
	for _, m := range []map[string]bool{alerted, discovered, unlocked} {
		for name := range m {
			if IsModMarked(name) {
				continue
			}
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Entry, 0, len(names))
	for _, name := range names {
		out = append(out, Entry{
			Name:       name,
			Alerted:    flagFrom(alerted, name),
			Discovered: flagFrom(discovered, name),
			Unlocked:   flagFrom(unlocked, name),
		})
	}
	return out
}

func flagFrom(m map[string]bool, name string) Flag {
	v, ok := m[name]
	if !ok {
		return NotApplicable()
	}
	return Applicable(v)
}

// FormatRows renders entries as rows for the entries table, one per line,
// using the on/off/na shorthands.
func FormatRows(rows []Entry) string {
	var b strings.Builder
	for _, e := range rows {
		fmt.Fprintf(&b, "{%q, %s, %s, %s},\n", e.Name, shorthand(e.Alerted), shorthand(e.Discovered), shorthand(e.Unlocked))
	}
	return b.String()
}

func shorthand(f Flag) (s string) {
	f.Match(
		func(def bool) {
			s = "off"
			if def {
				s = "on"
			}
		},
		func() { s = "na" },
	)
	return s
}
