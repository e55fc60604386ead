package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category groups item names by prefix for display. It plays no part in
// reconciliation.
type Category string

const (
	Jokers       Category = "jokers"
	Vouchers     Category = "vouchers"
	Cards        Category = "cards"
	Enhancements Category = "enhancements"
	Decks        Category = "decks"
	Misc         Category = "misc"
)

var categoryPrefixes = []struct {
	category Category
	prefixes []string
}{
	{Jokers, []string{"j_"}},
	{Vouchers, []string{"v_"}},
	{Cards, []string{"c_"}},
	{Enhancements, []string{"m_"}},
	{Decks, []string{"b_"}},
	{Misc, []string{"e_", "bl_", "tag_", "p_"}},
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, 0, len(categoryPrefixes))
	for _, c := range categoryPrefixes {
		out = append(out, c.category)
	}
	return out
}

// ParseCategory accepts a category name in any case.
func ParseCategory(s string) (Category, error) {
	want := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, c := range categoryPrefixes {
		if c.category == want {
			return want, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Prefixes returns the name prefixes that belong to c.
func (c Category) Prefixes() []string {
	for _, cp := range categoryPrefixes {
		if cp.category == c {
			return append([]string(nil), cp.prefixes...)
		}
	}
	return nil
}

// Contains reports whether name carries one of c's prefixes.
func (c Category) Contains(name string) bool {
	for _, p := range c.Prefixes() {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// CategoryOf returns the category whose prefix name starts with.
func CategoryOf(name string) (Category, bool) {
	for _, cp := range categoryPrefixes {
		for _, p := range cp.prefixes {
			if strings.HasPrefix(name, p) {
				return cp.category, true
			}
		}
	}
	return "", false
}

// DisplayName turns an item key into a label: the type prefix is dropped
// and the rest is title-cased, so "j_greedy_joker" becomes "Greedy Joker".
func DisplayName(name string) string {
	rest := name
	if i := strings.IndexByte(name, '_'); i >= 0 && i < len(name)-1 {
		rest = name[i+1:]
	}
	return cases.Title(language.English).String(strings.ReplaceAll(rest, "_", " "))
}
