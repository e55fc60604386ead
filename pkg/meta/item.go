package meta

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/balatro-meta/pkg/catalog"
)

// Axis names one of the three per-item state booleans.
type Axis int

const (
	Alerted Axis = iota
	Discovered
	Unlocked
)

// Axes lists every axis in file order.
var Axes = []Axis{Alerted, Discovered, Unlocked}

func (a Axis) String() string {
	switch a {
	case Alerted:
		return "alerted"
	case Discovered:
		return "discovered"
	case Unlocked:
		return "unlocked"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis accepts an axis name in any case.
func ParseAxis(s string) (Axis, error) {
	for _, a := range Axes {
		if strings.EqualFold(strings.TrimSpace(s), a.String()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}

// MetaItem is the state of one item. The capability flags are fixed at
// construction; a state field whose capability is false stays false once
// the owning Meta normalizes it.
type MetaItem struct {
	Alerted    bool
	Discovered bool
	Unlocked   bool

	canAlert    bool
	canDiscover bool
	canUnlock   bool
}

// itemFromEntry builds an item with the entry's capabilities and defaults.
func itemFromEntry(e catalog.Entry) *MetaItem {
	it := &MetaItem{}
	it.canAlert, it.Alerted = axisFrom(e.Alerted)
	it.canDiscover, it.Discovered = axisFrom(e.Discovered)
	it.canUnlock, it.Unlocked = axisFrom(e.Unlocked)
	return it
}

// axisFrom unpacks one catalog flag into whether the axis applies and the
// value a fresh profile starts with.
func axisFrom(f catalog.Flag) (can, value bool) {
	f.Match(
		func(def bool) { can, value = true, def },
		func() { can, value = false, false },
	)
	return can, value
}

// moddedItem builds an item for a name the catalog does not know. Every
// axis is assumed to apply.
func moddedItem(alerted, discovered, unlocked bool) *MetaItem {
	return &MetaItem{
		Alerted:     alerted,
		Discovered:  discovered,
		Unlocked:    unlocked,
		canAlert:    true,
		canDiscover: true,
		canUnlock:   true,
	}
}

func (it *MetaItem) CanAlert() bool    { return it.canAlert }
func (it *MetaItem) CanDiscover() bool { return it.canDiscover }
func (it *MetaItem) CanUnlock() bool   { return it.canUnlock }

// Can reports whether axis applies to the item.
func (it *MetaItem) Can(axis Axis) bool {
	switch axis {
	case Alerted:
		return it.canAlert
	case Discovered:
		return it.canDiscover
	case Unlocked:
		return it.canUnlock
	}
	return false
}

// Get returns the current value of axis.
func (it *MetaItem) Get(axis Axis) bool {
	switch axis {
	case Alerted:
		return it.Alerted
	case Discovered:
		return it.Discovered
	case Unlocked:
		return it.Unlocked
	}
	return false
}

// Set writes axis and reports whether the write was accepted. Raising an
// axis the item does not support is refused.
func (it *MetaItem) Set(axis Axis, v bool) bool {
	if v && !it.Can(axis) {
		return false
	}
	switch axis {
	case Alerted:
		it.Alerted = v
	case Discovered:
		it.Discovered = v
	case Unlocked:
		it.Unlocked = v
	default:
		return false
	}
	return true
}

// Normalize clears every state field whose capability is false.
func (it *MetaItem) Normalize() {
	it.Alerted = it.Alerted && it.canAlert
	it.Discovered = it.Discovered && it.canDiscover
	it.Unlocked = it.Unlocked && it.canUnlock
}

func (it *MetaItem) state() [3]bool {
	return [3]bool{it.Alerted, it.Discovered, it.Unlocked}
}

func (it *MetaItem) String() string {
	mark := func(can, v bool) string {
		switch {
		case !can:
			return "-"
		case v:
			return "y"
		default:
			return "n"
		}
	}
	return fmt.Sprintf("alerted=%s discovered=%s unlocked=%s",
		mark(it.canAlert, it.Alerted), mark(it.canDiscover, it.Discovered), mark(it.canUnlock, it.Unlocked))
}
