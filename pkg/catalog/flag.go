package catalog

import "fmt"

// Flag says whether one state axis (alerted, discovered or unlocked) means
// anything for an item, and if so what a fresh profile starts with.
//
// The zero Flag is NotApplicable.
type Flag struct {
	applicable bool
	def        bool
}

// Applicable returns a flag for an axis the item supports, starting at def.
func Applicable(def bool) Flag { return Flag{applicable: true, def: def} }

// NotApplicable returns a flag for an axis the item never uses.
func NotApplicable() Flag { return Flag{} }

// IsApplicable reports whether the axis is meaningful for the item.
func (f Flag) IsApplicable() bool { return f.applicable }

// Default returns the fresh-profile value; always false when not applicable.
func (f Flag) Default() bool { return f.applicable && f.def }

// Seed returns the same shape with the default forced to false.
func (f Flag) Seed() Flag {
	if !f.applicable {
		return f
	}
	return Applicable(false)
}

// Match calls exactly one of the two functions depending on the variant.
func (f Flag) Match(applicable func(def bool), notApplicable func()) {
	if f.applicable {
		applicable(f.def)
		return
	}
	notApplicable()
}

func (f Flag) String() string {
	if !f.applicable {
		return "NotApplicable"
	}
	return fmt.Sprintf("Applicable(%t)", f.def)
}

var (
	on  = Applicable(true)
	off = Applicable(false)
	na  = NotApplicable()
)
