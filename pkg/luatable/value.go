// Package luatable reads and writes the restricted Lua table-constructor
// text the game uses inside its save files:
//
//	return {["alerted"]={["j_joker"]=true,},[1]=2.5,}
//
// Only literal constructors with bracketed keys are supported. This is not
// a Lua interpreter.
package luatable

import (
	"fmt"
	"strconv"
)

// Kind identifies the type held by a Value.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
	KindTable
)

// String returns the Lua type name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindTable:
		return "table"
	default:
		return "unknown"
	}
}

// Value is a single literal: a boolean, number, string or nested table.
// The zero Value is nil and is never produced by Parse.
type Value struct {
	kind  Kind
	b     bool
	n     float64
	s     string
	table *Table
}

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a numeric value.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// Str returns a string value.
func Str(s string) Value { return Value{kind: KindString, s: s} }

// TableValue wraps t as a value. A nil t is treated as an empty table.
func TableValue(t *Table) Value {
	if t == nil {
		t = NewTable()
	}
	return Value{kind: KindTable, table: t}
}

// Kind returns the value's type.
func (v Value) Kind() Kind { return v.kind }

// IsNil reports whether v is the zero Value.
func (v Value) IsNil() bool { return v.kind == KindNil }

// AsBool returns the boolean and whether v is a boolean.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsNumber returns the number and whether v is a number.
func (v Value) AsNumber() (float64, bool) { return v.n, v.kind == KindNumber }

// AsString returns the string and whether v is a string.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsTable returns the table and whether v is a table.
func (v Value) AsTable() (*Table, bool) { return v.table, v.kind == KindTable }

// GoString renders v in literal form, for test failure output.
func (v Value) GoString() string {
	if v.kind == KindNil {
		return "nil"
	}
	return Serialize(v)
}

// Key is a table key: either a string or an integer.
type Key struct {
	str   string
	num   int64
	isInt bool
}

// StringKey returns a string key.
func StringKey(s string) Key { return Key{str: s} }

// IntKey returns an integer key.
func IntKey(n int64) Key { return Key{num: n, isInt: true} }

// IsInt reports whether k is an integer key.
func (k Key) IsInt() bool { return k.isInt }

// Str returns the key's string and whether it is a string key.
func (k Key) Str() (string, bool) { return k.str, !k.isInt }

// Int returns the key's integer and whether it is an integer key.
func (k Key) Int() (int64, bool) { return k.num, k.isInt }

func (k Key) String() string {
	if k.isInt {
		return strconv.FormatInt(k.num, 10)
	}
	return strconv.Quote(k.str)
}

// Entry is one key/value pair of a table.
type Entry struct {
	Key   Key
	Value Value
}

// Table is an ordered list of entries with unique keys. Order is the order
// entries were first inserted; it carries no meaning for the game but keeps
// serialization deterministic.
type Table struct {
	entries []Entry
	index   map[Key]int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{index: make(map[Key]int)}
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Entries returns the entries in order. The slice must not be modified.
func (t *Table) Entries() []Entry { return t.entries }

// Set stores v under k, replacing an existing entry in place.
func (t *Table) Set(k Key, v Value) {
	if i, ok := t.index[k]; ok {
		t.entries[i].Value = v
		return
	}
	t.index[k] = len(t.entries)
	t.entries = append(t.entries, Entry{Key: k, Value: v})
}

// SetString is shorthand for Set(StringKey(name), v).
func (t *Table) SetString(name string, v Value) { t.Set(StringKey(name), v) }

// Get returns the value under k.
func (t *Table) Get(k Key) (Value, bool) {
	i, ok := t.index[k]
	if !ok {
		return Value{}, false
	}
	return t.entries[i].Value, true
}

// GetString is shorthand for Get(StringKey(name)).
func (t *Table) GetString(name string) (Value, bool) { return t.Get(StringKey(name)) }

// BoolMap collects every string-keyed boolean entry. Entries with integer
// keys or non-boolean values are skipped; the second return value counts them.
func (t *Table) BoolMap() (map[string]bool, int) {
	out := make(map[string]bool, len(t.entries))
	skipped := 0
	for _, e := range t.entries {
		name, isStr := e.Key.Str()
		b, isBool := e.Value.AsBool()
		if !isStr || !isBool {
			skipped++
			continue
		}
		out[name] = b
	}
	return out, skipped
}

// MissingSubtableError reports a top-level key that is absent or not a table.
type MissingSubtableError struct {
	Name string
	// Found is the kind actually stored under Name, KindNil if absent.
	Found Kind
}

func (e *MissingSubtableError) Error() string {
	if e.Found == KindNil {
		return fmt.Sprintf("subtable %q not found", e.Name)
	}
	return fmt.Sprintf("subtable %q is a %s, not a table", e.Name, e.Found)
}

func (e *MissingSubtableError) Is(target error) bool {
	return target == ErrMissingSubtable
}

// LookupSubtable returns the table stored under the string key name.
func LookupSubtable(root *Table, name string) (*Table, error) {
	if root == nil {
		return nil, &MissingSubtableError{Name: name}
	}
	v, ok := root.GetString(name)
	if !ok {
		return nil, &MissingSubtableError{Name: name}
	}
	sub, ok := v.AsTable()
	if !ok {
		return nil, &MissingSubtableError{Name: name, Found: v.Kind()}
	}
	return sub, nil
}
