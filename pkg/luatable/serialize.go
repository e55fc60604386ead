package luatable

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Serialize renders v in the nested literal form, with no `return` prefix.
//
// Tables render as `{[key]=value,...}` with a separator after every entry,
// the same shape the game's own STR_PACK writer produces.
func Serialize(v Value) string {
	var sb strings.Builder
	writeValue(&sb, v)
	return sb.String()
}

// SerializeDocument renders t as a save document: `return {...}`.
func SerializeDocument(t *Table) string {
	var sb strings.Builder
	sb.WriteString("return ")
	writeTable(&sb, t)
	return sb.String()
}

func writeValue(sb *strings.Builder, v Value) {
	switch v.kind {
	case KindBool:
		if v.b {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case KindNumber:
		sb.WriteString(FormatNumber(v.n))
	case KindString:
		sb.WriteString(Quote(v.s))
	case KindTable:
		writeTable(sb, v.table)
	default:
		sb.WriteString("nil")
	}
}

func writeTable(sb *strings.Builder, t *Table) {
	sb.WriteByte('{')
	if t != nil {
		for _, e := range t.entries {
			sb.WriteByte('[')
			if e.Key.isInt {
				sb.WriteString(strconv.FormatInt(e.Key.num, 10))
			} else {
				sb.WriteString(Quote(e.Key.str))
			}
			sb.WriteString("]=")
			writeValue(sb, e.Value)
			sb.WriteByte(',')
		}
	}
	sb.WriteByte('}')
}

// FormatNumber renders n the way LuaJIT's tostring does: integral values
// without a fraction, everything else with %.14g.
func FormatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "nan"
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	case n == math.Trunc(n) && math.Abs(n) < 1e14:
		if n == 0 && math.Signbit(n) {
			return "-0"
		}
		return strconv.FormatInt(int64(n), 10)
	default:
		return strconv.FormatFloat(n, 'g', 14, 64)
	}
}

// Quote renders s as string.format("%q", s) does under LuaJIT: double
// quotes, backslash-escaped quote, backslash and newline, other control
// bytes as decimal escapes. Valid UTF-8 passes through untouched; a byte
// that is not part of a valid sequence is written as a decimal escape so
// the output stays UTF-8.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); {
		c := s[i]
		if c >= utf8.RuneSelf {
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				writeDecimalEscape(&sb, c, s[i+1:])
			} else {
				sb.WriteString(s[i : i+size])
			}
			i += size
			continue
		}
		switch {
		case c == '"' || c == '\\' || c == '\n':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case c < 0x20 || c == 0x7f:
			writeDecimalEscape(&sb, c, s[i+1:])
		default:
			sb.WriteByte(c)
		}
		i++
	}
	sb.WriteByte('"')
	return sb.String()
}

func writeDecimalEscape(sb *strings.Builder, c byte, rest string) {
	sb.WriteByte('\\')
	d := strconv.Itoa(int(c))
	// Pad so a following digit is not read as part of the escape.
	if rest != "" && isDigit(rest[0]) {
		d = strings.Repeat("0", 3-len(d)) + d
	}
	sb.WriteString(d)
}
