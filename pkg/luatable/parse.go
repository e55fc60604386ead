package luatable

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	// ErrSyntax matches every *SyntaxError.
	ErrSyntax = errors.New("table literal syntax error")
	// ErrMissingSubtable matches every *MissingSubtableError.
	ErrMissingSubtable = errors.New("missing subtable")
)

// maxDepth bounds table nesting so hostile input cannot exhaust the stack.
const maxDepth = 200

// SyntaxError describes where the input stopped matching the literal grammar.
type SyntaxError struct {
	Msg    string
	Offset int
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Msg, e.Line, e.Column)
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// Parse reads a document of the form `return { ... }`. The leading
// `return` is optional.
func Parse(text string) (*Table, error) {
	p := &parser{src: text}

	p.skipSpace()
	if p.keyword("return") {
		p.skipSpace()
	}
	if p.peek() != '{' {
		return nil, p.errorf("expected '{' to open the root table")
	}

	t, err := p.parseTable(0)
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if p.peek() == ';' {
		p.pos++
		p.skipSpace()
	}
	if !p.eof() {
		return nil, p.errorf("unexpected %q after root table", p.src[p.pos])
	}
	return t, nil
}

// ParseValue reads a single nested literal with no `return` prefix.
func ParseValue(text string) (Value, error) {
	p := &parser{src: text}
	p.skipSpace()
	v, err := p.parseValue(0)
	if err != nil {
		return Value{}, err
	}
	p.skipSpace()
	if !p.eof() {
		return Value{}, p.errorf("unexpected %q after value", p.src[p.pos])
	}
	return v, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			p.pos++
		default:
			return
		}
	}
}

// keyword consumes word if it appears at the cursor as a whole identifier.
func (p *parser) keyword(word string) bool {
	if !strings.HasPrefix(p.src[p.pos:], word) {
		return false
	}
	end := p.pos + len(word)
	if end < len(p.src) && isIdentByte(p.src[end]) {
		return false
	}
	p.pos = end
	return true
}

func (p *parser) expect(c byte) error {
	if p.peek() != c {
		if p.eof() {
			return p.errorf("expected %q, got end of input", c)
		}
		return p.errorf("expected %q, got %q", c, p.src[p.pos])
	}
	p.pos++
	return nil
}

func (p *parser) parseTable(depth int) (*Table, error) {
	if depth >= maxDepth {
		return nil, p.errorf("tables nested deeper than %d", maxDepth)
	}
	if err := p.expect('{'); err != nil {
		return nil, err
	}

	t := NewTable()
	for {
		p.skipSpace()
		switch p.peek() {
		case '}':
			p.pos++
			return t, nil
		case '[':
		default:
			if p.eof() {
				return nil, p.errorf("unterminated table")
			}
			return nil, p.errorf("expected '[' or '}', got %q", p.src[p.pos])
		}

		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if err := p.expect('='); err != nil {
			return nil, err
		}
		p.skipSpace()
		v, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		t.Set(key, v)

		p.skipSpace()
		switch p.peek() {
		case ',', ';':
			p.pos++
		case '}':
		default:
			if p.eof() {
				return nil, p.errorf("unterminated table")
			}
			return nil, p.errorf("expected ',' or '}', got %q", p.src[p.pos])
		}
	}
}

func (p *parser) parseKey() (Key, error) {
	if err := p.expect('['); err != nil {
		return Key{}, err
	}
	p.skipSpace()

	var key Key
	switch c := p.peek(); {
	case c == '"' || c == '\'':
		s, err := p.parseString()
		if err != nil {
			return Key{}, err
		}
		key = StringKey(s)
	case c == '-' || c == '.' || isDigit(c):
		start := p.pos
		n, err := p.parseNumber()
		if err != nil {
			return Key{}, err
		}
		if n != math.Trunc(n) || math.Abs(n) > 1<<53 {
			p.pos = start
			return Key{}, p.errorf("table key %v is not an integer", n)
		}
		key = IntKey(int64(n))
	default:
		return Key{}, p.errorf("expected string or integer key")
	}

	p.skipSpace()
	if err := p.expect(']'); err != nil {
		return Key{}, err
	}
	return key, nil
}

func (p *parser) parseValue(depth int) (Value, error) {
	switch c := p.peek(); {
	case c == '{':
		t, err := p.parseTable(depth)
		if err != nil {
			return Value{}, err
		}
		return TableValue(t), nil
	case c == '"' || c == '\'':
		s, err := p.parseString()
		if err != nil {
			return Value{}, err
		}
		return Str(s), nil
	case c == '-' || c == '.' || isDigit(c):
		n, err := p.parseNumber()
		if err != nil {
			return Value{}, err
		}
		return Number(n), nil
	case p.keyword("true"):
		return Bool(true), nil
	case p.keyword("false"):
		return Bool(false), nil
	case p.eof():
		return Value{}, p.errorf("expected value, got end of input")
	default:
		return Value{}, p.errorf("unexpected %q where a value was expected", c)
	}
}

// parseNumber reads a Lua numeral with an optional leading minus.
func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	neg := false
	if p.peek() == '-' {
		neg = true
		p.pos++
		p.skipSpace()
	}

	body := p.pos
	var n float64
	if strings.HasPrefix(p.src[p.pos:], "0x") || strings.HasPrefix(p.src[p.pos:], "0X") {
		p.pos += 2
		for isHexDigit(p.peek()) {
			p.pos++
		}
		digits := p.src[body+2 : p.pos]
		if digits == "" {
			p.pos = start
			return 0, p.errorf("malformed hexadecimal number")
		}
		u, err := strconv.ParseUint(digits, 16, 64)
		if err != nil {
			p.pos = start
			return 0, p.errorf("malformed hexadecimal number %q", p.src[body:p.pos])
		}
		n = float64(u)
	} else {
		for isDigit(p.peek()) || p.peek() == '.' {
			p.pos++
		}
		if c := p.peek(); c == 'e' || c == 'E' {
			p.pos++
			if c := p.peek(); c == '+' || c == '-' {
				p.pos++
			}
			for isDigit(p.peek()) {
				p.pos++
			}
		}
		var err error
		n, err = strconv.ParseFloat(p.src[body:p.pos], 64)
		if err != nil {
			p.pos = start
			return 0, p.errorf("malformed number %q", p.src[body:p.pos])
		}
	}

	if isIdentByte(p.peek()) {
		p.pos = start
		return 0, p.errorf("malformed number")
	}
	if neg {
		n = -n
	}
	return n, nil
}

// parseString reads a single- or double-quoted string with Lua escapes.
func (p *parser) parseString() (string, error) {
	start := p.pos
	quote := p.src[p.pos]
	p.pos++

	var sb strings.Builder
	for {
		if p.eof() {
			p.pos = start
			return "", p.errorf("unterminated string")
		}
		c := p.src[p.pos]
		switch {
		case c == quote:
			p.pos++
			return sb.String(), nil
		case c == '\n' || c == '\r':
			p.pos = start
			return "", p.errorf("unescaped newline in string")
		case c != '\\':
			sb.WriteByte(c)
			p.pos++
			continue
		}

		p.pos++
		if p.eof() {
			p.pos = start
			return "", p.errorf("unterminated string")
		}
		if err := p.parseEscape(&sb); err != nil {
			return "", err
		}
	}
}

// parseEscape handles the character after a backslash.
func (p *parser) parseEscape(sb *strings.Builder) error {
	c := p.src[p.pos]
	switch c {
	case 'a':
		sb.WriteByte('\a')
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case 'v':
		sb.WriteByte('\v')
	case '\\', '"', '\'':
		sb.WriteByte(c)
	case '\n', '\r':
		// A backslash before a line break keeps the break. \r\n and \n\r
		// count as one.
		sb.WriteByte('\n')
		p.pos++
		if next := p.peek(); (next == '\n' || next == '\r') && next != c {
			p.pos++
		}
		return nil
	case 'x':
		p.pos++
		if p.pos+2 > len(p.src) || !isHexDigit(p.src[p.pos]) || !isHexDigit(p.src[p.pos+1]) {
			return p.errorf("hexadecimal escape needs two digits")
		}
		b, _ := strconv.ParseUint(p.src[p.pos:p.pos+2], 16, 8)
		sb.WriteByte(byte(b))
		p.pos += 2
		return nil
	case 'z':
		p.pos++
		p.skipSpace()
		return nil
	case 'u':
		return p.parseUnicodeEscape(sb)
	default:
		if !isDigit(c) {
			return p.errorf("invalid escape sequence '\\%c'", c)
		}
		end := p.pos
		for end < len(p.src) && end-p.pos < 3 && isDigit(p.src[end]) {
			end++
		}
		d, _ := strconv.Atoi(p.src[p.pos:end])
		if d > 255 {
			return p.errorf("decimal escape \\%d too large", d)
		}
		sb.WriteByte(byte(d))
		p.pos = end
		return nil
	}
	p.pos++
	return nil
}

// parseUnicodeEscape handles \u{XXX}.
func (p *parser) parseUnicodeEscape(sb *strings.Builder) error {
	p.pos++
	if err := p.expect('{'); err != nil {
		return err
	}
	start := p.pos
	for isHexDigit(p.peek()) {
		p.pos++
	}
	r, err := strconv.ParseUint(p.src[start:p.pos], 16, 32)
	if err != nil || r > utf8.MaxRune {
		return p.errorf("invalid unicode escape")
	}
	if err := p.expect('}'); err != nil {
		return err
	}
	sb.WriteRune(rune(r))
	return nil
}

func (p *parser) errorf(format string, args ...any) error {
	line, col := 1, 1
	for i := 0; i < p.pos && i < len(p.src); i++ {
		if p.src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return &SyntaxError{
		Msg:    fmt.Sprintf(format, args...),
		Offset: p.pos,
		Line:   line,
		Column: col,
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentByte(c byte) bool {
	return c == '_' || isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
