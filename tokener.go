package jsonish

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

const bom = "\ufeff"

// literalExcluded is the set of characters that terminate an unquoted
// literal, in addition to CR and LF.
const literalExcluded = "{}[]/\\:,=;# \t\f"

// tokener is a cursor over an immutable input string. It has no state beyond
// the position, so nested structures are handled by plain recursion.
type tokener struct {
	s     string
	pos   int
	width int // byte width of the rune most recently consumed by next
}

func newTokener(s string) *tokener {
	// A leading byte-order mark is not part of any value.
	s = strings.TrimPrefix(s, bom)
	return &tokener{s: s}
}

// next consumes and returns the next rune. ok is false at end of input.
func (t *tokener) next() (r rune, ok bool) {
	if t.pos >= len(t.s) {
		t.width = 0
		return 0, false
	}
	r, t.width = utf8.DecodeRuneInString(t.s[t.pos:])
	t.pos += t.width
	return r, true
}

// backup un-consumes the rune returned by the last call to next.
func (t *tokener) backup() {
	t.pos -= t.width
	t.width = 0
}

// nextValue parses one value of any kind starting at the next clean
// character.
func (t *tokener) nextValue() (Value, error) {
	c, err := t.nextClean()
	if err != nil {
		return Value{}, err
	}
	switch c {
	case '{':
		o, err := t.readObject()
		if err != nil {
			return Value{}, err
		}
		return objectValue(o), nil
	case '[':
		a, err := t.readArray()
		if err != nil {
			return Value{}, err
		}
		return arrayValue(a), nil
	case '\'', '"':
		s, err := t.readString(c)
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	default:
		t.backup()
		return t.readLiteral()
	}
}

// nextClean returns the next character that is not whitespace and not part
// of a comment. Line comments start with '#' or "//", block comments are
// "/*" ... "*/". A '/' followed by anything else is returned as a literal
// character.
func (t *tokener) nextClean() (rune, error) {
	for {
		c, ok := t.next()
		if !ok {
			return 0, newEndOfInput("no more characters")
		}
		switch c {
		case '\t', ' ', '\n', '\r':
			continue
		case '/':
			if t.pos >= len(t.s) {
				return c, nil
			}
			switch t.s[t.pos] {
			case '*':
				t.pos++
				end := strings.Index(t.s[t.pos:], "*/")
				if end < 0 {
					return 0, newSyntaxError("unterminated block comment")
				}
				t.pos += end + 2
			case '/':
				t.pos++
				t.skipToEndOfLine()
			default:
				return c, nil
			}
		case '#':
			t.skipToEndOfLine()
		default:
			return c, nil
		}
	}
}

func (t *tokener) skipToEndOfLine() {
	if i := strings.IndexAny(t.s[t.pos:], "\r\n"); i >= 0 {
		t.pos += i + 1
	} else {
		t.pos = len(t.s)
	}
}

// readObject reads the key/value pairs and the closing '}' of an object. The
// opening '{' has already been consumed. Keys must be strings; the key/value
// separator may be ':', '=', or "=>"; members are separated by ',' or ';'.
func (t *tokener) readObject() (*Object, error) {
	obj := NewObject()

	c, err := t.nextClean()
	if err != nil {
		return nil, err
	}
	if c == '}' {
		return obj, nil
	}
	t.backup()

	for {
		key, err := t.nextValue()
		if err != nil {
			return nil, err
		}
		if key.t != TypeString {
			return nil, newSyntaxError("object key must be a string")
		}

		sep, err := t.nextClean()
		if err != nil {
			return nil, err
		}
		if sep != ':' && sep != '=' {
			return nil, newSyntaxError("expected ':' or '=' after object key")
		}
		// Accept "=>" (and ":>") by swallowing a '>' glued to the separator.
		if t.pos < len(t.s) && t.s[t.pos] == '>' {
			t.pos++
		}

		value, err := t.nextValue()
		if err != nil {
			return nil, err
		}
		obj.Insert(key.s, value)

		c, err := t.nextClean()
		if err != nil {
			return nil, err
		}
		switch c {
		case '}':
			return obj, nil
		case ';', ',':
		default:
			return nil, newSyntaxError("expected ',' or '}' after object value")
		}
	}
}

// readArray reads the elements and the closing ']' of an array. The opening
// '[' has already been consumed. Consecutive separators stand for omitted
// elements and are materialized as nulls, as is a trailing separator.
func (t *tokener) readArray() (*Array, error) {
	arr := NewArray()
	trailingSeparator := false

	for {
		c, err := t.nextClean()
		if err != nil {
			return nil, err
		}
		switch c {
		case ']':
			if trailingSeparator {
				arr.values = append(arr.values, Null())
			}
			return arr, nil
		case ',', ';':
			arr.values = append(arr.values, Null())
			trailingSeparator = true
			continue
		default:
			t.backup()
		}

		value, err := t.nextValue()
		if err != nil {
			return nil, err
		}
		arr.values = append(arr.values, value)

		c, err = t.nextClean()
		if err != nil {
			return nil, err
		}
		switch c {
		case ']':
			return arr, nil
		case ',', ';':
			trailingSeparator = true
		default:
			return nil, newSyntaxError("expected ',' or ']' after array value")
		}
	}
}

// readString reads a quoted string; quote is the terminator, either '\'' or
// '"'. Clean runs of input are flushed in bulk, escape sequences one rune at
// a time.
func (t *tokener) readString(quote rune) (string, error) {
	var b strings.Builder
	start := t.pos

	for t.pos < len(t.s) {
		c, _ := t.next()
		switch c {
		case quote:
			b.WriteString(t.s[start : t.pos-t.width])
			return b.String(), nil
		case '\n', '\r':
			return "", newSyntaxError("literal line break in string")
		case '\\':
			b.WriteString(t.s[start : t.pos-t.width])
			r, err := t.readEscape()
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			start = t.pos
		}
	}
	return "", newEndOfInput("unterminated string")
}

// readEscape decodes one escape sequence; the backslash has already been
// consumed. Unrecognized single-character escapes decode to the character
// itself.
func (t *tokener) readEscape() (rune, error) {
	c, ok := t.next()
	if !ok {
		return 0, newEndOfInput("unterminated escape sequence")
	}
	switch c {
	case 'u':
		return t.readUnicodeEscape()
	case 't':
		return '\t', nil
	case 'b':
		return '\b', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 'f':
		return '\f', nil
	default:
		// '\'', '"', '\\', '/' and anything else.
		return c, nil
	}
}

// readUnicodeEscape decodes the XXXX of a \uXXXX escape, reading a second
// \uXXXX when the first names a UTF-16 high surrogate.
func (t *tokener) readUnicodeEscape() (rune, error) {
	hi, err := t.readHex4()
	if err != nil {
		return 0, err
	}
	if hi >= 0xD800 && hi <= 0xDBFF {
		if !strings.HasPrefix(t.s[t.pos:], "\\u") {
			return 0, newSyntaxError("missing low surrogate after high surrogate")
		}
		t.pos += 2
		lo, err := t.readHex4()
		if err != nil {
			return 0, err
		}
		r := utf16.DecodeRune(hi, lo)
		if r == utf8.RuneError {
			return 0, newCastError("invalid surrogate pair")
		}
		return r, nil
	}
	if !utf8.ValidRune(hi) {
		return 0, newCastError("escape is not a Unicode scalar value")
	}
	return hi, nil
}

// readHex4 consumes four hex digits and returns their value.
func (t *tokener) readHex4() (rune, error) {
	if t.pos+4 > len(t.s) {
		return 0, newEndOfInput("incomplete \\u escape")
	}
	digits := t.s[t.pos : t.pos+4]
	t.pos += 4
	u, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, newNumberError(digits, err)
	}
	return rune(u), nil
}

// readLiteral reads an unquoted literal: null, a boolean, or a number.
// Numbers with a '.' parse as floats; a 0x/0X prefix selects base 16 and a
// bare leading zero base 8, both always positive; base-10 literals take their
// sign from a leading '-'.
func (t *tokener) readLiteral() (Value, error) {
	literal := t.nextToExcluded()
	if len(literal) == 0 {
		return Value{}, newSyntaxError("expected a value")
	}

	if strings.EqualFold(literal, "null") {
		return Null(), nil
	}
	if strings.EqualFold(literal, "true") {
		return Bool(true), nil
	}
	if strings.EqualFold(literal, "false") {
		return Bool(false), nil
	}

	if strings.ContainsRune(literal, '.') {
		f, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return Value{}, newNumberError(literal, err)
		}
		return Float(f), nil
	}

	number := literal
	base := 10
	positive := true
	switch {
	case strings.HasPrefix(literal, "0x") || strings.HasPrefix(literal, "0X"):
		base = 16
		number = literal[2:]
	case strings.HasPrefix(literal, "0") && len(literal) > 1:
		base = 8
		number = literal[1:]
	default:
		positive = !strings.HasPrefix(literal, "-")
	}

	if positive {
		u, err := strconv.ParseUint(number, base, 64)
		if err != nil {
			return Value{}, newNumberError(literal, err)
		}
		return Uint(u), nil
	}
	i, err := strconv.ParseInt(number, base, 64)
	if err != nil {
		return Value{}, newNumberError(literal, err)
	}
	return Int(i), nil
}

// nextToExcluded returns the maximal run of characters that can belong to a
// literal, leaving the cursor on the terminator.
func (t *tokener) nextToExcluded() string {
	start := t.pos
	for t.pos < len(t.s) {
		r, w := utf8.DecodeRuneInString(t.s[t.pos:])
		if r == '\r' || r == '\n' || strings.ContainsRune(literalExcluded, r) {
			return t.s[start:t.pos]
		}
		t.pos += w
	}
	return t.s[start:]
}
