package jsonish

import "strings"

// escapeString replaces the characters that cannot appear raw in an emitted
// string with their two-character escape sequences. Everything else passes
// through unchanged; printable non-ASCII is never \u-encoded.
func escapeString(s string) string {
	if !needsEscape(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	for _, c := range s {
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\f':
			b.WriteString(`\f`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\b':
			b.WriteString(`\b`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

func needsEscape(s string) bool {
	return strings.ContainsAny(s, "\\\"\f\t\n\b\r")
}
