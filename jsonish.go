// Package jsonish parses a lenient JSON dialect into a value tree and
// renders trees back to text under configurable formatting rules.
//
// The accepted grammar is a superset of RFC 8259 JSON: it allows '#', "//",
// and "/* */" comments, single-quoted strings, '=' and "=>" as key/value
// separators, ';' as an element separator, hexadecimal and octal integer
// literals, and omitted array elements (which materialize as nulls).
//
// Parsing and rendering are synchronous, CPU-bound tree traversals with no
// internal state; calls are independently reentrant, but a tree itself is
// not safe for concurrent mutation.
package jsonish

// Parse reads the first value from text and returns its tree. Trailing
// content after the first value is ignored, not validated.
func Parse(text string) (Value, error) {
	return newTokener(text).nextValue()
}
