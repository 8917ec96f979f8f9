package jsonish

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// BuildConfig controls how a value tree is rendered to text.
//
// The three converter hooks exist so colorized output does not need its own
// traversal: Control wraps structural punctuation ({ } [ ] " : ,), Key wraps
// object keys, and Scalar wraps the rendered literal of a scalar value. A nil
// hook is the identity.
type BuildConfig struct {
	Pretty  bool
	Indent  string
	Control func(string) string
	Key     func(string) string
	Scalar  func(string) string
}

// DefaultConfig renders compact single-line output.
func DefaultConfig() BuildConfig {
	return BuildConfig{}
}

// PrettyConfig renders multi-line output with a "| " indent unit.
func PrettyConfig() BuildConfig {
	return BuildConfig{Pretty: true, Indent: "| "}
}

// ColorConfig renders pretty output with ANSI-colored punctuation, keys, and
// scalar literals.
func ColorConfig() BuildConfig {
	control := color.New(color.FgCyan).SprintFunc()
	key := color.New(color.FgBlue, color.Bold).SprintFunc()
	scalar := color.New(color.FgYellow).SprintFunc()
	return BuildConfig{
		Pretty:  true,
		Indent:  "  ",
		Control: func(s string) string { return control(s) },
		Key:     func(s string) string { return key(s) },
		Scalar:  func(s string) string { return scalar(s) },
	}
}

func (c *BuildConfig) control(s string) string {
	if c.Control != nil {
		return c.Control(s)
	}
	return s
}

func (c *BuildConfig) key(s string) string {
	if c.Key != nil {
		return c.Key(s)
	}
	return s
}

func (c *BuildConfig) scalar(s string) string {
	if c.Scalar != nil {
		return c.Scalar(s)
	}
	return s
}

// ToJSON renders the value under config.
func (v Value) ToJSON(config BuildConfig) string {
	var b strings.Builder
	buildValue(&b, v, 0, &config)
	return b.String()
}

// Pretty renders the value with the default pretty configuration.
func (v Value) Pretty() string {
	return v.ToJSON(PrettyConfig())
}

// String renders the value compactly.
func (v Value) String() string {
	return v.ToJSON(DefaultConfig())
}

// ToJSON renders the object under config.
func (o *Object) ToJSON(config BuildConfig) string {
	var b strings.Builder
	buildObject(&b, o, 0, &config)
	return b.String()
}

// Pretty renders the object with the default pretty configuration.
func (o *Object) Pretty() string {
	return o.ToJSON(PrettyConfig())
}

// String renders the object compactly.
func (o *Object) String() string {
	return o.ToJSON(DefaultConfig())
}

// ToJSON renders the array under config.
func (a *Array) ToJSON(config BuildConfig) string {
	var b strings.Builder
	buildArray(&b, a, 0, &config)
	return b.String()
}

// Pretty renders the array with the default pretty configuration.
func (a *Array) Pretty() string {
	return a.ToJSON(PrettyConfig())
}

// String renders the array compactly.
func (a *Array) String() string {
	return a.ToJSON(DefaultConfig())
}

func buildValue(b *strings.Builder, v Value, level int, config *BuildConfig) {
	switch v.t {
	case TypeNull:
		b.WriteString(config.scalar("null"))
	case TypeBool:
		b.WriteString(config.scalar(strconv.FormatBool(v.b)))
	case TypeInt:
		b.WriteString(config.scalar(strconv.FormatInt(v.i, 10)))
	case TypeUint:
		b.WriteString(config.scalar(strconv.FormatUint(v.u, 10)))
	case TypeFloat:
		// 'f', never 'e': exponent notation would not reparse as a float.
		b.WriteString(config.scalar(strconv.FormatFloat(v.f, 'f', -1, 64)))
	case TypeString:
		b.WriteString(config.control(`"`))
		b.WriteString(config.scalar(escapeString(v.s)))
		b.WriteString(config.control(`"`))
	case TypeObject:
		buildObject(b, v.o, level, config)
	case TypeArray:
		buildArray(b, v.a, level, config)
	}
}

func buildObject(b *strings.Builder, o *Object, level int, config *BuildConfig) {
	b.WriteString(config.control("{"))
	for i := range o.members {
		if config.Pretty {
			b.WriteByte('\n')
			writeIndent(b, level+1, config)
		}
		b.WriteString(config.control(`"`))
		b.WriteString(config.key(escapeString(o.members[i].key)))
		b.WriteString(config.control(`"`))
		b.WriteString(config.control(":"))
		if config.Pretty {
			b.WriteByte(' ')
		}
		buildValue(b, o.members[i].value, level+1, config)
		if i < len(o.members)-1 {
			b.WriteString(config.control(","))
		}
	}
	if config.Pretty && len(o.members) > 0 {
		b.WriteByte('\n')
		writeIndent(b, level, config)
	}
	b.WriteString(config.control("}"))
}

func buildArray(b *strings.Builder, a *Array, level int, config *BuildConfig) {
	b.WriteString(config.control("["))
	for i := range a.values {
		if config.Pretty {
			b.WriteByte('\n')
			writeIndent(b, level+1, config)
		}
		buildValue(b, a.values[i], level+1, config)
		if i < len(a.values)-1 {
			b.WriteString(config.control(","))
		}
	}
	if config.Pretty && len(a.values) > 0 {
		b.WriteByte('\n')
		writeIndent(b, level, config)
	}
	b.WriteString(config.control("]"))
}

func writeIndent(b *strings.Builder, level int, config *BuildConfig) {
	for i := 0; i < level; i++ {
		b.WriteString(config.Indent)
	}
}
