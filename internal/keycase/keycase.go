// Package keycase rewrites object keys across a parsed tree to a uniform
// case style. Used by the CLI's --key-case flag.
package keycase

import (
	"fmt"

	"github.com/iancoleman/strcase"
	"github.com/mcncl/jsonish"
)

// Converter renames a single key.
type Converter func(string) string

// ForStyle returns the converter for a style name: "snake", "camel",
// "pascal", "kebab", or "screaming".
func ForStyle(style string) (Converter, error) {
	switch style {
	case "snake":
		return strcase.ToSnake, nil
	case "camel":
		return strcase.ToLowerCamel, nil
	case "pascal":
		return strcase.ToCamel, nil
	case "kebab":
		return strcase.ToKebab, nil
	case "screaming":
		return strcase.ToScreamingSnake, nil
	default:
		return nil, fmt.Errorf("unknown key case style %q", style)
	}
}

// Rewrite returns a copy of v with every object key renamed by convert.
// Insertion order is preserved; if two keys collapse to the same name the
// later one wins, matching the parser's duplicate-key behavior.
func Rewrite(v jsonish.Value, convert Converter) jsonish.Value {
	switch v.Type() {
	case jsonish.TypeObject:
		obj, _ := v.AsObject()
		out := jsonish.NewObject()
		for _, key := range obj.Keys() {
			out.Insert(convert(key), Rewrite(*obj.Get(key), convert))
		}
		return jsonish.Of(out)
	case jsonish.TypeArray:
		arr, _ := v.AsArray()
		out := jsonish.NewArray()
		for i := 0; i < arr.Len(); i++ {
			out.Push(Rewrite(*arr.Get(i), convert))
		}
		return jsonish.Of(out)
	default:
		return v
	}
}
