package jsonish

import (
	"strings"
	"testing"
)

func TestBuild_Compact(t *testing.T) {
	obj := NewObject()
	obj.Insert("null", nil)
	obj.Insert("true", true)
	obj.Insert("false", false)
	obj.Insert("int", -10)
	obj.Insert("uint", 100)
	obj.Insert("float", 100.001)
	obj.Insert("name", "artzok")
	inner := NewObject()
	inner.Insert("key", "value")
	obj.Insert("object", inner)
	arr := NewArray()
	arr.Push(100)
	arr.Push(true)
	arr.Push(NewObject())
	arr.Push(NewArray())
	obj.Insert("array", arr)

	want := `{"null":null,"true":true,"false":false,"int":-10,"uint":100,` +
		`"float":100.001,"name":"artzok","object":{"key":"value"},` +
		`"array":[100,true,{},[]]}`
	if got := obj.String(); got != want {
		t.Errorf("String() = %q\nwant %q", got, want)
	}
}

func TestBuild_Pretty(t *testing.T) {
	v := mustParse(t, `{"key":"value","array":[1,"go",false,12.5]}`)
	want := strings.Join([]string{
		`{`,
		`| "key": "value",`,
		`| "array": [`,
		`| | 1,`,
		`| | "go",`,
		`| | false,`,
		`| | 12.5`,
		`| ]`,
		`}`,
	}, "\n")
	if got := v.Pretty(); got != want {
		t.Errorf("Pretty() = \n%s\nwant\n%s", got, want)
	}
}

func TestBuild_PrettyEmptyContainers(t *testing.T) {
	v := mustParse(t, `{"o":{},"a":[]}`)
	want := strings.Join([]string{
		`{`,
		`| "o": {},`,
		`| "a": []`,
		`}`,
	}, "\n")
	if got := v.Pretty(); got != want {
		t.Errorf("Pretty() = \n%s\nwant\n%s", got, want)
	}
}

func TestBuild_CustomIndent(t *testing.T) {
	v := mustParse(t, `[1]`)
	got := v.ToJSON(BuildConfig{Pretty: true, Indent: "    "})
	want := "[\n    1\n]"
	if got != want {
		t.Errorf("ToJSON() = %q, want %q", got, want)
	}
}

func TestBuild_EscapesStrings(t *testing.T) {
	obj := NewObject()
	obj.Insert("ta\tb", "line\none")
	want := `{"ta\tb":"line\none"}`
	if got := obj.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBuild_ConverterHooks(t *testing.T) {
	config := BuildConfig{
		Control: func(s string) string { return "<" + s + ">" },
		Key:     func(s string) string { return "K" + s },
		Scalar:  func(s string) string { return "V" + s },
	}
	v := mustParse(t, `{"a":[1,null]}`)
	want := `<{><">Ka<"><:><[>V1<,>Vnull<]><}>`
	if got := v.ToJSON(config); got != want {
		t.Errorf("ToJSON() = %q, want %q", got, want)
	}
}

func TestColorConfig_Shape(t *testing.T) {
	config := ColorConfig()
	if !config.Pretty || config.Indent == "" {
		t.Error("ColorConfig should be pretty with an indent unit")
	}
	if config.Control == nil || config.Key == nil || config.Scalar == nil {
		t.Error("ColorConfig should install all three converters")
	}
}

func TestBuild_RoundTrip(t *testing.T) {
	obj := NewObject()
	obj.Insert("null", nil)
	obj.Insert("bool", true)
	obj.Insert("int", -100)
	obj.Insert("uint", uint64(100))
	obj.Insert("float", 100.001)
	obj.Insert("string", "naïve \"quoted\"\ttext")
	inner := NewArray()
	inner.Push(1)
	inner.Push(nil)
	inner.Push("x")
	obj.Insert("array", inner)
	v := Of(obj)

	back, err := Parse(v.ToJSON(DefaultConfig()))
	if err != nil {
		t.Fatalf("reparse error = %v", err)
	}
	if !back.Equal(v) {
		t.Errorf("round trip mismatch:\n in: %s\nout: %s", v, back)
	}
}

func TestBuild_FloatText(t *testing.T) {
	tests := []struct {
		f    float64
		want string
	}{
		{0.00001, "0.00001"},
		{-0.00001, "-0.00001"},
		{123456789012345.5, "123456789012345.5"},
		{100.001, "100.001"},
	}
	for _, tt := range tests {
		got := Float(tt.f).String()
		if got != tt.want {
			t.Errorf("Float(%v).String() = %q, want %q", tt.f, got, tt.want)
			continue
		}
		back, err := Parse(got)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", got, err)
			continue
		}
		if !back.Equal(Float(tt.f)) {
			t.Errorf("Parse(%q) = %s, want %v", got, back, tt.f)
		}
	}
}

func TestBuild_PrettyIdempotence(t *testing.T) {
	text := `{"a":1,"b":[true,,'x'],"c":{"d":0x10}} # comment`
	first := mustParse(t, text).Pretty()
	second := mustParse(t, first).Pretty()
	if first != second {
		t.Errorf("pretty output is not a fixed point:\n%s\nvs\n%s", first, second)
	}
}

func TestBuild_BoolText(t *testing.T) {
	if got := Bool(true).String(); got != "true" {
		t.Errorf("Bool(true).String() = %q", got)
	}
	if got := Bool(false).String(); got != "false" {
		t.Errorf("Bool(false).String() = %q", got)
	}
	if got := Null().String(); got != "null" {
		t.Errorf("Null().String() = %q", got)
	}
}
