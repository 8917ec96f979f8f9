package jsonish

import (
	"fmt"
	"math"
	"strings"
)

// Type identifies which JSON element a Value holds.
type Type uint8

const (
	TypeNull Type = iota
	TypeBool
	TypeInt
	TypeUint
	TypeFloat
	TypeString
	TypeObject
	TypeArray
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeUint:
		return "uint"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeObject:
		return "object"
	case TypeArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is a single node of a parsed JSON tree: a closed tagged union over
// the JSON element types.
//
// Integer literals are stored as Uint when non-negative and Int when
// negative. That origin tag is not the value's semantic type: the As*
// accessors coerce on demand, and narrowing conversions truncate without a
// range check. Loss of precision is not detected.
type Value struct {
	t Type
	b bool
	i int64
	u uint64
	f float64
	s string
	o *Object
	a *Array
}

// Null returns the null value.
func Null() Value { return Value{t: TypeNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{t: TypeBool, b: b} }

// Int returns a signed integer value.
func Int(i int64) Value { return Value{t: TypeInt, i: i} }

// Uint returns an unsigned integer value.
func Uint(u uint64) Value { return Value{t: TypeUint, u: u} }

// Float returns a floating-point value.
func Float(f float64) Value { return Value{t: TypeFloat, f: f} }

// String returns a string value.
func String(s string) Value { return Value{t: TypeString, s: s} }

func objectValue(o *Object) Value { return Value{t: TypeObject, o: o} }

func arrayValue(a *Array) Value { return Value{t: TypeArray, a: a} }

// Of converts a native Go value to a Value. The conversion is total: signed
// integers route to Uint when non-negative and Int otherwise, nil becomes
// null, and a value of an unrecognized type is rendered to a String with
// fmt.Sprint.
func Of(v any) Value {
	switch v := v.(type) {
	case nil:
		return Null()
	case Value:
		return v
	case *Value:
		if v == nil {
			return Null()
		}
		return *v
	case bool:
		return Bool(v)
	case string:
		return String(v)
	case int:
		return ofInt(int64(v))
	case int8:
		return ofInt(int64(v))
	case int16:
		return ofInt(int64(v))
	case int32:
		return ofInt(int64(v))
	case int64:
		return ofInt(v)
	case uint:
		return Uint(uint64(v))
	case uint8:
		return Uint(uint64(v))
	case uint16:
		return Uint(uint64(v))
	case uint32:
		return Uint(uint64(v))
	case uint64:
		return Uint(v)
	case float32:
		return Float(float64(v))
	case float64:
		return Float(v)
	case *Object:
		if v == nil {
			return Null()
		}
		return objectValue(v)
	case *Array:
		if v == nil {
			return Null()
		}
		return arrayValue(v)
	default:
		return String(fmt.Sprint(v))
	}
}

func ofInt(i int64) Value {
	if i >= 0 {
		return Uint(uint64(i))
	}
	return Int(i)
}

// Type returns which JSON element the value holds.
func (v Value) Type() Type { return v.t }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.t == TypeNull }

// AsBool coerces the value to a bool. Strings coerce via a case-insensitive
// match against "true" and "false".
func (v Value) AsBool() (bool, error) {
	switch v.t {
	case TypeNull:
		return false, newValueIsNull("bool")
	case TypeBool:
		return v.b, nil
	case TypeString:
		if strings.EqualFold(v.s, "true") {
			return true, nil
		}
		if strings.EqualFold(v.s, "false") {
			return false, nil
		}
		return false, newTypeMismatch("bool", v.t)
	default:
		return false, newTypeMismatch("bool", v.t)
	}
}

// signedBits extracts the raw integer bits for a signed-target accessor.
func (v Value) signedBits(want string) (int64, error) {
	switch v.t {
	case TypeNull:
		return 0, newValueIsNull(want)
	case TypeInt:
		return v.i, nil
	case TypeUint:
		return int64(v.u), nil
	default:
		return 0, newTypeMismatch(want, v.t)
	}
}

// unsignedBits extracts the raw integer bits for an unsigned-target accessor.
// A negative Int source is rejected; everything else is a truncating cast.
func (v Value) unsignedBits(want string) (uint64, error) {
	switch v.t {
	case TypeNull:
		return 0, newValueIsNull(want)
	case TypeUint:
		return v.u, nil
	case TypeInt:
		if v.i < 0 {
			return 0, newTypeMismatch(want, v.t)
		}
		return uint64(v.i), nil
	default:
		return 0, newTypeMismatch(want, v.t)
	}
}

// AsInt8 coerces the value to an int8, truncating silently.
func (v Value) AsInt8() (int8, error) {
	bits, err := v.signedBits("int8")
	return int8(bits), err
}

// AsInt16 coerces the value to an int16, truncating silently.
func (v Value) AsInt16() (int16, error) {
	bits, err := v.signedBits("int16")
	return int16(bits), err
}

// AsInt32 coerces the value to an int32, truncating silently.
func (v Value) AsInt32() (int32, error) {
	bits, err := v.signedBits("int32")
	return int32(bits), err
}

// AsInt64 coerces the value to an int64.
func (v Value) AsInt64() (int64, error) {
	return v.signedBits("int64")
}

// AsUint8 coerces the value to a uint8, truncating silently.
func (v Value) AsUint8() (uint8, error) {
	bits, err := v.unsignedBits("uint8")
	return uint8(bits), err
}

// AsUint16 coerces the value to a uint16, truncating silently.
func (v Value) AsUint16() (uint16, error) {
	bits, err := v.unsignedBits("uint16")
	return uint16(bits), err
}

// AsUint32 coerces the value to a uint32, truncating silently.
func (v Value) AsUint32() (uint32, error) {
	bits, err := v.unsignedBits("uint32")
	return uint32(bits), err
}

// AsUint64 coerces the value to a uint64.
func (v Value) AsUint64() (uint64, error) {
	return v.unsignedBits("uint64")
}

// AsFloat32 coerces any numeric value to a float32.
func (v Value) AsFloat32() (float32, error) {
	f, err := v.AsFloat64()
	return float32(f), err
}

// AsFloat64 coerces any numeric value to a float64.
func (v Value) AsFloat64() (float64, error) {
	switch v.t {
	case TypeNull:
		return 0, newValueIsNull("float64")
	case TypeInt:
		return float64(v.i), nil
	case TypeUint:
		return float64(v.u), nil
	case TypeFloat:
		return v.f, nil
	default:
		return 0, newTypeMismatch("float64", v.t)
	}
}

// AsString returns the string contents. Only String values succeed.
func (v Value) AsString() (string, error) {
	switch v.t {
	case TypeNull:
		return "", newValueIsNull("string")
	case TypeString:
		return v.s, nil
	default:
		return "", newTypeMismatch("string", v.t)
	}
}

// AsObject returns the contained object. Only Object values succeed.
func (v Value) AsObject() (*Object, error) {
	switch v.t {
	case TypeNull:
		return nil, newValueIsNull("object")
	case TypeObject:
		return v.o, nil
	default:
		return nil, newTypeMismatch("object", v.t)
	}
}

// AsArray returns the contained array. Only Array values succeed.
func (v Value) AsArray() (*Array, error) {
	switch v.t {
	case TypeNull:
		return nil, newValueIsNull("array")
	case TypeArray:
		return v.a, nil
	default:
		return nil, newTypeMismatch("array", v.t)
	}
}

// OptBool is AsBool without the error.
func (v Value) OptBool() (bool, bool) {
	b, err := v.AsBool()
	return b, err == nil
}

// OptInt8 is AsInt8 without the error.
func (v Value) OptInt8() (int8, bool) {
	i, err := v.AsInt8()
	return i, err == nil
}

// OptInt16 is AsInt16 without the error.
func (v Value) OptInt16() (int16, bool) {
	i, err := v.AsInt16()
	return i, err == nil
}

// OptInt32 is AsInt32 without the error.
func (v Value) OptInt32() (int32, bool) {
	i, err := v.AsInt32()
	return i, err == nil
}

// OptInt64 is AsInt64 without the error.
func (v Value) OptInt64() (int64, bool) {
	i, err := v.AsInt64()
	return i, err == nil
}

// OptUint8 is AsUint8 without the error.
func (v Value) OptUint8() (uint8, bool) {
	u, err := v.AsUint8()
	return u, err == nil
}

// OptUint16 is AsUint16 without the error.
func (v Value) OptUint16() (uint16, bool) {
	u, err := v.AsUint16()
	return u, err == nil
}

// OptUint32 is AsUint32 without the error.
func (v Value) OptUint32() (uint32, bool) {
	u, err := v.AsUint32()
	return u, err == nil
}

// OptUint64 is AsUint64 without the error.
func (v Value) OptUint64() (uint64, bool) {
	u, err := v.AsUint64()
	return u, err == nil
}

// OptFloat32 is AsFloat32 without the error.
func (v Value) OptFloat32() (float32, bool) {
	f, err := v.AsFloat32()
	return f, err == nil
}

// OptFloat64 is AsFloat64 without the error.
func (v Value) OptFloat64() (float64, bool) {
	f, err := v.AsFloat64()
	return f, err == nil
}

// OptString is AsString without the error.
func (v Value) OptString() (string, bool) {
	s, err := v.AsString()
	return s, err == nil
}

// OptObject is AsObject without the error.
func (v Value) OptObject() (*Object, bool) {
	o, err := v.AsObject()
	return o, err == nil
}

// OptArray is AsArray without the error.
func (v Value) OptArray() (*Array, bool) {
	a, err := v.AsArray()
	return a, err == nil
}

// Equal reports structural equality: same type, and for floats the same bit
// pattern, for containers the same members in the same order.
func (v Value) Equal(other Value) bool {
	if v.t != other.t {
		return false
	}
	switch v.t {
	case TypeNull:
		return true
	case TypeBool:
		return v.b == other.b
	case TypeInt:
		return v.i == other.i
	case TypeUint:
		return v.u == other.u
	case TypeFloat:
		return math.Float64bits(v.f) == math.Float64bits(other.f)
	case TypeString:
		return v.s == other.s
	case TypeObject:
		return v.o.Equal(other.o)
	case TypeArray:
		return v.a.Equal(other.a)
	default:
		return false
	}
}
