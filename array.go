package jsonish

import "fmt"

// Array is a dense, order-preserving sequence of values. Elements omitted in
// the lenient syntax are materialized as explicit nulls at their position.
type Array struct {
	values []Value
}

// NewArray returns an empty array.
func NewArray() *Array {
	return &Array{}
}

// ParseArray parses text and requires the top-level value to be an array.
// Any other top-level value fails with TypeMismatch.
func ParseArray(text string) (*Array, error) {
	v, err := Parse(text)
	if err != nil {
		return nil, err
	}
	if v.t != TypeArray {
		return nil, newTypeMismatch("array", v.t)
	}
	return v.a, nil
}

// Push appends value, converting it with Of.
func (a *Array) Push(value any) {
	a.values = append(a.values, Of(value))
}

// Insert places value at index, shifting later elements right. It panics if
// index is greater than Len; this is the one documented panic in the package.
func (a *Array) Insert(value any, index int) {
	if index < 0 || index > len(a.values) {
		panic(fmt.Sprintf("jsonish: array insert index %d out of range with length %d", index, len(a.values)))
	}
	a.values = append(a.values, Value{})
	copy(a.values[index+1:], a.values[index:])
	a.values[index] = Of(value)
}

// Get returns a pointer to the element at index, or nil if out of range.
// The pointer stays valid until the array is mutated.
func (a *Array) Get(index int) *Value {
	if index < 0 || index >= len(a.values) {
		return nil
	}
	return &a.values[index]
}

// Remove deletes the element at index, returning the removed value.
func (a *Array) Remove(index int) (Value, bool) {
	if index < 0 || index >= len(a.values) {
		return Value{}, false
	}
	v := a.values[index]
	a.values = append(a.values[:index], a.values[index+1:]...)
	return v, true
}

// IsNull reports whether index is out of range or holds null.
func (a *Array) IsNull(index int) bool {
	if index < 0 || index >= len(a.values) {
		return true
	}
	return a.values[index].t == TypeNull
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.values)
}

// IsEmpty reports whether the array has no elements.
func (a *Array) IsEmpty() bool {
	return len(a.values) == 0
}

// Equal reports structural equality: same length and pairwise equal elements.
func (a *Array) Equal(other *Array) bool {
	if a == nil || other == nil {
		return a == other
	}
	if len(a.values) != len(other.values) {
		return false
	}
	for i := range a.values {
		if !a.values[i].Equal(other.values[i]) {
			return false
		}
	}
	return true
}

// get looks index up for the typed getters, failing with NotFound when out
// of range.
func (a *Array) get(index int) (Value, error) {
	if index < 0 || index >= len(a.values) {
		return Value{}, &Error{Kind: KindNotFound, Message: fmt.Sprintf("index %d out of range with length %d", index, len(a.values))}
	}
	return a.values[index], nil
}

// GetBool coerces the element at index to a bool.
func (a *Array) GetBool(index int) (bool, error) {
	v, err := a.get(index)
	if err != nil {
		return false, err
	}
	return v.AsBool()
}

// GetInt64 coerces the element at index to an int64.
func (a *Array) GetInt64(index int) (int64, error) {
	v, err := a.get(index)
	if err != nil {
		return 0, err
	}
	return v.AsInt64()
}

// GetUint64 coerces the element at index to a uint64.
func (a *Array) GetUint64(index int) (uint64, error) {
	v, err := a.get(index)
	if err != nil {
		return 0, err
	}
	return v.AsUint64()
}

// GetFloat64 coerces the element at index to a float64.
func (a *Array) GetFloat64(index int) (float64, error) {
	v, err := a.get(index)
	if err != nil {
		return 0, err
	}
	return v.AsFloat64()
}

// GetString requires a string element at index.
func (a *Array) GetString(index int) (string, error) {
	v, err := a.get(index)
	if err != nil {
		return "", err
	}
	return v.AsString()
}

// GetObject requires an object element at index.
func (a *Array) GetObject(index int) (*Object, error) {
	v, err := a.get(index)
	if err != nil {
		return nil, err
	}
	return v.AsObject()
}

// GetArray requires an array element at index.
func (a *Array) GetArray(index int) (*Array, error) {
	v, err := a.get(index)
	if err != nil {
		return nil, err
	}
	return v.AsArray()
}
