package jsonish

// member is a single key/value pair of an Object.
type member struct {
	key   string
	value Value
}

// Object is an insertion-ordered mapping from string keys to values. Keys are
// unique: inserting under an existing key replaces the value but keeps the
// key's original position, so serialization is deterministic.
type Object struct {
	members []member
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{}
}

// ParseObject parses text and requires the top-level value to be an object.
// Any other top-level value fails with TypeMismatch.
func ParseObject(text string) (*Object, error) {
	v, err := Parse(text)
	if err != nil {
		return nil, err
	}
	if v.t != TypeObject {
		return nil, newTypeMismatch("object", v.t)
	}
	return v.o, nil
}

func (o *Object) index(key string) int {
	for i := range o.members {
		if o.members[i].key == key {
			return i
		}
	}
	return -1
}

// Insert maps key to value, converting value with Of. An existing mapping is
// replaced in place.
func (o *Object) Insert(key string, value any) {
	v := Of(value)
	if i := o.index(key); i >= 0 {
		o.members[i].value = v
		return
	}
	o.members = append(o.members, member{key: key, value: v})
}

// Accumulate models "repeated key becomes a list": an absent key behaves as
// Insert, an existing array value gets value appended, and any other existing
// value is replaced by a two-element array of the prior value and value.
func (o *Object) Accumulate(key string, value any) {
	v := Of(value)
	i := o.index(key)
	if i < 0 {
		o.members = append(o.members, member{key: key, value: v})
		return
	}
	prior := o.members[i].value
	if prior.t == TypeArray {
		prior.a.values = append(prior.a.values, v)
		return
	}
	a := &Array{values: []Value{prior, v}}
	o.members[i].value = arrayValue(a)
}

// Get returns a pointer to the value stored under key, or nil if absent.
// The pointer stays valid until the object is mutated.
func (o *Object) Get(key string) *Value {
	if i := o.index(key); i >= 0 {
		return &o.members[i].value
	}
	return nil
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	return o.index(key) >= 0
}

// Remove deletes the mapping for key, returning the removed value.
func (o *Object) Remove(key string) (Value, bool) {
	i := o.index(key)
	if i < 0 {
		return Value{}, false
	}
	v := o.members[i].value
	o.members = append(o.members[:i], o.members[i+1:]...)
	return v, true
}

// IsNull reports whether key is absent or maps to null.
func (o *Object) IsNull(key string) bool {
	i := o.index(key)
	return i < 0 || o.members[i].value.t == TypeNull
}

// Len returns the number of members.
func (o *Object) Len() int {
	return len(o.members)
}

// IsEmpty reports whether the object has no members.
func (o *Object) IsEmpty() bool {
	return len(o.members) == 0
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.members))
	for i := range o.members {
		keys[i] = o.members[i].key
	}
	return keys
}

// Equal reports structural equality: same keys in the same order mapping to
// equal values.
func (o *Object) Equal(other *Object) bool {
	if o == nil || other == nil {
		return o == other
	}
	if len(o.members) != len(other.members) {
		return false
	}
	for i := range o.members {
		if o.members[i].key != other.members[i].key {
			return false
		}
		if !o.members[i].value.Equal(other.members[i].value) {
			return false
		}
	}
	return true
}

// get looks key up for the typed getters, failing with NotFound when absent.
func (o *Object) get(key string) (Value, error) {
	i := o.index(key)
	if i < 0 {
		return Value{}, newNotFound(key)
	}
	return o.members[i].value, nil
}

// GetBool looks key up and coerces the value to a bool.
func (o *Object) GetBool(key string) (bool, error) {
	v, err := o.get(key)
	if err != nil {
		return false, err
	}
	return v.AsBool()
}

// GetInt8 looks key up and coerces the value to an int8.
func (o *Object) GetInt8(key string) (int8, error) {
	v, err := o.get(key)
	if err != nil {
		return 0, err
	}
	return v.AsInt8()
}

// GetInt16 looks key up and coerces the value to an int16.
func (o *Object) GetInt16(key string) (int16, error) {
	v, err := o.get(key)
	if err != nil {
		return 0, err
	}
	return v.AsInt16()
}

// GetInt32 looks key up and coerces the value to an int32.
func (o *Object) GetInt32(key string) (int32, error) {
	v, err := o.get(key)
	if err != nil {
		return 0, err
	}
	return v.AsInt32()
}

// GetInt64 looks key up and coerces the value to an int64.
func (o *Object) GetInt64(key string) (int64, error) {
	v, err := o.get(key)
	if err != nil {
		return 0, err
	}
	return v.AsInt64()
}

// GetUint8 looks key up and coerces the value to a uint8.
func (o *Object) GetUint8(key string) (uint8, error) {
	v, err := o.get(key)
	if err != nil {
		return 0, err
	}
	return v.AsUint8()
}

// GetUint16 looks key up and coerces the value to a uint16.
func (o *Object) GetUint16(key string) (uint16, error) {
	v, err := o.get(key)
	if err != nil {
		return 0, err
	}
	return v.AsUint16()
}

// GetUint32 looks key up and coerces the value to a uint32.
func (o *Object) GetUint32(key string) (uint32, error) {
	v, err := o.get(key)
	if err != nil {
		return 0, err
	}
	return v.AsUint32()
}

// GetUint64 looks key up and coerces the value to a uint64.
func (o *Object) GetUint64(key string) (uint64, error) {
	v, err := o.get(key)
	if err != nil {
		return 0, err
	}
	return v.AsUint64()
}

// GetFloat32 looks key up and coerces the value to a float32.
func (o *Object) GetFloat32(key string) (float32, error) {
	v, err := o.get(key)
	if err != nil {
		return 0, err
	}
	return v.AsFloat32()
}

// GetFloat64 looks key up and coerces the value to a float64.
func (o *Object) GetFloat64(key string) (float64, error) {
	v, err := o.get(key)
	if err != nil {
		return 0, err
	}
	return v.AsFloat64()
}

// GetString looks key up and requires a string value.
func (o *Object) GetString(key string) (string, error) {
	v, err := o.get(key)
	if err != nil {
		return "", err
	}
	return v.AsString()
}

// GetObject looks key up and requires an object value.
func (o *Object) GetObject(key string) (*Object, error) {
	v, err := o.get(key)
	if err != nil {
		return nil, err
	}
	return v.AsObject()
}

// GetArray looks key up and requires an array value.
func (o *Object) GetArray(key string) (*Array, error) {
	v, err := o.get(key)
	if err != nil {
		return nil, err
	}
	return v.AsArray()
}
