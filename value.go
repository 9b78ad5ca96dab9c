// Package json5 implements the JSON5 data-interchange format: a superset
// of JSON that accepts unquoted object keys, single-quoted strings,
// trailing commas, comments, hex integers, leading/trailing decimal
// points, explicit signs, NaN/Infinity, and multiline strings.
//
// The package is organized the way the JSON5 reference implementation
// splits it: a Tokenizer turns bytes into a stream of Tokens, a Parser
// (internally "grammar") turns Tokens into a Value tree, a Writer turns a
// Value tree back into bytes, and Decode/Encode compose the two
// directions for callers who don't need the streaming interfaces.
package json5

import (
	"fmt"
	"strconv"
)

// Kind is the tag of a Value's tagged union.
type Kind int

// Value kinds.
const (
	Null Kind = iota
	Bool
	Int
	Float
	Infinity
	NaN
	String
	Array
	Object
	numKinds
)

var kindStrings = [numKinds]string{
	"<null>", "<bool>", "<int>", "<float>", "<infinity>", "<nan>",
	"<string>", "<array>", "<object>",
}

// String returns a human-readable name for the Kind, for use in error
// messages; it is not JSON5 syntax.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "<unknown>"
	}
	return kindStrings[k]
}

const arrayMinCap = 8

// Value is a JSON5 value: a tagged union of null, bool, int64, float64,
// signed infinity, NaN, an owned UTF-8 byte string, an ordered array of
// Values, or an Object (an open-addressed map from byte-string keys to
// Values). A Value owns all memory reachable through it; the zero Value
// is Null.
type Value struct {
	kind    Kind
	boolVal bool
	intVal  int64
	fltVal  float64
	infSign int // +1 or -1, meaningful only when kind == Infinity
	strVal  []byte
	arrVal  []*Value
	objVal  *object
}

// Type reports the Value's current Kind.
func (v *Value) Type() Kind {
	return v.kind
}

func (v *Value) setNull() { *v = Value{} }

// SetNull resets the Value to Null, releasing any previously owned
// content.
func (v *Value) SetNull() { v.setNull() }

// SetBool replaces the Value's content with a bool.
func (v *Value) SetBool(b bool) {
	*v = Value{kind: Bool, boolVal: b}
}

// SetInt replaces the Value's content with a signed 64-bit integer.
func (v *Value) SetInt(i int64) {
	*v = Value{kind: Int, intVal: i}
}

// SetFloat replaces the Value's content with a float64.
func (v *Value) SetFloat(f float64) {
	*v = Value{kind: Float, fltVal: f}
}

// SetNaN replaces the Value's content with NaN.
func (v *Value) SetNaN() {
	*v = Value{kind: NaN}
}

// SetInfinity replaces the Value's content with signed infinity. A sign
// >= 0 is +Infinity, otherwise -Infinity.
func (v *Value) SetInfinity(sign int) {
	s := 1
	if sign < 0 {
		s = -1
	}
	*v = Value{kind: Infinity, infSign: s}
}

// InfinitySign returns +1 or -1; it is meaningful only when Type() ==
// Infinity.
func (v *Value) InfinitySign() int {
	if v.infSign == 0 {
		return 1
	}
	return v.infSign
}

// SetString replaces the Value's content with a copy of s. s may contain
// embedded NUL bytes; they are preserved (spec.md §9 resolves this open
// question: they are re-emitted as \u0000 by the Writer).
func (v *Value) SetString(s []byte) {
	owned := make([]byte, len(s))
	copy(owned, s)
	*v = Value{kind: String, strVal: owned}
}

// SetArray resets the Value to an empty array, releasing any previous
// content. If the Value is already an array, it is left unchanged (it is
// not truncated).
func (v *Value) SetArray() {
	if v.kind == Array {
		return
	}
	*v = Value{kind: Array}
}

// SetObject resets the Value to an empty object, releasing any previous
// content. If the Value is already an object, it is left unchanged.
func (v *Value) SetObject() {
	if v.kind == Object {
		return
	}
	*v = Value{kind: Object, objVal: &object{}}
}

// AsNull returns nil if the Value is Null, otherwise ErrType.
func (v *Value) AsNull() error {
	if v.kind == Null {
		return nil
	}
	return fmt.Errorf("%w: value is %s, not null", ErrType, v.kind)
}

// AsBool returns the Value's bool content, or ErrType if it is not Bool.
func (v *Value) AsBool() (bool, error) {
	if v.kind == Bool {
		return v.boolVal, nil
	}
	return false, fmt.Errorf("%w: value is %s, not bool", ErrType, v.kind)
}

// AsInt returns the Value's int64 content. It does not convert from
// Float; use AsFloat for that. Returns ErrType if the Value is not Int.
func (v *Value) AsInt() (int64, error) {
	if v.kind == Int {
		return v.intVal, nil
	}
	return 0, fmt.Errorf("%w: value is %s, not an integer", ErrType, v.kind)
}

// AsFloat returns the Value's numeric content as a float64. Int values
// are widened; NaN and Infinity produce their IEEE-754 equivalents.
// Returns ErrType for any other kind.
func (v *Value) AsFloat() (float64, error) {
	switch v.kind {
	case Int:
		return float64(v.intVal), nil
	case Float:
		return v.fltVal, nil
	case NaN:
		return nan(), nil
	case Infinity:
		return inf(v.InfinitySign()), nil
	}
	return 0, fmt.Errorf("%w: value is %s, not numeric", ErrType, v.kind)
}

// AsString returns the Value's byte-string content. The returned slice
// aliases the Value's owned storage and must not be mutated. Returns
// ErrType if the Value is not String.
func (v *Value) AsString() ([]byte, error) {
	if v.kind == String {
		return v.strVal, nil
	}
	return nil, fmt.Errorf("%w: value is %s, not a string", ErrType, v.kind)
}

// Len returns the number of elements/properties of an Array or Object
// Value, or 0 for any other kind.
func (v *Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.arrVal)
	case Object:
		if v.objVal == nil {
			return 0
		}
		return v.objVal.live
	}
	return 0
}

// AppendItem grows an Array Value (doubling capacity from a minimum of 8,
// mirroring the reference implementation's json5_value_append_item) and
// returns a reference to a fresh Null slot. Returns ErrType if the Value
// is not an array. The reference is invalidated by any later mutation of
// the array that could cause it to reallocate.
func (v *Value) AppendItem() (*Value, error) {
	if v.kind != Array {
		return nil, fmt.Errorf("%w: value is %s, not an array", ErrType, v.kind)
	}
	if len(v.arrVal) == cap(v.arrVal) {
		newCap := cap(v.arrVal) * 2
		if newCap < arrayMinCap {
			newCap = arrayMinCap
		}
		grown := make([]*Value, len(v.arrVal), newCap)
		copy(grown, v.arrVal)
		v.arrVal = grown
	}
	item := &Value{}
	v.arrVal = append(v.arrVal, item)
	return item, nil
}

// GetItem returns the array element at idx, or (nil, false) if the Value
// is not an array or idx is out of range.
func (v *Value) GetItem(idx int) (*Value, bool) {
	if v.kind != Array || idx < 0 || idx >= len(v.arrVal) {
		return nil, false
	}
	return v.arrVal[idx], true
}

// GetProp returns the property named key, or (nil, false) if the Value is
// not an object or the key is absent.
func (v *Value) GetProp(key []byte) (*Value, bool) {
	if v.kind != Object || v.objVal == nil {
		return nil, false
	}
	return v.objVal.get(key)
}

// SetProp inserts, or (if replace) resets, the property named key and
// returns a reference to its value slot. Returns (nil, false) if the
// Value is not an object, or the key already exists and replace is false.
func (v *Value) SetProp(key []byte, replace bool) (*Value, bool) {
	if v.kind != Object {
		return nil, false
	}
	if v.objVal == nil {
		v.objVal = &object{}
	}
	return v.objVal.set(key, replace)
}

// DeleteProp marks the property named key as deleted. Returns true if a
// live property with that key existed.
func (v *Value) DeleteProp(key []byte) bool {
	if v.kind != Object || v.objVal == nil {
		return false
	}
	return v.objVal.delete(key)
}

// Iterator returns an ObjectIterator over the Value's properties in
// internal slot order (spec.md §5: not insertion order). Returns a
// zero-value iterator (which yields nothing) if the Value is not an
// object.
func (v *Value) Iterator() *ObjectIterator {
	if v.kind != Object {
		return &ObjectIterator{}
	}
	return &ObjectIterator{obj: v.objVal}
}

// Transfer moves source's content into v and resets source to Null. If
// source is nil, v is simply reset to Null.
func (v *Value) Transfer(source *Value) {
	v.setNull()
	if source != nil {
		*v = *source
		source.setNull()
	}
}

// Index is a fluent accessor for array members: it returns the item at i,
// or a fresh Null Value (never nil) if v is not an array or i is out of
// range, so chained Index/Key calls on absent paths are safe.
func (v *Value) Index(i int) *Value {
	if item, ok := v.GetItem(i); ok {
		return item
	}
	return &Value{}
}

// Key is a fluent accessor for object members: it returns the named
// property, or a fresh Null Value (never nil) if v is not an object or
// the key is absent.
func (v *Value) Key(key string) *Value {
	if item, ok := v.GetProp([]byte(key)); ok {
		return item
	}
	return &Value{}
}

// String returns a debug representation. It is not valid JSON5 output;
// use Encode/Writer for that.
func (v *Value) String() string {
	switch v.kind {
	case Null:
		return "null"
	case Bool:
		if v.boolVal {
			return "true"
		}
		return "false"
	case Int:
		return strconv.FormatInt(v.intVal, 10)
	case Float:
		return strconv.FormatFloat(v.fltVal, 'g', -1, 64)
	case NaN:
		return "NaN"
	case Infinity:
		if v.infSign < 0 {
			return "-Infinity"
		}
		return "Infinity"
	case String:
		return strconv.Quote(string(v.strVal))
	case Array:
		s := "["
		for i, item := range v.arrVal {
			if i > 0 {
				s += ", "
			}
			s += item.String()
		}
		return s + "]"
	case Object:
		s := "{"
		first := true
		it := v.Iterator()
		for {
			key, val, ok := it.Next()
			if !ok {
				break
			}
			if !first {
				s += ", "
			}
			first = false
			s += strconv.Quote(string(key)) + ": " + val.String()
		}
		return s + "}"
	}
	return "<unknown>"
}
