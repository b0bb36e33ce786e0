// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dynamic

import (
	"encoding/json"
	"strconv"
)

// Kind identifies the variant held by a [Value].
type Kind uint8

const (
	// KindNull is the JSON null literal. It is the zero value of Kind, so an
	// uninitialized Value is a valid null.
	KindNull Kind = iota

	// KindBool is a JSON true/false literal.
	KindBool

	// KindNumber is a JSON numeric literal, kept verbatim as [json.Number]
	// so that the integer/float distinction of the source text survives.
	KindNumber

	// KindString is a JSON string.
	KindString

	// KindArray is an ordered sequence of values.
	KindArray

	// KindObject is a string-keyed mapping with insertion order preserved.
	KindObject
)

// String returns the JSON type name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is one JSON-compatible value: null, bool, number, string, array, or
// object. The set of variants is closed; anything else must be rejected at
// the conversion boundary, never smuggled in.
//
// Value is a small struct and is passed by value. Array and object variants
// share their backing storage between copies, so cloning before mutation is
// the caller's job (see [Value.Clone]).
type Value struct {
	kind Kind
	b    bool
	num  json.Number
	str  string
	arr  []Value
	obj  *Object
}

// Null returns the JSON null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Number returns a numeric value holding the literal n verbatim.
func Number(n json.Number) Value {
	return Value{kind: KindNumber, num: n}
}

// Int returns a numeric value holding an integer literal.
func Int(i int64) Value {
	return Value{kind: KindNumber, num: json.Number(strconv.FormatInt(i, 10))}
}

// Float returns a numeric value holding a float literal.
func Float(f float64) Value {
	return Value{kind: KindNumber, num: json.Number(strconv.FormatFloat(f, 'g', -1, 64))}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Array returns an array value over items. The slice is used as-is.
func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindArray, arr: items}
}

// ObjectValue returns an object value over obj. A nil obj yields an empty
// object.
func ObjectValue(obj *Object) Value {
	if obj == nil {
		obj = NewObject()
	}
	return Value{kind: KindObject, obj: obj}
}

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsScalar reports whether the value is null, bool, number, or string.
func (v Value) IsScalar() bool {
	return v.kind != KindArray && v.kind != KindObject
}

// Bool returns the boolean payload, or false if the value is not a bool.
func (v Value) Bool() bool {
	return v.kind == KindBool && v.b
}

// Number returns the numeric literal, or "" if the value is not a number.
func (v Value) Number() json.Number {
	if v.kind != KindNumber {
		return ""
	}
	return v.num
}

// Str returns the string payload, or "" if the value is not a string.
func (v Value) Str() string {
	if v.kind != KindString {
		return ""
	}
	return v.str
}

// Items returns the backing slice of an array value, or nil for any other
// kind. Mutating the returned slice mutates the value.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Object returns the backing [Object] of an object value, or nil for any
// other kind. Mutating the returned object mutates the value.
func (v Value) Object() *Object {
	if v.kind != KindObject {
		return nil
	}
	return v.obj
}

// Clone returns a deep copy of the value. The copy shares no mutable
// storage with the receiver.
func (v Value) Clone() Value {
	switch v.kind {
	case KindArray:
		items := make([]Value, len(v.arr))
		for i, item := range v.arr {
			items[i] = item.Clone()
		}
		return Value{kind: KindArray, arr: items}
	case KindObject:
		obj := NewObject()
		for _, key := range v.obj.Keys() {
			val, _ := v.obj.Get(key)
			obj.Set(key, val.Clone())
		}
		return Value{kind: KindObject, obj: obj}
	default:
		return v
	}
}

// Equal reports structural equality of two values. Numbers compare by their
// verbatim literal, and objects compare key order as well as content, so two
// objects with the same entries in a different order are not equal.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.num == b.num
	case KindString:
		return a.str == b.str
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		aKeys, bKeys := a.obj.Keys(), b.obj.Keys()
		if len(aKeys) != len(bKeys) {
			return false
		}
		for i, key := range aKeys {
			if key != bKeys[i] {
				return false
			}
			aVal, _ := a.obj.Get(key)
			bVal, _ := b.obj.Get(key)
			if !Equal(aVal, bVal) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
