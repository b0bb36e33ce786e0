// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dynamic

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
)

// FromHost converts a native Go value into a [Value].
//
// Supported host shapes are nil, booleans, strings, json.Number, all integer
// and float types, maps with string keys, slices, arrays, and any nesting of
// those, plus [Value] and [*Object] which pass through untouched. Map
// entries are emitted in sorted key order since Go maps carry no order of
// their own.
//
// Anything outside that set fails with a [*ConversionError]: unsupported
// types, non-string map keys, NaN or infinite floats, and self-referencing
// value graphs. Nothing is coerced or dropped.
func FromHost(host any) (Value, error) {
	return fromHost(host, "$", make(map[uintptr]struct{}))
}

func fromHost(host any, path string, seen map[uintptr]struct{}) (Value, error) {
	switch h := host.(type) {
	case nil:
		return Null(), nil
	case Value:
		return h, nil
	case *Object:
		return ObjectValue(h), nil
	case bool:
		return Bool(h), nil
	case string:
		return String(h), nil
	case json.Number:
		return Number(h), nil
	case int:
		return Int(int64(h)), nil
	case int8:
		return Int(int64(h)), nil
	case int16:
		return Int(int64(h)), nil
	case int32:
		return Int(int64(h)), nil
	case int64:
		return Int(h), nil
	case uint:
		return Number(json.Number(strconv.FormatUint(uint64(h), 10))), nil
	case uint8:
		return Int(int64(h)), nil
	case uint16:
		return Int(int64(h)), nil
	case uint32:
		return Int(int64(h)), nil
	case uint64:
		return Number(json.Number(strconv.FormatUint(h, 10))), nil
	case float32:
		return floatValue(float64(h), path)
	case float64:
		return floatValue(h, path)
	}

	return fromHostReflect(reflect.ValueOf(host), path, seen)
}

// fromHostReflect handles named scalar types, maps, slices, arrays, and
// pointers that fell through the type switch above.
func fromHostReflect(rv reflect.Value, path string, seen map[uintptr]struct{}) (Value, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Number(json.Number(strconv.FormatUint(rv.Uint(), 10))), nil
	case reflect.Float32, reflect.Float64:
		return floatValue(rv.Float(), path)

	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		if rv.Kind() == reflect.Pointer {
			ptr := rv.Pointer()
			if _, cyclic := seen[ptr]; cyclic {
				return Value{}, &ConversionError{Path: path, Err: ErrCycle}
			}
			seen[ptr] = struct{}{}
			defer delete(seen, ptr)
		}
		return fromHost(rv.Elem().Interface(), path, seen)

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Value{}, &ConversionError{Path: path, Err: ErrNonStringKey}
		}
		ptr := rv.Pointer()
		if _, cyclic := seen[ptr]; cyclic {
			return Value{}, &ConversionError{Path: path, Err: ErrCycle}
		}
		seen[ptr] = struct{}{}
		defer delete(seen, ptr)

		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)

		obj := NewObject()
		for _, key := range keys {
			elem := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
			val, err := fromHost(elem.Interface(), path+"."+key, seen)
			if err != nil {
				return Value{}, err
			}
			obj.Set(key, val)
		}
		return ObjectValue(obj), nil

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice {
			if rv.IsNil() {
				return Null(), nil
			}
			ptr := rv.Pointer()
			if _, cyclic := seen[ptr]; cyclic {
				return Value{}, &ConversionError{Path: path, Err: ErrCycle}
			}
			seen[ptr] = struct{}{}
			defer delete(seen, ptr)
		}

		items := make([]Value, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			val, err := fromHost(rv.Index(i).Interface(), fmt.Sprintf("%s[%d]", path, i), seen)
			if err != nil {
				return Value{}, err
			}
			items[i] = val
		}
		return Array(items...), nil

	default:
		return Value{}, &ConversionError{
			Path: path,
			Err:  fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Kind()),
		}
	}
}

func floatValue(f float64, path string) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, &ConversionError{
			Path: path,
			Err:  fmt.Errorf("%w: non-finite float %v", ErrUnsupportedType, f),
		}
	}
	return Float(f), nil
}

// Host converts the value back into native Go data: nil, bool, int64 or
// float64 (depending on whether the literal is an exact integer), string,
// []any, or map[string]any. The conversion is total; object key order is
// necessarily lost because Go maps are unordered.
func (v Value) Host() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindNumber:
		if i, err := v.num.Int64(); err == nil {
			return i
		}
		if f, err := v.num.Float64(); err == nil {
			return f
		}
		return v.num.String()
	case KindString:
		return v.str
	case KindArray:
		items := make([]any, len(v.arr))
		for i, item := range v.arr {
			items[i] = item.Host()
		}
		return items
	case KindObject:
		m := make(map[string]any, v.obj.Len())
		for _, key := range v.obj.Keys() {
			val, _ := v.obj.Get(key)
			m[key] = val.Host()
		}
		return m
	default:
		return nil
	}
}
