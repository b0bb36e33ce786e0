// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dynamic

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Parse reads exactly one JSON value from r and converts it to a [Value].
// Numbers are kept as verbatim literals and object keys keep the order in
// which they appear in the text.
//
// source identifies the origin of the text (a file path or operation name)
// and is embedded in any returned [*ParseError]. Malformed JSON, an empty
// input, and trailing data after the first value all fail.
func Parse(r io.Reader, source string) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("input is empty")
		}
		return Value{}, &ParseError{Source: source, Err: err}
	}

	// A second token means the text holds more than one JSON value.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, &ParseError{Source: source, Err: ErrTrailingData}
	}

	return v, nil
}

// ParseString is [Parse] over an in-memory string.
func ParseString(text, source string) (Value, error) {
	return Parse(strings.NewReader(text), source)
}

// decodeValue consumes one complete JSON value from the token stream.
// Walking tokens instead of unmarshaling into map[string]any is what keeps
// object key order intact.
func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	return decodeFromToken(dec, tok)
}

func decodeFromToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %q", t.String())
		}
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t), nil
	case string:
		return String(t), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeObject(dec *json.Decoder) (Value, error) {
	obj := NewObject()

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key is not a string: %v", keyTok)
		}

		val, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}

		obj.Set(key, val)
	}

	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}

	return ObjectValue(obj), nil
}

func decodeArray(dec *json.Decoder) (Value, error) {
	items := []Value{}

	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		items = append(items, val)
	}

	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}

	return Array(items...), nil
}

// UnmarshalJSON implements [json.Unmarshaler] so a Value can sit inside an
// ordinary struct decoded with encoding/json.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(strings.NewReader(string(data)), "json value")
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
