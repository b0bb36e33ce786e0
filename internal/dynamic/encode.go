// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dynamic

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// prettyIndent matches the four-space indentation used for on-disk config
// files, which keeps diffs readable.
const prettyIndent = "    "

// EncodeCompact renders v as minified JSON, the style used for wire
// payloads.
func EncodeCompact(v Value) (string, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// EncodePretty renders v as multi-line indented JSON with a trailing
// newline, the style used for on-disk persistence.
func EncodePretty(v Value) (string, error) {
	compact, err := EncodeCompact(v)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(compact), "", prettyIndent); err != nil {
		return "", err
	}
	buf.WriteByte('\n')

	return buf.String(), nil
}

// MarshalJSON implements [json.Marshaler] so a Value can sit inside an
// ordinary struct encoded with encoding/json. Object key order is kept.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v Value) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		if v.num == "" {
			buf.WriteByte('0')
			break
		}
		buf.WriteString(v.num.String())
	case KindString:
		return encodeString(buf, v.str)
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, key := range v.obj.Keys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeString(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')
			val, _ := v.obj.Get(key)
			if err := encodeValue(buf, val); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("invalid value kind %d", v.kind)
	}

	return nil
}

// encodeString delegates escaping to encoding/json so that control
// characters and quotes come out exactly as the standard library writes them.
func encodeString(buf *bytes.Buffer, s string) error {
	escaped, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(escaped)
	return nil
}
