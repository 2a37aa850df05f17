package toon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ============================================================
// JSON Bridge
// ============================================================
//
// TOON's data model is isomorphic to JSON, so the bridge is lossless in
// both directions. Object key order is significant for the tabular
// encoding, which rules out map[string]any as an intermediate: reading
// goes through the json.Decoder token stream and writing serializes the
// Value tree directly.

// FromJSONText parses JSON text into a Value and encodes it as TOON.
// JSON object key order is preserved.
func FromJSONText(data []byte, opts EncodeOptions) (string, error) {
	v, err := ParseJSON(data)
	if err != nil {
		return "", err
	}
	return EncodeWithOptions(v, opts)
}

// ToJSONText decodes TOON text and serializes the result as compact
// JSON, object order preserved.
func ToJSONText(input string, opts DecodeOptions) ([]byte, error) {
	v, err := DecodeWithOptions(input, opts)
	if err != nil {
		return nil, err
	}
	return AppendJSON(nil, v)
}

// ParseJSON converts JSON text into a Value, preserving object key
// order. Numbers become Int when they fit a signed 64-bit integer,
// Float otherwise.
func ParseJSON(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseJSONValue(dec)
	if err != nil {
		return nil, fmt.Errorf("toon: JSON parse error: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("toon: JSON parse error: trailing content")
	}
	return v, nil
}

func parseJSONValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return parseJSONToken(dec, tok)
}

func parseJSONToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		if n, err := strconv.ParseInt(string(t), 10, 64); err == nil {
			return Int(n), nil
		}
		f, err := strconv.ParseFloat(string(t), 64)
		if err != nil {
			return nil, err
		}
		return Float(f), nil
	case string:
		return Str(t), nil
	case json.Delim:
		switch t {
		case '[':
			arr := Array()
			for dec.More() {
				elem, err := parseJSONValue(dec)
				if err != nil {
					return nil, err
				}
				arr.Append(elem)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return arr, nil
		case '{':
			obj := Object()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is not a string: %v", keyTok)
				}
				val, err := parseJSONValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return obj, nil
		}
	}
	return nil, fmt.Errorf("unexpected JSON token: %v", tok)
}

// AppendJSON appends the compact JSON form of v to dst. Object field
// order is preserved, which json.Marshal over maps would not do.
func AppendJSON(dst []byte, v *Value) ([]byte, error) {
	if v.IsNull() {
		return append(dst, "null"...), nil
	}
	switch v.kind {
	case KindBool:
		return strconv.AppendBool(dst, v.boolVal), nil
	case KindInt:
		return strconv.AppendInt(dst, v.intVal, 10), nil
	case KindFloat:
		if math.IsNaN(v.floatVal) || math.IsInf(v.floatVal, 0) {
			return nil, fmt.Errorf("toon: NaN/Infinity not representable in JSON")
		}
		return strconv.AppendFloat(dst, v.floatVal, 'g', -1, 64), nil
	case KindStr:
		b, err := json.Marshal(v.strVal)
		if err != nil {
			return nil, err
		}
		return append(dst, b...), nil
	case KindArray:
		dst = append(dst, '[')
		for i, elem := range v.arrVal {
			if i > 0 {
				dst = append(dst, ',')
			}
			var err error
			dst, err = AppendJSON(dst, elem)
			if err != nil {
				return nil, err
			}
		}
		return append(dst, ']'), nil
	case KindObject:
		dst = append(dst, '{')
		for i, f := range v.objVal {
			if i > 0 {
				dst = append(dst, ',')
			}
			kb, err := json.Marshal(f.Key)
			if err != nil {
				return nil, err
			}
			dst = append(dst, kb...)
			dst = append(dst, ':')
			dst, err = AppendJSON(dst, f.Value)
			if err != nil {
				return nil, err
			}
		}
		return append(dst, '}'), nil
	}
	return nil, fmt.Errorf("toon: unsupported value kind %s", v.kind)
}
