package toon

import "encoding/json"

// Marshal returns the TOON encoding of v.
//
// v is normalized through a JSON intermediate: structs honor their json
// tags, maps are keyed in json.Marshal order, and a *Value is encoded
// directly.
func Marshal(v any, opts ...Option) ([]byte, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	val, ok := v.(*Value)
	if !ok {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		val, err = ParseJSON(data)
		if err != nil {
			return nil, err
		}
	}

	out, err := EncodeWithOptions(val, o.enc)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// Unmarshal parses TOON-encoded data and stores the result in the value
// pointed to by v, through a JSON intermediate. Decoding is strict
// unless WithLenient is given.
func Unmarshal(data []byte, v any, opts ...Option) error {
	o, err := applyOptions(opts)
	if err != nil {
		return err
	}

	val, err := DecodeWithOptions(string(data), o.dec)
	if err != nil {
		return err
	}
	if target, ok := v.(**Value); ok {
		*target = val
		return nil
	}

	jsonText, err := AppendJSON(nil, val)
	if err != nil {
		return err
	}
	return json.Unmarshal(jsonText, v)
}

// IsValid reports whether input parses under default (strict) options.
func IsValid(input string) bool {
	return IsValidWithOptions(input, DefaultDecodeOptions())
}

// IsValidWithOptions reports whether input parses under opts.
func IsValidWithOptions(input string, opts DecodeOptions) bool {
	_, err := DecodeWithOptions(input, opts)
	return err == nil
}

// RoundTrip encodes v and decodes the result, returning the decoded
// value. Useful for checking what survives a TOON round trip.
func RoundTrip(v *Value, eo EncodeOptions, do DecodeOptions) (*Value, error) {
	text, err := EncodeWithOptions(v, eo)
	if err != nil {
		return nil, err
	}
	return DecodeWithOptions(text, do)
}
