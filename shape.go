package toon

import (
	"strconv"
	"strings"
)

// ============================================================
// Encoder Shape Analysis
// ============================================================
//
// An empty array is emitted as its header alone. Every other array is
// emitted in exactly one of three shapes:
//
//   inline   header: v1,v2,v3        all elements primitive
//   tabular  header{f1,f2}: + rows   uniform primitive-valued objects
//   list     header: + "- " bullets  everything else

type arrayShape uint8

const (
	shapeEmpty arrayShape = iota
	shapeInline
	shapeTabular
	shapeList
)

// analyzeArray decides the emission shape for an array and, for the
// tabular shape, returns the column keys in first-element order.
func analyzeArray(items []*Value) (arrayShape, []string) {
	if len(items) == 0 {
		return shapeEmpty, nil
	}

	allPrimitive := true
	for _, it := range items {
		if !it.IsPrimitive() {
			allPrimitive = false
			break
		}
	}
	if allPrimitive {
		// Mixed primitive kinds are tolerated and emitted inline.
		return shapeInline, nil
	}

	if fields, ok := tabularFields(items); ok {
		return shapeTabular, fields
	}
	return shapeList, nil
}

// tabularFields checks the uniformity condition for tabular encoding:
// every element is an object, has the same number of keys as the first,
// contains each of the first element's keys, and holds a primitive value
// at each key. Columns follow the first element's key order.
func tabularFields(items []*Value) ([]string, bool) {
	first := items[0]
	if first.Kind() != KindObject || first.Len() == 0 {
		return nil, false
	}
	keys := make([]string, 0, len(first.objVal))
	for _, f := range first.objVal {
		keys = append(keys, f.Key)
	}

	for _, it := range items {
		if it.Kind() != KindObject || it.Len() != len(keys) {
			return nil, false
		}
		for _, k := range keys {
			fv := it.Get(k)
			if fv == nil && !it.Has(k) {
				return nil, false
			}
			if !fv.IsPrimitive() {
				return nil, false
			}
		}
	}
	return keys, true
}

// ============================================================
// Header Formatting
// ============================================================

// formatHeader builds "key[#N|]{f1,f2}:". The key part is absent for
// root and nested keyless arrays; the delimiter suffix appears inside
// the brackets only for non-default delimiters; field names are always
// comma-separated regardless of the data delimiter.
func formatHeader(key string, hasKey bool, length int, fields []string, opts EncodeOptions) string {
	var b strings.Builder
	if hasKey {
		b.WriteString(encodeKey(key))
	}
	b.WriteByte('[')
	if opts.LengthMarker {
		b.WriteByte('#')
	}
	b.WriteString(strconv.Itoa(length))
	if opts.Delimiter != DelimComma {
		b.WriteByte(byte(opts.Delimiter))
	}
	b.WriteByte(']')
	if fields != nil {
		b.WriteByte('{')
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(encodeKey(f))
		}
		b.WriteByte('}')
	}
	b.WriteByte(':')
	return b.String()
}

// joinPrimitives joins primitive tokens with the configured delimiter.
func joinPrimitives(items []*Value, delim Delimiter) string {
	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteByte(byte(delim))
		}
		b.WriteString(formatPrimitive(it))
	}
	return b.String()
}

// joinRow joins one tabular row: column order follows the header, cells
// are fetched by key, and a missing key emits null.
func joinRow(obj *Value, fields []string, delim Delimiter) string {
	var b strings.Builder
	for i, k := range fields {
		if i > 0 {
			b.WriteByte(byte(delim))
		}
		fv := obj.Get(k)
		if fv == nil {
			b.WriteString("null")
			continue
		}
		b.WriteString(formatPrimitive(fv))
	}
	return b.String()
}
