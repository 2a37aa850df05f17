// Package toon implements TOON (Token-Oriented Object Notation), a compact,
// line-oriented, indentation-sensitive serialization format whose data model
// is isomorphic to JSON.
//
// TOON is designed to reduce the token count when structured data is embedded
// in prompts for large language models:
//   - Uniform arrays of objects collapse into a CSV-like tabular block
//   - Braces around objects and repeated field names are elided
//   - Strings are bare unless quoting is required
//
// # Syntax
//
// Objects are key/value lines, children indented one level:
//
//	user:
//	  id: 1
//	  name: Alice
//
// Arrays carry a bracketed length header. Arrays of primitives are inline,
// uniform arrays of objects are tabular, everything else is a bulleted list:
//
//	tags[3]: a,b,c
//	users[2]{id,name,role}:
//	  1,Alice,admin
//	  2,Bob,user
//	mixed[2]:
//	  - 42
//	  - key: value
//
// The delimiter is comma by default; pipe or tab can be configured and is
// declared per array inside the brackets ("[3|]"). Field names inside {...}
// are always comma-separated.
//
// # Usage
//
//	out, err := toon.Marshal(v, toon.WithLengthMarkers(true))
//	err = toon.Unmarshal(data, &v)
//
// Or through the Value tree:
//
//	v, err := toon.Decode(input)
//	text, err := toon.Encode(v)
//
// # Strict Mode
//
// Decoding is strict by default: declared array lengths must match observed
// counts, indentation must be an exact multiple of the indent width with no
// tabs, and tabular row blocks must not contain blank lines. Lenient mode
// accepts underruns (fewer items than declared, never more) and irregular
// indentation, for round-tripping possibly-damaged input.
package toon
