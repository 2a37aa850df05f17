package toon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEncode(t *testing.T, v *Value, opts EncodeOptions) string {
	t.Helper()
	out, err := EncodeWithOptions(v, opts)
	require.NoError(t, err)
	return out
}

func usersValue() *Value {
	return Object(
		F("users", Array(
			Object(F("id", Int(1)), F("name", Str("Alice")), F("role", Str("admin"))),
			Object(F("id", Int(2)), F("name", Str("Bob")), F("role", Str("user"))),
		)),
	)
}

func TestEncodeTabular(t *testing.T) {
	got := mustEncode(t, usersValue(), DefaultEncodeOptions())
	want := "users[2]{id,name,role}:\n  1,Alice,admin\n  2,Bob,user"
	assert.Equal(t, want, got)
}

func TestEncodeTabularLineCount(t *testing.T) {
	// A tabular array always encodes to 1 + len(items) lines.
	arr := Array()
	for i := 0; i < 7; i++ {
		arr.Append(Object(F("a", Int(int64(i))), F("b", Bool(i%2 == 0))))
	}
	out := mustEncode(t, Object(F("rows", arr)), DefaultEncodeOptions())
	assert.Len(t, strings.Split(out, "\n"), 1+7)
}

func TestEncodeInlinePipe(t *testing.T) {
	opts := DefaultEncodeOptions()
	opts.Delimiter = DelimPipe
	got := mustEncode(t, Object(F("items", Array(Str("a"), Str("b"), Str("c")))), opts)
	assert.Equal(t, "items[3|]: a|b|c", got)
}

func TestEncodeInlineTab(t *testing.T) {
	opts := DefaultEncodeOptions()
	opts.Delimiter = DelimTab
	got := mustEncode(t, Object(F("items", Array(Int(1), Int(2)))), opts)
	assert.Equal(t, "items[2\t]: 1\t2", got)
}

func TestEncodeLengthMarker(t *testing.T) {
	opts := DefaultEncodeOptions()
	opts.LengthMarker = true
	got := mustEncode(t, Object(F("nums", Array(Int(1), Int(2), Int(3)))), opts)
	assert.Equal(t, "nums[#3]: 1,2,3", got)
}

func TestEncodeMixedPrimitivesInline(t *testing.T) {
	got := mustEncode(t, Object(F("mix", Array(Int(1), Str("two"), Bool(true), Null()))), DefaultEncodeOptions())
	assert.Equal(t, "mix[4]: 1,two,true,null", got)
}

func TestEncodeEmptyArray(t *testing.T) {
	got := mustEncode(t, Object(F("items", Array())), DefaultEncodeOptions())
	assert.Equal(t, "items[0]:", got)
}

func TestEncodeEmptyObjectField(t *testing.T) {
	got := mustEncode(t, Object(F("cfg", Object())), DefaultEncodeOptions())
	assert.Equal(t, "cfg:", got)
}

func TestEncodeNestedObject(t *testing.T) {
	v := Object(F("user", Object(
		F("id", Int(7)),
		F("prefs", Object(F("theme", Str("dark")))),
	)))
	want := "user:\n  id: 7\n  prefs:\n    theme: dark"
	assert.Equal(t, want, mustEncode(t, v, DefaultEncodeOptions()))
}

func TestEncodeListOfInlineArrays(t *testing.T) {
	v := Object(F("matrix", Array(
		Array(Int(1), Int(2), Int(3)),
		Array(Int(4), Int(5), Int(6)),
	)))
	want := "matrix[2]:\n  - [3]: 1,2,3\n  - [3]: 4,5,6"
	assert.Equal(t, want, mustEncode(t, v, DefaultEncodeOptions()))
}

func TestEncodeListOfObjects(t *testing.T) {
	// Non-uniform objects fall back to the bulleted list: first field on
	// the bullet line, the rest one level deeper.
	v := Object(F("items", Array(
		Object(F("id", Int(1)), F("name", Str("A"))),
		Object(F("id", Int(2))),
	)))
	want := "items[2]:\n  - id: 1\n    name: A\n  - id: 2"
	assert.Equal(t, want, mustEncode(t, v, DefaultEncodeOptions()))
}

func TestEncodeListItemNestedObject(t *testing.T) {
	v := Object(F("items", Array(
		Object(F("nested", Object(F("x", Int(1)))), F("b", Int(2))),
		Int(9),
	)))
	want := "items[2]:\n  - nested:\n      x: 1\n    b: 2\n  - 9"
	assert.Equal(t, want, mustEncode(t, v, DefaultEncodeOptions()))
}

func TestEncodeTabularInsideListItem(t *testing.T) {
	// A list-item object whose first field is a uniform array of objects
	// keeps the table header on the bullet line.
	v := Object(F("groups", Array(
		Object(
			F("members", Array(
				Object(F("id", Int(1))),
				Object(F("id", Int(2))),
			)),
			F("name", Str("core")),
		),
	)))
	want := "groups[1]:\n  - members[2]{id}:\n      1\n      2\n    name: core"
	assert.Equal(t, want, mustEncode(t, v, DefaultEncodeOptions()))
}

func TestEncodeNonUniformDisqualifiesTabular(t *testing.T) {
	// Nested value under a key disqualifies the tabular form.
	v := Object(F("items", Array(
		Object(F("id", Int(1)), F("tags", Array(Str("x")))),
		Object(F("id", Int(2)), F("tags", Array(Str("y")))),
	)))
	out := mustEncode(t, v, DefaultEncodeOptions())
	assert.True(t, strings.HasPrefix(out, "items[2]:\n  - id: 1"), "got %q", out)
}

func TestEncodeTabularKeyOrderInsensitive(t *testing.T) {
	// Same keys in a different order still tabularize; columns follow the
	// first element.
	v := Object(F("rows", Array(
		Object(F("a", Int(1)), F("b", Int(2))),
		Object(F("b", Int(4)), F("a", Int(3))),
	)))
	want := "rows[2]{a,b}:\n  1,2\n  3,4"
	assert.Equal(t, want, mustEncode(t, v, DefaultEncodeOptions()))
}

func TestEncodeRootArray(t *testing.T) {
	assert.Equal(t, "[3]: 1,2,3",
		mustEncode(t, Array(Int(1), Int(2), Int(3)), DefaultEncodeOptions()))

	got := mustEncode(t, Array(Object(F("id", Int(1)))), DefaultEncodeOptions())
	assert.Equal(t, "[1]{id}:\n  1", got)
}

func TestEncodeRootPrimitive(t *testing.T) {
	assert.Equal(t, "hello world", mustEncode(t, Str("hello world"), DefaultEncodeOptions()))
	assert.Equal(t, "42", mustEncode(t, Int(42), DefaultEncodeOptions()))
	assert.Equal(t, "null", mustEncode(t, Null(), DefaultEncodeOptions()))
}

func TestEncodeQuoting(t *testing.T) {
	v := Object(
		F("reserved", Str("true")),
		F("numberish", Str("42")),
		F("comma", Str("a, b")),
		F("empty", Str("")),
		F("my key", Str("x")),
	)
	want := `reserved: "true"` + "\n" +
		`numberish: "42"` + "\n" +
		`comma: "a, b"` + "\n" +
		`empty: ""` + "\n" +
		`"my key": x`
	assert.Equal(t, want, mustEncode(t, v, DefaultEncodeOptions()))
}

func TestEncodeQuotedValueWithDelimiter(t *testing.T) {
	opts := DefaultEncodeOptions()
	opts.Delimiter = DelimPipe
	v := Object(F("addresses", Array(
		Object(F("id", Int(1)), F("address", Str("123 Main, Apt 4"))),
		Object(F("id", Int(2)), F("address", Str("456 Oak, Suite 10"))),
	)))
	// Commas force quoting even when the active delimiter is a pipe.
	want := "addresses[2|]{id,address}:\n  1|\"123 Main, Apt 4\"\n  2|\"456 Oak, Suite 10\""
	assert.Equal(t, want, mustEncode(t, v, opts))
}

func TestEncodeIndentWidth(t *testing.T) {
	opts := DefaultEncodeOptions()
	opts.Indent = 4
	got := mustEncode(t, Object(F("a", Object(F("b", Int(1))))), opts)
	assert.Equal(t, "a:\n    b: 1", got)
}

func TestEncodeInvalidOptions(t *testing.T) {
	_, err := EncodeWithOptions(Int(1), EncodeOptions{Delimiter: ';'})
	var ioe *InvalidOptionError
	require.ErrorAs(t, err, &ioe)

	_, err = EncodeWithOptions(Int(1), EncodeOptions{Indent: -1})
	require.ErrorAs(t, err, &ioe)
}

func TestEncodeDepthCap(t *testing.T) {
	v := Object()
	cur := v
	for i := 0; i < 300; i++ {
		child := Object()
		cur.Set("n", child)
		cur = child
	}
	cur.Set("leaf", Int(1))

	_, err := Encode(v)
	var de *DepthError
	require.ErrorAs(t, err, &de)

	opts := DefaultEncodeOptions()
	opts.MaxDepth = 1000
	_, err = EncodeWithOptions(v, opts)
	require.NoError(t, err)
}
