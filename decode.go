package toon

import "strings"

// Decode parses TOON text into a Value using default (strict) options.
func Decode(input string) (*Value, error) {
	return DecodeWithOptions(input, DefaultDecodeOptions())
}

// DecodeWithOptions parses TOON text into a Value.
//
// The decoder does not strip carriage returns; normalize CRLF input
// before decoding (Load and the CLI do). In strict mode declared array
// lengths must match exactly and tabular row blocks must be free of
// blank lines; lenient mode accepts underruns but never overruns.
func DecodeWithOptions(input string, opts DecodeOptions) (*Value, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input) == "" {
		return nil, ErrEmptyDocument
	}

	lines, blanks, err := scan(input, opts)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyDocument
	}

	d := &decoder{lines: lines, blanks: blanks, opts: opts}
	v, err := d.decodeDocument()
	if err != nil {
		return nil, err
	}
	if d.opts.Strict {
		if ln, ok := d.peek(); ok {
			return nil, &SyntaxError{Line: ln.number, Msg: "unexpected content after document"}
		}
	}
	return v, nil
}

// ============================================================
// Decoder Driver
// ============================================================

type decoder struct {
	lines  []parsedLine
	blanks []blankLineInfo
	pos    int
	opts   DecodeOptions
}

func (d *decoder) peek() (parsedLine, bool) {
	if d.pos >= len(d.lines) {
		return parsedLine{}, false
	}
	return d.lines[d.pos], true
}

func (d *decoder) next() parsedLine {
	ln := d.lines[d.pos]
	d.pos++
	return ln
}

// decodeDocument dispatches on the first line: a keyless array header
// opens a root array, a single colon-free line is a bare primitive, and
// everything else is a root object.
func (d *decoder) decodeDocument() (*Value, error) {
	first := d.lines[0]

	if h, ok := parseArrayHeader(first.content, first.number); ok && !h.hasKey {
		d.pos++
		return d.decodeArray(h, first.depth, 1)
	}
	if len(d.lines) == 1 && indexUnquotedColon(first.content) < 0 {
		d.pos++
		return parseValue(strings.TrimSpace(first.content), first.number)
	}
	return d.decodeObject(first.depth, DelimComma, 1)
}

// decodeObject reads fields while the cursor stays at depth.
func (d *decoder) decodeObject(depth int, ctxDelim Delimiter, level int) (*Value, error) {
	if level > d.opts.MaxDepth {
		return nil, &DepthError{Max: d.opts.MaxDepth}
	}
	obj := Object()
	for {
		ln, ok := d.peek()
		if !ok || ln.depth != depth {
			break
		}
		d.pos++
		key, val, err := d.decodeField(ln, depth, ctxDelim, level)
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
	}
	return obj, nil
}

// decodeField interprets one object line: an array header with a key, a
// key opening a nested object, or a key with an inline primitive.
func (d *decoder) decodeField(ln parsedLine, depth int, ctxDelim Delimiter, level int) (string, *Value, error) {
	if h, ok := parseArrayHeader(ln.content, ln.number); ok {
		if !h.hasKey {
			return "", nil, &SyntaxError{Line: ln.number, Msg: "array header without key inside object"}
		}
		if !h.hasDelim {
			h.delim = ctxDelim
		}
		v, err := d.decodeArray(h, depth, level+1)
		return h.key, v, err
	}

	key, rest, err := parseKeyValue(ln.content, ln.number)
	if err != nil {
		return "", nil, err
	}
	if rest == "" {
		if nxt, ok := d.peek(); ok && nxt.depth > depth {
			v, err := d.decodeObject(nxt.depth, ctxDelim, level+1)
			return key, v, err
		}
		return key, Object(), nil
	}
	v, err := parseValue(rest, ln.number)
	return key, v, err
}

// decodeArray materializes an array from its parsed header. depth is the
// depth of the header line; children sit at depth+1.
func (d *decoder) decodeArray(h arrayHeader, depth, level int) (*Value, error) {
	if level > d.opts.MaxDepth {
		return nil, &DepthError{Max: d.opts.MaxDepth}
	}

	if h.fields != nil && h.inline != "" {
		return nil, &SyntaxError{Line: h.line, Msg: "unexpected values after tabular header"}
	}
	if h.inline != "" {
		return d.decodeInline(h)
	}
	if h.length == 0 {
		return Array(), nil
	}
	if h.fields != nil {
		return d.decodeTabular(h, depth, level)
	}
	return d.decodeList(h, depth, level)
}

func (d *decoder) decodeInline(h arrayHeader) (*Value, error) {
	cells := splitDelimited(h.inline, byte(h.delim))
	if d.opts.Strict && len(cells) != h.length {
		return nil, &CountMismatchError{Expected: h.length, Actual: len(cells), Kind: MismatchInline, Line: h.line}
	}
	if len(cells) > h.length {
		cells = cells[:h.length]
	}
	arr := Array()
	for _, c := range cells {
		v, err := parseValue(c, h.line)
		if err != nil {
			return nil, err
		}
		arr.Append(v)
	}
	return arr, nil
}

// decodeTabular reads up to h.length rows at depth+1, splitting each by
// the header delimiter and pairing cells positionally with field names.
// Extra cells are ignored; missing cells produce null.
func (d *decoder) decodeTabular(h arrayHeader, depth, level int) (*Value, error) {
	childDepth := depth + 1
	arr := Array()
	lastRow := h.line

	for arr.Len() < h.length {
		ln, ok := d.peek()
		if !ok || ln.depth != childDepth {
			break
		}
		d.pos++
		lastRow = ln.number

		cells := splitDelimited(ln.content, byte(h.delim))
		row := Object()
		for i, f := range h.fields {
			if i >= len(cells) {
				row.Set(f, Null())
				continue
			}
			v, err := parseValue(cells[i], ln.number)
			if err != nil {
				return nil, err
			}
			row.Set(f, v)
		}
		arr.Append(row)
	}

	if d.opts.Strict {
		if bad := d.blanksBetween(h.line, lastRow); len(bad) > 0 {
			return nil, &BlankLineError{Lines: bad}
		}
		if extra := d.pendingSiblings(childDepth); arr.Len()+extra != h.length {
			return nil, &CountMismatchError{
				Expected: h.length, Actual: arr.Len() + extra,
				Kind: MismatchTabular, Line: h.line,
			}
		}
	}
	return arr, nil
}

// decodeList reads up to h.length bulleted items at depth+1.
func (d *decoder) decodeList(h arrayHeader, depth, level int) (*Value, error) {
	childDepth := depth + 1
	arr := Array()

	for arr.Len() < h.length {
		ln, ok := d.peek()
		if !ok || ln.depth != childDepth {
			break
		}
		d.pos++

		content := ln.content
		switch {
		case content == "-":
			arr.Append(Object())
			continue
		case strings.HasPrefix(content, "- "):
			content = content[2:]
		}

		item, err := d.decodeListItem(ln, content, childDepth, h.delim, level)
		if err != nil {
			return nil, err
		}
		arr.Append(item)
	}

	if d.opts.Strict {
		if extra := d.pendingSiblings(childDepth); arr.Len()+extra != h.length {
			return nil, &CountMismatchError{
				Expected: h.length, Actual: arr.Len() + extra,
				Kind: MismatchList, Line: h.line,
			}
		}
	}
	return arr, nil
}

// decodeListItem recognizes, in order: a keyless nested array header, an
// object first field (any line with an unquoted colon), or a primitive.
func (d *decoder) decodeListItem(ln parsedLine, content string, bulletDepth int, ctxDelim Delimiter, level int) (*Value, error) {
	if h, ok := parseArrayHeader(content, ln.number); ok && !h.hasKey {
		if !h.hasDelim {
			h.delim = ctxDelim
		}
		return d.decodeArray(h, bulletDepth, level+1)
	}

	if hasHeaderKey(content, ln.number) || indexUnquotedColon(content) >= 0 {
		return d.decodeListItemObject(ln, content, bulletDepth, ctxDelim, level)
	}

	return parseValue(strings.TrimSpace(content), ln.number)
}

func hasHeaderKey(content string, line int) bool {
	h, ok := parseArrayHeader(content, line)
	return ok && h.hasKey
}

// decodeListItemObject reads an object whose first field rides the
// bullet line; sibling fields follow one level deeper than the bullet.
func (d *decoder) decodeListItemObject(ln parsedLine, content string, bulletDepth int, ctxDelim Delimiter, level int) (*Value, error) {
	if level > d.opts.MaxDepth {
		return nil, &DepthError{Max: d.opts.MaxDepth}
	}
	fieldDepth := bulletDepth + 1
	obj := Object()

	first := parsedLine{content: content, depth: fieldDepth, number: ln.number}
	key, val, err := d.decodeField(first, fieldDepth, ctxDelim, level)
	if err != nil {
		return nil, err
	}
	obj.Set(key, val)

	for {
		nxt, ok := d.peek()
		if !ok || nxt.depth != fieldDepth {
			break
		}
		d.pos++
		key, val, err := d.decodeField(nxt, fieldDepth, ctxDelim, level)
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
	}
	return obj, nil
}

// ============================================================
// Strict-Mode Helpers
// ============================================================

// pendingSiblings counts unconsumed lines at depth before the cursor
// drops shallower, skipping deeper descendants.
func (d *decoder) pendingSiblings(depth int) int {
	n := 0
	for i := d.pos; i < len(d.lines); i++ {
		switch {
		case d.lines[i].depth == depth:
			n++
		case d.lines[i].depth < depth:
			return n
		}
	}
	return n
}

// blanksBetween returns blank-line numbers strictly inside (start, end).
func (d *decoder) blanksBetween(start, end int) []int {
	var out []int
	for _, b := range d.blanks {
		if b.number > start && b.number < end {
			out = append(out, b.number)
		}
	}
	return out
}
