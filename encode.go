package toon

import "strings"

// Encode converts a Value to TOON text using default options.
func Encode(v *Value) (string, error) {
	return EncodeWithOptions(v, DefaultEncodeOptions())
}

// EncodeWithOptions converts a Value to TOON text.
//
// Arrays of primitives are emitted inline after the header colon; mixed
// primitive kinds are tolerated. Uniform arrays of objects become tabular
// blocks. Everything else becomes a bulleted list. The output carries no
// trailing newline.
func EncodeWithOptions(v *Value, opts EncodeOptions) (string, error) {
	opts, err := opts.normalize()
	if err != nil {
		return "", err
	}

	e := &encoder{opts: opts}
	switch v.Kind() {
	case KindObject:
		err = e.encodeFields(v.objVal, 0, 1)
	case KindArray:
		err = e.encodeArray("", false, v, 0, 1)
	default:
		e.push(0, formatPrimitive(v))
	}
	if err != nil {
		return "", err
	}
	return e.render(), nil
}

// ============================================================
// Emitter
// ============================================================

type emitLine struct {
	depth   int
	content string
}

type encoder struct {
	opts  EncodeOptions
	lines []emitLine
}

func (e *encoder) push(depth int, content string) {
	e.lines = append(e.lines, emitLine{depth: depth, content: content})
}

func (e *encoder) render() string {
	var b strings.Builder
	for i, ln := range e.lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		for s := 0; s < ln.depth*e.opts.Indent; s++ {
			b.WriteByte(' ')
		}
		b.WriteString(ln.content)
	}
	return b.String()
}

// encodeFields emits object fields at the given depth. level counts value
// tree nesting for the recursion cap.
func (e *encoder) encodeFields(fields []Field, depth, level int) error {
	if level > e.opts.MaxDepth {
		return &DepthError{Max: e.opts.MaxDepth}
	}
	for _, f := range fields {
		if err := e.encodeField(f.Key, f.Value, depth, level); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) encodeField(key string, v *Value, depth, level int) error {
	switch v.Kind() {
	case KindObject:
		e.push(depth, encodeKey(key)+":")
		return e.encodeFields(v.objVal, depth+1, level+1)
	case KindArray:
		return e.encodeArray(key, true, v, depth, level)
	default:
		e.push(depth, encodeKey(key)+": "+formatPrimitive(v))
		return nil
	}
}

// encodeArray emits an array header at depth and its body in the shape
// the analysis picked.
func (e *encoder) encodeArray(key string, hasKey bool, v *Value, depth, level int) error {
	if level > e.opts.MaxDepth {
		return &DepthError{Max: e.opts.MaxDepth}
	}
	items := v.arrVal
	shape, fields := analyzeArray(items)

	switch shape {
	case shapeEmpty:
		e.push(depth, formatHeader(key, hasKey, 0, nil, e.opts))

	case shapeInline:
		header := formatHeader(key, hasKey, len(items), nil, e.opts)
		e.push(depth, header+" "+joinPrimitives(items, e.opts.Delimiter))

	case shapeTabular:
		e.push(depth, formatHeader(key, hasKey, len(items), fields, e.opts))
		for _, it := range items {
			e.push(depth+1, joinRow(it, fields, e.opts.Delimiter))
		}

	case shapeList:
		e.push(depth, formatHeader(key, hasKey, len(items), nil, e.opts))
		for _, it := range items {
			if err := e.encodeListItem(it, depth+1, level+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// encodeListItem emits one "- " bullet at bulletDepth. Objects put their
// first field on the bullet line with the remaining fields one level
// deeper; nested arrays put their header on the bullet line.
func (e *encoder) encodeListItem(v *Value, bulletDepth, level int) error {
	if level > e.opts.MaxDepth {
		return &DepthError{Max: e.opts.MaxDepth}
	}
	switch v.Kind() {
	case KindArray:
		if sub, _ := analyzeArray(v.arrVal); sub == shapeInline {
			header := formatHeader("", false, len(v.arrVal), nil, e.opts)
			e.push(bulletDepth, "- "+header+" "+joinPrimitives(v.arrVal, e.opts.Delimiter))
			return nil
		}
		mark := len(e.lines)
		if err := e.encodeArray("", false, v, bulletDepth, level); err != nil {
			return err
		}
		e.lines[mark].content = "- " + e.lines[mark].content
		return nil

	case KindObject:
		if len(v.objVal) == 0 {
			e.push(bulletDepth, "-")
			return nil
		}
		mark := len(e.lines)
		if err := e.encodeFields(v.objVal, bulletDepth+1, level); err != nil {
			return err
		}
		e.lines[mark].depth = bulletDepth
		e.lines[mark].content = "- " + e.lines[mark].content
		return nil

	default:
		e.push(bulletDepth, "- "+formatPrimitive(v))
		return nil
	}
}
