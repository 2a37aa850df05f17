package toon

import (
	"errors"
	"fmt"
)

// ErrEmptyDocument is returned when the input is empty or whitespace-only.
var ErrEmptyDocument = errors.New("toon: empty document")

// MismatchKind identifies which array form a count mismatch occurred in.
type MismatchKind string

const (
	MismatchInline  MismatchKind = "inline"
	MismatchList    MismatchKind = "list"
	MismatchTabular MismatchKind = "tabular"
)

// SyntaxError reports a malformed construct: a missing colon after a key,
// an unterminated quoted string, characters after a closing quote, and
// similar. A bracketed length that does not parse is not a syntax error:
// the line is not an array header and is read as a key/value line.
type SyntaxError struct {
	Line int // 1-based, 0 if unknown
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("toon: line %d: %s", e.Line, e.Msg)
	}
	return "toon: " + e.Msg
}

// IndentationError reports a strict-mode indentation violation: a tab in
// leading whitespace, or an indent that is not a multiple of the configured
// indent width.
type IndentationError struct {
	Line int
	Msg  string
}

func (e *IndentationError) Error() string {
	return fmt.Sprintf("toon: line %d: %s", e.Line, e.Msg)
}

// CountMismatchError reports, in strict mode, that an array's declared
// length differs from the number of values found.
type CountMismatchError struct {
	Expected int
	Actual   int
	Kind     MismatchKind
	Line     int // line of the array header
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("toon: line %d: %s array declared %d values, found %d",
		e.Line, e.Kind, e.Expected, e.Actual)
}

// BlankLineError reports, in strict mode, blank lines inside a tabular
// row block.
type BlankLineError struct {
	Lines []int
}

func (e *BlankLineError) Error() string {
	if len(e.Lines) == 1 {
		return fmt.Sprintf("toon: line %d: blank line inside table rows", e.Lines[0])
	}
	return fmt.Sprintf("toon: blank lines inside table rows: %v", e.Lines)
}

// DepthError reports that nesting exceeded the recursion cap.
type DepthError struct {
	Max int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("toon: nesting exceeds maximum depth %d", e.Max)
}

// InvalidOptionError reports an invalid option value passed to an encoder
// or decoder.
type InvalidOptionError struct {
	Msg string
}

func (e *InvalidOptionError) Error() string {
	return "toon: invalid option: " + e.Msg
}
