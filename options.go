package toon

import "fmt"

// defaultMaxDepth caps recursion in both the encoder and the decoder.
const defaultMaxDepth = 256

// Delimiter separates tabular row cells and inline array values. It is
// declared per array in the header suffix; comma needs no suffix.
type Delimiter byte

const (
	DelimComma Delimiter = ','
	DelimPipe  Delimiter = '|'
	DelimTab   Delimiter = '\t'
)

func (d Delimiter) valid() bool {
	return d == DelimComma || d == DelimPipe || d == DelimTab
}

// EncodeOptions configures the encoder.
type EncodeOptions struct {
	// Indent is the number of spaces per nesting level (default 2).
	Indent int

	// Delimiter separates inline values and tabular cells (default comma).
	Delimiter Delimiter

	// LengthMarker prefixes array lengths with '#' ("[#3]") when true.
	// The marker is decorative; it carries no semantic weight.
	LengthMarker bool

	// MaxDepth caps value-tree nesting (default 256).
	MaxDepth int
}

// DefaultEncodeOptions returns the default encoder configuration.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{
		Indent:    2,
		Delimiter: DelimComma,
		MaxDepth:  defaultMaxDepth,
	}
}

// normalize fills zero fields with defaults and validates the rest.
func (o EncodeOptions) normalize() (EncodeOptions, error) {
	if o.Indent == 0 {
		o.Indent = 2
	}
	if o.Indent < 0 {
		return o, &InvalidOptionError{Msg: fmt.Sprintf("indent must be positive, got %d", o.Indent)}
	}
	if o.Delimiter == 0 {
		o.Delimiter = DelimComma
	}
	if !o.Delimiter.valid() {
		return o, &InvalidOptionError{Msg: fmt.Sprintf("delimiter must be ',', '|' or tab, got %q", byte(o.Delimiter))}
	}
	if o.MaxDepth == 0 {
		o.MaxDepth = defaultMaxDepth
	}
	if o.MaxDepth < 1 {
		return o, &InvalidOptionError{Msg: fmt.Sprintf("max depth must be positive, got %d", o.MaxDepth)}
	}
	return o, nil
}

// DecodeOptions configures the decoder.
type DecodeOptions struct {
	// Indent is the number of spaces per nesting level (default 2).
	Indent int

	// Strict enables length, indentation, and blank-line validation.
	// Decode and Unmarshal default to strict; the zero struct is lenient,
	// use DefaultDecodeOptions for the documented defaults.
	Strict bool

	// MaxDepth caps nesting while decoding (default 256).
	MaxDepth int
}

// DefaultDecodeOptions returns the default (strict) decoder configuration.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{
		Indent:   2,
		Strict:   true,
		MaxDepth: defaultMaxDepth,
	}
}

func (o DecodeOptions) normalize() (DecodeOptions, error) {
	if o.Indent == 0 {
		o.Indent = 2
	}
	if o.Indent < 0 {
		return o, &InvalidOptionError{Msg: fmt.Sprintf("indent must be positive, got %d", o.Indent)}
	}
	if o.MaxDepth == 0 {
		o.MaxDepth = defaultMaxDepth
	}
	if o.MaxDepth < 1 {
		return o, &InvalidOptionError{Msg: fmt.Sprintf("max depth must be positive, got %d", o.MaxDepth)}
	}
	return o, nil
}

// ============================================================
// Functional options (Marshal / Unmarshal surface)
// ============================================================

// Option adjusts Marshal and Unmarshal behavior. Options that only apply
// to one direction are ignored by the other.
type Option func(*options) error

type options struct {
	enc EncodeOptions
	dec DecodeOptions
}

func applyOptions(opts []Option) (options, error) {
	o := options{
		enc: DefaultEncodeOptions(),
		dec: DefaultDecodeOptions(),
	}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return o, err
		}
	}
	return o, nil
}

// WithIndent sets the number of spaces per nesting level.
func WithIndent(n int) Option {
	return func(o *options) error {
		if n < 1 {
			return &InvalidOptionError{Msg: fmt.Sprintf("indent must be positive, got %d", n)}
		}
		o.enc.Indent = n
		o.dec.Indent = n
		return nil
	}
}

// WithDelimiter sets the inline and tabular value delimiter.
func WithDelimiter(d Delimiter) Option {
	return func(o *options) error {
		if !d.valid() {
			return &InvalidOptionError{Msg: fmt.Sprintf("delimiter must be ',', '|' or tab, got %q", byte(d))}
		}
		o.enc.Delimiter = d
		return nil
	}
}

// WithLengthMarkers toggles the '#' length marker in array headers.
func WithLengthMarkers(on bool) Option {
	return func(o *options) error {
		o.enc.LengthMarker = on
		return nil
	}
}

// WithLenient disables strict decoding: array underruns and irregular
// indentation are tolerated.
func WithLenient() Option {
	return func(o *options) error {
		o.dec.Strict = false
		return nil
	}
}

// WithMaxDepth sets the maximum nesting depth for both directions.
func WithMaxDepth(n int) Option {
	return func(o *options) error {
		if n < 1 {
			return &InvalidOptionError{Msg: fmt.Sprintf("max depth must be positive, got %d", n)}
		}
		o.enc.MaxDepth = n
		o.dec.MaxDepth = n
		return nil
	}
}
