package toon

import (
	"fmt"
	"os"
	"strings"
)

// Save encodes v and writes it to path with a trailing newline.
func Save(path string, v *Value, opts EncodeOptions) error {
	if path == "" {
		return &InvalidOptionError{Msg: "empty file path"}
	}
	text, err := EncodeWithOptions(v, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("toon: write %s: %w", path, err)
	}
	return nil
}

// Load reads and decodes a TOON file. CRLF line endings are normalized
// before decoding.
func Load(path string, opts DecodeOptions) (*Value, error) {
	if path == "" {
		return nil, &InvalidOptionError{Msg: "empty file path"}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("toon: read %s: %w", path, err)
	}
	input := strings.ReplaceAll(string(data), "\r\n", "\n")
	return DecodeWithOptions(input, opts)
}
