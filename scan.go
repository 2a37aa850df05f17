package toon

import (
	"fmt"
	"strings"
)

// ============================================================
// Line Scanner
// ============================================================
//
// First decoding stage: split the input on '\n' and compute each line's
// indent and depth. Blank lines never reach the parser; they are recorded
// separately so strict mode can reject them inside tabular row blocks.
// The scanner does not strip '\r'; callers wanting CRLF tolerance
// normalize before scanning.

// parsedLine is one non-blank input line.
type parsedLine struct {
	raw     string
	content string // raw minus leading spaces
	indent  int    // leading space count
	depth   int    // indent / options.Indent
	number  int    // 1-based line number
}

// blankLineInfo records a blank or whitespace-only line.
type blankLineInfo struct {
	number int
	indent int
	depth  int
}

// scan splits input into parsed lines and blank-line records. In strict
// mode it rejects tabs in leading whitespace and indents that are not a
// multiple of the indent width.
func scan(input string, opts DecodeOptions) ([]parsedLine, []blankLineInfo, error) {
	raws := strings.Split(input, "\n")
	lines := make([]parsedLine, 0, len(raws))
	var blanks []blankLineInfo

	for i, raw := range raws {
		number := i + 1

		indent := 0
		for indent < len(raw) && raw[indent] == ' ' {
			indent++
		}
		content := raw[indent:]

		if strings.TrimSpace(content) == "" {
			blanks = append(blanks, blankLineInfo{
				number: number,
				indent: indent,
				depth:  indent / opts.Indent,
			})
			continue
		}

		if opts.Strict {
			ws := len(raw) - len(strings.TrimLeft(raw, " \t"))
			if strings.ContainsRune(raw[:ws], '\t') {
				return nil, nil, &IndentationError{Line: number, Msg: "tab in indentation"}
			}
			if indent%opts.Indent != 0 {
				return nil, nil, &IndentationError{
					Line: number,
					Msg:  fmt.Sprintf("indent of %d is not a multiple of %d", indent, opts.Indent),
				}
			}
		}

		lines = append(lines, parsedLine{
			raw:     raw,
			content: content,
			indent:  indent,
			depth:   indent / opts.Indent,
			number:  number,
		})
	}
	return lines, blanks, nil
}
