package toon

// ============================================================
// Size Comparison
// ============================================================

// Savings compares the TOON encoding of a value against its minified
// JSON form. Token counts are rough estimates for LLM budgeting, not
// tokenizer-exact figures.
type Savings struct {
	JSONBytes  int
	TOONBytes  int
	JSONTokens int
	TOONTokens int
}

// BytesSavedPct returns the byte reduction as a percentage of the JSON
// size.
func (s Savings) BytesSavedPct() float64 {
	if s.JSONBytes == 0 {
		return 0
	}
	return 100 * float64(s.JSONBytes-s.TOONBytes) / float64(s.JSONBytes)
}

// TokensSavedPct returns the estimated token reduction as a percentage.
func (s Savings) TokensSavedPct() float64 {
	if s.JSONTokens == 0 {
		return 0
	}
	return 100 * float64(s.JSONTokens-s.TOONTokens) / float64(s.JSONTokens)
}

// CompareSizes encodes v both ways and reports the size difference.
func CompareSizes(v *Value, opts EncodeOptions) (Savings, error) {
	jsonText, err := AppendJSON(nil, v)
	if err != nil {
		return Savings{}, err
	}
	toonText, err := EncodeWithOptions(v, opts)
	if err != nil {
		return Savings{}, err
	}
	return Savings{
		JSONBytes:  len(jsonText),
		TOONBytes:  len(toonText),
		JSONTokens: estimateTokens(string(jsonText)),
		TOONTokens: estimateTokens(toonText),
	}, nil
}

// estimateTokens approximates a BPE token count: runs of letters or
// digits count once per four characters, everything else one per
// character. Whitespace runs collapse to one.
func estimateTokens(s string) int {
	tokens := 0
	run := 0
	inSpace := false
	for _, r := range s {
		switch {
		case r == ' ' || r == '\n' || r == '\t' || r == '\r':
			if !inSpace {
				tokens++
			}
			inSpace = true
			run = 0
		case isWordRune(r):
			inSpace = false
			if run%4 == 0 {
				tokens++
			}
			run++
		default:
			inSpace = false
			run = 0
			tokens++
		}
	}
	return tokens
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
