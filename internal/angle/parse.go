package angle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrFormat reports a sexagesimal angle string that cannot be parsed.
var ErrFormat = errors.New("invalid angle format")

// DefaultDelimiter separates sexagesimal tokens unless the caller
// chooses otherwise.
const DefaultDelimiter = ":"

// ParseDMS parses a sexagesimal degrees string ("10:30:00") into decimal
// degrees. Tokens bind positionally as degrees, minutes and seconds;
// trailing tokens may be omitted ("10:30" is 10.5°). The sign of the
// degree token does not propagate to minutes or seconds.
//
// An empty delim selects DefaultDelimiter. Empty input, more than three
// tokens, or a non-numeric token returns an error wrapping ErrFormat.
func ParseDMS(text, delim string) (float64, error) {
	if delim == "" {
		delim = DefaultDelimiter
	}
	tokens := splitTokens(text, delim)
	if len(tokens) == 0 {
		return 0, fmt.Errorf("parse %q: no tokens: %w", text, ErrFormat)
	}
	if len(tokens) > 3 {
		return 0, fmt.Errorf("parse %q: %d tokens, want at most 3: %w", text, len(tokens), ErrFormat)
	}

	var dms [3]float64
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return 0, fmt.Errorf("parse %q: token %q: %w", text, tok, ErrFormat)
		}
		dms[i] = v
	}

	return dms[0] + (dms[1]+dms[2]/60)/60, nil
}

// ParseHMS parses a sexagesimal hour-angle string ("01:00:00") into
// decimal degrees (one hour is 15°). Token rules match ParseDMS.
func ParseHMS(text, delim string) (float64, error) {
	deg, err := ParseDMS(text, delim)
	if err != nil {
		return 0, err
	}
	return deg * 15, nil // 15 = 360/24
}

// splitTokens splits text on delim, dropping empty tokens so that
// stray delimiters and surrounding whitespace are tolerated.
func splitTokens(text, delim string) []string {
	var tokens []string
	for _, tok := range strings.Split(text, delim) {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
