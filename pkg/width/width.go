package width

import (
	"strconv"
	"strings"
	"unicode"
)

// Maximum declared width, in percent.
const MaxPercent = 100

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// Style is the width override for one column.
type Style struct {
	FlexBasisPercent int `json:"flexBasisPercent"`
}

// Declarations returns the CSS declarations for the style.
func (s Style) Declarations() []Declaration {
	return []Declaration{
		{Property: "flex", Value: "0 0 " + strconv.Itoa(s.FlexBasisPercent) + "%"},
		{Property: "min-width", Value: "0"},
	}
}

// StyleFor maps raw column metadata to a style. An absent attribute is passed
// as "". The value is read like a base-10 integer prefix: leading whitespace
// and an optional sign, then digits; anything after the digits is ignored,
// so "50%" is 50. It reports false unless the value lies in (0, 100].
func StyleFor(raw string) (Style, bool) {
	v, ok := parseIntPrefix(raw)
	if !ok || v <= 0 || v > MaxPercent {
		return Style{}, false
	}
	return Style{FlexBasisPercent: v}, true
}

// parseIntPrefix parses the leading integer of s. Overlong digit runs are
// reported as out of range rather than wrapped.
func parseIntPrefix(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, isSpace)
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0, false
	}

	digits := s[start:i]
	v, err := strconv.Atoi(digits)
	if err != nil {
		// Too many digits for an int: far outside (0, 100] either way.
		v = MaxPercent + 1
	}
	if neg {
		v = -v
	}
	return v, true
}

// isSpace reports the characters skipped before a number: Unicode white space
// and the byte order mark.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
