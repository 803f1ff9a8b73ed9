package job

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	decimalRe = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	radixRe   = regexp.MustCompile(`^0([xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)$`)
)

// NumericInput is a client value that may have arrived as a JSON string or
// a JSON number. Text holds the string, or the number literal.
type NumericInput struct {
	Text     string
	IsNumber bool
}

// Empty reports whether the value counts as not provided: an empty string or
// a numeric zero.
func (n NumericInput) Empty() bool {
	if n.Text == "" {
		return true
	}
	if n.IsNumber {
		v, ok := ParseNumber(n.Text)
		return ok && v == 0
	}
	return false
}

// ParseNumber converts text the way browsers coerce form values to numbers:
// surrounding whitespace is ignored, blank text is zero, and 0x/0o/0b
// integer literals are accepted. Non-finite results are rejected.
func ParseNumber(s string) (float64, bool) {
	t := strings.TrimFunc(s, isNumberSpace)
	if t == "" {
		return 0, true
	}

	if radixRe.MatchString(t) {
		base := 16
		switch t[1] {
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		n, ok := new(big.Int).SetString(t[2:], base)
		if !ok {
			return 0, false
		}
		f, _ := new(big.Float).SetInt(n).Float64()
		if math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}

	if !decimalRe.MatchString(t) {
		return 0, false
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func isNumberSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r) || r == '\uFEFF'
}
