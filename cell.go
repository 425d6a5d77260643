package csvdocument

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Kind identifies which variant a Cell holds.
type Kind uint8

const (
	// KindString marks a text cell.
	KindString Kind = iota
	// KindNumber marks a numeric cell.
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Cell is one value at a (row, column) position: either a string or a number.
// The zero Cell is the empty string.
type Cell struct {
	kind Kind
	text string
	num  float64
}

// StringCell returns a string cell holding s.
func StringCell(s string) Cell {
	return Cell{kind: KindString, text: s}
}

// NumberCell returns a number cell holding f.
func NumberCell(f float64) Cell {
	return Cell{kind: KindNumber, num: f}
}

// Kind reports the variant held by c.
func (c Cell) Kind() Kind { return c.kind }

// IsNumber reports whether c holds a number.
func (c Cell) IsNumber() bool { return c.kind == KindNumber }

// Number returns the numeric value and true when c is a number cell.
func (c Cell) Number() (float64, bool) {
	if c.kind != KindNumber {
		return 0, false
	}
	return c.num, true
}

// Text returns the string value and true when c is a string cell.
func (c Cell) Text() (string, bool) {
	if c.kind != KindString {
		return "", false
	}
	return c.text, true
}

// String renders c as text. Numbers use the canonical decimal form written by
// the serializer.
func (c Cell) String() string {
	if c.kind == KindNumber {
		return formatNumber(c.num)
	}
	return c.text
}

// formatNumber renders f the way ECMAScript's Number#toString does: plain
// decimal digits between 1e-6 and 1e21, exponent notation outside.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	// strconv pads the exponent to two digits ("1e-07"); trim it to "1e-7".
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}

// parseNumber reports whether the whole of s is a numeric literal and returns
// its value. Accepted: optional sign, digits with an optional fraction (or a
// bare ".5" fraction), an optional exponent, or "Infinity".
func parseNumber(s string) (float64, bool) {
	if !isNumericLiteral(s) {
		return 0, false
	}
	body := strings.TrimLeft(s, "+-")
	if body == "Infinity" {
		if s[0] == '-' {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// ErrRange still carries ±Inf or ±0, matching the literal's magnitude.
		if !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
	}
	return f, true
}

func isNumericLiteral(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if s[i:] == "Infinity" {
		return true
	}

	intDigits := scanDigits(s, i)
	i += intDigits
	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		i++
		fracDigits = scanDigits(s, i)
		i += fracDigits
	}
	if intDigits == 0 && fracDigits == 0 {
		return false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expDigits := scanDigits(s, i)
		if expDigits == 0 {
			return false
		}
		i += expDigits
	}
	return i == len(s)
}

func scanDigits(s string, i int) int {
	n := 0
	for i+n < len(s) && s[i+n] >= '0' && s[i+n] <= '9' {
		n++
	}
	return n
}
