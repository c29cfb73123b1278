package sheet

import (
	"strconv"
	"strings"
	"unicode"
)

// Value is a coerced cell value: either free text or a whole number.
type Value struct {
	text    string
	number  int64
	numeric bool
}

// Text wraps a free-text value.
func Text(s string) Value {
	return Value{text: s}
}

// Number wraps an integer value.
func Number(n int64) Value {
	return Value{number: n, numeric: true}
}

// Int returns the number held by v, if it is numeric.
func (v Value) Int() (int64, bool) {
	return v.number, v.numeric
}

// String renders v as raw text.
func (v Value) String() string {
	if v.numeric {
		return strconv.FormatInt(v.number, 10)
	}
	return v.text
}

// ParseAmount keeps only the digits of s and parses them as an integer.
// Empty or unparseable input (including overflow) yields zero.
func ParseAmount(s string) int64 {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Printable reports whether r can start or extend a cell edit.
func Printable(r rune) bool {
	return unicode.IsPrint(r)
}
