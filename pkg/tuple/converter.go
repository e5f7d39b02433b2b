package tuple

import (
	"strconv"
	"strings"
)

// Converter maps one comma-separated segment to a typed value.
type Converter[T any] func(string) (T, error)

// ParseFloat converts a segment to a float64. Surrounding whitespace is
// ignored, as are the usual spellings of infinity and NaN. Hexadecimal
// floats ("0x1p4") and digit separators ("1_0") are rejected.
func ParseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if isHex(s) {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}
	return strconv.ParseFloat(s, 64)
}

// ParseInt converts a segment to a base-10 int. Surrounding whitespace is
// ignored. Digit separators ("1_0") and base prefixes ("0x10") are rejected.
func ParseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// ParseString returns the segment unchanged.
func ParseString(s string) (string, error) {
	return s, nil
}

func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
