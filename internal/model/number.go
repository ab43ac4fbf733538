package model

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseFloat converts catalog text to a float64.
//
// Surrounding whitespace is ignored. Out-of-range values saturate to ±Inf
// or 0 instead of failing. Failures are reported as *FormatError wrapping
// ErrNumber.
func ParseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &FormatError{Field: "number", Value: s, Err: ErrNumber}
	}
	return v, nil
}

// ParseInt converts catalog text to an int.
//
// Surrounding whitespace is ignored. Failures are reported as *FormatError
// wrapping ErrNumber.
func ParseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &FormatError{Field: "integer", Value: s, Err: ErrNumber}
	}
	return v, nil
}

// FormatFloat renders f in its natural decimal form.
//
// The shortest digits that round-trip are used and a fractional part is
// always present, so 5 renders as "5.0" and 3.5 as "3.5". Special values
// render as "inf", "-inf" and "nan".
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func formatInt(i int) string {
	return strconv.Itoa(i)
}
