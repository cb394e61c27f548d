package abacus

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// integerTolerance is how close a value must be to an integer to be
	// rendered without a fractional part.
	integerTolerance = 1e-10

	// Outside [scientificLow, scientificHigh] non-integers use E notation.
	scientificLow  = 1e-7
	scientificHigh = 1e7

	fixedDigits      = 10
	scientificDigits = 6

	percentMarker = "%"
)

// FormatNumber renders v as the calculator displays it.
//
// Values within 1e-10 of an integer render as that integer. Other values
// smaller than 1e-7 or larger than 1e7 in magnitude render in scientific
// notation with at most six fractional mantissa digits (1.5E8). Everything
// else renders in fixed notation with at most ten fractional digits.
// Trailing zeros are trimmed in both notations.
func FormatNumber(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", ErrNotFinite
	}

	if r := math.Round(v); math.Abs(v-r) < integerTolerance {
		if r == 0 {
			return "0", nil
		}
		return strconv.FormatFloat(r, 'f', 0, 64), nil
	}

	if a := math.Abs(v); a < scientificLow || a > scientificHigh {
		return formatScientific(v), nil
	}

	return trimFraction(strconv.FormatFloat(v, 'f', fixedDigits, 64)), nil
}

// formatScientific renders v as mantissa, "E", exponent without a plus sign.
func formatScientific(v float64) string {
	s := strconv.FormatFloat(v, 'E', scientificDigits, 64)
	mantissa, exp, _ := strings.Cut(s, "E")
	n, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return trimFraction(mantissa) + "E" + strconv.Itoa(n)
}

// trimFraction drops trailing zeros and a dangling decimal point.
func trimFraction(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// ParseDisplay reads a main-display string back into a number. A trailing
// percent marker divides the value by 100.
func ParseDisplay(s string) (float64, error) {
	text := strings.TrimSpace(s)
	percent := strings.HasSuffix(text, percentMarker)
	if percent {
		text = strings.TrimSuffix(text, percentMarker)
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNumericParse, s)
	}
	if percent {
		v /= 100
	}
	return v, nil
}

// isPercent reports whether s carries the percent-display marker.
func isPercent(s string) bool {
	return strings.HasSuffix(s, percentMarker)
}
