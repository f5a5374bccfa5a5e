package numberutils

import (
	"math"
	"strconv"
	"strings"
)

// ToFloat64WithError converts the given string to a finite float64.
// NaN and infinities are rejected the same way as malformed input.
func ToFloat64WithError(s string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrRange}
	}
	return value, nil
}
