package driver

import (
	"math"
	"strconv"
	"strings"
)

// FormatValue renders a result for display. With a negative precision the
// shortest exact representation is used, and integral finite values keep a
// trailing ".0" so results always read as floats (8 prints as "8.0").
// A non-negative precision fixes the number of decimal places.
func FormatValue(v float64, precision int) string {
	if precision >= 0 {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") && !math.IsInf(v, 0) && !math.IsNaN(v) {
		s += ".0"
	}
	return s
}
