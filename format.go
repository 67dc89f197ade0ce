package pointdist

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatDistance renders d with a fixed number of decimal places, e.g.
// FormatDistance(3, "Distance: ", 2) == "Distance: 3.00".
func FormatDistance(d float64, prefix string, decimals int32) string {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return prefix + strconv.FormatFloat(d, 'f', int(decimals), 64)
	}
	return prefix + decimal.NewFromFloat(d).StringFixed(decimals)
}
