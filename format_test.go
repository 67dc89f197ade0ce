package pointdist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		name     string
		d        float64
		prefix   string
		decimals int32
		expected string
	}{
		{"Whole", 3, "Distance: ", 2, "Distance: 3.00"},
		{"Repeating", 5.0 / 3, "", 2, "1.67"},
		{"Root two", math.Sqrt2, "d=", 3, "d=1.414"},
		{"No decimals", 2.4, "", 0, "2"},
		{"Zero", 0, "Distance: ", 2, "Distance: 0.00"},
		{"Large", 123456.789, "", 1, "123456.8"},
		{"NaN", math.NaN(), "", 2, "NaN"},
		{"Inf", math.Inf(1), "", 2, "+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDistance(tt.d, tt.prefix, tt.decimals))
		})
	}
}
