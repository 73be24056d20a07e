package driver

import (
	"math"
	"testing"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name      string
		v         float64
		precision int
		want      string
	}{
		{"integral gets trailing zero", 8, -1, "8.0"},
		{"sum of halves", 5, -1, "5.0"},
		{"fraction kept short", 3.5, -1, "3.5"},
		{"negative integral", -3, -1, "-3.0"},
		{"zero", 0, -1, "0.0"},
		{"shortest repr", 0.1, -1, "0.1"},
		{"fixed precision", 3.14159, 2, "3.14"},
		{"fixed precision pads", 2, 3, "2.000"},
		{"fixed precision zero", 2.7, 0, "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.v, tt.precision); got != tt.want {
				t.Errorf("FormatValue(%v, %d) = %q, want %q", tt.v, tt.precision, got, tt.want)
			}
		})
	}
}

func TestFormatValueNonFinite(t *testing.T) {
	if got := FormatValue(math.Inf(1), -1); got != "+Inf" {
		t.Errorf("inf: got %q", got)
	}
	if got := FormatValue(math.NaN(), -1); got != "NaN" {
		t.Errorf("nan: got %q", got)
	}
}
