package fixed

import (
	"math"
	"testing"
)

func TestPoint_FromInt64(t *testing.T) {
	tests := []struct {
		name  string
		value int64
		scale int
		want  string
	}{
		{"zero", 0, 0, "0"},
		{"positive", 123, 0, "123"},
		{"negative", -456, 0, "-456"},
		{"with scale", 123, 2, "1.23"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromInt64(tt.value, tt.scale)
			if got.String() != tt.want {
				t.Errorf("FromInt64(%d, %d) = %s; want %s", tt.value, tt.scale, got.String(), tt.want)
			}
		})
	}
}

func TestPoint_FromUint64(t *testing.T) {
	if got := FromUint64(123450000, 0); got.String() != "123450000" {
		t.Errorf("FromUint64(123450000, 0) = %s; want 123450000", got.String())
	}
}

func TestPoint_FromUint64Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("FromUint64(max uint64) did not panic")
		}
	}()
	FromUint64(math.MaxUint64, 0)
}

func TestPoint_Div(t *testing.T) {
	price := FromUint64(123450000, 0)
	multiplier := FromUint64(10000, 0)

	if got := price.Div(multiplier); got.String() != "12345" {
		t.Errorf("Div = %s; want 12345", got.String())
	}
	if got := FromUint64(123456789, 0).Div(multiplier); got.String() != "12345.6789" {
		t.Errorf("Div = %s; want 12345.6789", got.String())
	}
	if !FromUint64(5000, 0).Div(multiplier).Eq(FromInt64(5, 1)) {
		t.Errorf("5000/10000 != 5e-1")
	}
}
