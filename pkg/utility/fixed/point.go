package fixed

import (
	"github.com/govalues/decimal"

	"github.com/peter-kozarec/deeptick/pkg/utility"
)

// Point is an unsafe wrapper around the decimal implementation. Caller must
// make sure the calculations are correct and will not result in an error
// state, otherwise it will panic
type Point struct {
	v decimal.Decimal
}

func FromInt64(value int64, scale int) Point {
	return Point{must(decimal.New(value, scale))}
}

func FromUint64(value uint64, scale int) Point {
	return Point{must(decimal.New(utility.U64ToI64Unsafe(value), scale))}
}

func (p Point) String() string { return p.v.String() }

func (p Point) Div(o Point) Point { return Point{must(p.v.Quo(o.v))} }

func (p Point) Eq(o Point) bool { return p.v.Cmp(o.v) == 0 }

func must(v decimal.Decimal, err error) decimal.Decimal {
	if err == nil {
		// Return in the happy path
		return v
	}
	panic(err)
}
