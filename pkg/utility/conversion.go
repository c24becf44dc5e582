package utility

import "math"

func U64ToI64Unsafe(i uint64) int64 {
	if i <= uint64(math.MaxInt64) {
		return int64(i) // #nosec G115
	}
	panic("integer overflow")
}
