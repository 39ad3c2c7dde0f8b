// Package mathx holds small generic numeric helpers shared by config
// normalisation code.
package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. Swaps the bounds if given in reverse order.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}
