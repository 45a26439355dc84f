// Package mathx holds small generic numeric helpers shared by the day solvers.
package mathx

import "golang.org/x/exp/constraints"

// Number is any integer or float type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns the sum of values.
func Sum[T Number](values ...T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

// Product returns the product of values, or 1 for no values.
func Product[T Number](values ...T) T {
	total := T(1)
	for _, v := range values {
		total *= v
	}
	return total
}

// MinMax returns the smallest and largest values.
// ok is false when values is empty.
func MinMax[T constraints.Ordered](values []T) (lo, hi T, ok bool) {
	if len(values) == 0 {
		return lo, hi, false
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, true
}

// Between reports whether lo <= x <= hi.
func Between[T constraints.Ordered](x, lo, hi T) bool {
	return x >= lo && x <= hi
}
