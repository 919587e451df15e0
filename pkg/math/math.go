// Package math provides generic numeric helpers
// and prime helpers for choosing table capacities.
package math

import "golang.org/x/exp/constraints"

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Max calculates the maximum of two numbers.
func Max[T Number](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min calculates the minimum of two numbers.
func Min[T Number](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// IsPrime reports whether n is a prime number.
func IsPrime[T constraints.Integer](n T) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := T(3); d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest prime greater than or equal to n.
func NextPrime[T constraints.Integer](n T) T {
	if n <= 2 {
		return 2
	}
	if n%2 == 0 {
		n++
	}
	for !IsPrime(n) {
		n += 2
	}
	return n
}
