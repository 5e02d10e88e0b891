package numeric

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// GCD returns the greatest common divisor of a and b.
// GCD(a, 0) == |a|.
func GCD[T constraints.Integer](a, b T) T {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// GCDOf folds GCD over values starting from 0, so GCDOf() == 0 and
// GCDOf(x) == |x|.
func GCDOf[T constraints.Integer](values ...T) T {
	var g T
	for _, v := range values {
		g = GCD(g, v)
	}

	return g
}

// ModInverse returns x in [0, modulus) such that (value·x) mod modulus == 1.
// modulus must be positive and coprime with value; modulus == 1 yields 0.
func ModInverse[T constraints.Signed](value, modulus T) T {
	if modulus == 1 {
		return 0
	}
	var (
		a, b   = value % modulus, modulus
		x0, x1 T = 0, 1
		q      T
	)
	if a < 0 {
		a += modulus
	}
	for a > 1 && b > 0 {
		q = a / b
		a, b = b, a-q*b
		x0, x1 = x1-q*x0, x0
	}

	return ((x1 % modulus) + modulus) % modulus
}

// MulMod returns a·b mod m through the full 128-bit product.
// a and b must be below m.
func MulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)

	return rem
}

// MulSubDiv returns (a·b − c) / m through a 128-bit intermediate.
// Requires a·b ≥ c and a quotient below 2^64; Div64 panics otherwise.
func MulSubDiv(a, b, c, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	lo, borrow := bits.Sub64(lo, c, 0)
	hi -= borrow
	q, _ := bits.Div64(hi, lo, m)

	return q
}

func abs[T constraints.Integer](v T) T {
	if v < 0 {
		return -v
	}

	return v
}
