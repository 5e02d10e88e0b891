// Package numeric provides the small number-theory kernel used by the
// closed-form container solvers.
//
// What
//
//   - GCD / GCDOf: Euclidean greatest common divisor of two or many integers.
//   - ModInverse:  multiplicative inverse modulo m via the extended Euclidean
//     algorithm.
//   - MulMod / MulSubDiv: products taken at 128 bits, so operands up to
//     2^64 never wrap before the reduction.
//
// Contracts
//
//   - GCD(a, 0) == a and GCD(0, 0) == 0. Inputs are expected to be
//     non-negative; negative inputs are folded through their absolute value.
//   - ModInverse assumes gcd(value, modulus) == 1. Callers establish this by
//     dividing both operands by their gcd first; the precondition is not
//     checked at runtime and a non-coprime pair yields an unspecified value.
//
// Complexity
//
//   - GCD:        O(log min(a, b)).
//   - GCDOf:      O(n · log max).
//   - ModInverse: O(log modulus).
package numeric
