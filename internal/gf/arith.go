// internal/gf/arith.go

// Package gf implements polynomial arithmetic and factorization over prime
// fields GF(p) with p < 2^64. Coefficients are stored low-degree-first in
// []uint64 slices, reduced modulo p.
package gf

import (
	"math/big"
	"math/bits"
)

// modAdd returns (a + b) mod p. Operands must already be reduced.
func modAdd(a, b, p uint64) uint64 {
	s := a + b
	if s < a || s >= p {
		s -= p
	}
	return s
}

// modSub returns (a - b) mod p. Operands must already be reduced.
func modSub(a, b, p uint64) uint64 {
	if a >= b {
		return a - b
	}
	return a + (p - b)
}

// modMul returns (a * b) mod p using a full 128-bit product.
func modMul(a, b, p uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, p)
	return rem
}

// modPow returns a^e mod p by square-and-multiply.
func modPow(a, e, p uint64) uint64 {
	if p == 1 {
		return 0
	}
	result := uint64(1)
	base := a % p
	for e > 0 {
		if e&1 == 1 {
			result = modMul(result, base, p)
		}
		base = modMul(base, base, p)
		e >>= 1
	}
	return result
}

// modInv returns the multiplicative inverse of a in GF(p). Requires p prime
// and a ≢ 0.
func modInv(a, p uint64) uint64 {
	return modPow(a, p-2, p)
}

// isPrimeU64 reports whether p is prime. ProbablyPrime(0) is deterministic
// for inputs below 2^64.
func isPrimeU64(p uint64) bool {
	return new(big.Int).SetUint64(p).ProbablyPrime(0)
}
