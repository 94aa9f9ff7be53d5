// internal/gf/poly.go
package gf

import "math/big"

// Polynomials are []uint64 coefficient slices, low-degree-first, reduced
// mod p. The zero polynomial is the empty (or all-zero) slice.

// polyTrim removes trailing zero coefficients.
func polyTrim(f []uint64) []uint64 {
	n := len(f)
	for n > 0 && f[n-1] == 0 {
		n--
	}
	return f[:n]
}

// polyDeg returns the degree of f, or -1 for the zero polynomial.
func polyDeg(f []uint64) int {
	return len(polyTrim(f)) - 1
}

// polyClone returns an independent copy of f.
func polyClone(f []uint64) []uint64 {
	out := make([]uint64, len(f))
	copy(out, f)
	return out
}

// polyAdd returns f + g mod p.
func polyAdd(f, g []uint64, p uint64) []uint64 {
	n := len(f)
	if len(g) > n {
		n = len(g)
	}
	out := make([]uint64, n)
	for i := range out {
		var a, b uint64
		if i < len(f) {
			a = f[i]
		}
		if i < len(g) {
			b = g[i]
		}
		out[i] = modAdd(a, b, p)
	}
	return polyTrim(out)
}

// polySub returns f - g mod p.
func polySub(f, g []uint64, p uint64) []uint64 {
	n := len(f)
	if len(g) > n {
		n = len(g)
	}
	out := make([]uint64, n)
	for i := range out {
		var a, b uint64
		if i < len(f) {
			a = f[i]
		}
		if i < len(g) {
			b = g[i]
		}
		out[i] = modSub(a, b, p)
	}
	return polyTrim(out)
}

// polyMul returns f * g mod p by schoolbook multiplication. The degrees in
// play (≤ p ≤ 10^4) keep this well inside the cheap range.
func polyMul(f, g []uint64, p uint64) []uint64 {
	f, g = polyTrim(f), polyTrim(g)
	if len(f) == 0 || len(g) == 0 {
		return nil
	}
	out := make([]uint64, len(f)+len(g)-1)
	for i, a := range f {
		if a == 0 {
			continue
		}
		for j, b := range g {
			if b == 0 {
				continue
			}
			out[i+j] = modAdd(out[i+j], modMul(a, b, p), p)
		}
	}
	return polyTrim(out)
}

// polyScale returns c * f mod p.
func polyScale(f []uint64, c, p uint64) []uint64 {
	out := make([]uint64, len(f))
	for i, a := range f {
		out[i] = modMul(a, c, p)
	}
	return polyTrim(out)
}

// polyDivMod returns quotient and remainder of f / g mod p. Panics on a
// zero divisor; callers guarantee deg(g) ≥ 0.
func polyDivMod(f, g []uint64, p uint64) (quo, rem []uint64) {
	g = polyTrim(g)
	if len(g) == 0 {
		panic("gf: division by zero polynomial")
	}
	rem = polyClone(polyTrim(f))
	dg := len(g) - 1
	if len(rem)-1 < dg {
		return nil, rem
	}
	quo = make([]uint64, len(rem)-dg)
	inv := modInv(g[dg], p)
	for len(rem)-1 >= dg && len(rem) > 0 {
		d := len(rem) - 1
		c := modMul(rem[d], inv, p)
		quo[d-dg] = c
		for i, b := range g {
			rem[d-dg+i] = modSub(rem[d-dg+i], modMul(c, b, p), p)
		}
		rem = polyTrim(rem)
	}
	return polyTrim(quo), rem
}

// polyMod returns f mod g.
func polyMod(f, g []uint64, p uint64) []uint64 {
	_, rem := polyDivMod(f, g, p)
	return rem
}

// polyMonic scales f so its leading coefficient is 1.
func polyMonic(f []uint64, p uint64) []uint64 {
	f = polyTrim(f)
	if len(f) == 0 {
		return f
	}
	lead := f[len(f)-1]
	if lead == 1 {
		return f
	}
	return polyScale(f, modInv(lead, p), p)
}

// polyGCD returns the monic greatest common divisor of f and g.
func polyGCD(f, g []uint64, p uint64) []uint64 {
	a, b := polyTrim(f), polyTrim(g)
	for len(b) > 0 {
		a, b = b, polyMod(a, b, p)
	}
	return polyMonic(a, p)
}

// polyPowMod returns base^e mod (mod, p). The exponent is a big.Int because
// (p^d - 1) / 2 overflows uint64 for the field sizes the probe visits.
func polyPowMod(base []uint64, e *big.Int, mod []uint64, p uint64) []uint64 {
	result := []uint64{1}
	b := polyMod(base, mod, p)
	for i := e.BitLen() - 1; i >= 0; i-- {
		result = polyMod(polyMul(result, result, p), mod, p)
		if e.Bit(i) == 1 {
			result = polyMod(polyMul(result, b, p), mod, p)
		}
	}
	return result
}

// polyEval evaluates f at x by Horner's rule.
func polyEval(f []uint64, x, p uint64) uint64 {
	var acc uint64
	for i := len(f) - 1; i >= 0; i-- {
		acc = modAdd(modMul(acc, x, p), f[i]%p, p)
	}
	return acc
}

// xPowMinusOne builds x^m - 1 over GF(p).
func xPowMinusOne(m int, p uint64) []uint64 {
	f := make([]uint64, m+1)
	f[0] = p - 1
	f[m] = 1
	return f
}
