// internal/gf/factor.go
package gf

import (
	"crypto/rand"
	"math/big"

	"github.com/DULA2025/RSA-Factorization/internal/platform/errors"
)

var bigOne = big.NewInt(1)

// factorCyclic factors x^m - 1 over GF(p) into monic irreducibles with
// multiplicities. Requires p an odd prime and m ≥ 1.
//
// When p divides m, x^m - 1 = (x^m0 - 1)^(p^a) with m = m0 · p^a and
// gcd(m0, p) = 1, so the squarefree part is factored once and every
// irreducible carries multiplicity p^a.
func factorCyclic(m int, p uint64) ([]polyFactor, error) {
	if m < 1 || p < 3 || !isPrimeU64(p) {
		return nil, errors.Wrapf(errors.ErrFieldConstruction, "x^%d-1 over GF(%d)", m, p)
	}

	mult := 1
	m0 := m
	for uint64(m0)%p == 0 {
		m0 /= int(p)
		mult *= int(p)
	}

	f := xPowMinusOne(m0, p)
	irreducibles, err := distinctDegree(f, p)
	if err != nil {
		return nil, err
	}
	for i := range irreducibles {
		irreducibles[i].multiplicity = mult
	}
	return irreducibles, nil
}

type polyFactor struct {
	coeffs       []uint64
	multiplicity int
}

// distinctDegree splits a monic squarefree polynomial into irreducibles:
// for each degree d it extracts gcd(x^(p^d) - x, f) and hands the product
// of the degree-d factors to equalDegree.
func distinctDegree(f []uint64, p uint64) ([]polyFactor, error) {
	f = polyMonic(f, p)
	var out []polyFactor

	bigP := new(big.Int).SetUint64(p)
	h := []uint64{0, 1} // x
	for d := 1; 2*d <= polyDeg(f); d++ {
		h = polyPowMod(h, bigP, f, p)
		g := polyGCD(polySub(h, []uint64{0, 1}, p), f, p)
		if polyDeg(g) > 0 {
			split, err := equalDegree(g, d, p)
			if err != nil {
				return nil, err
			}
			out = append(out, split...)
			f, _ = polyDivMod(f, g, p)
			h = polyMod(h, f, p)
		}
	}
	if polyDeg(f) > 0 {
		out = append(out, polyFactor{coeffs: f, multiplicity: 1})
	}
	return out, nil
}

// equalDegree is Cantor-Zassenhaus: splits a monic product of distinct
// irreducibles of known degree d by gcds with r^((p^d-1)/2) - 1 for random r.
func equalDegree(f []uint64, d int, p uint64) ([]polyFactor, error) {
	if polyDeg(f) == d {
		return []polyFactor{{coeffs: f, multiplicity: 1}}, nil
	}

	// (p^d - 1) / 2, exact since p is odd.
	exp := new(big.Int).Exp(new(big.Int).SetUint64(p), big.NewInt(int64(d)), nil)
	exp.Sub(exp, bigOne)
	exp.Rsh(exp, 1)

	for {
		r, err := randomPoly(polyDeg(f), p)
		if err != nil {
			return nil, err
		}
		g := polySub(polyPowMod(r, exp, f, p), []uint64{1}, p)
		h := polyGCD(g, f, p)
		if polyDeg(h) <= 0 || polyDeg(h) >= polyDeg(f) {
			continue
		}
		left, err := equalDegree(h, d, p)
		if err != nil {
			return nil, err
		}
		quo, _ := polyDivMod(f, h, p)
		right, err := equalDegree(quo, d, p)
		if err != nil {
			return nil, err
		}
		return append(left, right...), nil
	}
}

// randomPoly samples a uniform nonzero polynomial of degree < deg over GF(p).
func randomPoly(deg int, p uint64) ([]uint64, error) {
	bigP := new(big.Int).SetUint64(p)
	for {
		coeffs := make([]uint64, deg)
		for i := range coeffs {
			c, err := rand.Int(rand.Reader, bigP)
			if err != nil {
				return nil, errors.Wrap(err, "sampling random polynomial")
			}
			coeffs[i] = c.Uint64()
		}
		if f := polyTrim(coeffs); len(f) > 0 {
			return f, nil
		}
	}
}
