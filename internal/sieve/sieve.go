// internal/sieve/sieve.go

// Package sieve generates the special primes used by the trial-division and
// probe stages: 3 plus every prime ≡ 1 or ≡ 5 (mod 6). It runs a twin
// bit-sieve over the two residue classes, which roughly halves memory
// versus a full-range sieve.
package sieve

import (
	"math"
	"sort"

	"github.com/DULA2025/RSA-Factorization/internal/core/domain"
	"github.com/DULA2025/RSA-Factorization/internal/platform/logx"
)

// Generator implements ports.SpecialPrimeSieve.
type Generator struct {
	logger logx.Logger
}

// New creates a sieve generator.
func New(logger logx.Logger) *Generator {
	if logger == nil {
		logger = logx.New()
	}
	return &Generator{logger: logger.With("component", "sieve")}
}

// Generate returns the special primes ≤ limit tagged with their congruence
// class, sorted ascending.
func (g *Generator) Generate(limit uint64) []domain.PrimeCandidate {
	primes := Primes(limit)
	out := make([]domain.PrimeCandidate, 0, len(primes))
	for _, p := range primes {
		class, err := domain.ClassOf(p)
		if err != nil {
			// Cannot happen for sieve output; skip defensively is wrong,
			// surface loudly instead.
			g.logger.Err(err, "prime", p)
			continue
		}
		out = append(out, domain.PrimeCandidate{P: p, Class: class})
	}
	g.logger.Debug("special primes generated", "limit", limit, "count", len(out))
	return out
}

// Primes returns all primes ≤ limit that are 3 or ≡ 1/≡ 5 (mod 6),
// sorted ascending, no duplicates. Limits below 3 yield an empty list.
//
// Candidates 6k+1 live in array A indexed by k ≥ 1 and candidates 6k+5 in
// array B indexed by k ≥ 0. A prime p crosses out the products p·s with
// s ≥ p in both arrays; the starting index of each run is the index of the
// smallest such product in the target residue class.
func Primes(limit uint64) []uint64 {
	if limit < 3 {
		return nil
	}
	primes := []uint64{3}
	if limit < 5 {
		return primes
	}

	// Largest k with 6k+1 ≤ limit, resp. 6k+5 ≤ limit. Floor division
	// keeps the bounds right for limit mod 6 ∈ {0,2,3,4}.
	maxA := (limit - 1) / 6
	maxB := (limit - 5) / 6

	compA := make([]bool, maxA+1) // true = crossed out
	compB := make([]bool, maxB+1)

	root := isqrt(limit)
	for i := uint64(0); 6*i+1 <= root || 6*i+5 <= root; i++ {
		if i >= 1 && i <= maxA && !compA[i] {
			if p := 6*i + 1; p <= root {
				// p ≡ 1: p·s ≡ 1 needs s ≡ 1, so the first product in A
				// is p·p; in B it needs s ≡ 5, first s ≥ p is p+4.
				cross(compA, (p*p-1)/6, p)
				cross(compB, (p*(p+4)-5)/6, p)
			}
		}
		if i <= maxB && !compB[i] {
			if p := 6*i + 5; p <= root {
				// p ≡ 5: p·s ≡ 1 needs s ≡ 5, first is p·p; p·s ≡ 5
				// needs s ≡ 1, first s ≥ p is p+2.
				cross(compA, (p*p-1)/6, p)
				cross(compB, (p*(p+2)-5)/6, p)
			}
		}
	}

	for i := uint64(1); i <= maxA; i++ {
		if !compA[i] {
			primes = append(primes, 6*i+1)
		}
	}
	for i := uint64(0); i <= maxB; i++ {
		if !compB[i] {
			primes = append(primes, 6*i+5)
		}
	}
	sort.Slice(primes, func(i, j int) bool { return primes[i] < primes[j] })
	return primes
}

// cross marks every step-th entry of comp starting at start.
func cross(comp []bool, start, step uint64) {
	for j := start; j < uint64(len(comp)); j += step {
		comp[j] = true
	}
}

// isqrt returns ⌊√n⌋.
func isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	x := uint64(math.Sqrt(float64(n)))
	for x > 0 && x*x > n {
		x--
	}
	for (x+1)*(x+1) <= n {
		x++
	}
	return x
}
