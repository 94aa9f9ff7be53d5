// internal/core/ports/collaborators.go
package ports

import (
	"math/big"

	"github.com/DULA2025/RSA-Factorization/internal/core/domain"
)

// PrimePower es un factor primo con su exponente, tal como lo reporta
// el factorizador general.
type PrimePower struct {
	Prime    *big.Int
	Exponent int
}

// PrimalityOracle decide primalidad de enteros de precisión arbitraria.
// Puede ser probabilístico con error despreciable; el pipeline lo trata
// como autoritativo.
type PrimalityOracle interface {
	IsPrime(n *big.Int) bool
}

// Factorizer es el factorizador general de enteros. Puede fallar para
// entradas que no resuelve en tiempo razonable; el orquestador absorbe
// el error como fallo de etapa.
type Factorizer interface {
	Factor(n *big.Int) ([]PrimePower, error)
}

// PolyFactor es un factor irreducible de un polinomio sobre GF(p),
// con coeficientes en orden de grado ascendente (low-degree-first).
type PolyFactor struct {
	Coeffs       []uint64
	Multiplicity int
}

// PolyFactorizer factoriza y evalúa polinomios sobre cuerpos primos GF(p).
// Es el colaborador de aritmética de cuerpo finito del probe.
type PolyFactorizer interface {
	// FactorCyclic factoriza x^m − 1 sobre GF(p) en irreducibles.
	FactorCyclic(m int, p uint64) ([]PolyFactor, error)

	// Cyclotomic construye el polinomio ciclotómico Φ_m sobre GF(p),
	// coeficientes low-degree-first.
	Cyclotomic(m int, p uint64) ([]uint64, error)

	// Eval evalúa un polinomio (low-degree-first) en x sobre GF(p).
	Eval(coeffs []uint64, x uint64, p uint64) uint64
}

// SpecialPrimeSieve genera los primos especiales (3 y clases 1/5 mod 6)
// hasta un límite, ordenados ascendentemente y sin duplicados.
type SpecialPrimeSieve interface {
	Generate(limit uint64) []domain.PrimeCandidate
}

// Collaborators agrupa los colaboradores externos que consumen las
// estrategias. Se inyecta en las factories del registry.
type Collaborators struct {
	Oracle     PrimalityOracle
	Factorizer Factorizer
	Poly       PolyFactorizer
	Sieve      SpecialPrimeSieve
}
