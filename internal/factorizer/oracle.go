// internal/factorizer/oracle.go

// Package factorizer provides the pipeline's general-purpose integer
// collaborators: a primality oracle and a Brent-Pollard rho factorizer.
package factorizer

import "math/big"

// millerRabinRounds deja la probabilidad de error por debajo de 4^-20;
// además ProbablyPrime aplica siempre un test Baillie-PSW extra.
const millerRabinRounds = 20

// Oracle decide primalidad. Implementa ports.PrimalityOracle.
type Oracle struct{}

// NewOracle crea el oráculo de primalidad.
func NewOracle() *Oracle {
	return &Oracle{}
}

// IsPrime reporta si n es primo. nil o n < 2 retornan false.
func (o *Oracle) IsPrime(n *big.Int) bool {
	if n == nil || n.Sign() <= 0 {
		return false
	}
	return n.ProbablyPrime(millerRabinRounds)
}
