// internal/stages/common/branch.go

// Package common contiene la lógica compartida por las etapas del pipeline:
// la expansión de un divisor conocido a la lista completa de factores primos.
package common

import (
	"math/big"
	"sort"

	"github.com/DULA2025/RSA-Factorization/internal/core/ports"
)

var bigOne = big.NewInt(1)

// ExpandPrimePowers aplana potencias de primos a una lista de factores con
// multiplicidad, ordenada ascendente. El producto de la lista reconstruye
// el entero factorizado.
func ExpandPrimePowers(pps []ports.PrimePower) []*big.Int {
	var factors []*big.Int
	for _, pp := range pps {
		for i := 0; i < pp.Exponent; i++ {
			factors = append(factors, new(big.Int).Set(pp.Prime))
		}
	}
	sort.Slice(factors, func(i, j int) bool { return factors[i].Cmp(factors[j]) < 0 })
	return factors
}

// SplitWithCofactor expande un divisor conocido d de n a una lista completa
// de factores primos con multiplicidad, ordenada ascendente.
//
// Cada parte (d y el cofactor n/d) se resuelve con el oráculo de primalidad;
// las partes compuestas se delegan al factorizador general. Si una parte no
// se resuelve, se incluye tal cual con un aviso — el producto de la lista
// sigue reconstruyendo n, pero la verificación aguas arriba decidirá.
func SplitWithCofactor(d, n *big.Int, deps ports.Collaborators) (factors []*big.Int, warnings []string) {
	cofactor := new(big.Int).Quo(n, d)

	for _, part := range []*big.Int{d, cofactor} {
		if part.Cmp(bigOne) <= 0 {
			continue
		}
		if deps.Oracle != nil && deps.Oracle.IsPrime(part) {
			factors = append(factors, new(big.Int).Set(part))
			continue
		}
		if deps.Factorizer != nil {
			pps, err := deps.Factorizer.Factor(part)
			if err == nil {
				for _, pp := range pps {
					for i := 0; i < pp.Exponent; i++ {
						factors = append(factors, new(big.Int).Set(pp.Prime))
					}
				}
				continue
			}
			warnings = append(warnings, "composite part "+part.String()+" not fully factored: "+err.Error())
		}
		factors = append(factors, new(big.Int).Set(part))
	}

	sort.Slice(factors, func(i, j int) bool { return factors[i].Cmp(factors[j]) < 0 })
	return factors, warnings
}
