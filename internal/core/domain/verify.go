// internal/core/domain/verify.go
package domain

import "math/big"

// Verify comprueba que el producto de los factores reconstruye n con
// exactitud. Función pura: sin efectos, sin recuperación; un desajuste
// se reporta como false y el caller decide (el pipeline nunca reintenta).
func Verify(n *big.Int, factors []*big.Int) bool {
	if n == nil || len(factors) == 0 {
		return false
	}
	product := big.NewInt(1)
	for _, f := range factors {
		if f == nil {
			return false
		}
		product.Mul(product, f)
	}
	return product.Cmp(n) == 0
}
