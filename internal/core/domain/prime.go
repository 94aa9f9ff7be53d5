// internal/core/domain/prime.go
package domain

import "fmt"

// ResidueClass etiqueta la clase de congruencia módulo 6 de un primo.
// Todo primo > 3 es ≡ 1 o ≡ 5 (mod 6); el 3 se trata como caso especial.
type ResidueClass string

const (
	// ResidueOne primos de la forma 6k + 1
	ResidueOne ResidueClass = "1mod6"

	// ResidueFive primos de la forma 6k + 5
	ResidueFive ResidueClass = "5mod6"

	// ResidueThree el primo 3, incluido de forma explícita por el sieve
	ResidueThree ResidueClass = "three"
)

// IsValid verifica si la clase de residuo es válida.
func (c ResidueClass) IsValid() bool {
	switch c {
	case ResidueOne, ResidueFive, ResidueThree:
		return true
	default:
		return false
	}
}

// String retorna la representación string de la clase.
func (c ResidueClass) String() string {
	return string(c)
}

// PrimeCandidate es un primo producido por el sieve junto con su clase
// de congruencia. Lo consumen la división de prueba y los probes.
type PrimeCandidate struct {
	P     uint64
	Class ResidueClass
}

// ClassOf calcula la clase de congruencia de p. Retorna un error para
// valores fuera del patrón (2, o compuestos evidentes módulo 6).
func ClassOf(p uint64) (ResidueClass, error) {
	if p == 3 {
		return ResidueThree, nil
	}
	switch p % 6 {
	case 1:
		return ResidueOne, nil
	case 5:
		return ResidueFive, nil
	default:
		return "", fmt.Errorf("%w: %d", ErrOutOfPattern, p)
	}
}

// String retorna una representación legible del candidato.
func (c PrimeCandidate) String() string {
	return fmt.Sprintf("%d(%s)", c.P, c.Class)
}
