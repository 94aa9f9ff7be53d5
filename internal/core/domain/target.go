// internal/core/domain/target.go
package domain

import (
	"fmt"
	"math/big"
)

// Target representa el entero compuesto a factorizar.
// El valor N es inmutable una vez entregado al pipeline: las estrategias
// reciben copias y devuelven resultados, nunca escriben sobre él.
type Target struct {
	// N es el entero objetivo (positivo, normalmente un semiprimo RSA)
	N *big.Int

	// Policy límites y cortes del pipeline para este target
	Policy Policy

	// Tags adicionales para el target
	Tags []string
}

// Policy define los límites de coste aplicados por las etapas.
// Son políticas de presupuesto, no requisitos de corrección.
type Policy struct {
	// PrimeCeiling cota superior para la generación de primos especiales
	PrimeCeiling uint64

	// FieldSizeLimit orden máximo de cuerpo q = p^k admitido por un probe
	FieldSizeLimit uint64

	// ProbeStride muestreo del pool de primos en la etapa ciclotómica
	// (1 = todos, 10 = cada décimo primo)
	ProbeStride int

	// MaxPowerAttempts máximo exponente k intentado por primo
	MaxPowerAttempts int

	// BatchSize tamaño de lote en la división de prueba con primos especiales
	BatchSize int

	// Workers concurrencia máxima del fan-out de probes
	Workers int
}

// DefaultPolicy retorna la política por defecto del pipeline.
func DefaultPolicy() Policy {
	return Policy{
		PrimeCeiling:     10000,
		FieldSizeLimit:   1000000,
		ProbeStride:      10,
		MaxPowerAttempts: 2,
		BatchSize:        1000,
		Workers:          4,
	}
}

// NewTarget crea un target con la política por defecto.
// El valor se copia para preservar la inmutabilidad frente al caller.
func NewTarget(n *big.Int) *Target {
	t := &Target{Policy: DefaultPolicy(), Tags: []string{}}
	if n != nil {
		t.N = new(big.Int).Set(n)
	}
	return t
}

// Validate verifica que el target sea factorizable.
func (t *Target) Validate() error {
	if t.N == nil {
		return ErrEmptyTarget
	}
	if t.N.Sign() <= 0 || t.N.Cmp(bigOne) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTarget, t.N.String())
	}
	if err := t.Policy.Validate(); err != nil {
		return err
	}
	return nil
}

// Validate verifica que la política tenga límites coherentes.
func (p Policy) Validate() error {
	if p.ProbeStride < 1 {
		return fmt.Errorf("%w: probe stride %d", ErrInvalidPolicy, p.ProbeStride)
	}
	if p.MaxPowerAttempts < 1 {
		return fmt.Errorf("%w: max power attempts %d", ErrInvalidPolicy, p.MaxPowerAttempts)
	}
	if p.BatchSize < 1 {
		return fmt.Errorf("%w: batch size %d", ErrInvalidPolicy, p.BatchSize)
	}
	return nil
}

// Value retorna una copia de N que el caller puede mutar con libertad.
func (t *Target) Value() *big.Int {
	if t.N == nil {
		return nil
	}
	return new(big.Int).Set(t.N)
}

// Digits retorna el número de dígitos decimales de N.
func (t *Target) Digits() int {
	if t.N == nil {
		return 0
	}
	return len(t.N.Text(10))
}

// String retorna una representación legible del target.
func (t *Target) String() string {
	if t.N == nil {
		return "Target{nil}"
	}
	return fmt.Sprintf("Target{digits=%d, ceiling=%d}", t.Digits(), t.Policy.PrimeCeiling)
}

var bigOne = big.NewInt(1)
