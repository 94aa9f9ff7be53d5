// internal/gf/adapter.go
package gf

import (
	"github.com/DULA2025/RSA-Factorization/internal/core/ports"
	"github.com/DULA2025/RSA-Factorization/internal/platform/errors"
	"github.com/DULA2025/RSA-Factorization/internal/platform/logx"
)

// Arithmetic expone la aritmética de GF(p) como colaborador del pipeline.
// Implementa ports.PolyFactorizer.
type Arithmetic struct {
	logger logx.Logger
}

// New crea el colaborador de aritmética de cuerpo finito.
func New(logger logx.Logger) *Arithmetic {
	if logger == nil {
		logger = logx.New()
	}
	return &Arithmetic{logger: logger.With("component", "gf")}
}

// FactorCyclic factoriza x^m − 1 sobre GF(p) en irreducibles mónicos con
// multiplicidad. Falla con ErrFieldConstruction si p no es un primo impar
// o m < 1.
func (a *Arithmetic) FactorCyclic(m int, p uint64) ([]ports.PolyFactor, error) {
	factors, err := factorCyclic(m, p)
	if err != nil {
		return nil, err
	}
	out := make([]ports.PolyFactor, 0, len(factors))
	for _, f := range factors {
		out = append(out, ports.PolyFactor{
			Coeffs:       polyClone(f.coeffs),
			Multiplicity: f.multiplicity,
		})
	}
	a.logger.Debug("cyclic polynomial factored", "m", m, "p", p, "irreducibles", len(out))
	return out, nil
}

// Cyclotomic construye Φ_m reducido sobre GF(p), low-degree-first.
func (a *Arithmetic) Cyclotomic(m int, p uint64) ([]uint64, error) {
	if m < 1 || p < 2 || !isPrimeU64(p) {
		return nil, errors.Wrapf(errors.ErrFieldConstruction, "Φ_%d over GF(%d)", m, p)
	}
	return cyclotomic(m, p), nil
}

// Eval evalúa un polinomio (low-degree-first) en x sobre GF(p).
func (a *Arithmetic) Eval(coeffs []uint64, x uint64, p uint64) uint64 {
	if p < 2 {
		return 0
	}
	return polyEval(coeffs, x%p, p)
}
