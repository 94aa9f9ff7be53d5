// internal/factorizer/rho.go
package factorizer

import (
	"math/big"
	"sort"

	"github.com/DULA2025/RSA-Factorization/internal/core/ports"
	"github.com/DULA2025/RSA-Factorization/internal/platform/errors"
	"github.com/DULA2025/RSA-Factorization/internal/platform/logx"
)

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)

// smallPrimes se prueban por división directa antes de lanzar rho; cubre
// la cola de factores pequeños que rho resuelve con más vueltas.
var smallPrimes = []int64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47,
	53, 59, 61, 67, 71, 73, 79, 83, 89, 97,
}

const (
	// maxTerm limita la longitud del ciclo explorado por intento de rho.
	maxTerm = 1 << 16

	// maxRestarts reintentos con distinta constante c antes de rendirse.
	maxRestarts = 24

	// gcdBatch productos acumulados entre llamadas a GCD.
	gcdBatch = 16
)

// Rho es el factorizador general de enteros, variante de Brent del método
// rho de Pollard. Implementa ports.Factorizer.
type Rho struct {
	oracle *Oracle
	logger logx.Logger
}

// NewRho crea el factorizador general.
func NewRho(logger logx.Logger) *Rho {
	if logger == nil {
		logger = logx.New()
	}
	return &Rho{
		oracle: NewOracle(),
		logger: logger.With("component", "rho"),
	}
}

// Factor descompone n en potencias de primos, ordenadas por primo
// ascendente. Retorna ErrInvalidInput para n < 2 y ErrFactorBudget si
// algún cofactor compuesto agota el presupuesto de iteraciones.
func (r *Rho) Factor(n *big.Int) ([]ports.PrimePower, error) {
	if n == nil || n.Cmp(bigTwo) < 0 {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "cannot factor %v", n)
	}

	counts := make(map[string]*ports.PrimePower)
	record := func(p *big.Int) {
		key := p.String()
		if pp, ok := counts[key]; ok {
			pp.Exponent++
			return
		}
		counts[key] = &ports.PrimePower{Prime: new(big.Int).Set(p), Exponent: 1}
	}

	pending := []*big.Int{new(big.Int).Set(n)}
	for _, sp := range smallPrimes {
		p := big.NewInt(sp)
		m := pending[0]
		q, rem := new(big.Int), new(big.Int)
		for {
			q.QuoRem(m, p, rem)
			if rem.Sign() != 0 {
				break
			}
			record(p)
			m.Set(q)
		}
	}

	for len(pending) > 0 {
		m := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if m.Cmp(bigOne) == 0 {
			continue
		}
		if r.oracle.IsPrime(m) {
			record(m)
			continue
		}
		d, err := r.split(m)
		if err != nil {
			return nil, err
		}
		pending = append(pending, d, new(big.Int).Quo(m, d))
	}

	out := make([]ports.PrimePower, 0, len(counts))
	for _, pp := range counts {
		out = append(out, *pp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Prime.Cmp(out[j].Prime) < 0 })
	return out, nil
}

// split encuentra un divisor no trivial de un compuesto impar m,
// reintentando con constantes c crecientes.
func (r *Rho) split(m *big.Int) (*big.Int, error) {
	if m.Bit(0) == 0 {
		return new(big.Int).Set(bigTwo), nil
	}
	for c := int64(1); c <= maxRestarts; c++ {
		if d := brentCycle(m, big.NewInt(c)); d != nil {
			r.logger.Debug("nontrivial divisor found", "n", m.String(), "c", c)
			return d, nil
		}
	}
	return nil, errors.Wrapf(errors.ErrFactorBudget, "no divisor of %s after %d restarts", m, maxRestarts)
}

// brentCycle es una vuelta del ciclo de Brent con la constante c dada:
// acumula |x−y| en lotes y hace GCD una vez por lote. Retorna nil si el
// ciclo se agota sin divisor.
func brentCycle(n, c *big.Int) *big.Int {
	step := func(v *big.Int) {
		v.Mul(v, v)
		v.Add(v, c)
		v.Mod(v, n)
	}

	y := big.NewInt(2)
	d := big.NewInt(1)
	q := big.NewInt(1)
	x := new(big.Int)
	ys := new(big.Int)
	diff := new(big.Int)

	for term := 1; term <= maxTerm; term *= 2 {
		x.Set(y)
		for i := 0; i < term; i++ {
			step(y)
		}
		for k := 0; k < term && d.Cmp(bigOne) == 0; k += gcdBatch {
			ys.Set(y)
			batch := gcdBatch
			if term-k < batch {
				batch = term - k
			}
			for i := 0; i < batch; i++ {
				step(y)
				diff.Sub(x, y)
				diff.Abs(diff)
				q.Mul(q, diff)
				q.Mod(q, n)
			}
			d.GCD(nil, nil, q, n)
		}
		if d.Cmp(bigOne) != 0 {
			break
		}
	}
	if d.Cmp(bigOne) == 0 {
		return nil
	}

	if d.Cmp(n) == 0 {
		// El lote se tragó el divisor; se repite el último tramo paso a
		// paso desde ys.
		d.SetInt64(1)
		for i := 0; i < maxTerm && d.Cmp(bigOne) == 0; i++ {
			step(ys)
			diff.Sub(x, ys)
			diff.Abs(diff)
			d.GCD(nil, nil, diff, n)
		}
	}
	if d.Cmp(bigOne) == 0 || d.Cmp(n) == 0 {
		return nil
	}
	return d
}
