// internal/probe/runner.go

// Package probe implements the per-prime finite-field probe: it factors the
// cyclic polynomials x^m − 1 over GF(p) and decodes the coefficients of each
// irreducible factor as base-p digits, looking for nontrivial divisors of
// the target.
package probe

import (
	"context"
	"math/big"
	"sort"

	"github.com/DULA2025/RSA-Factorization/internal/core/domain"
	"github.com/DULA2025/RSA-Factorization/internal/core/ports"
	"github.com/DULA2025/RSA-Factorization/internal/platform/errors"
	"github.com/DULA2025/RSA-Factorization/internal/platform/logx"
)

// SkipReason clasifica los cortocircuitos deliberados de un probe.
type SkipReason string

const (
	// SkipNone indica que el probe se ejecutó de verdad.
	SkipNone SkipReason = ""

	// SkipExtensionField indica k > 1: los cuerpos de extensión quedan
	// fuera del alcance del probe y producen resultado vacío.
	SkipExtensionField SkipReason = "extension_field"

	// SkipFieldTooLarge indica que p^k supera el límite configurado.
	SkipFieldTooLarge SkipReason = "field_too_large"
)

// Result es el resultado tipado de un probe: o bien una lista (posiblemente
// vacía) de divisores descubiertos, o un skip clasificado.
type Result struct {
	Task    domain.ProbeTask
	Factors []*big.Int
	Skipped SkipReason
}

// Found reporta si el probe descubrió al menos un divisor.
func (r *Result) Found() bool {
	return r != nil && len(r.Factors) > 0
}

// cyclotomicWindow es el rango de índices m de los polinomios ciclotómicos
// Φ_m evaluados en n mod p como chequeo previo.
const (
	cyclotomicLo = 3
	cyclotomicHi = 6
)

// Runner ejecuta probes individuales. Es seguro para uso concurrente:
// no guarda estado mutable entre llamadas.
type Runner struct {
	poly       ports.PolyFactorizer
	fieldLimit uint64
	logger     logx.Logger
}

// NewRunner crea el runner de probes. fieldLimit acota el orden p^k de los
// cuerpos que el runner acepta construir.
func NewRunner(poly ports.PolyFactorizer, fieldLimit uint64, logger logx.Logger) *Runner {
	if logger == nil {
		logger = logx.New()
	}
	return &Runner{
		poly:       poly,
		fieldLimit: fieldLimit,
		logger:     logger.With("component", "probe"),
	}
}

// Run ejecuta un probe sobre GF(p^k). Los cortocircuitos (k > 1, cuerpo
// demasiado grande) retornan un Result con Skipped y nunca error; los
// fallos de unidades individuales se absorben y el bucle continúa.
func (r *Runner) Run(ctx context.Context, task domain.ProbeTask) (*Result, error) {
	res := &Result{Task: task}

	if task.K != 1 {
		res.Skipped = SkipExtensionField
		r.logger.Debug("probe skipped", "task", task.String(), "reason", res.Skipped)
		return res, nil
	}
	order, ok := task.FieldOrder()
	if !ok || order > r.fieldLimit {
		res.Skipped = SkipFieldTooLarge
		r.logger.Debug("probe skipped", "task", task.String(), "reason", res.Skipped, "limit", r.fieldLimit)
		return res, nil
	}

	p := task.P
	bigP := new(big.Int).SetUint64(p)
	nModP := new(big.Int).Mod(task.N, bigP).Uint64()

	found := make(map[string]*big.Int)
	add := func(d *big.Int) {
		if d.Cmp(bigOne) > 0 && d.Cmp(task.N) < 0 {
			if rem := new(big.Int).Mod(task.N, d); rem.Sign() == 0 {
				found[d.String()] = d
			}
		}
	}

	// Ventana ciclotómica: Φ_m(n mod p) == 0 junto con p | n marca p como
	// divisor. Es un chequeo barato previo al bucle principal.
	for m := cyclotomicLo; m <= cyclotomicHi; m++ {
		phi, err := r.poly.Cyclotomic(m, p)
		if err != nil {
			r.logger.Warn("cyclotomic construction failed",
				"err", errors.Wrap(errors.ErrUnitOfWork, err.Error()), "m", m, "p", p)
			continue
		}
		if r.poly.Eval(phi, nModP, p) == 0 && nModP == 0 {
			add(new(big.Int).SetUint64(p))
		}
	}

	// Bucle principal: factoriza x^m − 1 y decodifica los coeficientes de
	// cada irreducible como dígitos en base p. Cada m se procesa ANTES del
	// corte: m == p o q ≡ 1 (mod m) cierran el bucle una vez agotado ese
	// índice, donde el cuerpo ya contiene todas las raíces m-ésimas.
	for m := 3; uint64(m) <= p; m++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, task.String())
		}
		irreducibles, err := r.poly.FactorCyclic(m, p)
		if err != nil {
			r.logger.Warn("cyclic factorization failed",
				"err", errors.Wrap(errors.ErrUnitOfWork, err.Error()), "m", m, "p", p)
		} else {
			for _, f := range irreducibles {
				add(decode(f.Coeffs, p))
			}
		}
		if uint64(m) == p || order%uint64(m) == 1 {
			break
		}
	}

	res.Factors = sortedFactors(found)
	if res.Found() {
		r.logger.Info("probe found divisors", "task", task.String(), "count", len(res.Factors))
	}
	return res, nil
}

var bigOne = big.NewInt(1)

// decode interpreta coeficientes low-degree-first como dígitos en base p:
// decode([c0, c1, c2], p) = c0 + c1·p + c2·p².
func decode(coeffs []uint64, p uint64) *big.Int {
	bigP := new(big.Int).SetUint64(p)
	val := new(big.Int)
	tmp := new(big.Int)
	for i := len(coeffs) - 1; i >= 0; i-- {
		val.Mul(val, bigP)
		val.Add(val, tmp.SetUint64(coeffs[i]))
	}
	return val
}

// sortedFactors vuelca el set a una lista ordenada ascendente.
func sortedFactors(set map[string]*big.Int) []*big.Int {
	out := make([]*big.Int, 0, len(set))
	for _, d := range set {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Cmp(out[j]) < 0 })
	return out
}
