// internal/stages/trialdivision/trialdivision.go
package trialdivision

import (
	"context"
	"math/big"
	"time"

	"github.com/DULA2025/RSA-Factorization/internal/core/domain"
	"github.com/DULA2025/RSA-Factorization/internal/core/ports"
	"github.com/DULA2025/RSA-Factorization/internal/platform/errors"
	"github.com/DULA2025/RSA-Factorization/internal/platform/logx"
	"github.com/DULA2025/RSA-Factorization/internal/platform/registry"
	"github.com/DULA2025/RSA-Factorization/internal/stages/common"
)

// Auto-registro de la estrategia al importar el package
func init() {
	if err := registry.Global().Register(
		"trialdivision",
		func(cfg ports.StrategyConfig, deps ports.Collaborators, logger logx.Logger) (ports.Strategy, error) {
			if deps.Sieve == nil {
				return nil, errors.New("trialdivision strategy requires a special prime sieve")
			}
			return NewWithConfig(cfg, deps, logger)
		},
		ports.StrategyMetadata{
			Name:        "trialdivision",
			Description: "Batched trial division by special primes (3 and 6k±1)",
			Version:     "1.0.0",
			Kind:        domain.KindTrial,
			Cost:        domain.CostMedium,
			Order:       3,
		},
	); err != nil {
		logx.New().Warn("failed to register trialdivision strategy", "error", err.Error())
	}
}

// TrialDivision es la tercera etapa: división de prueba contra el pool de
// primos especiales, procesado en lotes de tamaño fijo hasta
// min(⌈√target⌉+1, PrimeCeiling).
type TrialDivision struct {
	deps   ports.Collaborators
	logger logx.Logger

	// Overrides por etapa desde cfg.Custom (0 = usar la Policy del target)
	batchSize    int
	primeCeiling uint64
}

// New crea la estrategia de división de prueba con primos especiales.
func New(deps ports.Collaborators, logger logx.Logger) ports.Strategy {
	return &TrialDivision{
		deps:   deps,
		logger: logger.With("strategy", "trialdivision"),
	}
}

// NewWithConfig crea la estrategia aplicando los overrides de cfg.Custom:
// "batch_size" y "prime_ceiling" ajustan esta etapa sin tocar la política
// global del target.
func NewWithConfig(cfg ports.StrategyConfig, deps ports.Collaborators, logger logx.Logger) (ports.Strategy, error) {
	t := New(deps, logger).(*TrialDivision)

	t.batchSize = registry.GetIntConfig(cfg.Custom, "batch_size", 0)
	if t.batchSize != 0 {
		if err := registry.ValidatePositiveInt("batch_size", t.batchSize); err != nil {
			return nil, err
		}
	}
	t.primeCeiling = registry.GetUint64Config(cfg.Custom, "prime_ceiling", 0)
	return t, nil
}

// effectivePolicy aplica los overrides de la etapa sobre la política del
// target.
func (t *TrialDivision) effectivePolicy(pol domain.Policy) domain.Policy {
	if t.batchSize > 0 {
		pol.BatchSize = t.batchSize
	}
	if t.primeCeiling > 0 {
		pol.PrimeCeiling = t.primeCeiling
	}
	return pol
}

// Name retorna el nombre de la estrategia.
func (t *TrialDivision) Name() string { return "trialdivision" }

// Kind retorna el mecanismo de la estrategia.
func (t *TrialDivision) Kind() domain.StrategyKind { return domain.KindTrial }

// Cost retorna la clase de coste esperada.
func (t *TrialDivision) Cost() domain.CostClass { return domain.CostMedium }

// Run genera el pool de primos especiales y lo recorre en lotes probando
// divisibilidad. El primer divisor es terminal con la bifurcación
// primo/compuesto compartida; agotar todos los lotes es fallo de etapa.
func (t *TrialDivision) Run(ctx context.Context, target domain.Target) (*domain.StageOutcome, error) {
	outcome := domain.NewStageOutcome(t.Name())
	start := time.Now()
	defer func() { outcome.Duration = time.Since(start) }()

	pol := t.effectivePolicy(target.Policy)
	n := target.Value()
	limit := sieveLimit(n, pol.PrimeCeiling)
	pool := t.deps.Sieve.Generate(limit)
	if len(pool) == 0 {
		outcome.AddWarning("empty special prime pool under limit %d", limit)
		return outcome, nil
	}

	batchSize := pol.BatchSize
	rem := new(big.Int)
	p := new(big.Int)
	for lo := 0; lo < len(pool); lo += batchSize {
		if err := ctx.Err(); err != nil {
			return outcome, err
		}
		hi := lo + batchSize
		if hi > len(pool) {
			hi = len(pool)
		}

		for _, candidate := range pool[lo:hi] {
			p.SetUint64(candidate.P)
			if p.Cmp(n) >= 0 {
				return outcome, nil
			}
			if rem.Mod(n, p).Sign() != 0 {
				continue
			}

			factors, warnings := common.SplitWithCofactor(p, n, t.deps)
			for _, w := range warnings {
				outcome.AddWarning("%s", w)
			}
			outcome.SetFactors(factors)
			t.logger.Info("special prime divisor found",
				"p", candidate.P, "class", candidate.Class, "factors", len(factors))
			return outcome, nil
		}
		t.logger.Debug("batch exhausted", "from", lo, "to", hi, "pool", len(pool))
	}

	return outcome, nil
}

// Close libera recursos (ninguno en esta estrategia).
func (t *TrialDivision) Close() error { return nil }

// sieveLimit calcula min(⌈√n⌉+1, ceiling). El +2 sobre la raíz entera
// cubre el redondeo hacia arriba de raíces no exactas.
func sieveLimit(n *big.Int, ceiling uint64) uint64 {
	root := new(big.Int).Sqrt(n)
	root.Add(root, big.NewInt(2))
	if !root.IsUint64() {
		return ceiling
	}
	if r := root.Uint64(); r < ceiling {
		return r
	}
	return ceiling
}
