// internal/stages/direct/direct.go
package direct

import (
	"context"
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
		"direct",
		func(cfg ports.StrategyConfig, deps ports.Collaborators, logger logx.Logger) (ports.Strategy, error) {
			if deps.Factorizer == nil {
				return nil, errors.New("direct strategy requires a general factorizer")
			}
			return New(deps, logger), nil
		},
		ports.StrategyMetadata{
			Name:        "direct",
			Description: "General-purpose factorization attempt on the full target",
			Version:     "1.0.0",
			Kind:        domain.KindDirect,
			Cost:        domain.CostLow,
			Order:       1,
		},
	); err != nil {
		logx.New().Warn("failed to register direct strategy", "error", err.Error())
	}
}

// Direct intenta la factorización general completa del target. Es la
// primera etapa del pipeline: la más barata cuando funciona.
type Direct struct {
	deps   ports.Collaborators
	logger logx.Logger
}

// New crea la estrategia de factorización directa.
func New(deps ports.Collaborators, logger logx.Logger) ports.Strategy {
	return &Direct{
		deps:   deps,
		logger: logger.With("strategy", "direct"),
	}
}

// Name retorna el nombre de la estrategia.
func (d *Direct) Name() string { return "direct" }

// Kind retorna el mecanismo de la estrategia.
func (d *Direct) Kind() domain.StrategyKind { return domain.KindDirect }

// Cost retorna la clase de coste esperada.
func (d *Direct) Cost() domain.CostClass { return domain.CostLow }

// Run intenta factorizar el target completo con el factorizador general.
// Cualquier fallo del factorizador (presupuesto agotado incluido) se absorbe
// como fallo de etapa: outcome vacío con warning, nunca error fatal.
func (d *Direct) Run(ctx context.Context, target domain.Target) (*domain.StageOutcome, error) {
	outcome := domain.NewStageOutcome(d.Name())
	start := time.Now()
	defer func() { outcome.Duration = time.Since(start) }()

	if err := ctx.Err(); err != nil {
		return outcome, err
	}

	pps, err := d.deps.Factorizer.Factor(target.Value())
	if err != nil {
		outcome.AddWarning("general factorizer failed: %v", err)
		d.logger.Debug("direct factorization failed, advancing", "error", err.Error())
		return outcome, nil
	}

	factors := common.ExpandPrimePowers(pps)
	if len(factors) == 0 {
		outcome.AddWarning("general factorizer returned no factors")
		return outcome, nil
	}

	outcome.SetFactors(factors)
	d.logger.Info("target factored directly", "factors", len(factors))
	return outcome, nil
}

// Close libera recursos (ninguno en esta estrategia).
func (d *Direct) Close() error { return nil }
