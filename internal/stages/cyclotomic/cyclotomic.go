// internal/stages/cyclotomic/cyclotomic.go
package cyclotomic

import (
	"context"
	"math/big"
	"time"

	"github.com/DULA2025/RSA-Factorization/internal/core/domain"
	"github.com/DULA2025/RSA-Factorization/internal/core/ports"
	"github.com/DULA2025/RSA-Factorization/internal/core/usecases"
	"github.com/DULA2025/RSA-Factorization/internal/platform/errors"
	"github.com/DULA2025/RSA-Factorization/internal/platform/logx"
	"github.com/DULA2025/RSA-Factorization/internal/platform/registry"
	"github.com/DULA2025/RSA-Factorization/internal/probe"
	"github.com/DULA2025/RSA-Factorization/internal/stages/common"
)

// Auto-registro de la estrategia al importar el package
func init() {
	if err := registry.Global().Register(
		"cyclotomic",
		func(cfg ports.StrategyConfig, deps ports.Collaborators, logger logx.Logger) (ports.Strategy, error) {
			if deps.Sieve == nil || deps.Poly == nil {
				return nil, errors.New("cyclotomic strategy requires a sieve and a polynomial factorizer")
			}
			return NewWithConfig(cfg, deps, logger)
		},
		ports.StrategyMetadata{
			Name:        "cyclotomic",
			Description: "Finite-field probes over a strided sample of the special prime pool",
			Version:     "1.0.0",
			Kind:        domain.KindProbe,
			Cost:        domain.CostHigh,
			Order:       4,
		},
	); err != nil {
		logx.New().Warn("failed to register cyclotomic strategy", "error", err.Error())
	}
}

// Cyclotomic es la última etapa del pipeline: probes de cuerpo finito
// sobre una submuestra del pool de primos especiales, repartidos entre
// workers. Es la etapa más cara y llega deliberadamente estrangulada:
// muestreo con stride, techo de orden de cuerpo y ventana m estrecha.
type Cyclotomic struct {
	deps   ports.Collaborators
	logger logx.Logger

	// Overrides por etapa desde cfg.Custom (0 = usar la Policy del target)
	probeStride      int
	maxPowerAttempts int
	fieldSizeLimit   uint64
	workers          int
}

// New crea la estrategia de probes ciclotómicos.
func New(deps ports.Collaborators, logger logx.Logger) ports.Strategy {
	return &Cyclotomic{
		deps:   deps,
		logger: logger.With("strategy", "cyclotomic"),
	}
}

// NewWithConfig crea la estrategia aplicando los overrides de cfg.Custom:
// "probe_stride", "max_power_attempts", "field_size_limit" y "workers"
// estrangulan esta etapa sin tocar la política global del target.
func NewWithConfig(cfg ports.StrategyConfig, deps ports.Collaborators, logger logx.Logger) (ports.Strategy, error) {
	c := New(deps, logger).(*Cyclotomic)

	c.probeStride = registry.GetIntConfig(cfg.Custom, "probe_stride", 0)
	if c.probeStride != 0 {
		if err := registry.ValidatePositiveInt("probe_stride", c.probeStride); err != nil {
			return nil, err
		}
	}
	c.maxPowerAttempts = registry.GetIntConfig(cfg.Custom, "max_power_attempts", 0)
	if c.maxPowerAttempts != 0 {
		// Exponentes mayores solo producen cuerpos sobre el límite de orden.
		if err := registry.ValidateIntRange("max_power_attempts", c.maxPowerAttempts, 1, 16); err != nil {
			return nil, err
		}
	}
	c.workers = registry.GetIntConfig(cfg.Custom, "workers", 0)
	if c.workers != 0 {
		if err := registry.ValidatePositiveInt("workers", c.workers); err != nil {
			return nil, err
		}
	}
	if _, ok := cfg.Custom["field_size_limit"]; ok {
		c.fieldSizeLimit = registry.GetUint64Config(cfg.Custom, "field_size_limit", 0)
		if err := registry.ValidatePositiveUint64("field_size_limit", c.fieldSizeLimit); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// effectivePolicy aplica los overrides de la etapa sobre la política del
// target.
func (c *Cyclotomic) effectivePolicy(pol domain.Policy) domain.Policy {
	if c.probeStride > 0 {
		pol.ProbeStride = c.probeStride
	}
	if c.maxPowerAttempts > 0 {
		pol.MaxPowerAttempts = c.maxPowerAttempts
	}
	if c.fieldSizeLimit > 0 {
		pol.FieldSizeLimit = c.fieldSizeLimit
	}
	if c.workers > 0 {
		pol.Workers = c.workers
	}
	return pol
}

// Name retorna el nombre de la estrategia.
func (c *Cyclotomic) Name() string { return "cyclotomic" }

// Kind retorna el mecanismo de la estrategia.
func (c *Cyclotomic) Kind() domain.StrategyKind { return domain.KindProbe }

// Cost retorna la clase de coste esperada.
func (c *Cyclotomic) Cost() domain.CostClass { return domain.CostHigh }

// Run construye las ProbeTasks (cada stride-ésimo primo del pool, k de 1 a
// MaxPowerAttempts), las reparte vía fan-out y expande el menor divisor
// descubierto. Un conjunto vacío tras todos los probes es fallo de etapa.
func (c *Cyclotomic) Run(ctx context.Context, target domain.Target) (*domain.StageOutcome, error) {
	outcome := domain.NewStageOutcome(c.Name())
	start := time.Now()
	defer func() { outcome.Duration = time.Since(start) }()

	pol := c.effectivePolicy(target.Policy)
	n := target.Value()
	pool := c.deps.Sieve.Generate(pol.PrimeCeiling)
	tasks := buildTasks(pool, n, pol)
	if len(tasks) == 0 {
		outcome.AddWarning("no probe tasks under ceiling %d", pol.PrimeCeiling)
		return outcome, nil
	}

	runner := probe.NewRunner(c.deps.Poly, pol.FieldSizeLimit, c.logger)
	fanout := usecases.NewProbeFanOut(runner, pol.Workers, c.logger)
	report := fanout.Execute(ctx, tasks)
	if err := ctx.Err(); err != nil {
		return outcome, err
	}

	if report.Failed > 0 {
		outcome.AddWarning("%d probe(s) failed and were absorbed", report.Failed)
	}
	if report.Factors.Len() == 0 {
		c.logger.Info("probe pool exhausted without divisors",
			"tasks", len(tasks), "skipped", report.Skipped)
		return outcome, nil
	}

	// El menor divisor da la bifurcación más barata.
	divisor := report.Factors.List()[0]
	factors, warnings := common.SplitWithCofactor(divisor, n, c.deps)
	for _, w := range warnings {
		outcome.AddWarning("%s", w)
	}
	outcome.SetFactors(factors)
	c.logger.Info("probe divisor expanded", "divisor", divisor.String(), "factors", len(factors))
	return outcome, nil
}

// Close libera recursos (ninguno en esta estrategia).
func (c *Cyclotomic) Close() error { return nil }

// buildTasks toma cada stride-ésimo primo del pool y genera una task por
// exponente k en 1..MaxPowerAttempts. Los primos ≥ n no pueden aportar
// divisores no triviales y se omiten.
func buildTasks(pool []domain.PrimeCandidate, n *big.Int, pol domain.Policy) []domain.ProbeTask {
	var tasks []domain.ProbeTask
	p := new(big.Int)
	for i := 0; i < len(pool); i += pol.ProbeStride {
		candidate := pool[i]
		if p.SetUint64(candidate.P); p.Cmp(n) >= 0 {
			break
		}
		for k := 1; k <= pol.MaxPowerAttempts; k++ {
			tasks = append(tasks, domain.NewProbeTask(candidate.P, k, n))
		}
	}
	return tasks
}
