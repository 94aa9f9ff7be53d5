// internal/stages/smallprimes/smallprimes.go
package smallprimes

import (
	"context"
	"math/big"
	"time"

	"github.com/DULA2025/RSA-Factorization/internal/core/domain"
	"github.com/DULA2025/RSA-Factorization/internal/core/ports"
	"github.com/DULA2025/RSA-Factorization/internal/platform/logx"
	"github.com/DULA2025/RSA-Factorization/internal/platform/registry"
	"github.com/DULA2025/RSA-Factorization/internal/stages/common"
)

// Auto-registro de la estrategia al importar el package
func init() {
	if err := registry.Global().Register(
		"smallprimes",
		func(cfg ports.StrategyConfig, deps ports.Collaborators, logger logx.Logger) (ports.Strategy, error) {
			return New(deps, logger), nil
		},
		ports.StrategyMetadata{
			Name:        "smallprimes",
			Description: "Trial division by a fixed list of the smallest primes",
			Version:     "1.0.0",
			Kind:        domain.KindTrial,
			Cost:        domain.CostLow,
			Order:       2,
		},
	); err != nil {
		logx.New().Warn("failed to register smallprimes strategy", "error", err.Error())
	}
}

// candidates es la lista fija de primos pequeños probados por la etapa.
var candidates = []int64{3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67}

// SmallPrimes es la segunda etapa: división de prueba contra una lista
// fija de primos pequeños. El primer divisor encontrado es terminal.
type SmallPrimes struct {
	deps   ports.Collaborators
	logger logx.Logger
}

// New crea la estrategia de primos pequeños.
func New(deps ports.Collaborators, logger logx.Logger) ports.Strategy {
	return &SmallPrimes{
		deps:   deps,
		logger: logger.With("strategy", "smallprimes"),
	}
}

// Name retorna el nombre de la estrategia.
func (s *SmallPrimes) Name() string { return "smallprimes" }

// Kind retorna el mecanismo de la estrategia.
func (s *SmallPrimes) Kind() domain.StrategyKind { return domain.KindTrial }

// Cost retorna la clase de coste esperada.
func (s *SmallPrimes) Cost() domain.CostClass { return domain.CostLow }

// Run prueba el target contra cada primo de la lista. Al encontrar un
// divisor p expande {p, target/p} con la bifurcación primo/compuesto
// compartida y termina.
func (s *SmallPrimes) Run(ctx context.Context, target domain.Target) (*domain.StageOutcome, error) {
	outcome := domain.NewStageOutcome(s.Name())
	start := time.Now()
	defer func() { outcome.Duration = time.Since(start) }()

	n := target.Value()
	rem := new(big.Int)
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return outcome, err
		}
		p := big.NewInt(c)
		if p.Cmp(n) >= 0 {
			break
		}
		if rem.Mod(n, p).Sign() != 0 {
			continue
		}

		factors, warnings := common.SplitWithCofactor(p, n, s.deps)
		for _, w := range warnings {
			outcome.AddWarning("%s", w)
		}
		outcome.SetFactors(factors)
		s.logger.Info("small prime divisor found", "p", c, "factors", len(factors))
		return outcome, nil
	}

	return outcome, nil
}

// Close libera recursos (ninguno en esta estrategia).
func (s *SmallPrimes) Close() error { return nil }
