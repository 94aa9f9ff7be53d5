// internal/core/usecases/mocks_test.go
package usecases

import (
	"context"
	"math/big"
	"sync/atomic"

	"github.com/DULA2025/RSA-Factorization/internal/core/domain"
	"github.com/DULA2025/RSA-Factorization/internal/platform/errors"
	"github.com/DULA2025/RSA-Factorization/internal/probe"
)

// mockStrategy es una estrategia configurable para tests del orquestador.
type mockStrategy struct {
	name    string
	factors []*big.Int
	err     error
	runs    atomic.Int64
	closed  bool
}

func (m *mockStrategy) Name() string              { return m.name }
func (m *mockStrategy) Kind() domain.StrategyKind { return domain.KindDirect }
func (m *mockStrategy) Cost() domain.CostClass    { return domain.CostLow }

func (m *mockStrategy) Run(ctx context.Context, target domain.Target) (*domain.StageOutcome, error) {
	m.runs.Add(1)
	outcome := domain.NewStageOutcome(m.name)
	if m.err != nil {
		return outcome, m.err
	}
	if len(m.factors) > 0 {
		outcome.SetFactors(m.factors)
	}
	return outcome, nil
}

func (m *mockStrategy) Close() error {
	m.closed = true
	return nil
}

// mockRunner devuelve resultados prefijados por primo.
type mockRunner struct {
	factorsByPrime map[uint64][]*big.Int
	failFor        map[uint64]bool
	calls          atomic.Int64
}

func (m *mockRunner) Run(ctx context.Context, task domain.ProbeTask) (*probe.Result, error) {
	m.calls.Add(1)
	if m.failFor[task.P] {
		return nil, errors.Wrap(errors.ErrUnitOfWork, task.String())
	}
	res := &probe.Result{Task: task}
	if task.K != 1 {
		res.Skipped = probe.SkipExtensionField
		return res, nil
	}
	res.Factors = m.factorsByPrime[task.P]
	return res, nil
}
