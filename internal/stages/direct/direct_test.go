// internal/stages/direct/direct_test.go
package direct

import (
	"context"
	"math/big"
	"testing"

	"github.com/DULA2025/RSA-Factorization/internal/core/domain"
	"github.com/DULA2025/RSA-Factorization/internal/core/ports"
	"github.com/DULA2025/RSA-Factorization/internal/factorizer"
	"github.com/DULA2025/RSA-Factorization/internal/platform/errors"
	"github.com/DULA2025/RSA-Factorization/internal/testutil"
)

func newStrategy() ports.Strategy {
	deps := ports.Collaborators{
		Oracle:     factorizer.NewOracle(),
		Factorizer: factorizer.NewRho(testutil.NewTestLogger()),
	}
	return New(deps, testutil.NewTestLogger())
}

func TestRunFactorsSemiprime(t *testing.T) {
	s := newStrategy()
	outcome, err := s.Run(context.Background(), *domain.NewTarget(big.NewInt(10403)))
	testutil.AssertNoError(t, err, "Run")
	testutil.AssertTrue(t, outcome.Found(), "factors found")

	got := testutil.FactorStrings(outcome.Factors)
	testutil.AssertEqual(t, len(got), 2, "two factors")
	testutil.AssertEqual(t, got[0], "101", "p")
	testutil.AssertEqual(t, got[1], "103", "q")
}

func TestRunExpandsMultiplicity(t *testing.T) {
	s := newStrategy()
	outcome, err := s.Run(context.Background(), *domain.NewTarget(big.NewInt(360)))
	testutil.AssertNoError(t, err, "Run")

	product := big.NewInt(1)
	for _, f := range outcome.Factors {
		product.Mul(product, f)
	}
	testutil.AssertBigEqual(t, product, big.NewInt(360), "product reconstructs target")
	testutil.AssertEqual(t, len(outcome.Factors), 6, "2^3 * 3^2 * 5 expands to six factors")
}

type failingFactorizer struct{}

func (f *failingFactorizer) Factor(n *big.Int) ([]ports.PrimePower, error) {
	return nil, errors.ErrFactorBudget
}

func TestRunAbsorbsFactorizerFailure(t *testing.T) {
	deps := ports.Collaborators{
		Oracle:     factorizer.NewOracle(),
		Factorizer: &failingFactorizer{},
	}
	s := New(deps, testutil.NewTestLogger())

	outcome, err := s.Run(context.Background(), *domain.NewTarget(big.NewInt(10403)))
	testutil.AssertNoError(t, err, "budget failure is a stage failure, not an error")
	testutil.AssertFalse(t, outcome.Found(), "no factors")
	testutil.AssertTrue(t, len(outcome.Warnings) > 0, "warning recorded")
}

func TestMetadata(t *testing.T) {
	s := newStrategy()
	testutil.AssertEqual(t, s.Name(), "direct", "name")
	testutil.AssertEqual(t, s.Kind(), domain.KindDirect, "kind")
	testutil.AssertEqual(t, s.Cost(), domain.CostLow, "cost")
	testutil.AssertNoError(t, s.Close(), "close")
}
