// internal/stages/smallprimes/smallprimes_test.go
package smallprimes

import (
	"context"
	"math/big"
	"testing"

	"github.com/DULA2025/RSA-Factorization/internal/core/domain"
	"github.com/DULA2025/RSA-Factorization/internal/core/ports"
	"github.com/DULA2025/RSA-Factorization/internal/factorizer"
	"github.com/DULA2025/RSA-Factorization/internal/testutil"
)

func newStrategy() ports.Strategy {
	deps := ports.Collaborators{
		Oracle:     factorizer.NewOracle(),
		Factorizer: factorizer.NewRho(testutil.NewTestLogger()),
	}
	return New(deps, testutil.NewTestLogger())
}

func TestRunSmallFactorWithPrimeCofactor(t *testing.T) {
	// 303 = 3 · 101: caso de dos factores, terminal inmediato.
	s := newStrategy()
	outcome, err := s.Run(context.Background(), *domain.NewTarget(big.NewInt(303)))
	testutil.AssertNoError(t, err, "Run")
	testutil.AssertTrue(t, outcome.Found(), "divisor found")

	got := testutil.FactorStrings(outcome.Factors)
	testutil.AssertEqual(t, len(got), 2, "two factors")
	testutil.AssertEqual(t, got[0], "3", "small prime")
	testutil.AssertEqual(t, got[1], "101", "prime cofactor")
}

func TestRunCompositeCofactorExpanded(t *testing.T) {
	// 105 = 3 · 35, con 35 = 5 · 7 delegado al factorizador general.
	s := newStrategy()
	outcome, err := s.Run(context.Background(), *domain.NewTarget(big.NewInt(105)))
	testutil.AssertNoError(t, err, "Run")

	got := testutil.FactorStrings(outcome.Factors)
	testutil.AssertEqual(t, len(got), 3, "fully expanded")
	testutil.AssertEqual(t, got[0], "3", "3")
	testutil.AssertEqual(t, got[1], "5", "5")
	testutil.AssertEqual(t, got[2], "7", "7")
}

func TestRunNoSmallFactorAdvances(t *testing.T) {
	// 10403 = 101 · 103: fuera del alcance de la lista fija.
	s := newStrategy()
	outcome, err := s.Run(context.Background(), *domain.NewTarget(big.NewInt(10403)))
	testutil.AssertNoError(t, err, "Run")
	testutil.AssertFalse(t, outcome.Found(), "stage failure, pipeline advances")
}

func TestRunTargetEqualToCandidateNotSplit(t *testing.T) {
	// target = 7: el candidato no es menor que el target, no hay divisor
	// no trivial.
	s := newStrategy()
	outcome, err := s.Run(context.Background(), *domain.NewTarget(big.NewInt(7)))
	testutil.AssertNoError(t, err, "Run")
	testutil.AssertFalse(t, outcome.Found(), "prime target yields no split")
}

func TestMetadata(t *testing.T) {
	s := newStrategy()
	testutil.AssertEqual(t, s.Name(), "smallprimes", "name")
	testutil.AssertEqual(t, s.Kind(), domain.KindTrial, "kind")
	testutil.AssertEqual(t, s.Cost(), domain.CostLow, "cost")
}
