// internal/stages/common/branch_test.go
package common

import (
	"math/big"
	"testing"

	"github.com/DULA2025/RSA-Factorization/internal/core/ports"
	"github.com/DULA2025/RSA-Factorization/internal/factorizer"
	"github.com/DULA2025/RSA-Factorization/internal/testutil"
)

func realDeps() ports.Collaborators {
	return ports.Collaborators{
		Oracle:     factorizer.NewOracle(),
		Factorizer: factorizer.NewRho(testutil.NewTestLogger()),
	}
}

func TestSplitWithCofactorPrimeCofactor(t *testing.T) {
	// 303 = 3 · 101: ambos lados primos, sin recursión.
	factors, warnings := SplitWithCofactor(big.NewInt(3), big.NewInt(303), realDeps())
	testutil.AssertEqual(t, len(warnings), 0, "no warnings")
	testutil.AssertEqual(t, len(factors), 2, "two factors")
	testutil.AssertBigEqual(t, factors[0], big.NewInt(3), "first factor")
	testutil.AssertBigEqual(t, factors[1], big.NewInt(101), "second factor")
}

func TestSplitWithCofactorCompositeCofactor(t *testing.T) {
	// 3 · 703 con 703 = 19 · 37: el cofactor se delega al factorizador.
	factors, warnings := SplitWithCofactor(big.NewInt(3), big.NewInt(2109), realDeps())
	testutil.AssertEqual(t, len(warnings), 0, "no warnings")
	got := testutil.FactorStrings(factors)
	testutil.AssertEqual(t, len(got), 3, "three prime factors")
	testutil.AssertEqual(t, got[0], "3", "factor 3")
	testutil.AssertEqual(t, got[1], "19", "factor 19")
	testutil.AssertEqual(t, got[2], "37", "factor 37")
}

func TestSplitWithCofactorKeepsMultiplicity(t *testing.T) {
	// 49 = 7 · 7: la lista conserva la multiplicidad para que el producto
	// reconstruya el target.
	factors, _ := SplitWithCofactor(big.NewInt(7), big.NewInt(49), realDeps())
	testutil.AssertEqual(t, len(factors), 2, "7 appears twice")
	product := new(big.Int).Mul(factors[0], factors[1])
	testutil.AssertBigEqual(t, product, big.NewInt(49), "product reconstructs")
}

func TestSplitWithCofactorNoCollaborators(t *testing.T) {
	// Sin oráculo ni factorizador las partes van tal cual, sin resolver.
	factors, _ := SplitWithCofactor(big.NewInt(3), big.NewInt(21), ports.Collaborators{})
	testutil.AssertEqual(t, len(factors), 2, "raw parts kept")
	testutil.AssertBigEqual(t, factors[0], big.NewInt(3), "divisor")
	testutil.AssertBigEqual(t, factors[1], big.NewInt(7), "cofactor")
}

func TestExpandPrimePowers(t *testing.T) {
	pps := []ports.PrimePower{
		{Prime: big.NewInt(5), Exponent: 1},
		{Prime: big.NewInt(2), Exponent: 3},
		{Prime: big.NewInt(3), Exponent: 2},
	}
	factors := ExpandPrimePowers(pps)
	got := testutil.FactorStrings(factors)
	want := []string{"2", "2", "2", "3", "3", "5"}
	testutil.AssertEqual(t, len(got), len(want), "expanded length")
	for i := range want {
		testutil.AssertEqual(t, got[i], want[i], "expanded factor")
	}
}
