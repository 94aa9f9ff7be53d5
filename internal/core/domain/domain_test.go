// internal/core/domain/domain_test.go
package domain

import (
	"errors"
	"math"
	"math/big"
	"testing"
)

func TestTargetValidate(t *testing.T) {
	cases := []struct {
		name    string
		n       *big.Int
		wantErr error
	}{
		{"nil value", nil, ErrEmptyTarget},
		{"zero", big.NewInt(0), ErrInvalidTarget},
		{"one", big.NewInt(1), ErrInvalidTarget},
		{"negative", big.NewInt(-15), ErrInvalidTarget},
		{"two", big.NewInt(2), nil},
		{"semiprime", big.NewInt(10403), nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			target := NewTarget(tc.n)
			err := target.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestTargetValueIsACopy(t *testing.T) {
	n := big.NewInt(42)
	target := NewTarget(n)

	// Ni la mutación del original ni la de la copia afectan al target.
	n.SetInt64(99)
	target.Value().SetInt64(77)

	if target.N.Int64() != 42 {
		t.Fatalf("target mutated: got %d", target.N.Int64())
	}
}

func TestTargetDigits(t *testing.T) {
	if got := NewTarget(big.NewInt(10403)).Digits(); got != 5 {
		t.Fatalf("digits: got %d, want 5", got)
	}
	if got := NewTarget(nil).Digits(); got != 0 {
		t.Fatalf("nil digits: got %d, want 0", got)
	}
}

func TestPolicyValidate(t *testing.T) {
	pol := DefaultPolicy()
	if err := pol.Validate(); err != nil {
		t.Fatalf("default policy invalid: %v", err)
	}

	pol.ProbeStride = 0
	if err := pol.Validate(); !errors.Is(err, ErrInvalidPolicy) {
		t.Fatalf("stride 0 accepted: %v", err)
	}

	pol = DefaultPolicy()
	pol.BatchSize = -1
	if err := pol.Validate(); !errors.Is(err, ErrInvalidPolicy) {
		t.Fatalf("negative batch accepted: %v", err)
	}
}

func TestVerify(t *testing.T) {
	n := big.NewInt(21)

	ok := Verify(n, []*big.Int{big.NewInt(3), big.NewInt(7)})
	if !ok {
		t.Fatal("3·7 should verify against 21")
	}

	// Una lista incompleta o equivocada nunca pasa.
	if Verify(n, []*big.Int{big.NewInt(3), big.NewInt(5)}) {
		t.Fatal("3·5 must not verify against 21")
	}
	if Verify(n, []*big.Int{big.NewInt(3)}) {
		t.Fatal("partial list must not verify")
	}
	if Verify(n, nil) {
		t.Fatal("empty list must not verify")
	}
	if Verify(nil, []*big.Int{big.NewInt(3)}) {
		t.Fatal("nil target must not verify")
	}
}

func TestVerifyWithMultiplicity(t *testing.T) {
	// La lista final lleva multiplicidad: 49 = 7·7.
	ok := Verify(big.NewInt(49), []*big.Int{big.NewInt(7), big.NewInt(7)})
	if !ok {
		t.Fatal("7·7 should verify against 49")
	}
}

func TestFactorSetDedupAndOrder(t *testing.T) {
	s := NewFactorSet()

	if !s.Add(big.NewInt(7)) {
		t.Fatal("first add should report new")
	}
	if s.Add(big.NewInt(7)) {
		t.Fatal("duplicate add should report existing")
	}
	s.AddAll(big.NewInt(3), big.NewInt(101), nil, big.NewInt(1))

	if s.Len() != 3 {
		t.Fatalf("len: got %d, want 3", s.Len())
	}

	list := s.List()
	want := []int64{3, 7, 101}
	for i, w := range want {
		if list[i].Int64() != w {
			t.Fatalf("list[%d]: got %s, want %d", i, list[i], w)
		}
	}
}

func TestFactorSetUnionIsIdempotent(t *testing.T) {
	a := NewFactorSet()
	a.AddAll(big.NewInt(3), big.NewInt(7))
	b := NewFactorSet()
	b.AddAll(big.NewInt(7), big.NewInt(11))

	a.Union(b)
	a.Union(b)
	a.Union(nil)

	if a.Len() != 3 {
		t.Fatalf("union len: got %d, want 3", a.Len())
	}
	if !a.Contains(big.NewInt(11)) {
		t.Fatal("union lost a member")
	}
}

func TestFactorSetListReturnsCopies(t *testing.T) {
	s := NewFactorSet()
	s.Add(big.NewInt(13))

	s.List()[0].SetInt64(99)
	if !s.Contains(big.NewInt(13)) {
		t.Fatal("mutating a listed copy must not touch the set")
	}
}

func TestProbeTaskFieldOrder(t *testing.T) {
	q, ok := NewProbeTask(11, 1, big.NewInt(42)).FieldOrder()
	if !ok || q != 11 {
		t.Fatalf("GF(11^1): got (%d, %t)", q, ok)
	}

	q, ok = NewProbeTask(7, 3, big.NewInt(42)).FieldOrder()
	if !ok || q != 343 {
		t.Fatalf("GF(7^3): got (%d, %t)", q, ok)
	}

	// p^k que desborda uint64 retorna ok=false, nunca un orden truncado.
	if _, ok := NewProbeTask(math.MaxUint64, 2, big.NewInt(42)).FieldOrder(); ok {
		t.Fatal("overflowing order reported as valid")
	}
	if _, ok := NewProbeTask(11, 0, big.NewInt(42)).FieldOrder(); ok {
		t.Fatal("k=0 reported as valid")
	}
}

func TestProbeTaskCopiesN(t *testing.T) {
	n := big.NewInt(42)
	task := NewProbeTask(5, 1, n)

	n.SetInt64(7)
	if task.N.Int64() != 42 {
		t.Fatalf("task shares caller's big.Int: got %d", task.N.Int64())
	}
}

func TestClassOf(t *testing.T) {
	cases := []struct {
		p    uint64
		want ResidueClass
	}{
		{3, ResidueThree},
		{5, ResidueFive},
		{7, ResidueOne},
		{11, ResidueFive},
		{13, ResidueOne},
		{9973, ResidueOne},
	}
	for _, tc := range cases {
		got, err := ClassOf(tc.p)
		if err != nil {
			t.Fatalf("ClassOf(%d): %v", tc.p, err)
		}
		if got != tc.want {
			t.Fatalf("ClassOf(%d): got %s, want %s", tc.p, got, tc.want)
		}
	}

	// 2 y los múltiplos de 6±{0,2,3,4} quedan fuera del patrón.
	for _, p := range []uint64{2, 4, 6, 9, 12} {
		if _, err := ClassOf(p); !errors.Is(err, ErrOutOfPattern) {
			t.Fatalf("ClassOf(%d): expected ErrOutOfPattern, got %v", p, err)
		}
	}
}

func TestRunReportTerminalStage(t *testing.T) {
	report := NewRunReport(big.NewInt(10403))

	empty := NewStageOutcome("direct")
	report.AddStage(*empty)

	solved := NewStageOutcome("trialdivision")
	solved.SetFactors([]*big.Int{big.NewInt(101), big.NewInt(103)})
	report.AddStage(*solved)

	if got := report.TerminalStage(); got != "trialdivision" {
		t.Fatalf("terminal stage: got %q", got)
	}

	report.Factors = solved.Factors
	if !report.Found() {
		t.Fatal("report with factors should be Found")
	}
}

func TestRunReportExhausted(t *testing.T) {
	report := NewRunReport(big.NewInt(997))
	report.AddStage(*NewStageOutcome("direct"))
	report.Finalize()

	if report.Found() {
		t.Fatal("empty report reported as found")
	}
	if got := report.TerminalStage(); got != "" {
		t.Fatalf("exhausted report has terminal stage %q", got)
	}
}

func TestStageOutcomeWarnings(t *testing.T) {
	o := NewStageOutcome("cyclotomic")
	o.AddWarning("probe GF(%d) failed: %s", 101, "budget")

	if len(o.Warnings) != 1 {
		t.Fatalf("warnings: got %d", len(o.Warnings))
	}
	if o.Warnings[0] != "probe GF(101) failed: budget" {
		t.Fatalf("warning format: got %q", o.Warnings[0])
	}
	if o.Found() {
		t.Fatal("warnings must not count as factors")
	}
}
