// internal/testutil/helpers.go
package testutil

import (
	"math/big"
	"testing"

	"github.com/DULA2025/RSA-Factorization/internal/platform/logx"
)

// AssertEqual verifica que dos valores sean iguales.
func AssertEqual(t *testing.T, got, want interface{}, msg string) {
	t.Helper()
	if got != want {
		t.Errorf("%s: got %v, want %v", msg, got, want)
	}
}

// AssertNotEqual verifica que dos valores sean diferentes.
func AssertNotEqual(t *testing.T, got, want interface{}, msg string) {
	t.Helper()
	if got == want {
		t.Errorf("%s: got %v, should not equal %v", msg, got, want)
	}
}

// AssertError verifica que un error no sea nil.
func AssertError(t *testing.T, err error, msg string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected error, got nil", msg)
	}
}

// AssertNoError verifica que no haya error.
func AssertNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: unexpected error: %v", msg, err)
	}
}

// AssertTrue verifica que una condición sea verdadera.
func AssertTrue(t *testing.T, condition bool, msg string) {
	t.Helper()
	if !condition {
		t.Errorf("%s: expected true, got false", msg)
	}
}

// AssertFalse verifica que una condición sea falsa.
func AssertFalse(t *testing.T, condition bool, msg string) {
	t.Helper()
	if condition {
		t.Errorf("%s: expected false, got true", msg)
	}
}

// AssertBigEqual verifica que dos big.Int sean iguales.
func AssertBigEqual(t *testing.T, got, want *big.Int, msg string) {
	t.Helper()
	if got == nil || want == nil {
		if got != want {
			t.Errorf("%s: got %v, want %v", msg, got, want)
		}
		return
	}
	if got.Cmp(want) != 0 {
		t.Errorf("%s: got %s, want %s", msg, got.String(), want.String())
	}
}

// Big parsea un entero decimal a *big.Int, fallando el test si es inválido.
func Big(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("invalid decimal integer %q", s)
	}
	return n
}

// FactorStrings convierte una lista de factores a sus strings decimales.
func FactorStrings(factors []*big.Int) []string {
	out := make([]string, 0, len(factors))
	for _, f := range factors {
		out = append(out, f.String())
	}
	return out
}

// TestLogger es un logger silencioso para tests.
type TestLogger struct{}

// NewTestLogger retorna un logger que no imprime nada.
func NewTestLogger() logx.Logger {
	return &TestLogger{}
}

func (l *TestLogger) Debug(msg string, kv ...any)  {}
func (l *TestLogger) Info(msg string, kv ...any)   {}
func (l *TestLogger) Warn(msg string, kv ...any)   {}
func (l *TestLogger) Err(err error, kv ...any)     {}
func (l *TestLogger) With(kv ...any) logx.Logger   { return l }
func (l *TestLogger) SetLevel(lvl logx.Level)      {}
