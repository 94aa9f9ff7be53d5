// internal/core/domain/probe.go
package domain

import (
	"fmt"
	"math/big"
	"math/bits"
)

// ProbeTask describe un probe de cuerpo finito sobre GF(p^k) contra N.
// Es una tupla inmutable: cada task recibe su propia copia de N y devuelve
// resultados en lugar de escribir estado compartido.
type ProbeTask struct {
	// P primo base del cuerpo
	P uint64

	// K grado de extensión intentado (solo k=1 está soportado;
	// k>1 corto-circuita a resultado vacío)
	K int

	// N copia del entero objetivo
	N *big.Int
}

// NewProbeTask crea una task con una copia propia de n.
func NewProbeTask(p uint64, k int, n *big.Int) ProbeTask {
	t := ProbeTask{P: p, K: k}
	if n != nil {
		t.N = new(big.Int).Set(n)
	}
	return t
}

// FieldOrder calcula q = p^k. Retorna ok=false si k < 1 o si el orden
// desborda uint64 (un cuerpo así siempre excede cualquier FieldSizeLimit).
func (t ProbeTask) FieldOrder() (uint64, bool) {
	if t.K < 1 || t.P == 0 {
		return 0, false
	}
	q := uint64(1)
	for i := 0; i < t.K; i++ {
		hi, lo := bits.Mul64(q, t.P)
		if hi != 0 {
			return 0, false
		}
		q = lo
	}
	return q, true
}

// String retorna una representación legible de la task.
func (t ProbeTask) String() string {
	return fmt.Sprintf("probe{GF(%d^%d)}", t.P, t.K)
}
