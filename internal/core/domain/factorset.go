// internal/core/domain/factorset.go
package domain

import (
	"math/big"
	"sort"
)

// FactorSet es el conjunto acumulado de factores descubiertos.
// No registra multiplicidad: un factor primo repetido aparece una sola vez.
// El conjunto crece de forma monótona durante una ejecución; la unión es
// conmutativa e idempotente, lo que permite mezclar resultados de probes
// concurrentes en cualquier orden.
type FactorSet struct {
	members map[string]*big.Int
}

// NewFactorSet crea un conjunto vacío.
func NewFactorSet() *FactorSet {
	return &FactorSet{members: make(map[string]*big.Int)}
}

// Add incorpora un factor al conjunto. Valores nil o < 2 se descartan.
// Retorna true si el factor era nuevo.
func (s *FactorSet) Add(f *big.Int) bool {
	if f == nil || f.Cmp(bigTwo) < 0 {
		return false
	}
	key := f.String()
	if _, ok := s.members[key]; ok {
		return false
	}
	s.members[key] = new(big.Int).Set(f)
	return true
}

// AddAll incorpora varios factores.
func (s *FactorSet) AddAll(factors ...*big.Int) {
	for _, f := range factors {
		s.Add(f)
	}
}

// Union incorpora todos los miembros de other. Idempotente.
func (s *FactorSet) Union(other *FactorSet) {
	if other == nil {
		return
	}
	for _, f := range other.members {
		s.Add(f)
	}
}

// Contains indica si f pertenece al conjunto.
func (s *FactorSet) Contains(f *big.Int) bool {
	if f == nil {
		return false
	}
	_, ok := s.members[f.String()]
	return ok
}

// Len retorna el número de factores distintos.
func (s *FactorSet) Len() int {
	return len(s.members)
}

// List retorna los factores en orden ascendente. Las entradas son copias.
func (s *FactorSet) List() []*big.Int {
	out := make([]*big.Int, 0, len(s.members))
	for _, f := range s.members {
		out = append(out, new(big.Int).Set(f))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Cmp(out[j]) < 0 })
	return out
}

var bigTwo = big.NewInt(2)
