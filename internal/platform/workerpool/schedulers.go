// internal/platform/workerpool/schedulers.go
package workerpool

import (
	"sort"
)

// CostScheduler ordena tareas por coste ascendente: los cuerpos pequeños
// se prueban primero, que es donde los probes encuentran divisores con
// más frecuencia.
type CostScheduler struct{}

// NewCostScheduler crea un scheduler basado en coste.
func NewCostScheduler() *CostScheduler {
	return &CostScheduler{}
}

// Schedule ordena por coste ascendente; a igual coste conserva el orden
// de llegada (sort estable).
func (s *CostScheduler) Schedule(tasks []Task) []Task {
	scheduled := make([]Task, len(tasks))
	copy(scheduled, tasks)

	sort.SliceStable(scheduled, func(i, j int) bool {
		return scheduled[i].Cost() < scheduled[j].Cost()
	})

	return scheduled
}

// Name retorna el nombre del scheduler.
func (s *CostScheduler) Name() string {
	return "cost"
}

// FIFOScheduler no reordena (First In First Out).
type FIFOScheduler struct{}

// NewFIFOScheduler crea un scheduler FIFO.
func NewFIFOScheduler() *FIFOScheduler {
	return &FIFOScheduler{}
}

// Schedule retorna tasks en el orden original.
func (s *FIFOScheduler) Schedule(tasks []Task) []Task {
	scheduled := make([]Task, len(tasks))
	copy(scheduled, tasks)
	return scheduled
}

// Name retorna el nombre del scheduler.
func (s *FIFOScheduler) Name() string {
	return "fifo"
}
