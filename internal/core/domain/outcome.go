// internal/core/domain/outcome.go
package domain

import (
	"fmt"
	"math/big"
	"time"
)

// StageOutcome encapsula el resultado de una etapa del pipeline.
// Una lista de factores no vacía significa éxito terminal; vacía significa
// que la etapa falló y el pipeline avanza a la siguiente.
type StageOutcome struct {
	// Strategy nombre de la estrategia ejecutada
	Strategy string

	// Factors factores descubiertos (vacío = avanzar)
	Factors []*big.Int

	// Duration tiempo de ejecución de la etapa
	Duration time.Duration

	// DiscoveredAt momento del hallazgo (cero si no hubo)
	DiscoveredAt time.Time

	// Warnings avisos no críticos (errores absorbidos, cortes de presupuesto)
	Warnings []string
}

// NewStageOutcome crea un outcome vacío para una estrategia.
func NewStageOutcome(strategy string) *StageOutcome {
	return &StageOutcome{Strategy: strategy}
}

// Found indica si la etapa descubrió factores.
func (o *StageOutcome) Found() bool {
	return len(o.Factors) > 0
}

// AddWarning añade un aviso no crítico al outcome.
func (o *StageOutcome) AddWarning(format string, args ...any) {
	o.Warnings = append(o.Warnings, fmt.Sprintf(format, args...))
}

// SetFactors registra los factores descubiertos y el instante del hallazgo.
func (o *StageOutcome) SetFactors(factors []*big.Int) {
	o.Factors = factors
	o.DiscoveredAt = time.Now()
}

// RunReport es el resultado completo de una ejecución del pipeline:
// el objetivo, los outcomes por etapa con sus tiempos, el conjunto final
// de factores y el veredicto de la verificación.
type RunReport struct {
	// Target valor factorizado
	Target *big.Int

	// Stages outcomes en orden de ejecución
	Stages []StageOutcome

	// Factors lista final ascendente (vacía = pipeline agotado)
	Factors []*big.Int

	// Verified resultado del check de producto (false también cuando
	// no se encontró nada)
	Verified bool

	// StartTime momento de inicio de la ejecución
	StartTime time.Time

	// Duration duración total
	Duration time.Duration
}

// NewRunReport crea un report para el valor objetivo.
func NewRunReport(n *big.Int) *RunReport {
	r := &RunReport{StartTime: time.Now()}
	if n != nil {
		r.Target = new(big.Int).Set(n)
	}
	return r
}

// AddStage registra el outcome de una etapa.
func (r *RunReport) AddStage(outcome StageOutcome) {
	r.Stages = append(r.Stages, outcome)
}

// Found indica si el pipeline terminó con factores.
func (r *RunReport) Found() bool {
	return len(r.Factors) > 0
}

// TerminalStage retorna el nombre de la etapa que resolvió el target,
// o cadena vacía si el pipeline se agotó.
func (r *RunReport) TerminalStage() string {
	for _, s := range r.Stages {
		if s.Found() {
			return s.Strategy
		}
	}
	return ""
}

// Finalize cierra el report calculando la duración total.
func (r *RunReport) Finalize() {
	r.Duration = time.Since(r.StartTime)
}

// Summary retorna un resumen legible del report.
func (r *RunReport) Summary() string {
	return fmt.Sprintf("RunReport{stages=%d, factors=%d, verified=%t, duration=%s}",
		len(r.Stages), len(r.Factors), r.Verified, r.Duration)
}
