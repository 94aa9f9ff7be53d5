// internal/platform/ui/presenter.go
package ui

import (
	"time"
)

// Status representa el estado de una etapa del pipeline.
type Status string

const (
	StatusPending Status = "pending"
	StatusRunning Status = "running"
	StatusSolved  Status = "solved"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Presenter define la interfaz para presentar el progreso del pipeline
// de factorización de manera visual en la terminal.
type Presenter interface {
	// Start inicia la presentación con información de la ejecución
	Start(info RunInfo)

	// StartStage notifica el inicio de una etapa
	StartStage(stage StageInfo)

	// FinishStage notifica la finalización de una etapa
	FinishStage(name string, status Status, duration time.Duration, factorCount int)

	// Info muestra un mensaje informativo
	Info(msg string)

	// Warning muestra una advertencia
	Warning(msg string)

	// Error muestra un error
	Error(msg string)

	// Finish finaliza la presentación con el resultado de la ejecución
	Finish(stats RunStats)

	// Close limpia recursos del presenter
	Close() error
}

// RunInfo contiene información inicial de la ejecución.
type RunInfo struct {
	Target         string
	Digits         int
	Workers        int
	TimeoutSeconds int
	TotalStages    int
	PrimeCeiling   uint64
}

// StageInfo contiene información de una etapa.
type StageInfo struct {
	Number      int
	TotalStages int
	Name        string
}

// RunStats contiene el resultado final de la ejecución.
type RunStats struct {
	TotalDuration time.Duration
	Factors       []string
	TerminalStage string
	Verified      bool
	Exhausted     bool
}
