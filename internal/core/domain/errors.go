// internal/core/domain/errors.go
package domain

import "errors"

// Errores de dominio comunes.
var (
	// Target errors
	ErrEmptyTarget   = errors.New("target cannot be empty")
	ErrInvalidTarget = errors.New("target must be an integer greater than 1")
	ErrInvalidPolicy = errors.New("invalid pipeline policy")

	// Prime errors
	ErrOutOfPattern = errors.New("prime outside the 6k±1 pattern")

	// Strategy errors
	ErrStrategyNotFound        = errors.New("strategy not found")
	ErrStrategyBuildFailed     = errors.New("strategy build failed")
	ErrNoStrategiesAvailable   = errors.New("no strategies available")
	ErrStrategyExecutionFailed = errors.New("strategy execution failed")

	// Pipeline errors
	ErrPipelineCanceled = errors.New("pipeline was canceled")
)
