// internal/core/usecases/orchestrator.go

// Package usecases contiene la lógica de aplicación del pipeline: el
// orquestador por etapas y el fan-out concurrente de probes.
package usecases

import (
	"context"
	"fmt"

	"github.com/DULA2025/RSA-Factorization/internal/core/domain"
	"github.com/DULA2025/RSA-Factorization/internal/core/ports"
	"github.com/DULA2025/RSA-Factorization/internal/platform/logx"
	"github.com/DULA2025/RSA-Factorization/internal/platform/ui"
)

// StagedOrchestrator ejecuta las estrategias en orden estricto, cada una
// como barrier: solo el fallo de una etapa habilita la siguiente. El primer
// éxito es terminal; agotar todas las etapas retorna lista vacía (limitación
// documentada, no error).
type StagedOrchestrator struct {
	strategies []ports.Strategy
	logger     logx.Logger
	presenter  ui.Presenter
}

// NewStagedOrchestrator crea el orquestador. Las estrategias deben venir ya
// ordenadas por posición en el pipeline (el registry lo garantiza).
func NewStagedOrchestrator(strategies []ports.Strategy, logger logx.Logger, presenter ui.Presenter) *StagedOrchestrator {
	if logger == nil {
		logger = logx.New()
	}
	if presenter == nil {
		presenter = ui.NewNoopPresenter()
	}
	return &StagedOrchestrator{
		strategies: strategies,
		logger:     logger.With("component", "orchestrator"),
		presenter:  presenter,
	}
}

// Run ejecuta el pipeline completo contra el target y retorna el report con
// outcomes por etapa, factores finales y veredicto de verificación.
//
// Los errores internos de una etapa se absorben como fallo de etapa; solo
// la cancelación del contexto y los targets inválidos son errores del
// orquestador.
func (o *StagedOrchestrator) Run(ctx context.Context, target *domain.Target) (*domain.RunReport, error) {
	if target == nil {
		return nil, domain.ErrEmptyTarget
	}
	if err := target.Validate(); err != nil {
		return nil, err
	}
	if len(o.strategies) == 0 {
		return nil, domain.ErrNoStrategiesAvailable
	}

	report := domain.NewRunReport(target.N)
	o.logger.Info("pipeline started",
		"target_digits", target.Digits(),
		"stages", len(o.strategies),
	)

	for i, strategy := range o.strategies {
		if err := ctx.Err(); err != nil {
			report.Finalize()
			return report, fmt.Errorf("%w: %v", domain.ErrPipelineCanceled, err)
		}

		o.presenter.StartStage(ui.StageInfo{
			Number:      i + 1,
			TotalStages: len(o.strategies),
			Name:        strategy.Name(),
		})

		outcome, err := strategy.Run(ctx, *target)
		if outcome == nil {
			outcome = domain.NewStageOutcome(strategy.Name())
		}
		if err != nil {
			if ctx.Err() != nil {
				report.AddStage(*outcome)
				report.Finalize()
				o.presenter.FinishStage(strategy.Name(), ui.StatusFailed, outcome.Duration, 0)
				return report, fmt.Errorf("%w: %v", domain.ErrPipelineCanceled, err)
			}
			// Fallo interno de la etapa: se absorbe y el pipeline avanza.
			outcome.AddWarning("stage error absorbed: %v", err)
			o.logger.Warn("stage failed internally, advancing",
				"stage", strategy.Name(), "error", err.Error())
		}

		report.AddStage(*outcome)

		if outcome.Found() {
			report.Factors = outcome.Factors
			o.presenter.FinishStage(strategy.Name(), ui.StatusSolved, outcome.Duration, len(outcome.Factors))
			o.logger.Info("terminal stage",
				"stage", strategy.Name(),
				"factors", len(outcome.Factors),
				"duration_ms", outcome.Duration.Milliseconds(),
			)
			break
		}

		o.presenter.FinishStage(strategy.Name(), ui.StatusFailed, outcome.Duration, 0)
		o.logger.Info("stage exhausted, advancing",
			"stage", strategy.Name(),
			"duration_ms", outcome.Duration.Milliseconds(),
		)
	}

	report.Verified = domain.Verify(report.Target, report.Factors)
	report.Finalize()

	if !report.Found() {
		o.logger.Warn("pipeline exhausted: no factors under configured ceilings")
	} else if !report.Verified {
		// Nunca presentar un resultado parcial como éxito.
		o.logger.Warn("verification mismatch: factor product does not reconstruct target")
	}

	return report, nil
}

// Close cierra todas las estrategias.
func (o *StagedOrchestrator) Close() error {
	var firstErr error
	for _, s := range o.strategies {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
