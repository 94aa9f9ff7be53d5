// internal/core/usecases/fanout.go
package usecases

import (
	"context"
	"math"

	"github.com/DULA2025/RSA-Factorization/internal/core/domain"
	"github.com/DULA2025/RSA-Factorization/internal/platform/logx"
	"github.com/DULA2025/RSA-Factorization/internal/platform/workerpool"
	"github.com/DULA2025/RSA-Factorization/internal/probe"
)

// ProbeRunner es el ejecutor de probes individuales que el fan-out reparte
// entre workers.
type ProbeRunner interface {
	Run(ctx context.Context, task domain.ProbeTask) (*probe.Result, error)
}

// FanOutReport resume una ejecución del fan-out.
type FanOutReport struct {
	// Factors unión de los divisores descubiertos por todos los probes
	Factors *domain.FactorSet

	// Dispatched número de tasks ejecutadas
	Dispatched int

	// Skipped probes cortocircuitados (k>1, cuerpo demasiado grande)
	Skipped int

	// Failed probes con error interno absorbido
	Failed int
}

// ProbeFanOut reparte ProbeTasks entre workers y mezcla los divisores
// descubiertos en un conjunto único. Las tasks son stateless: cada una
// escribe solo su propio resultado y la mezcla ocurre tras el barrier.
type ProbeFanOut struct {
	runner  ProbeRunner
	workers int
	logger  logx.Logger
}

// NewProbeFanOut crea el fan-out con la concurrencia máxima indicada.
func NewProbeFanOut(runner ProbeRunner, workers int, logger logx.Logger) *ProbeFanOut {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = logx.New()
	}
	return &ProbeFanOut{
		runner:  runner,
		workers: workers,
		logger:  logger.With("component", "fanout"),
	}
}

// Execute ejecuta las tasks concurrentemente y retorna la unión de los
// divisores descubiertos. Una lista vacía retorna un conjunto vacío sin
// arrancar ningún worker. Los errores de probes individuales se absorben
// y se cuentan en el report.
func (f *ProbeFanOut) Execute(ctx context.Context, tasks []domain.ProbeTask) *FanOutReport {
	report := &FanOutReport{Factors: domain.NewFactorSet()}
	if len(tasks) == 0 {
		return report
	}

	// Concurrencia = min(workers configurados, número de tasks).
	workers := f.workers
	if len(tasks) < workers {
		workers = len(tasks)
	}

	pool := workerpool.NewWorkerPool(workerpool.WorkerPoolConfig{
		Workers:   workers,
		Scheduler: workerpool.NewCostScheduler(),
		Logger:    f.logger,
	})
	pool.Start()
	defer pool.Stop()

	units := make([]workerpool.Task, 0, len(tasks))
	for _, task := range tasks {
		units = append(units, &probeUnit{task: task, runner: f.runner, parent: ctx})
	}

	results := pool.Submit(units)
	report.Dispatched = len(results)

	for _, res := range results {
		unit := res.Task.(*probeUnit)
		if res.Error != nil {
			report.Failed++
			f.logger.Warn("probe failed", "task", unit.task.String(), "error", res.Error.Error())
			continue
		}
		if unit.result == nil {
			continue
		}
		if unit.result.Skipped != probe.SkipNone {
			report.Skipped++
			continue
		}
		report.Factors.AddAll(unit.result.Factors...)
	}

	f.logger.Debug("fanout merged",
		"tasks", len(tasks),
		"workers", workers,
		"factors", report.Factors.Len(),
		"skipped", report.Skipped,
		"failed", report.Failed,
	)
	return report
}

// probeUnit adapta una ProbeTask al contrato del worker pool. El campo
// result lo escribe únicamente el worker que ejecuta la task.
type probeUnit struct {
	task   domain.ProbeTask
	runner ProbeRunner
	parent context.Context
	result *probe.Result
}

// Execute corre el probe. El contexto del pool gobierna la cancelación,
// pero se respeta también el contexto padre del pipeline.
func (u *probeUnit) Execute(ctx context.Context) error {
	if err := u.parent.Err(); err != nil {
		return err
	}
	res, err := u.runner.Run(u.parent, u.task)
	if err != nil {
		return err
	}
	u.result = res
	return nil
}

// Cost retorna el orden del cuerpo como estimación de coste.
func (u *probeUnit) Cost() uint64 {
	order, ok := u.task.FieldOrder()
	if !ok {
		return math.MaxUint64
	}
	return order
}

// Name retorna el nombre de la task.
func (u *probeUnit) Name() string {
	return u.task.String()
}
