// cmd/rsafactor/main.go
package main

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DULA2025/RSA-Factorization/internal/adapters/output"
	"github.com/DULA2025/RSA-Factorization/internal/core/domain"
	"github.com/DULA2025/RSA-Factorization/internal/core/ports"
	"github.com/DULA2025/RSA-Factorization/internal/core/usecases"
	"github.com/DULA2025/RSA-Factorization/internal/factorizer"
	"github.com/DULA2025/RSA-Factorization/internal/gf"
	"github.com/DULA2025/RSA-Factorization/internal/platform/config"
	"github.com/DULA2025/RSA-Factorization/internal/platform/logx"
	"github.com/DULA2025/RSA-Factorization/internal/platform/registry"
	"github.com/DULA2025/RSA-Factorization/internal/platform/ui"
	"github.com/DULA2025/RSA-Factorization/internal/sieve"

	// Import stages for auto-registration via init()
	_ "github.com/DULA2025/RSA-Factorization/internal/stages/cyclotomic"
	_ "github.com/DULA2025/RSA-Factorization/internal/stages/direct"
	_ "github.com/DULA2025/RSA-Factorization/internal/stages/smallprimes"
	_ "github.com/DULA2025/RSA-Factorization/internal/stages/trialdivision"
)

var (
	// Rellenables con -ldflags en build
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// 1. Load centralized config
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: configuration load failed: %v\n", err)
		os.Exit(2)
	}

	if cfg.PrintVersion {
		fmt.Printf("rsafactor %s (commit %s, built %s)\n", version, commit, date)
		os.Exit(0)
	}

	if cfg.Target == "" {
		fmt.Fprintln(os.Stderr, "Error: target integer is required")
		fmt.Fprintln(os.Stderr, "Usage: rsafactor <decimal-integer>")
		fmt.Fprintln(os.Stderr, "Try: rsafactor --help")
		os.Exit(2)
	}

	// 2. Shared logger; en modo visual el logger baja a solo-errores para
	// no pisar los spinners.
	var logger logx.Logger
	var presenter ui.Presenter
	if cfg.Plain {
		logger = logx.New()
		presenter = ui.NewNoopPresenter()
	} else {
		logger = logx.NewSilent()
		presenter = ui.NewPTermPresenter()
	}
	defer presenter.Close()

	logger.Info("rsafactor starting",
		"version", version,
		"target", cfg.Target,
		"workers", cfg.Workers,
	)

	// 3. Context and signals for clean shutdown
	ctx, cancel := rootContextWithSignals(cfg.TimeoutS)
	defer cancel()

	// 4. Build target domain
	n, ok := new(big.Int).SetString(cfg.Target, 10)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: target %q is not a decimal integer\n", cfg.Target)
		os.Exit(2)
	}

	target := domain.NewTarget(n)
	target.Policy = cfg.ToPolicy()
	if err := target.Validate(); err != nil {
		logger.Err(err, "phase", "validation")
		fmt.Fprintf(os.Stderr, "Error: invalid target: %v\n", err)
		os.Exit(2)
	}

	// 5. Collaborators compartidos por las estrategias
	deps := ports.Collaborators{
		Oracle:     factorizer.NewOracle(),
		Factorizer: factorizer.NewRho(logger),
		Poly:       gf.New(logger),
		Sieve:      sieve.New(logger),
	}

	// 6. Build strategies from registry
	strategies, err := registry.Global().Build(cfg.Strategies, deps, logger)
	if err != nil {
		logger.Err(err, "phase", "strategy-build")
		fmt.Fprintf(os.Stderr, "Error: failed to build strategies: %v\n", err)
		os.Exit(2)
	}

	// 7. Orchestrator
	orch := usecases.NewStagedOrchestrator(strategies, logger, presenter)
	defer func() {
		if err := orch.Close(); err != nil {
			logger.Warn("failed to close strategies", "error", err.Error())
		}
	}()

	presenter.Start(ui.RunInfo{
		Target:         cfg.Target,
		Digits:         target.Digits(),
		Workers:        cfg.Workers,
		TimeoutSeconds: cfg.TimeoutS,
		TotalStages:    len(strategies),
		PrimeCeiling:   target.Policy.PrimeCeiling,
	})

	// 8. Execute pipeline
	start := time.Now()
	report, runErr := orch.Run(ctx, target)
	elapsed := time.Since(start)

	if runErr != nil {
		logger.Err(runErr, "phase", "run", "elapsed_ms", elapsed.Milliseconds())
		// Continue to emit partial results (useful in pipelines)
	}

	// 9. Write outputs
	if report != nil {
		presenter.Finish(ui.RunStats{
			TotalDuration: report.Duration,
			Factors:       factorStrings(report.Factors),
			TerminalStage: report.TerminalStage(),
			Verified:      report.Verified,
			Exhausted:     !report.Found(),
		})

		if err := writeOutputs(cfg, report); err != nil {
			logger.Err(err, "phase", "output")
			os.Exit(1)
		}

		logger.Info("rsafactor finished",
			"elapsed_ms", elapsed.Milliseconds(),
			"factors", len(report.Factors),
			"verified", report.Verified,
		)
	}

	switch {
	case runErr != nil:
		os.Exit(1)
	case report == nil || !report.Found():
		// Agotamiento documentado: distinguible en pipelines sin parsear salida.
		os.Exit(3)
	case !report.Verified:
		os.Exit(4)
	}
}

// writeOutputs decide y ejecuta las salidas según configuración.
func writeOutputs(cfg config.Config, report *domain.RunReport) error {
	// El JSON consolidado siempre se genera.
	if _, err := output.OutputJSON(cfg.OutputDir, report); err != nil {
		return fmt.Errorf("json output: %w", err)
	}

	if !cfg.Outputs.TableDisabled {
		if err := output.OutputTable(report); err != nil {
			return fmt.Errorf("table output: %w", err)
		}
	}

	return nil
}

func factorStrings(factors []*big.Int) []string {
	out := make([]string, 0, len(factors))
	for _, f := range factors {
		out = append(out, f.String())
	}
	return out
}

// rootContextWithSignals crea el contexto raíz con timeout opcional y
// cancelación por señales del sistema.
func rootContextWithSignals(timeoutSeconds int) (context.Context, context.CancelFunc) {
	var base context.Context
	var baseCancel context.CancelFunc

	if timeoutSeconds > 0 {
		base, baseCancel = context.WithTimeout(context.Background(), time.Duration(timeoutSeconds)*time.Second)
	} else {
		base, baseCancel = context.WithCancel(context.Background())
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-ch:
			baseCancel()
		case <-base.Done():
		}
	}()

	cleanupCancel := func() {
		signal.Stop(ch)
		close(ch)
		baseCancel()
	}

	return base, cleanupCancel
}
