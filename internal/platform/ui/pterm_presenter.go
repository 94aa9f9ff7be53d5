// internal/platform/ui/pterm_presenter.go
package ui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pterm/pterm"
)

// PTermPresenter implementa Presenter usando la biblioteca pterm
// para renderizar spinners, colores y símbolos en la terminal.
type PTermPresenter struct {
	mu sync.Mutex

	runInfo     RunInfo
	totalStages int
	startTime   time.Time

	// Spinner de la etapa en curso
	spinner *pterm.SpinnerPrinter
}

// NewPTermPresenter crea una nueva instancia del presenter con pterm.
func NewPTermPresenter() *PTermPresenter {
	return &PTermPresenter{}
}

// Start inicia la presentación mostrando el header de la ejecución.
func (p *PTermPresenter) Start(info RunInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.runInfo = info
	p.totalStages = info.TotalStages
	p.startTime = time.Now()

	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("RSA Factorization Pipeline")

	pterm.Println()

	infoPanel := pterm.DefaultBox.
		WithTitle("Target Information").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan))

	targetInfo := fmt.Sprintf("%s Target: %s (%d digits)\n", IconTarget, pterm.Cyan(info.Target), info.Digits)
	targetInfo += fmt.Sprintf("%s Workers: %d\n", IconWorkers, info.Workers)
	targetInfo += fmt.Sprintf("%s Timeout: %ds\n", IconTime, info.TimeoutSeconds)
	targetInfo += fmt.Sprintf("   Prime ceiling: %d\n", info.PrimeCeiling)
	targetInfo += fmt.Sprintf("%s Total Stages: %d", IconStage, info.TotalStages)

	infoPanel.Println(targetInfo)

	pterm.Println()
	pterm.Println(pterm.LightBlue(SeparatorHeavy))
	pterm.Println()
}

// StartStage notifica el inicio de una etapa con un spinner activo.
func (p *PTermPresenter) StartStage(stage StageInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	title := fmt.Sprintf("Stage %d/%d: %s", stage.Number, stage.TotalStages, stage.Name)
	spinner, _ := pterm.DefaultSpinner.
		WithStyle(pterm.NewStyle(pterm.FgCyan)).
		Start(title)
	p.spinner = spinner
}

// FinishStage cierra el spinner de la etapa con su veredicto.
func (p *PTermPresenter) FinishStage(name string, status Status, duration time.Duration, factorCount int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	msg := fmt.Sprintf("%s %s (%s)", status.Symbol(), name, duration.Round(time.Millisecond))
	if p.spinner == nil {
		pterm.Println(msg)
		return
	}

	switch status {
	case StatusSolved:
		p.spinner.Success(fmt.Sprintf("%s — %d factor(s) found (%s)", name, factorCount, duration.Round(time.Millisecond)))
	case StatusFailed:
		p.spinner.Warning(fmt.Sprintf("%s — no factors (%s)", name, duration.Round(time.Millisecond)))
	case StatusSkipped:
		p.spinner.Info(fmt.Sprintf("%s — skipped", name))
	default:
		p.spinner.Stop()
	}
	p.spinner = nil
}

// Info muestra un mensaje informativo.
func (p *PTermPresenter) Info(msg string) {
	pterm.Info.Println(msg)
}

// Warning muestra una advertencia.
func (p *PTermPresenter) Warning(msg string) {
	pterm.Warning.Println(msg)
}

// Error muestra un error.
func (p *PTermPresenter) Error(msg string) {
	pterm.Error.Println(msg)
}

// Finish muestra el resultado final de la ejecución.
func (p *PTermPresenter) Finish(stats RunStats) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Println()
	pterm.Println(pterm.LightBlue(SeparatorHeavy))
	pterm.Println()

	if stats.Exhausted {
		pterm.Warning.Println("Pipeline exhausted: no factors found under the configured ceilings")
	} else {
		pterm.Success.Println(fmt.Sprintf("%s Factors: %s", IconFactor, strings.Join(stats.Factors, " × ")))
		pterm.Println(fmt.Sprintf("   Terminal stage: %s", pterm.Cyan(stats.TerminalStage)))
		if stats.Verified {
			pterm.Println(pterm.Green("   Verification: product reconstructs the target ✓"))
		} else {
			pterm.Println(pterm.Red("   Verification: FAILED — partial factorization"))
		}
	}
	pterm.Println(fmt.Sprintf("   Total duration: %s", stats.TotalDuration.Round(time.Millisecond)))
}

// Close limpia recursos del presenter.
func (p *PTermPresenter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.spinner != nil {
		p.spinner.Stop()
		p.spinner = nil
	}
	return nil
}
