// internal/adapters/output/table.go
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/DULA2025/RSA-Factorization/internal/core/domain"
)

// OutputTable imprime una tabla legible en terminal con los tiempos por
// etapa y el veredicto final.
func OutputTable(report *domain.RunReport) error {
	return writeTable(os.Stdout, report)
}

func writeTable(out io.Writer, report *domain.RunReport) error {
	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)

	fmt.Fprintf(w, "\n=== RSA Factorization Results ===\n")
	if report.Target != nil {
		fmt.Fprintf(w, "Target:\t%s\n", report.Target.String())
	}
	fmt.Fprintf(w, "Duration:\t%s\n", report.Duration)
	fmt.Fprintf(w, "Stages run:\t%d\n\n", len(report.Stages))

	// Tabla de etapas con tiempos
	fmt.Fprintln(w, "STAGE\tRESULT\tDURATION\tWARNINGS")
	fmt.Fprintln(w, "-----\t------\t--------\t--------")
	for _, s := range report.Stages {
		result := "no factor"
		if s.Found() {
			result = fmt.Sprintf("%d factor(s)", len(s.Factors))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", s.Strategy, result, s.Duration, len(s.Warnings))
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}

	// Resultado final
	if report.Found() {
		parts := make([]string, 0, len(report.Factors))
		for _, f := range report.Factors {
			parts = append(parts, f.String())
		}
		fmt.Fprintf(out, "\nFactors:\t%s\n", strings.Join(parts, " × "))
		fmt.Fprintf(out, "Terminal stage:\t%s\n", report.TerminalStage())
		if report.Verified {
			fmt.Fprintln(out, "Verification:\tPASS")
		} else {
			fmt.Fprintln(out, "Verification:\tFAIL (partial factorization)")
		}
	} else {
		fmt.Fprintln(out, "\nNo factors found under the configured ceilings.")
	}

	// Warnings por etapa
	for _, s := range report.Stages {
		for i, warning := range s.Warnings {
			fmt.Fprintf(out, "  %d. [%s] %s\n", i+1, s.Strategy, warning)
		}
	}

	fmt.Fprintln(out)
	return nil
}
