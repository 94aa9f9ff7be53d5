// internal/adapters/output/json.go
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/DULA2025/RSA-Factorization/internal/core/domain"
)

// reportDocument es la forma serializada de un RunReport. Los enteros van
// como strings decimales: un semiprimo RSA no cabe en un número JSON.
type reportDocument struct {
	Target    string          `json:"target"`
	Digits    int             `json:"digits"`
	Factors   []string        `json:"factors"`
	Verified  bool            `json:"verified"`
	Exhausted bool            `json:"exhausted"`
	Terminal  string          `json:"terminal_stage,omitempty"`
	Stages    []stageDocument `json:"stages"`
	StartTime time.Time       `json:"start_time"`
	Duration  string          `json:"duration"`
}

type stageDocument struct {
	Strategy   string   `json:"strategy"`
	Found      bool     `json:"found"`
	Factors    []string `json:"factors,omitempty"`
	DurationMS int64    `json:"duration_ms"`
	Warnings   []string `json:"warnings,omitempty"`
}

// buildDocument convierte el report de dominio al documento serializable.
func buildDocument(report *domain.RunReport) reportDocument {
	doc := reportDocument{
		Verified:  report.Verified,
		Exhausted: !report.Found(),
		Terminal:  report.TerminalStage(),
		StartTime: report.StartTime,
		Duration:  report.Duration.String(),
		Factors:   []string{},
	}
	if report.Target != nil {
		doc.Target = report.Target.String()
		doc.Digits = len(report.Target.Text(10))
	}
	for _, f := range report.Factors {
		doc.Factors = append(doc.Factors, f.String())
	}
	for _, s := range report.Stages {
		sd := stageDocument{
			Strategy:   s.Strategy,
			Found:      s.Found(),
			DurationMS: s.Duration.Milliseconds(),
			Warnings:   s.Warnings,
		}
		for _, f := range s.Factors {
			sd.Factors = append(sd.Factors, f.String())
		}
		doc.Stages = append(doc.Stages, sd)
	}
	return doc
}

// OutputJSON exporta el report a un fichero JSON bajo dir, con timestamp
// en el nombre. Retorna la ruta escrita.
func OutputJSON(dir string, report *domain.RunReport) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("rsafactor_%s.json", timestamp)
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := writeJSON(f, report); err != nil {
		return "", err
	}
	return path, nil
}

// OutputJSONStdout exporta el report a stdout.
func OutputJSONStdout(report *domain.RunReport) error {
	return writeJSON(os.Stdout, report)
}

func writeJSON(w io.Writer, report *domain.RunReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(buildDocument(report)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
