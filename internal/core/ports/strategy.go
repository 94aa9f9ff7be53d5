// internal/core/ports/strategy.go
package ports

import (
	"context"

	"github.com/DULA2025/RSA-Factorization/internal/core/domain"
)

// Strategy es el port primario de las etapas del pipeline. Cada estrategia
// de factorización (directa, división de prueba, probe) debe implementarlo.
type Strategy interface {
	// Name retorna el nombre único de la estrategia (ej: "direct", "smallprimes")
	Name() string

	// Kind retorna el mecanismo de la estrategia (direct, trial, probe)
	Kind() domain.StrategyKind

	// Cost retorna la clase de coste esperada (define el orden del pipeline)
	Cost() domain.CostClass

	// Run ejecuta la estrategia contra el target. Un outcome sin factores
	// significa fallo de etapa (avanzar); un error significa fallo interno
	// que el orquestador absorbe igualmente como fallo de etapa.
	Run(ctx context.Context, target domain.Target) (*domain.StageOutcome, error)

	// Close libera recursos utilizados por la estrategia
	Close() error
}

// StrategyConfig contiene la configuración específica de una estrategia.
type StrategyConfig struct {
	// Enabled indica si la estrategia está habilitada
	Enabled bool

	// Order posición en el pipeline (menor se ejecuta antes)
	Order int

	// Custom configuración específica de la estrategia
	Custom map[string]interface{}
}

// DefaultStrategyConfig retorna una configuración por defecto.
func DefaultStrategyConfig(order int) StrategyConfig {
	return StrategyConfig{
		Enabled: true,
		Order:   order,
		Custom:  make(map[string]interface{}),
	}
}

// StrategyMetadata contiene metadatos sobre una estrategia.
type StrategyMetadata struct {
	Name        string
	Description string
	Version     string
	Kind        domain.StrategyKind
	Cost        domain.CostClass

	// Order posición por defecto en el pipeline (menor = antes)
	Order int
}
