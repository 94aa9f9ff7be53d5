// internal/platform/registry/strategy_registry.go
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/DULA2025/RSA-Factorization/internal/core/ports"
	"github.com/DULA2025/RSA-Factorization/internal/platform/logx"
)

// StrategyRegistry gestiona el registro y construcción de estrategias.
// Implementa el patrón Registry + Factory para desacoplar la creación
// de estrategias del código de aplicación.
type StrategyRegistry struct {
	mu        sync.RWMutex
	factories map[string]StrategyFactory
	metadata  map[string]ports.StrategyMetadata
	logger    logx.Logger
}

// StrategyFactory es una función que crea una instancia de Strategy con
// los colaboradores inyectados.
type StrategyFactory func(cfg ports.StrategyConfig, deps ports.Collaborators, logger logx.Logger) (ports.Strategy, error)

// globalRegistry es la instancia global del registry.
var globalRegistry *StrategyRegistry
var once sync.Once

// Global retorna la instancia global del registry.
func Global() *StrategyRegistry {
	once.Do(func() {
		globalRegistry = NewStrategyRegistry(logx.New())
	})
	return globalRegistry
}

// NewStrategyRegistry crea un nuevo registry de estrategias.
func NewStrategyRegistry(logger logx.Logger) *StrategyRegistry {
	return &StrategyRegistry{
		factories: make(map[string]StrategyFactory),
		metadata:  make(map[string]ports.StrategyMetadata),
		logger:    logger.With("component", "strategy-registry"),
	}
}

// Register registra una strategy factory con su metadata.
// Típicamente llamado desde init() de cada stage package.
func (r *StrategyRegistry) Register(name string, factory StrategyFactory, meta ports.StrategyMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		return fmt.Errorf("strategy name cannot be empty")
	}

	if factory == nil {
		return fmt.Errorf("factory cannot be nil for strategy %s", name)
	}

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("strategy %s is already registered", name)
	}

	r.factories[name] = factory
	r.metadata[name] = meta
	r.logger.Debug("strategy registered", "name", name, "kind", meta.Kind, "cost", meta.Cost)

	return nil
}

// Build construye todas las estrategias habilitadas según la configuración,
// ordenadas por Order ascendente (el pipeline ejecuta primero las baratas).
func (r *StrategyRegistry) Build(configs map[string]ports.StrategyConfig, deps ports.Collaborators, logger logx.Logger) ([]ports.Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Validación de configuración (fail-fast)
	if configs == nil {
		return nil, fmt.Errorf("configs cannot be nil")
	}

	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	type orderedStrategy struct {
		name   string
		config ports.StrategyConfig
		order  int
	}

	ordered := make([]orderedStrategy, 0, len(configs))
	buildErrors := make([]error, 0)

	for name, cfg := range configs {
		if !cfg.Enabled {
			continue
		}

		if _, exists := r.factories[name]; !exists {
			r.logger.Warn("strategy not registered, skipping", "strategy", name)
			buildErrors = append(buildErrors, fmt.Errorf("strategy %s not registered in registry", name))
			continue
		}

		order := cfg.Order
		if order < 0 {
			// Orden inválido: cae al orden por defecto de la metadata.
			order = r.metadata[name].Order
		}

		ordered = append(ordered, orderedStrategy{
			name:   name,
			config: cfg,
			order:  order,
		})
	}

	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].order != ordered[j].order {
			return ordered[i].order < ordered[j].order
		}
		return ordered[i].name < ordered[j].name
	})

	strategies := make([]ports.Strategy, 0, len(ordered))
	for _, os := range ordered {
		factory := r.factories[os.name] // Ya validado arriba

		strategy, err := factory(os.config, deps, logger)
		if err != nil {
			buildErrors = append(buildErrors, fmt.Errorf("failed to build strategy %s: %w", os.name, err))
			continue
		}

		strategies = append(strategies, strategy)
		r.logger.Debug("strategy built",
			"name", os.name,
			"order", os.order,
			"kind", r.metadata[os.name].Kind,
		)
	}

	if len(buildErrors) > 0 {
		// Log errors pero no fallar completamente
		for _, err := range buildErrors {
			r.logger.Warn("strategy build error", "error", err.Error())
		}
	}

	if len(strategies) == 0 && len(configs) > 0 {
		return nil, fmt.Errorf("no strategies could be built")
	}

	logger.Info("strategies built", "count", len(strategies), "requested", len(configs))
	return strategies, nil
}

// List retorna los nombres de todas las estrategias registradas.
func (r *StrategyRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetMetadata retorna el metadata de una estrategia.
func (r *StrategyRegistry) GetMetadata(name string) (ports.StrategyMetadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meta, exists := r.metadata[name]
	return meta, exists
}

// GetAllMetadata retorna el metadata de todas las estrategias registradas.
func (r *StrategyRegistry) GetAllMetadata() map[string]ports.StrategyMetadata {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Crear copia para evitar race conditions
	result := make(map[string]ports.StrategyMetadata, len(r.metadata))
	for name, meta := range r.metadata {
		result[name] = meta
	}

	return result
}

// IsRegistered verifica si una estrategia está registrada.
func (r *StrategyRegistry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[name]
	return exists
}

// Clear elimina todas las estrategias registradas (útil para testing).
func (r *StrategyRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories = make(map[string]StrategyFactory)
	r.metadata = make(map[string]ports.StrategyMetadata)
}
