// internal/core/domain/enums.go
package domain

// StrategyKind clasifica las estrategias por su mecanismo.
type StrategyKind string

const (
	// KindDirect delega por completo en el factorizador general
	KindDirect StrategyKind = "direct"

	// KindTrial divide por una secuencia de candidatos
	KindTrial StrategyKind = "trial"

	// KindProbe busca estructura en cuerpos finitos
	KindProbe StrategyKind = "probe"
)

// IsValid verifica si el kind es válido.
func (k StrategyKind) IsValid() bool {
	switch k {
	case KindDirect, KindTrial, KindProbe:
		return true
	default:
		return false
	}
}

// String retorna la representación string del kind.
func (k StrategyKind) String() string {
	return string(k)
}

// CostClass clasifica el coste esperado de una estrategia. El orquestador
// ejecuta las etapas en orden de coste creciente: el orden del pipeline
// refleja esta clasificación.
type CostClass string

const (
	// CostLow barata si acierta (factorización directa, primos pequeños)
	CostLow CostClass = "low"

	// CostMedium división de prueba acotada
	CostMedium CostClass = "medium"

	// CostHigh probes de cuerpo finito, deliberadamente estrangulados
	CostHigh CostClass = "high"
)

// IsValid verifica si la clase de coste es válida.
func (c CostClass) IsValid() bool {
	switch c {
	case CostLow, CostMedium, CostHigh:
		return true
	default:
		return false
	}
}

// String retorna la representación string de la clase.
func (c CostClass) String() string {
	return string(c)
}
