// internal/platform/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/DULA2025/RSA-Factorization/internal/core/domain"
	"github.com/DULA2025/RSA-Factorization/internal/core/ports"
)

// Config es la configuración completa del pipeline. Precedencia:
// defaults -> fichero YAML -> ENV -> flags (los flags ganan).
type Config struct {
	// App
	Target       string `yaml:"target"`
	Workers      int    `yaml:"workers"`
	TimeoutS     int    `yaml:"timeout"` // segundos (0 = sin timeout)
	PrintVersion bool   `yaml:"-"`
	ConfigFile   string `yaml:"-"`
	Plain        bool   `yaml:"plain"` // sin salida visual pterm

	// IO
	OutputDir string `yaml:"output_dir"`

	// Policy: límites de coste de las etapas
	Policy PolicyConfig `yaml:"policy"`

	// Strategies: mapa dinámico de configuraciones por estrategia
	// Key = strategy name (ej: "direct", "smallprimes", "cyclotomic")
	Strategies map[string]ports.StrategyConfig `yaml:"strategies"`

	// Outputs
	Outputs Outputs `yaml:"outputs"`
}

// PolicyConfig es la vista serializable de domain.Policy.
type PolicyConfig struct {
	PrimeCeiling     uint64 `yaml:"prime_ceiling"`
	FieldSizeLimit   uint64 `yaml:"field_size_limit"`
	ProbeStride      int    `yaml:"probe_stride"`
	MaxPowerAttempts int    `yaml:"max_power_attempts"`
	BatchSize        int    `yaml:"batch_size"`
}

type Outputs struct {
	TableDisabled bool `yaml:"table_disabled"`
	// JSON output siempre se genera
}

// DefaultConfig retorna una configuración por defecto.
func DefaultConfig() Config {
	pol := domain.DefaultPolicy()
	return Config{
		Target:    "",
		Workers:   pol.Workers,
		TimeoutS:  0,
		OutputDir: "rsafactor_out",

		Policy: PolicyConfig{
			PrimeCeiling:     pol.PrimeCeiling,
			FieldSizeLimit:   pol.FieldSizeLimit,
			ProbeStride:      pol.ProbeStride,
			MaxPowerAttempts: pol.MaxPowerAttempts,
			BatchSize:        pol.BatchSize,
		},

		Strategies: map[string]ports.StrategyConfig{
			"direct":        ports.DefaultStrategyConfig(1),
			"smallprimes":   ports.DefaultStrategyConfig(2),
			"trialdivision": ports.DefaultStrategyConfig(3),
			"cyclotomic":    ports.DefaultStrategyConfig(4),
		},

		Outputs: Outputs{
			TableDisabled: false,
		},
	}
}

// Load inicializa la configuración con la precedencia completa.
func Load(args []string) (Config, error) {
	cfg := DefaultConfig()

	// Un primer escaneo de args localiza -config antes del parse real.
	if path := peekConfigFlag(args); path != "" {
		cfg.ConfigFile = path
	}
	if v := getenv("RSAFACTOR_CONFIG", ""); v != "" && cfg.ConfigFile == "" {
		cfg.ConfigFile = v
	}
	if cfg.ConfigFile != "" {
		if err := loadFromFile(&cfg, cfg.ConfigFile); err != nil {
			return cfg, err
		}
	}

	loadFromEnv(&cfg)

	if err := loadFromFlags(&cfg, args); err != nil {
		return cfg, err
	}

	normalize(&cfg)
	return cfg, nil
}

// ToPolicy materializa la política de dominio con la concurrencia aplicada.
func (c Config) ToPolicy() domain.Policy {
	return domain.Policy{
		PrimeCeiling:     c.Policy.PrimeCeiling,
		FieldSizeLimit:   c.Policy.FieldSizeLimit,
		ProbeStride:      c.Policy.ProbeStride,
		MaxPowerAttempts: c.Policy.MaxPowerAttempts,
		BatchSize:        c.Policy.BatchSize,
		Workers:          c.Workers,
	}
}

// Timeout devuelve el timeout global como duración (0 = sin timeout).
func (c Config) Timeout() time.Duration {
	if c.TimeoutS <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutS) * time.Second
}

// loadFromFile carga configuración desde un fichero YAML.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// loadFromEnv carga configuración desde variables de entorno.
func loadFromEnv(cfg *Config) {
	if v := getenv("RSAFACTOR_TARGET", ""); v != "" {
		cfg.Target = v
	}
	if v := getenv("RSAFACTOR_WORKERS", ""); v != "" {
		cfg.Workers = parseInt(v, cfg.Workers)
	}
	if v := getenv("RSAFACTOR_TIMEOUT", ""); v != "" {
		cfg.TimeoutS = parseInt(v, cfg.TimeoutS)
	}
	if v := getenv("RSAFACTOR_OUTPUT_DIR", ""); v != "" {
		cfg.OutputDir = v
	}
	if v := getenv("RSAFACTOR_PLAIN", ""); v != "" {
		cfg.Plain = parseBool(v)
	}

	// Policy
	if v := getenv("RSAFACTOR_PRIME_CEILING", ""); v != "" {
		cfg.Policy.PrimeCeiling = parseUint64(v, cfg.Policy.PrimeCeiling)
	}
	if v := getenv("RSAFACTOR_FIELD_SIZE_LIMIT", ""); v != "" {
		cfg.Policy.FieldSizeLimit = parseUint64(v, cfg.Policy.FieldSizeLimit)
	}
	if v := getenv("RSAFACTOR_PROBE_STRIDE", ""); v != "" {
		cfg.Policy.ProbeStride = parseInt(v, cfg.Policy.ProbeStride)
	}
	if v := getenv("RSAFACTOR_MAX_POWER_ATTEMPTS", ""); v != "" {
		cfg.Policy.MaxPowerAttempts = parseInt(v, cfg.Policy.MaxPowerAttempts)
	}
	if v := getenv("RSAFACTOR_BATCH_SIZE", ""); v != "" {
		cfg.Policy.BatchSize = parseInt(v, cfg.Policy.BatchSize)
	}

	// Strategies config desde ENV
	// Formato: RSAFACTOR_STRATEGIES_DIRECT_ENABLED=true
	//          RSAFACTOR_STRATEGIES_CYCLOTOMIC_ORDER=4
	for name := range cfg.Strategies {
		prefix := fmt.Sprintf("RSAFACTOR_STRATEGIES_%s_", strings.ToUpper(name))

		strategyCfg := cfg.Strategies[name]

		if v := getenv(prefix+"ENABLED", ""); v != "" {
			strategyCfg.Enabled = parseBool(v)
		}
		if v := getenv(prefix+"ORDER", ""); v != "" {
			strategyCfg.Order = parseInt(v, strategyCfg.Order)
		}

		cfg.Strategies[name] = strategyCfg
	}

	// Outputs
	if v := getenv("RSAFACTOR_OUTPUTS_TABLE_DISABLED", ""); v != "" {
		cfg.Outputs.TableDisabled = parseBool(v)
	}
}

// loadFromFlags parsea flags de CLI sobre un FlagSet propio (testeable).
func loadFromFlags(cfg *Config, args []string) error {
	fs := pflag.NewFlagSet("rsafactor", pflag.ContinueOnError)

	fs.StringVar(&cfg.Target, "target", cfg.Target, "Entero objetivo en decimal (e.g., 10403)")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Concurrencia máxima del fan-out de probes")
	fs.IntVar(&cfg.TimeoutS, "timeout", cfg.TimeoutS, "Timeout global en segundos (0 = sin timeout)")
	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Directorio de salida")
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "Fichero de configuración YAML (opcional)")
	fs.BoolVar(&cfg.PrintVersion, "version", false, "Imprimir versión y salir")
	fs.BoolVar(&cfg.Plain, "plain", cfg.Plain, "Salida plana sin elementos visuales")

	// Policy
	fs.Uint64Var(&cfg.Policy.PrimeCeiling, "prime-ceiling", cfg.Policy.PrimeCeiling,
		"Cota superior para la generación de primos especiales")
	fs.Uint64Var(&cfg.Policy.FieldSizeLimit, "field-size-limit", cfg.Policy.FieldSizeLimit,
		"Orden máximo de cuerpo finito admitido por un probe")
	fs.IntVar(&cfg.Policy.ProbeStride, "probe-stride", cfg.Policy.ProbeStride,
		"Muestreo del pool de primos en la etapa ciclotómica (1 = todos)")
	fs.IntVar(&cfg.Policy.MaxPowerAttempts, "max-power-attempts", cfg.Policy.MaxPowerAttempts,
		"Máximo exponente k intentado por primo")
	fs.IntVar(&cfg.Policy.BatchSize, "batch-size", cfg.Policy.BatchSize,
		"Tamaño de lote en la división de prueba")

	// Strategy configs (solo enabled y order via flags, el resto via ENV)
	for name := range cfg.Strategies {
		strategyCfg := cfg.Strategies[name]
		fs.BoolVar(&strategyCfg.Enabled, fmt.Sprintf("stage.%s", name), strategyCfg.Enabled,
			fmt.Sprintf("Habilitar etapa %s", name))
		fs.IntVar(&strategyCfg.Order, fmt.Sprintf("stage.%s.order", name), strategyCfg.Order,
			fmt.Sprintf("Posición de la etapa %s en el pipeline", name))
		cfg.Strategies[name] = strategyCfg
	}

	// Outputs
	fs.BoolVar(&cfg.Outputs.TableDisabled, "out.no-table", cfg.Outputs.TableDisabled,
		"Desactivar salida en tabla (JSON siempre se genera)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Posicional: el primer argumento no-flag es el target.
	if cfg.Target == "" && fs.NArg() > 0 {
		cfg.Target = fs.Arg(0)
	}
	return nil
}

// peekConfigFlag extrae el valor de --config sin parsear el resto.
func peekConfigFlag(args []string) string {
	for i, a := range args {
		switch {
		case a == "--config" || a == "-config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(a, "--config="):
			return strings.TrimPrefix(a, "--config=")
		}
	}
	return ""
}

func normalize(c *Config) {
	c.Target = strings.TrimSpace(c.Target)
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.TimeoutS < 0 {
		c.TimeoutS = 0
	}
	if c.OutputDir == "" {
		c.OutputDir = "rsafactor_out"
	}
	if c.Policy.ProbeStride < 1 {
		c.Policy.ProbeStride = 1
	}
	if c.Policy.MaxPowerAttempts < 1 {
		c.Policy.MaxPowerAttempts = 1
	}
	if c.Policy.BatchSize < 1 {
		c.Policy.BatchSize = 1
	}
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}

func parseInt(v string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return i
}

func parseUint64(v string, def uint64) uint64 {
	u, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return def
	}
	return u
}
