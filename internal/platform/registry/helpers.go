// internal/platform/registry/helpers.go
package registry

import (
	"fmt"
)

// Type-safe configuration extraction helpers for strategy factories.
// These functions eliminate repetitive nil checks and type assertions when
// extracting custom configuration values from the cfg.Custom map.

// GetStringConfig extracts a string value from custom config map with a
// default fallback.
func GetStringConfig(custom map[string]interface{}, key, defaultValue string) string {
	if custom == nil {
		return defaultValue
	}

	if val, ok := custom[key].(string); ok && val != "" {
		return val
	}

	return defaultValue
}

// GetIntConfig extracts an int value from custom config map with a default
// fallback. Handles both int and float64 (JSON/YAML numbers may decode as
// float64).
func GetIntConfig(custom map[string]interface{}, key string, defaultValue int) int {
	if custom == nil {
		return defaultValue
	}

	if val, ok := custom[key].(int); ok {
		return val
	}

	if val, ok := custom[key].(float64); ok {
		return int(val)
	}

	return defaultValue
}

// GetUint64Config extracts a uint64 value from custom config map with a
// default fallback. Accepts uint64, int and float64; negative values fall
// back to the default.
func GetUint64Config(custom map[string]interface{}, key string, defaultValue uint64) uint64 {
	if custom == nil {
		return defaultValue
	}

	switch val := custom[key].(type) {
	case uint64:
		return val
	case int:
		if val >= 0 {
			return uint64(val)
		}
	case int64:
		if val >= 0 {
			return uint64(val)
		}
	case float64:
		if val >= 0 {
			return uint64(val)
		}
	}

	return defaultValue
}

// GetBoolConfig extracts a bool value from custom config map with a default
// fallback.
func GetBoolConfig(custom map[string]interface{}, key string, defaultValue bool) bool {
	if custom == nil {
		return defaultValue
	}

	if val, ok := custom[key].(bool); ok {
		return val
	}

	return defaultValue
}

// ValidatePositiveInt validates that an int field is positive (> 0).
func ValidatePositiveInt(fieldName string, value int) error {
	if value <= 0 {
		return fmt.Errorf("%s must be positive, got %d", fieldName, value)
	}
	return nil
}

// ValidatePositiveUint64 validates that a uint64 field is positive (> 0).
func ValidatePositiveUint64(fieldName string, value uint64) error {
	if value == 0 {
		return fmt.Errorf("%s must be positive, got 0", fieldName)
	}
	return nil
}

// ValidateIntRange validates that an int field is within [min, max].
func ValidateIntRange(fieldName string, value, min, max int) error {
	if value < min || value > max {
		return fmt.Errorf("%s must be between %d and %d, got %d", fieldName, min, max, value)
	}
	return nil
}
