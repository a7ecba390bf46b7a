package simdint

import (
	"fmt"

	"github.com/coregx/simdint/simd"
)

// Level is an instruction-set tier used for parsing.
type Level = simd.Level

// Instruction-set tiers, lowest first.
const (
	LevelScalar = simd.LevelScalar
	LevelSSE41  = simd.LevelSSE41
	LevelSSE42  = simd.LevelSSE42
	LevelAVX2   = simd.LevelAVX2
)

// Config controls how a Parser selects its kernels.
//
// Example:
//
//	config := simdint.DefaultConfig()
//	config.MaxLevel = simdint.LevelScalar // disable vector kernels
//	p, err := simdint.NewParser(config)
type Config struct {
	// MaxLevel caps the instruction-set tier. A cap above what the running
	// CPU supports is lowered to the hardware level, so any valid level is
	// safe to request.
	// Default: the level detected at startup (scalar if SIMDINT_NO_SIMD is set)
	MaxLevel Level
}

// DefaultConfig returns a configuration using the detected level.
func DefaultConfig() Config {
	return Config{
		MaxLevel: simd.CurrentLevel(),
	}
}

// Validate checks if the configuration is valid.
// Returns an error describing the first invalid parameter.
func (c Config) Validate() error {
	if !c.MaxLevel.Valid() {
		return &ConfigError{
			Field:   "MaxLevel",
			Message: fmt.Sprintf("unknown level %d", int(c.MaxLevel)),
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "simdint: invalid config: " + e.Field + ": " + e.Message
}

// CurrentLevel returns the level used by the package-level functions.
func CurrentLevel() Level {
	return std.level
}
