// Package meta implements the engine orchestrator that selects the execution
// strategy for a compiled LIKE pattern.
//
// The orchestrator coordinates the execution paths:
//   - Literal fast paths: equality / prefix / suffix / substring checks for
//     the common pattern shapes (no engine machinery at all)
//   - Segment walk: the general byte-level evaluator
//   - Prefilter: required-literal candidate rejection before the walk
//   - Reference regex backends: a linear-time engine (the semantic
//     reference) and a backtracking engine kept for differential testing
//
// Strategy selection is automatic based on the compiled segment structure.
package meta

// Config controls engine behavior.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnablePrefilter = false // force the plain segment walk
//	engine, err := meta.CompileWithConfig(pattern, config)
type Config struct {
	// EnablePrefilter enables required-literal prefiltering for patterns
	// that take the general segment walk.
	// Default: true
	EnablePrefilter bool

	// MinLiteralLen is the minimum length for prefilter literals.
	// Shorter literals reject too little to pay for the extra scan.
	// Default: 2
	MinLiteralLen int

	// EnableBacktrackVerify additionally compiles the pattern for the
	// backtracking regex backend and counts disagreements with the fast
	// engine in Stats. Differential testing only: the backtracking engine
	// has no linear-time guarantee on adversarial inputs and must not be
	// the production matcher.
	// Default: false
	EnableBacktrackVerify bool
}

// DefaultConfig returns a configuration with sensible defaults:
// prefiltering on with a 2-byte literal floor, backtracking verification off.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:       true,
		MinLiteralLen:         2,
		EnableBacktrackVerify: false,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
//
// Valid ranges:
//   - MinLiteralLen: 1 to 64 (when EnablePrefilter is set)
func (c Config) Validate() error {
	if c.EnablePrefilter {
		if c.MinLiteralLen < 1 || c.MinLiteralLen > 64 {
			return &ConfigError{
				Field:   "MinLiteralLen",
				Message: "must be between 1 and 64",
			}
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
	return "like: invalid config: " + e.Field + ": " + e.Message
}
