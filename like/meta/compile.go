// Package meta implements the engine orchestrator.
//
// compile.go contains pattern compilation and engine construction.

package meta

import (
	"github.com/wyqzos/milvus/like/literal"
	"github.com/wyqzos/milvus/like/prefilter"
	"github.com/wyqzos/milvus/like/segment"
)

// Compile compiles a LIKE pattern into an executable Engine with the default
// configuration.
//
// Steps:
//  1. Parse the pattern into segment form
//  2. Select the execution strategy
//  3. Build the required-literal prefilter (general walk only)
//
// Returns a *segment.ParseError if the pattern ends with a lone escape.
func Compile(pattern []byte) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnableBacktrackVerify = true // shadow-run the backtracking backend
//	engine, err := meta.CompileWithConfig(pattern, config)
func CompileWithConfig(pattern []byte, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	m, err := segment.Compile(pattern)
	if err != nil {
		return nil, err
	}

	strategy, lit := SelectStrategy(m)
	e := &Engine{
		matcher:  m,
		strategy: strategy,
		literal:  lit,
		config:   config,
	}

	if strategy == UseSegments && config.EnablePrefilter {
		if req := literal.RequiredLiteral(m); len(req) >= config.MinLiteralLen {
			e.prefilter = prefilter.NewLiteral(req)
		}
	}

	if config.EnableBacktrackVerify {
		regex, err := TranslateRegex(pattern)
		if err != nil {
			return nil, err
		}
		bt, err := NewBacktrackMatcher(regex)
		if err != nil {
			return nil, err
		}
		e.backtrack = bt
	}

	return e, nil
}
