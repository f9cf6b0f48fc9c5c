package filter

import "context"

// Record is one decoded JSON object, e.g. a workflow run or a bounce
type Record = map[string]any

// Filter decides whether a record is kept
type Filter interface {
	// Match reports whether the record satisfies the filter. Records the
	// expression cannot be evaluated against do not match.
	Match(record Record) bool
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Expression returns the original filter expression
	Expression() string

	// Eval runs the expression and reports evaluation errors instead of
	// swallowing them.
	Eval(record Record) (bool, error)
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	Compile(expression string) (CompiledFilter, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}

// Evaluator applies filters to record sets
type Evaluator interface {
	Evaluate(ctx context.Context, filter Filter, records []Record) ([]Record, error)
	EvaluateBatch(ctx context.Context, filters map[string]CompiledFilter, records []Record) (map[string][]Record, error)
}
