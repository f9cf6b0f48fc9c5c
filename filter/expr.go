package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache[*exprFilter](size)
		}
	}
}

// WithFunction adds a helper callable from expressions. types are optional
// signatures, e.g. new(func(string) bool), used to check calls at compile
// time.
func WithFunction(name string, fn func(params ...any) (any, error), types ...any) ExprCompilerOption {
	return func(c *exprCompiler) {
		c.options = append(c.options, expr.Function(name, fn, types...))
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		options: []expr.Option{
			expr.Env(Record{}),
			expr.AllowUndefinedVariables(),
			expr.AsBool(),
		},
	}
	c.options = append(c.options, helperFunctions()...)

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	options []expr.Option
	cache   *lruCache[*exprFilter]
}

// Compile compiles an expression into an executable filter. Record fields
// are top-level variables; fields whose names are not identifiers are
// reachable as $env["field-name"].
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     ErrEmptyExpression.Error(),
			Err:        ErrEmptyExpression,
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression, c.options...)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     err.Error(),
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Len()
	}
	return 0
}

func (f *exprFilter) Expression() string {
	return f.expression
}

func (f *exprFilter) Eval(record Record) (bool, error) {
	if record == nil {
		record = Record{}
	}

	out, err := expr.Run(f.program, record)
	if err != nil {
		return false, err
	}

	matched, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("expression returned %T, not bool", out)
	}
	return matched, nil
}

func (f *exprFilter) Match(record Record) bool {
	matched, err := f.Eval(record)
	return err == nil && matched
}

// Compile compiles an expression with a fresh, uncached compiler
func Compile(expression string) (CompiledFilter, error) {
	return NewExprCompiler().Compile(expression)
}
