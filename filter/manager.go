package filter

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Manager holds named filter presets, usually the filters section of the
// config file.
type Manager struct {
	compiler  Compiler
	evaluator Evaluator
	filters   map[string]CompiledFilter
	mu        sync.RWMutex
}

// ManagerOption configures a filter manager
type ManagerOption func(*Manager)

// WithCompiler sets a custom compiler
func WithCompiler(compiler Compiler) ManagerOption {
	return func(m *Manager) {
		m.compiler = compiler
	}
}

// WithEvaluator sets a custom evaluator
func WithEvaluator(evaluator Evaluator) ManagerOption {
	return func(m *Manager) {
		m.evaluator = evaluator
	}
}

// NewManager creates a new filter manager
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		compiler:  NewExprCompiler(WithCache(100)),
		evaluator: NewConcurrentEvaluator(),
		filters:   make(map[string]CompiledFilter),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// RegisterFilter registers a new filter or updates an existing one
func (m *Manager) RegisterFilter(name, expression string) error {
	filter, err := m.compiler.Compile(expression)
	if err != nil {
		return fmt.Errorf("filter preset '%s': %w", name, err)
	}

	m.mu.Lock()
	m.filters[name] = filter
	m.mu.Unlock()

	return nil
}

// RegisterFilters registers all presets or none of them
func (m *Manager) RegisterFilters(filters map[string]string) error {
	compiled := make(map[string]CompiledFilter, len(filters))

	for _, name := range slices.Sorted(maps.Keys(filters)) {
		filter, err := m.compiler.Compile(filters[name])
		if err != nil {
			return fmt.Errorf("filter preset '%s': %w", name, err)
		}
		compiled[name] = filter
	}

	m.mu.Lock()
	maps.Copy(m.filters, compiled)
	m.mu.Unlock()

	return nil
}

// UnregisterFilter removes a filter
func (m *Manager) UnregisterFilter(name string) {
	m.mu.Lock()
	delete(m.filters, name)
	m.mu.Unlock()
}

// GetFilter returns a compiled filter by name
func (m *Manager) GetFilter(name string) (CompiledFilter, bool) {
	m.mu.RLock()
	filter, exists := m.filters[name]
	m.mu.RUnlock()
	return filter, exists
}

// ListFilters returns all registered filter names, sorted
func (m *Manager) ListFilters() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Sorted(maps.Keys(m.filters))
}

// Resolve builds the filter for an ad-hoc expression plus any number of
// presets; a record must satisfy all of them. It returns nil when there is
// nothing to filter on.
func (m *Manager) Resolve(expression string, presets ...string) (Filter, error) {
	var parts []Filter

	for _, name := range presets {
		filter, ok := m.GetFilter(name)
		if !ok {
			return nil, &UnknownPresetError{Name: name}
		}
		parts = append(parts, filter)
	}

	if expression != "" {
		filter, err := m.compiler.Compile(expression)
		if err != nil {
			return nil, err
		}
		parts = append(parts, filter)
	}

	switch len(parts) {
	case 0:
		return nil, nil
	case 1:
		return parts[0], nil
	}
	return allOf(parts), nil
}

// Apply filters records; a nil filter keeps everything.
func (m *Manager) Apply(ctx context.Context, filter Filter, records []Record) ([]Record, error) {
	if filter == nil {
		return records, nil
	}
	return m.evaluator.Evaluate(ctx, filter, records)
}

// EvaluateFilter evaluates a single registered filter
func (m *Manager) EvaluateFilter(ctx context.Context, name string, records []Record) ([]Record, error) {
	filter, exists := m.GetFilter(name)
	if !exists {
		return nil, &UnknownPresetError{Name: name}
	}

	return m.evaluator.Evaluate(ctx, filter, records)
}

// EvaluateAll evaluates all registered filters
func (m *Manager) EvaluateAll(ctx context.Context, records []Record) (map[string][]Record, error) {
	m.mu.RLock()
	filters := maps.Clone(m.filters)
	m.mu.RUnlock()

	return m.evaluator.EvaluateBatch(ctx, filters, records)
}

// EvaluateSelected evaluates only the specified filters
func (m *Manager) EvaluateSelected(ctx context.Context, names []string, records []Record) (map[string][]Record, error) {
	filters := make(map[string]CompiledFilter, len(names))
	for _, name := range names {
		filter, ok := m.GetFilter(name)
		if !ok {
			return nil, &UnknownPresetError{Name: name}
		}
		filters[name] = filter
	}

	return m.evaluator.EvaluateBatch(ctx, filters, records)
}

type allOf []Filter

func (a allOf) Match(record Record) bool {
	for _, f := range a {
		if !f.Match(record) {
			return false
		}
	}
	return true
}
