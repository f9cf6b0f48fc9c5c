package filter

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// EvaluatorOption configures an evaluator
type EvaluatorOption func(*ConcurrentEvaluator)

// WithWorkers sets how many chunks are evaluated at once
func WithWorkers(workers int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if workers > 0 {
			e.workers = workers
		}
	}
}

// WithBatchSize sets the smallest chunk; shorter inputs are evaluated
// inline.
func WithBatchSize(size int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if size > 0 {
			e.batchSize = size
		}
	}
}

// ConcurrentEvaluator splits record sets into chunks and evaluates them in
// parallel. Matches keep their input order.
type ConcurrentEvaluator struct {
	workers   int
	batchSize int
}

var _ Evaluator = (*ConcurrentEvaluator)(nil)

// NewConcurrentEvaluator creates a new concurrent evaluator
func NewConcurrentEvaluator(opts ...EvaluatorOption) *ConcurrentEvaluator {
	e := &ConcurrentEvaluator{
		workers:   runtime.GOMAXPROCS(0),
		batchSize: 100,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Evaluate returns the records matching filter
func (e *ConcurrentEvaluator) Evaluate(ctx context.Context, filter Filter, records []Record) ([]Record, error) {
	if len(records) == 0 {
		return []Record{}, nil
	}

	if len(records) < e.batchSize {
		return matchAll(filter, records), nil
	}

	chunkSize := max(len(records)/e.workers, e.batchSize)
	chunks := make([][]Record, (len(records)+chunkSize-1)/chunkSize)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := range chunks {
		start := i * chunkSize
		end := min(start+chunkSize, len(records))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			chunks[i] = matchAll(filter, records[start:end])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	matches := make([]Record, 0, total)
	for _, c := range chunks {
		matches = append(matches, c...)
	}
	return matches, nil
}

// EvaluateBatch evaluates several filters over the same records. The
// result has an entry for every filter, possibly empty.
func (e *ConcurrentEvaluator) EvaluateBatch(ctx context.Context, filters map[string]CompiledFilter, records []Record) (map[string][]Record, error) {
	results := make(map[string][]Record, len(filters))
	if len(filters) == 0 {
		return results, nil
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for name, filter := range filters {
		g.Go(func() error {
			matches, err := e.Evaluate(ctx, filter, records)
			if err != nil {
				return err
			}
			mu.Lock()
			results[name] = matches
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func matchAll(filter Filter, records []Record) []Record {
	matches := make([]Record, 0, len(records)/4)
	for _, r := range records {
		if filter.Match(r) {
			matches = append(matches, r)
		}
	}
	return matches
}
