package cluster

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/elscan/core"
)

// Result holds the candidate pairs of an analysis and their grouping.
type Result struct {
	Pairs    []core.ClusterPair
	Clusters []core.Cluster
}

// Analyzer runs FindPairs with the label pairs spread over a worker pool.
type Analyzer struct {
	pool   *ants.Pool
	logger *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer) error

// WithPoolSize sets the worker pool size.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(a *Analyzer) error {
		if size < 1 {
			size = 1
		}
		if a.pool != nil {
			a.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		a.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// NewAnalyzer creates a new cluster analyzer.
func NewAnalyzer(opts ...Option) (*Analyzer, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	a := &Analyzer{
		pool:   pool,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if optErr := opt(a); optErr != nil {
			a.Release()
			return nil, optErr
		}
	}
	return a, nil
}

// Release releases the worker pool.
// The analyzer should not be used after calling Release.
func (a *Analyzer) Release() {
	if a.pool != nil {
		a.pool.Release()
	}
}

// Analyze finds the candidate pairs between all term labels and groups them.
// The pairs are identical, in content and order, to FindPairs.
func (a *Analyzer) Analyze(ctx context.Context, sets map[string][]core.Match, threshold int) (*Result, error) {
	if err := core.ValidateThreshold(threshold); err != nil {
		return nil, err
	}
	if a.pool.IsClosed() {
		return nil, ErrAnalyzerReleased
	}

	labels, prepared := prepare(sets)
	type labelPair struct{ first, second string }
	var work []labelPair
	for i := 0; i < len(labels); i++ {
		for j := i + 1; j < len(labels); j++ {
			work = append(work, labelPair{labels[i], labels[j]})
		}
	}

	// One result slot per label pair keeps the output order fixed.
	results := make([][]core.ClusterPair, len(work))
	var wg sync.WaitGroup
	for i, lp := range work {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		wg.Add(1)
		err := a.pool.Submit(func() {
			defer wg.Done()
			results[i] = sweep(nil, prepared[lp.first], prepared[lp.second], threshold)
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("submit cluster join %s/%s: %w", lp.first, lp.second, err)
		}
	}
	wg.Wait()

	var pairs []core.ClusterPair
	for i, r := range results {
		if len(r) > 0 {
			a.logger.Debug("terms found together", "first", work[i].first, "second", work[i].second, "pairs", len(r))
		}
		pairs = append(pairs, r...)
	}

	return &Result{
		Pairs:    pairs,
		Clusters: Group(pairs),
	}, nil
}
