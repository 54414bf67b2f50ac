package elscan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/poiesic/elscan/cluster"
	"github.com/poiesic/elscan/core"
	"github.com/poiesic/elscan/els"
	"github.com/poiesic/elscan/plan"
	"github.com/poiesic/elscan/storage"
	"github.com/poiesic/elscan/storage/badger"
)

// Workbench runs scan plans against streams and keeps their results.
type Workbench struct {
	backend    *badger.Backend
	matchRepo  storage.MatchRepository
	reportRepo storage.ReportRepository
	analyzer   *cluster.Analyzer
	poolSize   int
	logger     *slog.Logger
}

// WorkbenchOption configures a Workbench.
type WorkbenchOption func(*workbenchOptions)

type workbenchOptions struct {
	inMemory bool
	poolSize int
	logger   *slog.Logger
}

// WithInMemory keeps the cache and reports in memory; the path is ignored.
func WithInMemory() WorkbenchOption {
	return func(o *workbenchOptions) {
		o.inMemory = true
	}
}

// WithPoolSize sets the default worker count for scans whose plan leaves it unset.
func WithPoolSize(size int) WorkbenchOption {
	return func(o *workbenchOptions) {
		o.poolSize = size
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) WorkbenchOption {
	return func(o *workbenchOptions) {
		o.logger = logger
	}
}

// NewWorkbench opens the store at filePath and prepares the analyzer.
func NewWorkbench(filePath string, opts ...WorkbenchOption) (*Workbench, error) {
	options := &workbenchOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory, options.logger)
	if err != nil {
		return nil, err
	}

	matchRepo, reportRepo, err := badger.NewRepositories(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	analyzerOpts := []cluster.Option{cluster.WithLogger(options.logger)}
	if options.poolSize > 0 {
		analyzerOpts = append(analyzerOpts, cluster.WithPoolSize(options.poolSize))
	}
	analyzer, err := cluster.NewAnalyzer(analyzerOpts...)
	if err != nil {
		reportRepo.Close()
		matchRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Workbench{
		backend:    backend,
		matchRepo:  matchRepo,
		reportRepo: reportRepo,
		analyzer:   analyzer,
		poolSize:   options.poolSize,
		logger:     options.logger,
	}, nil
}

// Close releases the analyzer pool and closes the store.
func (wb *Workbench) Close() error {
	wb.analyzer.Release()

	if err := wb.reportRepo.Close(); err != nil {
		wb.logger.Error("error closing report repository", "err", err)
		return err
	}
	if err := wb.matchRepo.Close(); err != nil {
		wb.logger.Error("error closing match repository", "err", err)
		return err
	}
	if err := wb.backend.Close(); err != nil {
		wb.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// MatchRepository returns the match cache.
func (wb *Workbench) MatchRepository() storage.MatchRepository {
	return wb.matchRepo
}

// ReportRepository returns the report store.
func (wb *Workbench) ReportRepository() storage.ReportRepository {
	return wb.reportRepo
}

// Search returns every match of term over window in skip order, serving
// repeated queries from the cache.
func (wb *Workbench) Search(ctx context.Context, stream *core.Stream, term core.Term, window core.SkipWindow) ([]core.Match, error) {
	if err := core.ValidateSkipWindow(window); err != nil {
		return nil, err
	}

	scanner, err := wb.newScanner(0)
	if err != nil {
		return nil, err
	}
	defer scanner.Release()

	hits, err := wb.scanTerm(ctx, scanner, els.NewIndex(stream), term, []core.SkipWindow{window}, nil)
	if err != nil {
		return nil, err
	}
	return hits, nil
}

// Run executes a plan over stream: every term is scanned over the plan
// windows, matches of distinct terms are paired by proximity, and the
// resulting report is stored under a new run ID. A nil monitor is allowed.
func (wb *Workbench) Run(ctx context.Context, stream *core.Stream, p *plan.Plan, monitor els.ScanMonitor) (*core.Report, error) {
	if stream == nil {
		return nil, els.ErrStreamRequired
	}
	terms, err := p.BuildTerms()
	if err != nil {
		return nil, err
	}
	windows := p.Windows()

	scanner, err := wb.newScanner(p.Workers)
	if err != nil {
		return nil, err
	}
	defer scanner.Release()

	started := time.Now()
	ix := els.NewIndex(stream)
	hits := make([]core.TermHits, 0, len(terms))
	sets := make(map[string][]core.Match, len(terms))
	for _, term := range terms {
		matches, err := wb.scanTerm(ctx, scanner, ix, term, windows, monitor)
		if err != nil {
			return nil, err
		}
		if p.MaxMatchesPerTerm > 0 && len(matches) > p.MaxMatchesPerTerm {
			wb.logger.Warn("truncating term hits", "term", term.Name, "found", len(matches), "limit", p.MaxMatchesPerTerm)
			matches = matches[:p.MaxMatchesPerTerm]
		}
		hits = append(hits, core.TermHits{Term: term, Matches: matches})
		sets[term.Name] = matches
	}

	result, err := wb.analyzer.Analyze(ctx, sets, p.Threshold)
	if err != nil {
		return nil, err
	}

	report := &core.Report{
		RunId:     uuid.NewString(),
		StreamId:  stream.ID(),
		StreamLen: stream.Len(),
		Windows:   windows,
		Threshold: p.Threshold,
		Hits:      hits,
		Pairs:     result.Pairs,
		Clusters:  result.Clusters,
	}
	if _, err := wb.reportRepo.AddReport(ctx, report); err != nil {
		return nil, fmt.Errorf("store report: %w", err)
	}

	wb.logger.Info("run complete",
		"run", report.RunId,
		"terms", len(terms),
		"pairs", len(report.Pairs),
		"clusters", len(report.Clusters),
		"elapsed", time.Since(started))
	return report, nil
}

// Report retrieves a stored run report.
func (wb *Workbench) Report(ctx context.Context, runID string) (*core.Report, error) {
	return wb.reportRepo.GetReport(ctx, runID)
}

// Reports lists the most recent run reports, newest first.
func (wb *Workbench) Reports(ctx context.Context, limit int) ([]*core.Report, error) {
	return wb.reportRepo.GetRecentReports(ctx, limit)
}

// DeleteReport removes a stored run report.
func (wb *Workbench) DeleteReport(ctx context.Context, runID string) error {
	return wb.reportRepo.DeleteReport(ctx, runID)
}

// Forget drops every cached match set for a stream.
func (wb *Workbench) Forget(ctx context.Context, streamID core.ID) (int, error) {
	return wb.matchRepo.DeleteMatchSets(ctx, streamID)
}

func (wb *Workbench) newScanner(workers int) (*els.Scanner, error) {
	opts := []els.Option{els.WithLogger(wb.logger)}
	if workers <= 0 {
		workers = wb.poolSize
	}
	if workers > 0 {
		opts = append(opts, els.WithPoolSize(workers))
	}
	return els.NewScanner(opts...)
}

// scanTerm returns the matches of term over windows in window order. Cached
// windows are read from the store; the rest are scanned and cached.
func (wb *Workbench) scanTerm(ctx context.Context, scanner *els.Scanner, ix *els.Index, term core.Term, windows []core.SkipWindow, monitor els.ScanMonitor) ([]core.Match, error) {
	streamID := ix.Stream().ID()
	perWindow := make([][]core.Match, len(windows))
	var missing []int
	for i, w := range windows {
		set, err := wb.matchRepo.GetMatchSet(ctx, streamID, term, w)
		switch {
		case err == nil:
			perWindow[i] = set.Matches
		case errors.Is(err, storage.ErrNotFound):
			missing = append(missing, i)
		default:
			return nil, err
		}
	}

	for _, i := range missing {
		scanned, err := scanner.ScanWithMonitor(ctx, ix, term, windows[i:i+1], monitor)
		if err != nil {
			return nil, err
		}
		perWindow[i] = scanned
		set := &core.MatchSet{StreamId: streamID, Term: term, Window: windows[i], Matches: scanned}
		if err := wb.matchRepo.PutMatchSet(ctx, set); err != nil {
			return nil, fmt.Errorf("cache matches of %q: %w", term.Name, err)
		}
	}
	wb.logger.Debug("scanned term", "term", term.Name, "scanned", len(missing), "cached", len(windows)-len(missing))

	var matches []core.Match
	for _, m := range perWindow {
		matches = append(matches, m...)
	}
	return matches, nil
}
