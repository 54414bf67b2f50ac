package els

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/elscan/core"
)

const (
	// DefaultChunkSize is the default number of skip values handed to one worker task.
	DefaultChunkSize = 16
)

// Scanner searches many skip values in parallel on a worker pool.
type Scanner struct {
	pool       *ants.Pool
	chunkSize  int
	maxMatches int
	logger     *slog.Logger
}

// Option configures a Scanner.
type Option func(*Scanner) error

// WithPoolSize sets the worker pool size.
// Default is runtime.NumCPU(), with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(s *Scanner) error {
		if size < 1 {
			size = 1
		}

		if s.pool != nil {
			s.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		s.pool = pool
		return nil
	}
}

// WithChunkSize sets how many consecutive skip values one task scans.
func WithChunkSize(size int) Option {
	return func(s *Scanner) error {
		if size < 1 {
			size = 1
		}
		s.chunkSize = size
		return nil
	}
}

// WithMaxMatches caps the matches returned per term and scan.
// Zero means unlimited. The cap keeps the first matches in skip order.
func WithMaxMatches(limit int) Option {
	return func(s *Scanner) error {
		if limit < 0 {
			limit = 0
		}
		s.maxMatches = limit
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewScanner creates a new parallel scanner.
func NewScanner(opts ...Option) (*Scanner, error) {
	poolSize := runtime.NumCPU()
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	s := &Scanner{
		pool:      pool,
		chunkSize: DefaultChunkSize,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(s); optErr != nil {
			s.Release()
			return nil, optErr
		}
	}

	return s, nil
}

// Release releases the worker pool.
// The scanner should not be used after calling Release.
func (s *Scanner) Release() {
	if s.pool != nil {
		s.pool.Release()
	}
}

// skipChunk is an inclusive run of skip values that does not contain zero.
type skipChunk struct {
	from, to int
}

// Scan searches term over every window and returns the matches in skip order.
func (s *Scanner) Scan(ctx context.Context, ix *Index, term core.Term, windows ...core.SkipWindow) ([]core.Match, error) {
	return s.ScanWithMonitor(ctx, ix, term, windows, nil)
}

// ScanWithMonitor searches term over every window with monitoring.
// Windows are validated before any work is submitted. The result is the
// concatenation of the windows' matches in the order given, each window in
// ascending skip order, which is the same sequence Search produces.
func (s *Scanner) ScanWithMonitor(ctx context.Context, ix *Index, term core.Term, windows []core.SkipWindow, monitor ScanMonitor) ([]core.Match, error) {
	if ix == nil {
		return nil, ErrStreamRequired
	}
	if len(windows) == 0 {
		return nil, ErrNoWindows
	}
	for _, w := range windows {
		if err := core.ValidateSkipWindow(w); err != nil {
			return nil, err
		}
	}
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	var chunks []skipChunk
	if term.Len() > 0 && ix.Stream().Len() > 0 {
		chunks = s.chunk(windows, ix.Stream().Len(), term.Len())
	}
	total := 0
	for _, c := range chunks {
		total += c.to - c.from + 1
	}
	monitor.Start(term, total)

	if len(chunks) == 0 {
		monitor.Finish(term, nil)
		return nil, nil
	}

	// Each task owns one slot, so no locking is needed.
	results := make([][]core.Match, len(chunks))
	var wg sync.WaitGroup
	for i, c := range chunks {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			monitor.Finish(term, nil)
			return nil, err
		}
		wg.Add(1)
		err := s.pool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			results[i] = ix.scanRange(term, c.from, c.to)
			monitor.SkipsScanned(c.to - c.from + 1)
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			monitor.Finish(term, nil)
			return nil, fmt.Errorf("submit scan of skips %d..%d: %w", c.from, c.to, err)
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		monitor.Finish(term, nil)
		return nil, err
	}

	count := 0
	for _, r := range results {
		count += len(r)
	}
	matches := make([]core.Match, 0, count)
	for _, r := range results {
		matches = append(matches, r...)
	}
	if s.maxMatches > 0 && len(matches) > s.maxMatches {
		s.logger.Debug("truncating matches", "term", term.Name, "found", len(matches), "limit", s.maxMatches)
		matches = matches[:s.maxMatches]
	}

	s.logger.Debug("scan complete", "term", term.Name, "skips", total, "matches", len(matches))
	monitor.Finish(term, matches)
	return matches, nil
}

// ScanTerms scans each term over the windows and returns the hits in term order.
// Term labels must be unique.
func (s *Scanner) ScanTerms(ctx context.Context, ix *Index, terms []core.Term, windows []core.SkipWindow, monitor ScanMonitor) ([]core.TermHits, error) {
	seen := make(map[string]bool, len(terms))
	for _, term := range terms {
		if seen[term.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTerm, term.Name)
		}
		seen[term.Name] = true
	}

	hits := make([]core.TermHits, 0, len(terms))
	for _, term := range terms {
		matches, err := s.ScanWithMonitor(ctx, ix, term, windows, monitor)
		if err != nil {
			return nil, err
		}
		hits = append(hits, core.TermHits{Term: term, Matches: matches})
	}
	return hits, nil
}

// chunk splits the reachable part of each window into runs of at most
// chunkSize skips, preserving order.
func (s *Scanner) chunk(windows []core.SkipWindow, streamLen, termLen int) []skipChunk {
	var chunks []skipChunk
	for _, w := range windows {
		n := reachable(w, streamLen, termLen)
		if n.Min > n.Max {
			continue
		}
		// Bounds share a sign, so n.Max-from cannot overflow.
		for from := n.Min; ; from += s.chunkSize {
			if n.Max-from < s.chunkSize {
				chunks = append(chunks, skipChunk{from: from, to: n.Max})
				break
			}
			chunks = append(chunks, skipChunk{from: from, to: from + s.chunkSize - 1})
		}
	}
	return chunks
}
