package storage

import (
	"context"

	"github.com/poiesic/elscan/core"
)

// Repository provides operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// Close releases repository resources. It does not close the backend.
	Close() error
}

// MatchRepository caches the results of single-window searches.
type MatchRepository interface {
	Repository

	// PutMatchSet stores a match set, replacing any previous set with the
	// same stream, term and window.
	PutMatchSet(ctx context.Context, set *core.MatchSet) error

	// GetMatchSet retrieves the cached matches of term over window in the
	// stream identified by streamID.
	// Returns ErrNotFound if nothing is cached.
	GetMatchSet(ctx context.Context, streamID core.ID, term core.Term, window core.SkipWindow) (*core.MatchSet, error)

	// DeleteMatchSets removes every cached set for a stream and returns how
	// many were removed.
	DeleteMatchSets(ctx context.Context, streamID core.ID) (int, error)
}

// ReportRepository stores the reports of scan runs.
type ReportRepository interface {
	Repository

	// AddReport stores a report under its RunId.
	// Sets CreatedAt if not already set.
	// Returns ErrInvalidQuery for an empty RunId and ErrDuplicateKey if the run exists.
	AddReport(ctx context.Context, report *core.Report) (*core.Report, error)

	// GetReport retrieves a report by run ID.
	// Returns ErrNotFound if the report doesn't exist.
	GetReport(ctx context.Context, runID string) (*core.Report, error)

	// GetRecentReports retrieves up to limit reports, most recent first.
	GetRecentReports(ctx context.Context, limit int) ([]*core.Report, error)

	// DeleteReport removes a report and its time index entry.
	// Returns ErrNotFound if the report doesn't exist.
	DeleteReport(ctx context.Context, runID string) error
}
