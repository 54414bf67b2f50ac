package badger

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/elscan/core"
	"github.com/poiesic/elscan/storage"
)

// ReportRepository implements storage.ReportRepository for BadgerDB.
type ReportRepository struct {
	backend *Backend
}

var _ storage.ReportRepository = (*ReportRepository)(nil)

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(backend *Backend) (storage.ReportRepository, error) {
	return &ReportRepository{
		backend: backend,
	}, nil
}

// Close releases resources. ReportRepository has no resources to release.
func (r *ReportRepository) Close() error {
	return nil
}

// AddReport stores a report and its time index entry.
func (r *ReportRepository) AddReport(ctx context.Context, report *core.Report) (*core.Report, error) {
	if report.RunId == "" {
		return nil, storage.ErrInvalidQuery
	}
	err := r.backend.Update(ctx, func(tx *badger.Txn) error {
		key := makeReportKey(report.RunId)
		if _, err := tx.Get(key); err == nil {
			return storage.ErrDuplicateKey
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		if report.CreatedAt.IsZero() {
			report.CreatedAt = time.Now().UTC()
		}
		report.CreatedAt = report.CreatedAt.Truncate(time.Microsecond)

		if err := tx.Set(key, storage.MarshalReport(report)); err != nil {
			return err
		}
		return tx.Set(makeReportDateKey(report.CreatedAt, report.RunId), []byte(report.RunId))
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// GetReport retrieves a report by run ID.
func (r *ReportRepository) GetReport(ctx context.Context, runID string) (*core.Report, error) {
	var result *core.Report
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readReport(tx, runID)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetRecentReports retrieves the most recent reports, newest first.
func (r *ReportRepository) GetRecentReports(ctx context.Context, limit int) ([]*core.Report, error) {
	if limit <= 0 {
		return nil, nil
	}
	var results []*core.Report
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Use reverse iterator to get most recent reports first
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek to the last possible key of the time index
		startKey := makePartialReportDateKey(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC))
		startKey = append(startKey, 0xff)
		prefix := []byte(reportDatePrefix + ":")

		for iter.Seek(startKey); iter.Valid() && len(results) < limit; iter.Next() {
			item := iter.Item()
			if !bytes.HasPrefix(item.Key(), prefix) {
				break
			}

			var runID string
			if err := item.Value(func(val []byte) error {
				runID = string(val)
				return nil
			}); err != nil {
				return err
			}

			report, err := readReport(tx, runID)
			if err != nil {
				return err
			}
			if report != nil {
				results = append(results, report)
			}
		}
		return nil
	}, false)
	return results, err
}

// DeleteReport removes a report by run ID.
func (r *ReportRepository) DeleteReport(ctx context.Context, runID string) error {
	return r.backend.Update(ctx, func(tx *badger.Txn) error {
		report, err := readReport(tx, runID)
		if err != nil {
			return err
		}
		if report == nil {
			return storage.ErrNotFound
		}
		if err := tx.Delete(makeReportDateKey(report.CreatedAt, runID)); err != nil {
			return err
		}
		return tx.Delete(makeReportKey(runID))
	})
}

// readReport returns nil, nil when the report doesn't exist.
func readReport(tx *badger.Txn, runID string) (*core.Report, error) {
	item, err := tx.Get(makeReportKey(runID))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var report *core.Report
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		report, unmarshalErr = storage.UnmarshalReport(val)
		return unmarshalErr
	})
	return report, err
}
