package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/elscan/core"
	"github.com/poiesic/elscan/storage"
)

// MatchRepository implements storage.MatchRepository for BadgerDB.
type MatchRepository struct {
	backend *Backend
}

var _ storage.MatchRepository = (*MatchRepository)(nil)

// NewMatchRepository creates a new MatchRepository.
func NewMatchRepository(backend *Backend) (storage.MatchRepository, error) {
	return &MatchRepository{
		backend: backend,
	}, nil
}

// Close releases resources. MatchRepository has no resources to release.
func (r *MatchRepository) Close() error {
	return nil
}

// PutMatchSet stores a match set, replacing any previous one for the same key.
func (r *MatchRepository) PutMatchSet(ctx context.Context, set *core.MatchSet) error {
	return r.backend.Update(ctx, func(tx *badger.Txn) error {
		key := makeMatchSetKey(set.StreamId, set.Term.ID(), set.Window)
		return tx.Set(key, storage.MarshalMatchSet(set))
	})
}

// GetMatchSet retrieves a cached match set.
func (r *MatchRepository) GetMatchSet(ctx context.Context, streamID core.ID, term core.Term, window core.SkipWindow) (*core.MatchSet, error) {
	var result *core.MatchSet
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeMatchSetKey(streamID, term.ID(), window))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalMatchSet(val)
			return unmarshalErr
		})
	}, false)
	return result, err
}

// DeleteMatchSets removes every cached match set for a stream.
func (r *MatchRepository) DeleteMatchSets(ctx context.Context, streamID core.ID) (int, error) {
	deleted := 0
	err := r.backend.Update(ctx, func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = makeMatchSetStreamPrefix(streamID)

		var keys [][]byte
		iter := tx.NewIterator(opts)
		for iter.Rewind(); iter.Valid(); iter.Next() {
			keys = append(keys, iter.Item().KeyCopy(nil))
		}
		iter.Close()

		for _, key := range keys {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		deleted = len(keys)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
