package savestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/TextMaple_Go/internal/concurrency"
	"github.com/osse101/TextMaple_Go/internal/domain"
	"github.com/osse101/TextMaple_Go/internal/logger"
)

// PostgresStore keeps saves in the game_saves table with a short-lived read cache
type PostgresStore struct {
	pool  *pgxpool.Pool
	cache *expirable.LRU[string, []byte]
	locks *concurrency.LockManager
}

// NewPostgresStore creates a store over an open pool. The schema must already be migrated.
func NewPostgresStore(pool *pgxpool.Pool, cacheSize int, cacheTTL time.Duration) *PostgresStore {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &PostgresStore{
		pool:  pool,
		cache: expirable.NewLRU[string, []byte](cacheSize, nil, cacheTTL),
		locks: concurrency.NewLockManager(),
	}
}

// Read returns the stored document for slot
func (s *PostgresStore) Read(ctx context.Context, slot string) ([]byte, error) {
	if err := ValidateSlot(slot); err != nil {
		return nil, err
	}
	if data, ok := s.cache.Get(slot); ok {
		logger.FromContext(ctx).Debug(LogMsgSaveCacheHit, "slot", slot)
		return append([]byte(nil), data...), nil
	}

	var payload []byte
	err := s.pool.QueryRow(ctx, querySelectSave, slot).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf(ErrMsgSlotNotFoundFmt, slot, domain.ErrSaveNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQuerySaveFmt, slot, err)
	}

	s.cache.Add(slot, payload)
	return append([]byte(nil), payload...), nil
}

// Write upserts the document for slot. Writes to the same slot are serialized.
func (s *PostgresStore) Write(ctx context.Context, slot string, data []byte) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}

	lock := s.locks.Lock(slot)
	defer lock.Unlock()

	s.cache.Remove(slot)
	if _, err := s.pool.Exec(ctx, queryUpsertSave, slot, data); err != nil {
		return fmt.Errorf(ErrMsgUpsertSaveFmt, slot, err)
	}
	s.cache.Add(slot, append([]byte(nil), data...))

	logger.FromContext(ctx).Debug(LogMsgSaveWritten, "slot", slot, "bytes", len(data))
	return nil
}

// Slots lists saved slots, most recently written first
func (s *PostgresStore) Slots(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, queryListSlots)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListSlotsFmt, err)
	}
	slots, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListSlotsFmt, err)
	}
	return slots, nil
}
