package db

import (
	"context"

	"github.com/Flarenzy/netregistry/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// writeLockKey names the advisory lock held by every write transaction.
const writeLockKey int64 = 0x6e6574726567

// Store is the PostgreSQL implementation of domain.Store.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Repositories() domain.Repositories {
	return repositories(New(s.pool))
}

// WithinTx runs fn in a transaction holding the write lock, so overlap
// and MAC checks see no concurrent writer between check and insert.
func (s *Store) WithinTx(ctx context.Context, fn func(context.Context, domain.Repositories) error) error {
	return pgx.BeginTxFunc(ctx, s.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		queries := New(s.pool).WithTx(tx)
		if err := queries.AcquireWriteLock(ctx, writeLockKey); err != nil {
			return err
		}
		return fn(ctx, repositories(queries))
	})
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func repositories(queries *Queries) domain.Repositories {
	return domain.Repositories{
		Networks:     NewNetworkRepository(queries),
		Addresses:    NewAddressRepository(queries),
		PtrOverrides: NewPtrOverrideRepository(queries),
	}
}
