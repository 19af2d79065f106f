package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/paymethods/internal/paymethods/store"
)

type txStore struct {
	tx *sql.Tx
	q  *queries
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{
		tx: tx,
		q:  newQueries(tx),
	}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // caller will commit/rollback and outer DB stays open

// Ping is a no-op for transactions; the connection is already held.
func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	// Nested tx not supported
	return sql.ErrTxDone
}

func (t *txStore) PaymentMethods() store.PaymentMethods { return &paymentMethodsRepo{q: t.q} }
func (t *txStore) Grants() store.Grants                 { return &grantsRepo{q: t.q} }

func (t *txStore) ApplyMigrations() error { return nil } // migrations are applied before starting a tx
