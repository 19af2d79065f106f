package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/paymethods/internal/paymethods/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrActiveMethod is returned when deleting a parent's active method.
	ErrActiveMethod = errors.New("store: payment method is active")
)

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. It exposes sub-repositories so transactions stay explicit:
// a Tx-scoped Store cannot start another transaction.
type Store interface {
	PaymentMethods() PaymentMethods
	Grants() Grants

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type PaymentMethods interface {
	// ListByParent returns the parent's methods in insertion (id) order.
	ListByParent(ctx context.Context, parentID string) ([]domain.PaymentMethod, error)

	// GetByID returns a method scoped to its parent.
	GetByID(ctx context.Context, parentID, id string) (domain.PaymentMethod, error)

	// Create inserts a new method (id is ULID). IsActive is ignored; methods
	// are always created inactive.
	Create(ctx context.Context, m domain.PaymentMethod) error

	// SetActive clears the parent's active flag and sets it on id in one
	// transaction. Returns ErrNotFound if id does not belong to the parent.
	SetActive(ctx context.Context, parentID, id string) error

	// Delete removes an inactive method. Returns ErrActiveMethod for the
	// active method and ErrNotFound if it does not exist.
	Delete(ctx context.Context, parentID, id string) error

	// CountExclusivityViolations returns the number of parents with more than
	// one active method.
	CountExclusivityViolations(ctx context.Context) (int, error)
}

type Grants interface {
	// CreateGrant stores a grant. Returns ErrAlreadyExists if present.
	CreateGrant(ctx context.Context, g domain.ParentGrant) error

	// HasGrant reports whether userID may manage parentID's methods.
	HasGrant(ctx context.Context, parentID, userID string) (bool, error)

	// ListGrants returns the parent's grants, oldest first.
	ListGrants(ctx context.Context, parentID string) ([]domain.ParentGrant, error)
}
