package domain

import "time"

type PaymentMethod struct {
	ID        string
	ParentID  string
	Label     string
	IsActive  bool
	CreatedAt string // Client supplied, stored verbatim. Empty for legacy rows.

	// InsertedAt is server time, kept for diagnostics only.
	InsertedAt time.Time
}
