package sqlite

import (
	"context"
	"database/sql"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx so repositories run
// unchanged inside and outside transactions.
type dbtx interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

type queries struct {
	db dbtx
}

func newQueries(db dbtx) *queries {
	return &queries{db: db}
}

// timeLayout is used for every server-side timestamp column. Fixed width so
// that text ordering matches time ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type paymentMethodRow struct {
	ID         string
	ParentID   string
	Label      string
	IsActive   bool
	CreatedAt  sql.NullString
	InsertedAt string
}

const paymentMethodColumns = `id, parent_id, label, is_active, created_at, inserted_at`

func scanPaymentMethod(s interface{ Scan(...any) error }) (paymentMethodRow, error) {
	var row paymentMethodRow
	err := s.Scan(&row.ID, &row.ParentID, &row.Label, &row.IsActive, &row.CreatedAt, &row.InsertedAt)
	return row, err
}

const listPaymentMethodsByParent = `SELECT ` + paymentMethodColumns + `
FROM payment_methods
WHERE parent_id = ?
ORDER BY id ASC`

func (q *queries) ListPaymentMethodsByParent(ctx context.Context, parentID string) ([]paymentMethodRow, error) {
	rows, err := q.db.QueryContext(ctx, listPaymentMethodsByParent, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []paymentMethodRow
	for rows.Next() {
		row, err := scanPaymentMethod(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, row)
	}
	return items, rows.Err()
}

const getPaymentMethod = `SELECT ` + paymentMethodColumns + `
FROM payment_methods
WHERE parent_id = ? AND id = ?`

func (q *queries) GetPaymentMethod(ctx context.Context, parentID, id string) (paymentMethodRow, error) {
	return scanPaymentMethod(q.db.QueryRowContext(ctx, getPaymentMethod, parentID, id))
}

const createPaymentMethod = `INSERT INTO payment_methods (id, parent_id, label, is_active, created_at, inserted_at)
VALUES (?, ?, ?, 0, ?, ?)
ON CONFLICT (id) DO NOTHING`

func (q *queries) CreatePaymentMethod(ctx context.Context, row paymentMethodRow) (int64, error) {
	res, err := q.db.ExecContext(ctx, createPaymentMethod,
		row.ID, row.ParentID, row.Label, row.CreatedAt, row.InsertedAt)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const clearActivePaymentMethod = `UPDATE payment_methods
SET is_active = 0
WHERE parent_id = ? AND is_active = 1`

func (q *queries) ClearActivePaymentMethod(ctx context.Context, parentID string) error {
	_, err := q.db.ExecContext(ctx, clearActivePaymentMethod, parentID)
	return err
}

const setActivePaymentMethod = `UPDATE payment_methods
SET is_active = 1
WHERE parent_id = ? AND id = ?`

func (q *queries) SetActivePaymentMethod(ctx context.Context, parentID, id string) (int64, error) {
	res, err := q.db.ExecContext(ctx, setActivePaymentMethod, parentID, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteInactivePaymentMethod = `DELETE FROM payment_methods
WHERE parent_id = ? AND id = ? AND is_active = 0`

func (q *queries) DeleteInactivePaymentMethod(ctx context.Context, parentID, id string) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteInactivePaymentMethod, parentID, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const countExclusivityViolations = `SELECT COUNT(*) FROM (
    SELECT parent_id
    FROM payment_methods
    WHERE is_active = 1
    GROUP BY parent_id
    HAVING COUNT(*) > 1
)`

func (q *queries) CountExclusivityViolations(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countExclusivityViolations).Scan(&n)
	return n, err
}

type grantRow struct {
	ParentID  string
	UserID    string
	CreatedBy string
	CreatedAt string
}

const createGrant = `INSERT INTO parent_grants (parent_id, user_id, created_by, created_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (parent_id, user_id) DO NOTHING`

func (q *queries) CreateGrant(ctx context.Context, row grantRow) (int64, error) {
	res, err := q.db.ExecContext(ctx, createGrant, row.ParentID, row.UserID, row.CreatedBy, row.CreatedAt)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const hasGrant = `SELECT EXISTS (
    SELECT 1 FROM parent_grants WHERE parent_id = ? AND user_id = ?
)`

func (q *queries) HasGrant(ctx context.Context, parentID, userID string) (bool, error) {
	var exists bool
	err := q.db.QueryRowContext(ctx, hasGrant, parentID, userID).Scan(&exists)
	return exists, err
}

const listGrants = `SELECT parent_id, user_id, created_by, created_at
FROM parent_grants
WHERE parent_id = ?
ORDER BY created_at ASC, user_id ASC`

func (q *queries) ListGrants(ctx context.Context, parentID string) ([]grantRow, error) {
	rows, err := q.db.QueryContext(ctx, listGrants, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []grantRow
	for rows.Next() {
		var row grantRow
		if err := rows.Scan(&row.ParentID, &row.UserID, &row.CreatedBy, &row.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, row)
	}
	return items, rows.Err()
}
