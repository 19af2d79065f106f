package sqlite

import (
	"context"

	"github.com/aussiebroadwan/paymethods/internal/paymethods/domain"
	"github.com/aussiebroadwan/paymethods/internal/paymethods/store"
)

type grantsRepo struct {
	q *queries
}

func (r *grantsRepo) CreateGrant(ctx context.Context, g domain.ParentGrant) error {
	n, err := r.q.CreateGrant(ctx, grantRow{
		ParentID:  g.ParentID,
		UserID:    g.UserID,
		CreatedBy: g.CreatedBy,
		CreatedAt: formatTime(g.CreatedAt),
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrAlreadyExists
	}
	return nil
}

func (r *grantsRepo) HasGrant(ctx context.Context, parentID, userID string) (bool, error) {
	return r.q.HasGrant(ctx, parentID, userID)
}

func (r *grantsRepo) ListGrants(ctx context.Context, parentID string) ([]domain.ParentGrant, error) {
	rows, err := r.q.ListGrants(ctx, parentID)
	if err != nil {
		return nil, err
	}

	grants := make([]domain.ParentGrant, len(rows))
	for i, row := range rows {
		if grants[i], err = mapGrant(row); err != nil {
			return nil, err
		}
	}
	return grants, nil
}
