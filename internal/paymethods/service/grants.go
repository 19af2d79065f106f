package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/paymethods/internal/paymethods/domain"
	"github.com/aussiebroadwan/paymethods/internal/paymethods/store"
	"github.com/aussiebroadwan/paymethods/pkg/slogx"
)

type GrantService struct {
	Store store.Store
}

// Grant lets granteeID manage parentID's payment methods. Only the parent or
// an existing grantee may grant access. Granting twice is not an error.
func (s *GrantService) Grant(ctx context.Context, userID, parentID, granteeID string) error {
	l := slogx.FromContext(ctx)

	if strings.TrimSpace(parentID) == "" {
		return ErrInvalidParent
	}
	granteeID = strings.TrimSpace(granteeID)
	if granteeID == "" {
		return ErrInvalidUser
	}

	if err := authorize(ctx, s.Store, userID, parentID); err != nil {
		return err
	}

	// The parent always manages its own methods.
	if granteeID == parentID {
		return nil
	}

	err := s.Store.Grants().CreateGrant(ctx, domain.ParentGrant{
		ParentID:  parentID,
		UserID:    granteeID,
		CreatedBy: userID,
		CreatedAt: time.Now(),
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return nil
	}
	if err != nil {
		l.Error("failed to create grant", "parent_id", parentID, "grantee_id", granteeID, "error", err)
		return err
	}

	l.Info("access granted", "parent_id", parentID, "grantee_id", granteeID)
	return nil
}

// List returns the parent's grants. The caller needs the same access as for
// granting.
func (s *GrantService) List(ctx context.Context, userID, parentID string) ([]domain.ParentGrant, error) {
	if strings.TrimSpace(parentID) == "" {
		return nil, ErrInvalidParent
	}
	if err := authorize(ctx, s.Store, userID, parentID); err != nil {
		return nil, err
	}
	return s.Store.Grants().ListGrants(ctx, parentID)
}
