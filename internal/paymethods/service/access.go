package service

import (
	"context"

	"github.com/aussiebroadwan/paymethods/internal/paymethods/store"
)

// authorize reports whether userID may change parentID's payment methods.
// A parent always manages its own methods; anyone else needs a grant.
func authorize(ctx context.Context, st store.Store, userID, parentID string) error {
	if userID == "" {
		return ErrInvalidUser
	}
	if userID == parentID {
		return nil
	}

	ok, err := st.Grants().HasGrant(ctx, parentID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}
