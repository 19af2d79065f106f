package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/paymethods/internal/paymethods/domain"
	"github.com/aussiebroadwan/paymethods/internal/paymethods/store"
	"github.com/aussiebroadwan/paymethods/pkg/idx"
	"github.com/aussiebroadwan/paymethods/pkg/slogx"
)

type PaymentMethodService struct {
	Store store.Store

	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *PaymentMethodService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// List returns the parent's methods in insertion order. An unknown parent has
// no methods.
func (s *PaymentMethodService) List(ctx context.Context, parentID string) ([]domain.PaymentMethod, error) {
	if strings.TrimSpace(parentID) == "" {
		return nil, ErrInvalidParent
	}
	return s.Store.PaymentMethods().ListByParent(ctx, parentID)
}

// SetActive makes methodID the parent's only active method. Clearing the
// previous active method and setting the new one happen in one transaction.
func (s *PaymentMethodService) SetActive(
	ctx context.Context,
	userID, parentID, methodID string,
) (domain.PaymentMethod, error) {
	l := slogx.FromContext(ctx)

	if strings.TrimSpace(parentID) == "" {
		return domain.PaymentMethod{}, ErrInvalidParent
	}

	var method domain.PaymentMethod
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := authorize(ctx, tx, userID, parentID); err != nil {
			return err
		}

		if err := tx.PaymentMethods().SetActive(ctx, parentID, methodID); err != nil {
			return err
		}

		var err error
		method, err = tx.PaymentMethods().GetByID(ctx, parentID, methodID)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.PaymentMethod{}, ErrMethodNotFound
		}
		if !isClientError(err) {
			l.Error("failed to set active payment method", "parent_id", parentID, "method_id", methodID, "error", err)
		}
		return domain.PaymentMethod{}, err
	}

	l.Info("payment method activated", "parent_id", parentID, "method_id", methodID)
	return method, nil
}

// Add creates an inactive method with the trimmed label. createdAt is the
// client's timestamp and is stored as given; it may be empty.
func (s *PaymentMethodService) Add(
	ctx context.Context,
	userID, parentID, label, createdAt string,
) (domain.PaymentMethod, error) {
	l := slogx.FromContext(ctx)

	if strings.TrimSpace(parentID) == "" {
		return domain.PaymentMethod{}, ErrInvalidParent
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return domain.PaymentMethod{}, ErrInvalidLabel
	}

	if err := authorize(ctx, s.Store, userID, parentID); err != nil {
		return domain.PaymentMethod{}, err
	}

	method := domain.PaymentMethod{
		ID:         idx.New().String(),
		ParentID:   parentID,
		Label:      label,
		IsActive:   false,
		CreatedAt:  strings.TrimSpace(createdAt),
		InsertedAt: s.now(),
	}
	if err := s.Store.PaymentMethods().Create(ctx, method); err != nil {
		l.Error("failed to create payment method", "parent_id", parentID, "error", err)
		return domain.PaymentMethod{}, err
	}

	l.Info("payment method added", "parent_id", parentID, "method_id", method.ID)
	return method, nil
}

// Delete removes an inactive method. The active method is never deleted.
func (s *PaymentMethodService) Delete(ctx context.Context, userID, parentID, methodID string) error {
	l := slogx.FromContext(ctx)

	if strings.TrimSpace(parentID) == "" {
		return ErrInvalidParent
	}

	if err := authorize(ctx, s.Store, userID, parentID); err != nil {
		return err
	}

	err := s.Store.PaymentMethods().Delete(ctx, parentID, methodID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrMethodNotFound
	case errors.Is(err, store.ErrActiveMethod):
		return ErrMethodActive
	case err != nil:
		l.Error("failed to delete payment method", "parent_id", parentID, "method_id", methodID, "error", err)
		return err
	}

	l.Info("payment method deleted", "parent_id", parentID, "method_id", methodID)
	return nil
}

func isClientError(err error) bool {
	return errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrInvalidUser) ||
		errors.Is(err, ErrMethodNotFound)
}
