package sqlite

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/paymethods/internal/paymethods/domain"
	"github.com/aussiebroadwan/paymethods/internal/paymethods/store"
)

type paymentMethodsRepo struct {
	q *queries
}

func (r *paymentMethodsRepo) ListByParent(ctx context.Context, parentID string) ([]domain.PaymentMethod, error) {
	rows, err := r.q.ListPaymentMethodsByParent(ctx, parentID)
	if err != nil {
		return nil, err
	}

	methods := make([]domain.PaymentMethod, len(rows))
	for i, row := range rows {
		if methods[i], err = mapPaymentMethod(row); err != nil {
			return nil, err
		}
	}
	return methods, nil
}

func (r *paymentMethodsRepo) GetByID(ctx context.Context, parentID, id string) (domain.PaymentMethod, error) {
	row, err := r.q.GetPaymentMethod(ctx, parentID, id)
	if err != nil {
		return domain.PaymentMethod{}, mapNotFound(err)
	}
	return mapPaymentMethod(row)
}

func (r *paymentMethodsRepo) Create(ctx context.Context, m domain.PaymentMethod) error {
	n, err := r.q.CreatePaymentMethod(ctx, paymentMethodRow{
		ID:         m.ID,
		ParentID:   m.ParentID,
		Label:      m.Label,
		CreatedAt:  mapStringNull(m.CreatedAt),
		InsertedAt: formatTime(m.InsertedAt),
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrAlreadyExists
	}
	return nil
}

func (r *paymentMethodsRepo) SetActive(ctx context.Context, parentID, id string) error {
	// Existence is checked first so a missing id leaves the current active
	// method untouched even outside a transaction.
	if _, err := r.q.GetPaymentMethod(ctx, parentID, id); err != nil {
		return mapNotFound(err)
	}

	// Clear before set: the partial unique index is checked per row.
	if err := r.q.ClearActivePaymentMethod(ctx, parentID); err != nil {
		return err
	}

	n, err := r.q.SetActivePaymentMethod(ctx, parentID, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *paymentMethodsRepo) Delete(ctx context.Context, parentID, id string) error {
	n, err := r.q.DeleteInactivePaymentMethod(ctx, parentID, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	// Nothing deleted: either missing or active.
	if _, err := r.q.GetPaymentMethod(ctx, parentID, id); err != nil {
		if err = mapNotFound(err); errors.Is(err, store.ErrNotFound) {
			return store.ErrNotFound
		}
		return err
	}
	return store.ErrActiveMethod
}

func (r *paymentMethodsRepo) CountExclusivityViolations(ctx context.Context) (int, error) {
	n, err := r.q.CountExclusivityViolations(ctx)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
