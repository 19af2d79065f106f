package registry

import (
	"context"

	"github.com/aussiebroadwan/paymethods/pkg/paysdk"
)

// PaymentMethod is the record the registry keeps per parent.
type PaymentMethod = paysdk.PaymentMethod

// RemoteStore is the authoritative store. *paysdk.SDKClient implements it.
type RemoteStore interface {
	ListPaymentMethods(ctx context.Context, parentID string) ([]PaymentMethod, error)
	SetActivePaymentMethod(ctx context.Context, userID, parentID, methodID string) (*PaymentMethod, error)
	AddPaymentMethod(ctx context.Context, userID, parentID, label, createdAt string) (*PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, userID, parentID, methodID string) error
}

var _ RemoteStore = (*paysdk.SDKClient)(nil)
