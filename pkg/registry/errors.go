package registry

import (
	"errors"

	"github.com/aussiebroadwan/paymethods/pkg/paysdk"
)

// Errors returned by the remote store, re-exported for callers that only
// import this package.
var (
	ErrRemoteUnavailable = paysdk.ErrRemoteUnavailable
	ErrNotFound          = paysdk.ErrNotFound
	ErrForbidden         = paysdk.ErrForbidden
	ErrInvalidInput      = paysdk.ErrInvalidInput
	ErrMethodActive      = paysdk.ErrMethodActive
)

var (
	// ErrMutationInFlight is returned when a mutation for the same parent has
	// not resolved yet.
	ErrMutationInFlight = errors.New("a change to this parent's payment methods is already in progress")

	// ErrInconsistentSnapshot is returned when a list response has more than
	// one active method.
	ErrInconsistentSnapshot = errors.New("list response has more than one active payment method")
)
