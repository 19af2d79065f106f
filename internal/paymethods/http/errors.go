package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/paymethods/internal/paymethods/service"
	"github.com/aussiebroadwan/paymethods/pkg/paysdk"
	"github.com/aussiebroadwan/paymethods/pkg/slogx"
)

// writeServiceError maps service errors onto API errors. Unknown errors are
// logged and reported as server_error without detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	var apiErr *paysdk.APIError

	switch {
	case errors.Is(err, service.ErrMethodNotFound):
		apiErr = paysdk.NewAPIError(http.StatusNotFound, paysdk.ErrorCodeNotFound, "Payment method not found")
	case errors.Is(err, service.ErrForbidden):
		apiErr = paysdk.NewAPIError(http.StatusForbidden, paysdk.ErrorCodeForbidden, "User may not manage this parent's payment methods")
	case errors.Is(err, service.ErrMethodActive):
		apiErr = paysdk.NewAPIError(http.StatusConflict, paysdk.ErrorCodeMethodActive, "The active payment method cannot be deleted")
	case errors.Is(err, service.ErrInvalidLabel),
		errors.Is(err, service.ErrInvalidParent),
		errors.Is(err, service.ErrInvalidUser):
		apiErr = paysdk.NewAPIError(http.StatusBadRequest, paysdk.ErrorCodeInvalidRequest, err.Error())
	default:
		slogx.FromContext(r.Context()).Error("failed to "+action, "error", err)
		apiErr = paysdk.NewAPIError(http.StatusInternalServerError, paysdk.ErrorCodeServerError, "Failed to "+action)
	}

	apiErr.WriteError(w)
}

func writeInvalidBody(w http.ResponseWriter, err error) {
	paysdk.NewAPIError(http.StatusBadRequest, paysdk.ErrorCodeInvalidRequest, "Invalid JSON in request body: "+err.Error()).WriteError(w)
}
