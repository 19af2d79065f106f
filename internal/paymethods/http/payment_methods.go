package http

import (
	"net/http"

	"github.com/aussiebroadwan/paymethods/internal/paymethods/domain"
	"github.com/aussiebroadwan/paymethods/internal/paymethods/service"
	"github.com/aussiebroadwan/paymethods/pkg/httpx"
	"github.com/aussiebroadwan/paymethods/pkg/paysdk"
)

// PaymentMethodsHandler handles the payment method endpoints of a parent.
type PaymentMethodsHandler struct {
	PaymentMethodService *service.PaymentMethodService
}

func toPaymentMethod(m domain.PaymentMethod) paysdk.PaymentMethod {
	return paysdk.PaymentMethod{
		ID:        m.ID,
		Label:     m.Label,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

// HandleList handles GET /v1/parents/{parentId}/payment-methods
//
//	@Summary		List Payment Methods
//	@Description	Returns all payment methods of a parent, oldest first. At most one is active.
//	@Tags			PaymentMethods
//	@Produce		json
//	@Param			parentId	path		string								true	"Parent account id"
//	@Success		200			{object}	paysdk.ListPaymentMethodsResponse	"payment_methods"
//	@Failure		400			{object}	paysdk.ErrorResponse				"error, error_description"
//	@Failure		500			{object}	paysdk.ErrorResponse				"error, error_description"
//	@Router			/v1/parents/{parentId}/payment-methods [get].
func (h *PaymentMethodsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	methods, err := h.PaymentMethodService.List(r.Context(), r.PathValue("parentId"))
	if err != nil {
		writeServiceError(w, r, err, "list payment methods")
		return
	}

	response := paysdk.ListPaymentMethodsResponse{
		PaymentMethods: make([]paysdk.PaymentMethod, len(methods)),
	}
	for i, m := range methods {
		response.PaymentMethods[i] = toPaymentMethod(m)
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleAdd handles POST /v1/parents/{parentId}/payment-methods
//
//	@Summary		Add Payment Method
//	@Description	Creates an inactive payment method. The label is trimmed and must not be empty.
//	@Tags			PaymentMethods
//	@Accept			json
//	@Produce		json
//	@Param			X-User-ID	header		string							true	"Acting user id"
//	@Param			parentId	path		string							true	"Parent account id"
//	@Param			request		body		paysdk.AddPaymentMethodRequest	true	"label, created_at"
//	@Success		201			{object}	paysdk.PaymentMethod			"created method"
//	@Failure		400			{object}	paysdk.ErrorResponse			"error, error_description"
//	@Failure		403			{object}	paysdk.ErrorResponse			"error, error_description"
//	@Failure		500			{object}	paysdk.ErrorResponse			"error, error_description"
//	@Router			/v1/parents/{parentId}/payment-methods [post].
func (h *PaymentMethodsHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req paysdk.AddPaymentMethodRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeInvalidBody(w, err)
		return
	}

	m, err := h.PaymentMethodService.Add(
		ctx,
		httpx.ActingUserFromContext(ctx),
		r.PathValue("parentId"),
		req.Label,
		req.CreatedAt,
	)
	if err != nil {
		writeServiceError(w, r, err, "add payment method")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toPaymentMethod(m))
}

// HandleActivate handles POST /v1/parents/{parentId}/payment-methods/{methodId}/activate
//
//	@Summary		Activate Payment Method
//	@Description	Makes the method the parent's only active method. The previously active method is deactivated in the same transaction.
//	@Tags			PaymentMethods
//	@Produce		json
//	@Param			X-User-ID	header		string					true	"Acting user id"
//	@Param			parentId	path		string					true	"Parent account id"
//	@Param			methodId	path		string					true	"Payment method id"
//	@Success		200			{object}	paysdk.PaymentMethod	"activated method"
//	@Failure		400			{object}	paysdk.ErrorResponse	"error, error_description"
//	@Failure		403			{object}	paysdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	paysdk.ErrorResponse	"error, error_description"
//	@Failure		500			{object}	paysdk.ErrorResponse	"error, error_description"
//	@Router			/v1/parents/{parentId}/payment-methods/{methodId}/activate [post].
func (h *PaymentMethodsHandler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	m, err := h.PaymentMethodService.SetActive(
		ctx,
		httpx.ActingUserFromContext(ctx),
		r.PathValue("parentId"),
		r.PathValue("methodId"),
	)
	if err != nil {
		writeServiceError(w, r, err, "activate payment method")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toPaymentMethod(m))
}

// HandleDelete handles DELETE /v1/parents/{parentId}/payment-methods/{methodId}
//
//	@Summary		Delete Payment Method
//	@Description	Deletes an inactive payment method. Deleting the active method is rejected with method_active.
//	@Tags			PaymentMethods
//	@Produce		json
//	@Param			X-User-ID	header	string	true	"Acting user id"
//	@Param			parentId	path	string	true	"Parent account id"
//	@Param			methodId	path	string	true	"Payment method id"
//	@Success		204			"No Content"
//	@Failure		400			{object}	paysdk.ErrorResponse	"error, error_description"
//	@Failure		403			{object}	paysdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	paysdk.ErrorResponse	"error, error_description"
//	@Failure		409			{object}	paysdk.ErrorResponse	"method_active"
//	@Failure		500			{object}	paysdk.ErrorResponse	"error, error_description"
//	@Router			/v1/parents/{parentId}/payment-methods/{methodId} [delete].
func (h *PaymentMethodsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.PaymentMethodService.Delete(
		ctx,
		httpx.ActingUserFromContext(ctx),
		r.PathValue("parentId"),
		r.PathValue("methodId"),
	)
	if err != nil {
		writeServiceError(w, r, err, "delete payment method")
		return
	}

	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}
