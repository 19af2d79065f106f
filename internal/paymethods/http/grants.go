package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/paymethods/internal/paymethods/service"
	"github.com/aussiebroadwan/paymethods/pkg/httpx"
	"github.com/aussiebroadwan/paymethods/pkg/paysdk"
)

// GrantsHandler handles the access grants of a parent.
type GrantsHandler struct {
	GrantService *service.GrantService
}

// HandleGrant handles POST /v1/parents/{parentId}/grants
//
//	@Summary		Grant Access
//	@Description	Allows another user to manage the parent's payment methods. Only the parent or an existing grantee may grant access.
//	@Tags			Grants
//	@Accept			json
//	@Param			X-User-ID	header	string						true	"Acting user id"
//	@Param			parentId	path	string						true	"Parent account id"
//	@Param			request		body	paysdk.GrantAccessRequest	true	"user_id"
//	@Success		204			"No Content"
//	@Failure		400			{object}	paysdk.ErrorResponse	"error, error_description"
//	@Failure		403			{object}	paysdk.ErrorResponse	"error, error_description"
//	@Failure		500			{object}	paysdk.ErrorResponse	"error, error_description"
//	@Router			/v1/parents/{parentId}/grants [post].
func (h *GrantsHandler) HandleGrant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req paysdk.GrantAccessRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeInvalidBody(w, err)
		return
	}

	err := h.GrantService.Grant(ctx, httpx.ActingUserFromContext(ctx), r.PathValue("parentId"), req.UserID)
	if err != nil {
		writeServiceError(w, r, err, "grant access")
		return
	}

	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

// HandleList handles GET /v1/parents/{parentId}/grants
//
//	@Summary		List Grants
//	@Description	Returns the users allowed to manage the parent's payment methods.
//	@Tags			Grants
//	@Produce		json
//	@Param			X-User-ID	header		string						true	"Acting user id"
//	@Param			parentId	path		string						true	"Parent account id"
//	@Success		200			{object}	paysdk.ListGrantsResponse	"grants"
//	@Failure		400			{object}	paysdk.ErrorResponse		"error, error_description"
//	@Failure		403			{object}	paysdk.ErrorResponse		"error, error_description"
//	@Failure		500			{object}	paysdk.ErrorResponse		"error, error_description"
//	@Router			/v1/parents/{parentId}/grants [get].
func (h *GrantsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	grants, err := h.GrantService.List(ctx, httpx.ActingUserFromContext(ctx), r.PathValue("parentId"))
	if err != nil {
		writeServiceError(w, r, err, "list grants")
		return
	}

	response := paysdk.ListGrantsResponse{
		Grants: make([]paysdk.Grant, len(grants)),
	}
	for i, g := range grants {
		response.Grants[i] = paysdk.Grant{
			UserID:    g.UserID,
			CreatedBy: g.CreatedBy,
			CreatedAt: g.CreatedAt.UTC().Format(time.RFC3339),
		}
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}
