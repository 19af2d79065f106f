package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/paymethods/pkg/slogx"
)

// ActingUserHeader names the user on whose behalf a mutation is issued. The
// service does not authenticate it; authorisation decisions are made against
// the parent's grants.
const ActingUserHeader = "X-User-ID"

// RequireActingUser rejects requests without an acting user and places the
// user id on the request context.
func RequireActingUser() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := strings.TrimSpace(r.Header.Get(ActingUserHeader))
			if userID == "" {
				WriteJSON(w, http.StatusBadRequest, map[string]string{
					"error":             "invalid_request",
					"error_description": ActingUserHeader + " header is required",
				})
				return
			}

			ctx := WithActingUser(r.Context(), userID)
			ctx = slogx.With(ctx, "user_id", userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
