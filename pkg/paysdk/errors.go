package paysdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/paymethods/pkg/httpx"
)

// Error codes returned in ErrorResponse.Error.
const (
	ErrorCodeInvalidRequest = "invalid_request"
	ErrorCodeNotFound       = "not_found"
	ErrorCodeForbidden      = "forbidden"
	ErrorCodeMethodActive   = "method_active"
	ErrorCodeRateLimited    = "rate_limit_exceeded"
	ErrorCodeServerError    = "server_error"
)

// Error kinds. Match them with errors.Is.
var (
	// ErrRemoteUnavailable covers transport failures, 5xx responses and rate limiting.
	ErrRemoteUnavailable = errors.New("payment methods service unavailable")

	// ErrNotFound is returned when the parent or method does not exist.
	ErrNotFound = errors.New("payment method not found")

	// ErrForbidden is returned when the acting user may not manage the parent.
	ErrForbidden = errors.New("acting user may not manage this parent")

	// ErrInvalidInput is returned for malformed requests, including empty labels.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMethodActive is returned when deleting the parent's active method.
	ErrMethodActive = errors.New("payment method is active")
)

// APIError is an error response from the service. It is used by the server to
// write responses and by the client to represent them.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine readable error code (e.g., "method_active")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// NewAPIError creates an APIError with the given status, code and description.
func NewAPIError(statusCode int, code, description string) *APIError {
	return &APIError{
		StatusCode:  statusCode,
		Code:        code,
		Description: description,
	}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("%s (HTTP %d)", e.Code, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// Is maps the response onto the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrRemoteUnavailable:
		// Below 400 the service answered with a status this client does not
		// understand.
		return e.StatusCode >= http.StatusInternalServerError ||
			e.StatusCode == http.StatusTooManyRequests ||
			e.StatusCode < http.StatusBadRequest
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrInvalidInput:
		return e.StatusCode == http.StatusBadRequest
	case ErrMethodActive:
		return e.StatusCode == http.StatusConflict && e.Code == ErrorCodeMethodActive
	}
	return false
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, ErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
	})
}

// parseErrorResponse converts a response with an unexpected status into an
// *APIError. Success codes the caller did not ask for are errors too.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
