package paysdk

// ErrorResponse is the body of every error returned by the service.
type ErrorResponse struct {
	// Error is the error code (e.g., "invalid_request", "method_active")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// PaymentMethod is a payment method owned by a parent account.
type PaymentMethod struct {
	// ID is assigned by the service and never changes
	ID string `json:"id"`

	// Label is the user supplied name, never empty
	Label string `json:"label"`

	// IsActive is true for at most one method per parent
	IsActive bool `json:"is_active"`

	// CreatedAt is the client supplied creation timestamp. Empty when unknown.
	CreatedAt string `json:"created_at,omitempty"`
}

// ListPaymentMethodsResponse is returned by GET /v1/parents/{parentId}/payment-methods.
// Methods are in the service's order, oldest first.
type ListPaymentMethodsResponse struct {
	PaymentMethods []PaymentMethod `json:"payment_methods"`
}

// AddPaymentMethodRequest is the body of POST /v1/parents/{parentId}/payment-methods.
type AddPaymentMethodRequest struct {
	Label     string `json:"label"`
	CreatedAt string `json:"created_at,omitempty"`
}

// GrantAccessRequest is the body of POST /v1/parents/{parentId}/grants.
type GrantAccessRequest struct {
	// UserID is the user being allowed to manage the parent's methods
	UserID string `json:"user_id"`
}

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks is only populated by /readyz
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// Grant is a user allowed to manage a parent's payment methods.
type Grant struct {
	UserID    string `json:"user_id"`
	CreatedBy string `json:"created_by"`
	CreatedAt string `json:"created_at"`
}

// ListGrantsResponse is returned by GET /v1/parents/{parentId}/grants.
type ListGrantsResponse struct {
	Grants []Grant `json:"grants"`
}
