package service

import "errors"

var (
	ErrMethodNotFound = errors.New("payment method not found")
	ErrMethodActive   = errors.New("payment method is active and cannot be deleted")
	ErrInvalidLabel   = errors.New("label must not be empty")
	ErrInvalidParent  = errors.New("parent id must not be empty")
	ErrInvalidUser    = errors.New("user id must not be empty")

	// ErrForbidden is returned when the acting user is neither the parent nor
	// one of its grantees.
	ErrForbidden = errors.New("user may not manage this parent's payment methods")
)
