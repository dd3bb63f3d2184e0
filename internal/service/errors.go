package service

import (
	"errors"
	"fmt"

	"go-perfume-crm/pkg/validator"
)

var (
	// Validation class: malformed or missing input, reported, never retried
	ErrValidation      = errors.New("validation failed")
	ErrEmptyOrder      = errors.New("sale must contain at least one item")
	ErrInvalidQuantity = errors.New("item quantity must be greater than zero")
	ErrInvalidPrice    = errors.New("unit price cannot be negative")

	// Reference class: dangling or cross-owner foreign keys. Cross-owner ids
	// surface as not found so record existence does not leak.
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrSaleNotFound     = errors.New("sale not found")
	ErrSettingNotFound  = errors.New("setting not found")

	// Business rule: the order is rejected, stock stays untouched
	ErrInsufficientStock = errors.New("insufficient stock remaining")

	// Auth
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user account is inactive")
)

// firstValidationError converts the first validator failure into an
// ErrValidation-classed error, matching what handlers report to callers.
func firstValidationError(errs []*validator.ErrorResponse) error {
	first := errs[0]
	return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, first.FailedField, first.Tag)
}
