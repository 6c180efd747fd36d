package domain

import "errors"

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrVendorNotFound      = errors.New("vendor not found")
	ErrContractorNotFound  = errors.New("contractor not found")
	ErrDiscrepancyNotFound = errors.New("discrepancy not found")
)

var (
	ErrPreconditionFailed = errors.New("workflow precondition failed")
	ErrInvalidOrder       = errors.New("check-in stage out of order")
	ErrResponseRequired   = errors.New("host response required for one-star review")
)

var (
	ErrValidation = errors.New("validation error")
)

// ErrStorage marks persistence-layer failures. During offline replay it aborts
// the pass; everything wrapping it is retryable.
var ErrStorage = errors.New("storage failure")
