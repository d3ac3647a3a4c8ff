package errs

import "errors"

// Operational sentinel errors shared by the usecase and handler layers
var (
	// Storage errors
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Payment errors
	ErrUpstreamPayment  = errors.New("upstream payment error")
	ErrInvalidHoldToken = errors.New("invalid hold token")

	// Retry errors
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)
