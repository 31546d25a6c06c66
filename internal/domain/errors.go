package domain

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrConflict          = errors.New("booking was modified concurrently")
	ErrForbidden         = errors.New("actor is not allowed to act on this booking")
	ErrRateLimited       = errors.New("too many bookings, try again later")
)

var (
	ErrPaymentAuthorizationFailed = errors.New("payment authorization failed")
	ErrPaymentProviderUnavailable = errors.New("payment provider unavailable")
	// ErrPaymentDeclined is returned by provider adapters for permanent rejections.
	ErrPaymentDeclined = errors.New("payment declined by provider")
)

var (
	ErrValidation = errors.New("validation error")
)
