package auth

import "errors"

var (
	ErrOperationInFlight  = errors.New("another authentication request is in flight")
	ErrNotAwaitingOTP     = errors.New("no OTP verification is pending")
	ErrCodeExpired        = errors.New("the OTP code has expired")
	ErrIncompleteCode     = errors.New("enter the full 6-digit code")
	ErrResendNotAvailable = errors.New("resend is available only after the code expires")
	ErrMissingFields      = errors.New("all registration fields are required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)
