package services

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTOTPRequired       = errors.New("2FA code required")
	ErrInvalidTOTP        = errors.New("invalid 2FA code")
	ErrTOTPUnavailable    = errors.New("2FA is not configured on this server")
	ErrTOTPNotPending     = errors.New("2FA setup has not been started")
	ErrTOTPAlreadyEnabled = errors.New("2FA is already enabled")
)
