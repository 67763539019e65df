package models

import (
	"errors"
	"regexp"
	"time"
)

// Error codes returned in the "code" field of API error bodies.
const (
	CodeMissingFields      = "MISSING_FIELDS"
	CodeInvalidName        = "INVALID_NAME"
	CodeInvalidEmail       = "INVALID_EMAIL"
	CodeInvalidPassword    = "INVALID_PASSWORD"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInvalidAmount      = "INVALID_AMOUNT"
	CodeInvalidCategory    = "INVALID_CATEGORY"
	CodeInvalidDate        = "INVALID_DATE_FORMAT"
	CodeInvalidMonth       = "INVALID_MONTH_FORMAT"
	CodeInvalidLimit       = "INVALID_LIMIT"
	CodeInvalidID          = "INVALID_ID"
	CodeInvalidQuery       = "INVALID_QUERY"
	CodeNoFields           = "NO_FIELDS"
	CodeNotFound           = "NOT_FOUND"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeRateLimited        = "RATE_LIMITED"
	CodeTOTPRequired       = "TOTP_REQUIRED"
	CodeInvalidTOTP        = "INVALID_TOTP"
	CodeTOTPUnavailable    = "TOTP_UNAVAILABLE"
	CodeInvalidBody        = "INVALID_BODY"
	CodeServerError        = "SERVER_ERROR"
)

// ValidationError is a client input problem carrying its API code.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// IsValidDate accepts YYYY-MM-DD strings naming a real calendar day.
func IsValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// IsValidMonth accepts YYYY-MM strings with a month between 01 and 12.
func IsValidMonth(s string) bool {
	if !monthPattern.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01", s)
	return err == nil
}

// CurrentMonth returns the month key for t.
func CurrentMonth(t time.Time) string {
	return t.Format("2006-01")
}

// Sentinel errors shared by stores and services.
var (
	ErrNotFound    = errors.New("not found")
	ErrEmailExists = errors.New("email already registered")
)
