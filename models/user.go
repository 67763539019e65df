package models

import (
	"strings"
	"time"
)

// ============================================================================
// USER MODEL
// ============================================================================

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	TOTPSecret   string    `json:"-"` // Encrypted at rest, never exposed
	TOTPEnabled  bool      `json:"totpEnabled"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ============================================================================
// AUTHENTICATION REQUESTS
// ============================================================================

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the registration payload and normalizes name and email.
func (r *RegisterRequest) Validate() error {
	if r.Name == "" || r.Email == "" || r.Password == "" {
		return invalid(CodeMissingFields, "Name, email, and password are required")
	}
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return invalid(CodeInvalidName, "Name cannot be empty")
	}
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if !emailPattern.MatchString(r.Email) {
		return invalid(CodeInvalidEmail, "Invalid email format")
	}
	if len(r.Password) < 6 {
		return invalid(CodeInvalidPassword, "Password must be at least 6 characters long")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	TOTPCode string `json:"totpCode,omitempty"`
}

func (r *LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" || r.Password == "" {
		return invalid(CodeMissingFields, "Email and password are required")
	}
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	return nil
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ============================================================================
// PROFILE, PASSWORD & 2FA
// ============================================================================

type UpdateProfileRequest struct {
	Name string `json:"name"`
}

func (r *UpdateProfileRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return invalid(CodeInvalidName, "Name cannot be empty")
	}
	return nil
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (r *ChangePasswordRequest) Validate() error {
	if r.CurrentPassword == "" || r.NewPassword == "" {
		return invalid(CodeMissingFields, "Current and new password are required")
	}
	if len(r.NewPassword) < 6 {
		return invalid(CodeInvalidPassword, "Password must be at least 6 characters long")
	}
	return nil
}

type TOTPSetupResponse struct {
	Secret string `json:"secret"`
	URL    string `json:"url"`
}

type TOTPCodeRequest struct {
	Code string `json:"code"`
}

func (r *TOTPCodeRequest) Validate() error {
	r.Code = strings.TrimSpace(r.Code)
	if len(r.Code) != 6 {
		return invalid(CodeInvalidTOTP, "Code must be 6 digits")
	}
	return nil
}
