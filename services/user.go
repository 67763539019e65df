package services

import (
	"context"
	"fmt"

	"github.com/LovationAdmin/expense-api/models"
	"github.com/LovationAdmin/expense-api/utils"
)

// UserService covers profile, password, 2FA and account deletion for the
// authenticated user.
type UserService struct {
	users  UserStore
	cipher *utils.Cipher
	auth   *AuthService
}

func NewUserService(users UserStore, cipher *utils.Cipher) *UserService {
	return &UserService{
		users:  users,
		cipher: cipher,
		auth:   &AuthService{users: users, cipher: cipher},
	}
}

func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.User, error) {
	return s.users.UpdateName(ctx, userID, req.Name)
}

func (s *UserService) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !utils.CheckPassword(req.CurrentPassword, user.PasswordHash) {
		return ErrInvalidCredentials
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.users.UpdatePassword(ctx, userID, hash)
}

// SetupTOTP stores a fresh encrypted secret without enabling it; VerifyTOTP
// must confirm a code before login starts requiring one. An enabled secret
// can only be replaced after DisableTOTP.
func (s *UserService) SetupTOTP(ctx context.Context, userID string) (*models.TOTPSetupResponse, error) {
	if s.cipher == nil {
		return nil, ErrTOTPUnavailable
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.TOTPEnabled {
		return nil, ErrTOTPAlreadyEnabled
	}

	secret, url, err := utils.GenerateTOTPSecret(user.Email)
	if err != nil {
		return nil, fmt.Errorf("generate totp secret: %w", err)
	}

	encrypted, err := s.cipher.Encrypt([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("encrypt totp secret: %w", err)
	}

	if err := s.users.SetTOTP(ctx, userID, encrypted, false); err != nil {
		return nil, err
	}
	return &models.TOTPSetupResponse{Secret: secret, URL: url}, nil
}

func (s *UserService) VerifyTOTP(ctx context.Context, userID, code string) error {
	user, err := s.checkCode(ctx, userID, code)
	if err != nil {
		return err
	}
	return s.users.SetTOTP(ctx, userID, user.TOTPSecret, true)
}

func (s *UserService) DisableTOTP(ctx context.Context, userID, code string) error {
	if _, err := s.checkCode(ctx, userID, code); err != nil {
		return err
	}
	return s.users.SetTOTP(ctx, userID, "", false)
}

func (s *UserService) checkCode(ctx context.Context, userID, code string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	ok, err := s.auth.verifyTOTP(user, code)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidTOTP
	}
	return user, nil
}

func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	return s.users.Delete(ctx, userID)
}
