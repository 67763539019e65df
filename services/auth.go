package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/LovationAdmin/expense-api/models"
	"github.com/LovationAdmin/expense-api/utils"
)

type AuthService struct {
	users  UserStore
	tokens *utils.TokenManager
	cipher *utils.Cipher
}

// NewAuthService builds the service. cipher may be nil, in which case
// accounts with 2FA enabled cannot log in.
func NewAuthService(users UserStore, tokens *utils.TokenManager, cipher *utils.Cipher) *AuthService {
	return &AuthService{users: users, tokens: tokens, cipher: cipher}
}

// Register creates an account from an already validated request.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	utils.LogAuthAction("register", user.Email, true)
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if errors.Is(err, models.ErrNotFound) {
		utils.LogAuthAction("login", req.Email, false)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		utils.LogAuthAction("login", req.Email, false)
		return nil, ErrInvalidCredentials
	}

	if user.TOTPEnabled {
		if req.TOTPCode == "" {
			return nil, ErrTOTPRequired
		}
		ok, err := s.verifyTOTP(user, req.TOTPCode)
		if err != nil {
			return nil, err
		}
		if !ok {
			utils.LogAuthAction("login-2fa", req.Email, false)
			return nil, ErrInvalidTOTP
		}
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	utils.LogAuthAction("login", user.Email, true)
	return &models.AuthResponse{Token: token, User: *user}, nil
}

func (s *AuthService) verifyTOTP(user *models.User, code string) (bool, error) {
	if s.cipher == nil {
		return false, ErrTOTPUnavailable
	}
	if user.TOTPSecret == "" {
		return false, ErrTOTPNotPending
	}
	secret, err := s.cipher.Decrypt(user.TOTPSecret)
	if err != nil {
		return false, fmt.Errorf("decrypt totp secret: %w", err)
	}
	return utils.VerifyTOTP(string(secret), code), nil
}
