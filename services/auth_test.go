package services

import (
	"context"
	"testing"
	"time"

	"github.com/LovationAdmin/expense-api/models"
	"github.com/LovationAdmin/expense-api/utils"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCipherKey = "0123456789abcdef0123456789abcdef"

func newTestAuth(t *testing.T) (*AuthService, *UserService, *memoryUsers, *utils.TokenManager) {
	t.Helper()
	cipher, err := utils.NewCipher(testCipherKey)
	require.NoError(t, err)

	users := newMemoryUsers()
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	return NewAuthService(users, tokens, cipher), NewUserService(users, cipher), users, tokens
}

func register(t *testing.T, auth *AuthService, email, password string) *models.User {
	t.Helper()
	req := models.RegisterRequest{Name: "Ada", Email: email, Password: password}
	require.NoError(t, req.Validate())
	user, err := auth.Register(context.Background(), req)
	require.NoError(t, err)
	return user
}

func TestAuthService_Register(t *testing.T) {
	auth, _, users, _ := newTestAuth(t)

	user := register(t, auth, "ada@example.com", "secret1")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.True(t, utils.CheckPassword("secret1", user.PasswordHash))

	stored, err := users.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.PasswordHash, stored.PasswordHash)
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	auth, _, _, _ := newTestAuth(t)
	register(t, auth, "ada@example.com", "secret1")

	_, err := auth.Register(context.Background(), models.RegisterRequest{
		Name: "Other", Email: "ada@example.com", Password: "secret2",
	})
	assert.ErrorIs(t, err, models.ErrEmailExists)
}

func TestAuthService_Login(t *testing.T) {
	auth, _, _, tokens := newTestAuth(t)
	user := register(t, auth, "ada@example.com", "secret1")

	resp, err := auth.Login(context.Background(), models.LoginRequest{Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.User.ID)

	claims, err := tokens.ParseAccessToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestAuthService_LoginInvalidCredentials(t *testing.T) {
	auth, _, _, _ := newTestAuth(t)
	register(t, auth, "ada@example.com", "secret1")

	_, err := auth.Login(context.Background(), models.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(context.Background(), models.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_LoginWithTOTP(t *testing.T) {
	ctx := context.Background()
	auth, userSvc, _, _ := newTestAuth(t)
	user := register(t, auth, "ada@example.com", "secret1")

	setup, err := userSvc.SetupTOTP(ctx, user.ID)
	require.NoError(t, err)

	// Setup alone does not turn 2FA on.
	_, err = auth.Login(ctx, models.LoginRequest{Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)

	code, err := totp.GenerateCode(setup.Secret, time.Now())
	require.NoError(t, err)
	require.NoError(t, userSvc.VerifyTOTP(ctx, user.ID, code))

	_, err = auth.Login(ctx, models.LoginRequest{Email: "ada@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrTOTPRequired)

	_, err = auth.Login(ctx, models.LoginRequest{Email: "ada@example.com", Password: "secret1", TOTPCode: "000000"})
	if code != "000000" {
		assert.ErrorIs(t, err, ErrInvalidTOTP)
	}

	resp, err := auth.Login(ctx, models.LoginRequest{Email: "ada@example.com", Password: "secret1", TOTPCode: code})
	require.NoError(t, err)
	assert.True(t, resp.User.TOTPEnabled)
}

func TestAuthService_TOTPWithoutCipher(t *testing.T) {
	users := newMemoryUsers()
	userSvc := NewUserService(users, nil)

	_, err := userSvc.SetupTOTP(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrTOTPUnavailable)
}
