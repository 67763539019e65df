package handlers

import (
	"net/http"

	"github.com/LovationAdmin/expense-api/middleware"
	"github.com/LovationAdmin/expense-api/models"
	"github.com/LovationAdmin/expense-api/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.users.Profile(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err, "get profile")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondServiceError(c, err, "update profile")
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), middleware.GetUserID(c), req)
	if err != nil {
		respondServiceError(c, err, "update profile")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req models.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondServiceError(c, err, "change password")
		return
	}

	if err := h.users.ChangePassword(c.Request.Context(), middleware.GetUserID(c), req); err != nil {
		respondServiceError(c, err, "change password")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

func (h *UserHandler) SetupTOTP(c *gin.Context) {
	setup, err := h.users.SetupTOTP(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err, "2fa setup")
		return
	}
	c.JSON(http.StatusOK, setup)
}

func (h *UserHandler) VerifyTOTP(c *gin.Context) {
	code, ok := bindTOTPCode(c, "2fa verify")
	if !ok {
		return
	}
	if err := h.users.VerifyTOTP(c.Request.Context(), middleware.GetUserID(c), code); err != nil {
		respondServiceError(c, err, "2fa verify")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "2FA enabled successfully"})
}

func (h *UserHandler) DisableTOTP(c *gin.Context) {
	code, ok := bindTOTPCode(c, "2fa disable")
	if !ok {
		return
	}
	if err := h.users.DisableTOTP(c.Request.Context(), middleware.GetUserID(c), code); err != nil {
		respondServiceError(c, err, "2fa disable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "2FA disabled successfully"})
}

// DeleteAccount removes the user together with their expenses and budgets.
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	if err := h.users.DeleteAccount(c.Request.Context(), middleware.GetUserID(c)); err != nil {
		respondServiceError(c, err, "delete account")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}

func bindTOTPCode(c *gin.Context, action string) (string, bool) {
	var req models.TOTPCodeRequest
	if !bindJSON(c, &req) {
		return "", false
	}
	if err := req.Validate(); err != nil {
		respondServiceError(c, err, action)
		return "", false
	}
	return req.Code, true
}
