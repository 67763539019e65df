package handlers

import (
	"net/http"

	"github.com/LovationAdmin/expense-api/models"
	"github.com/LovationAdmin/expense-api/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register creates an account. No token is issued; the client logs in next.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondServiceError(c, err, "register")
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "register")
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondServiceError(c, err, "login")
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "login")
		return
	}
	c.JSON(http.StatusOK, resp)
}
