package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/LovationAdmin/expense-api/models"
	"github.com/LovationAdmin/expense-api/services"
	"github.com/LovationAdmin/expense-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": message, "code": code})
}

// respondServiceError maps validation and service errors onto API responses.
// Anything unrecognised is logged and reported as a 500 without details.
func respondServiceError(c *gin.Context, err error, action string) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		respondError(c, http.StatusBadRequest, verr.Code, verr.Message)
	case errors.Is(err, models.ErrNotFound):
		respondError(c, http.StatusNotFound, models.CodeNotFound, "Not found")
	case errors.Is(err, models.ErrEmailExists):
		respondError(c, http.StatusBadRequest, models.CodeEmailExists, "Email already registered")
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, models.CodeInvalidCredentials, "Invalid email or password")
	case errors.Is(err, services.ErrTOTPRequired):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":       "2FA code required",
			"code":        models.CodeTOTPRequired,
			"requires2fa": true,
		})
	case errors.Is(err, services.ErrInvalidTOTP):
		respondError(c, http.StatusUnauthorized, models.CodeInvalidTOTP, "Invalid 2FA code")
	case errors.Is(err, services.ErrTOTPNotPending):
		respondError(c, http.StatusBadRequest, models.CodeInvalidTOTP, "2FA setup has not been started")
	case errors.Is(err, services.ErrTOTPAlreadyEnabled):
		respondError(c, http.StatusBadRequest, models.CodeInvalidTOTP, "2FA already enabled, disable it first")
	case errors.Is(err, services.ErrTOTPUnavailable):
		respondError(c, http.StatusServiceUnavailable, models.CodeTOTPUnavailable, "2FA is not available")
	default:
		utils.SafeError("[%s] %v", action, err)
		respondError(c, http.StatusInternalServerError, models.CodeServerError, "Internal server error")
	}
}

// bindJSON decodes the body into dst, answering 400 on malformed JSON.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, models.CodeInvalidBody, "Invalid request body")
		return false
	}
	return true
}

func pathID(c *gin.Context, resource string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(c, http.StatusBadRequest, models.CodeInvalidID, "Valid "+resource+" ID is required")
		return "", false
	}
	return id, true
}

func queryInt(c *gin.Context, key string) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, models.CodeInvalidQuery, key+" must be an integer")
		return 0, false
	}
	return n, true
}

// monthParam reads ?month=, defaulting to the current month.
func monthParam(c *gin.Context, now func() string) (string, bool) {
	month := c.Query("month")
	if month == "" {
		return now(), true
	}
	if !models.IsValidMonth(month) {
		respondError(c, http.StatusBadRequest, models.CodeInvalidMonth, "Month must be in format YYYY-MM")
		return "", false
	}
	return month, true
}

func currentMonth() string {
	return models.CurrentMonth(time.Now())
}
