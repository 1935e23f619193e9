package http

import (
	"net/http"

	"anoa.com/clubrank/internal/modules/auth/dto"
	authService "anoa.com/clubrank/internal/modules/auth/service"
	"anoa.com/clubrank/pkg/response"
	"anoa.com/clubrank/pkg/validator"
	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the opaque server-side session ID.
const SessionCookieName = "session_id"

type AuthHandler struct {
	service authService.AuthService
}

func NewAuthHandler(service authService.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	result, err := h.service.Login(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	// Secure is off so local development over plain HTTP works; a TLS
	// terminator in front should force it.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, result.SessionID, result.MaxAge, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Login successful",
		"user":    result.User,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, _ := c.Cookie(SessionCookieName)
	if err := h.service.Logout(c.Request.Context(), sessionID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Logged out successfully"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("user_id")
	user, err := h.service.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "user": user})
}

func (h *AuthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "success",
		"authenticated": true,
		"user": gin.H{
			"id":    c.GetString("user_id"),
			"email": c.GetString("user_email"),
			"name":  c.GetString("user_name"),
			"role":  c.GetString("user_role"),
		},
	})
}
