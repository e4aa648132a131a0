// server/internal/api/handlers/auth_handler.go
package handlers

import (
	"net/http"

	"dc-directory-api-server/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type AuthHandler struct {
	Auth *auth.Service
	Log  zerolog.Logger
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.Auth.Authenticate(req.Email, req.Password) {
		h.Log.Warn().Str("email", req.Email).Str("ip", c.ClientIP()).Msg("admin login rejected")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, expiresAt, err := h.Auth.GenerateJWT(req.Email, auth.RoleAdmin)
	if err != nil {
		h.Log.Error().Err(err).Msg("issue admin token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresAt": expiresAt,
		"role":      auth.RoleAdmin,
	})
}
