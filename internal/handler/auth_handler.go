package handler

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/jengzang/olympics-access-go/pkg/response"
)

// AuthHandler exchanges the admin key for a short-lived JWT used by the
// query-history API
type AuthHandler struct {
	adminKey  string
	jwtSecret string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(adminKey, jwtSecret string) *AuthHandler {
	return &AuthHandler{adminKey: adminKey, jwtSecret: jwtSecret}
}

type tokenRequest struct {
	Key string `json:"key" binding:"required"`
}

// Token handles POST /api/v1/auth/token
func (h *AuthHandler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Key), []byte(h.adminKey)) != 1 {
		response.Unauthorized(c, "Invalid key")
		return
	}

	claims := jwt.MapClaims{
		"sub": "admin",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to sign token", err)
		return
	}

	response.Success(c, gin.H{"token": signed})
}
