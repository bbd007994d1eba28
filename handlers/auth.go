package handlers

import (
	"errors"
	"net/http"
	"time"

	"carebook/middleware"
	"carebook/services/session"
	"carebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const tokenTTL = 24 * time.Hour

// issueToken wraps token generation so the TTL lives in one place.
func issueToken(subject, email string) (string, error) {
	return utils.GenerateToken(subject, email, tokenTTL)
}

// AuthHandler serves login, registration, and session endpoints.
type AuthHandler struct {
	Sessions session.Store
}

func NewAuthHandler(sessions session.Store) *AuthHandler {
	return &AuthHandler{Sessions: sessions}
}

// RegisterHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Phone    string `json:"phone"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	identity, err := h.Sessions.Register(c.Request.Context(), req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Registration failed", err.Error())
		return
	}

	token, err := issueToken(identity.ID, identity.Email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Registration failed", "could not issue auth token")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": identity, "token": token})
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	identity, err := h.Sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			// Deliberately generic, same message for every credential failure.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Login failed", err.Error())
		return
	}

	token, err := issueToken(identity.ID, identity.Email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Login failed", "could not issue auth token")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": identity, "token": token})
}

// LogoutHandler handles POST /api/auth/logout.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	if err := h.Sessions.Logout(c.Request.Context()); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Logout failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// MeHandler handles GET /api/auth/me.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}
	c.JSON(http.StatusOK, identity)
}
