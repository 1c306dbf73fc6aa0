package handlers

import (
	"net/http"

	"MediCare/middlewares"
	"MediCare/services"
	"MediCare/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	AuthService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		AuthService: authService,
	}
}

// Login authenticates the user, sets the session cookie and returns the
// token along with the user.
func (h *AuthHandler) Login(c *gin.Context) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !bindJSON(c, &credentials) {
		return
	}

	result, err := h.AuthService.Login(c.Request.Context(), credentials.Email, credentials.Password)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}

	utils.SetSessionCookie(c, result.Token, h.AuthService.TTL())
	c.JSON(http.StatusOK, result)
}

// Logout ends the session and clears the cookie. The cookie is cleared even
// when the session was already gone.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middlewares.SessionToken(c)
	utils.ClearSessionCookie(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing session token"})
		return
	}
	if err := h.AuthService.Logout(c.Request.Context(), token); err != nil {
		middlewares.HttpError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Me returns the logged-in user.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := middlewares.ExtractUserFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User session not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}
