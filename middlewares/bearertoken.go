package middlewares

import (
	"strings"

	"MediCare/utils"

	"github.com/gin-gonic/gin"
)

// SessionToken returns the session token of a request: the Bearer token in
// the Authorization header, or else the session cookie.
func SessionToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
		return ""
	}
	token, err := c.Cookie(utils.SessionCookie)
	if err != nil {
		return ""
	}
	return token
}
