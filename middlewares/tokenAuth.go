package middlewares

import (
	"context"
	"errors"
	"net/http"

	"MediCare/models"

	"github.com/gin-gonic/gin"
)

type contextKey string

const sessionKey contextKey = "session"

// SessionSource resolves a session token to the live session.
type SessionSource interface {
	Session(ctx context.Context, token string) (*models.Session, error)
}

// TokenAuthMiddleware requires a live session and adds it to the request
// context.
func TokenAuthMiddleware(sessions SessionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing session token"})
			return
		}

		session, err := sessions.Session(c.Request.Context(), token)
		if err != nil {
			HttpError(c, err)
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), sessionKey, session)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RoleAuthMiddleware restricts access to users holding one of roles. It must
// run after TokenAuthMiddleware.
func RoleAuthMiddleware(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := ExtractSessionFromContext(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User session not found in context"})
			return
		}

		for _, role := range roles {
			if session.User.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden: insufficient privileges"})
	}
}

// ExtractSessionFromContext retrieves the session stored by TokenAuthMiddleware.
func ExtractSessionFromContext(ctx context.Context) (*models.Session, error) {
	session, ok := ctx.Value(sessionKey).(*models.Session)
	if !ok {
		return nil, errors.New("session not found in context")
	}
	return session, nil
}

// ExtractUserFromContext retrieves the logged-in user.
func ExtractUserFromContext(ctx context.Context) (models.UserView, error) {
	session, err := ExtractSessionFromContext(ctx)
	if err != nil {
		return models.UserView{}, err
	}
	return session.User, nil
}
