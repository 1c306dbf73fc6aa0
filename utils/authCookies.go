package utils

import (
	"time"

	"MediCare/models"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = models.SessionNamespace

func SetSessionCookie(c *gin.Context, token string, expiry time.Duration) {
	c.SetCookie(SessionCookie, token, int(expiry.Seconds()), "/", "", secureCookies(), true)
}

func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", secureCookies(), true)
}

func secureCookies() bool {
	return gin.Mode() != gin.DebugMode && gin.Mode() != gin.TestMode
}
