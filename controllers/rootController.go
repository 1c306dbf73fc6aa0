package controllers

import (
	"net/http"

	"MediCare/metrics"

	"github.com/gin-gonic/gin"
)

// rootHandler handles requests to the root path
func rootHandler(c *gin.Context) {
	c.String(http.StatusOK, "MediCare API")
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SetupRootRoute sets up the service routes outside /api. /metrics is only
// served when m is not nil.
func SetupRootRoute(router *gin.Engine, m *metrics.Metrics) {
	router.GET("/", rootHandler)
	router.GET("/health", healthHandler)
	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}
}
