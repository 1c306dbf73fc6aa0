package controllers

import (
	"MediCare/handlers"
	"MediCare/middlewares"
	"MediCare/models"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Handler     *handlers.AuthHandler
	UserHandler *handlers.UserHandler
}

// NewAuthController creates a new AuthController with the given handlers
func NewAuthController(authHandler *handlers.AuthHandler, userHandler *handlers.UserHandler) *AuthController {
	return &AuthController{
		Handler:     authHandler,
		UserHandler: userHandler,
	}
}

// RegisterRoutes initializes the authentication and user routes on api.
func (ac *AuthController) RegisterRoutes(api *gin.RouterGroup, requireSession gin.HandlerFunc) {
	// Public routes: No authentication required
	api.POST("/auth/login", ac.Handler.Login)
	api.POST("/auth/logout", ac.Handler.Logout)

	// Protected routes: Requires a valid session
	api.GET("/auth/me", requireSession, ac.Handler.Me)

	// Admin routes: Requires a valid session and the admin role
	adminGroup := api.Group("/users").Use(
		requireSession,
		middlewares.RoleAuthMiddleware(models.RoleAdmin),
	)
	{
		adminGroup.GET("", ac.UserHandler.GetAllUsers)
		adminGroup.POST("", ac.UserHandler.CreateUser)
		adminGroup.GET("/:id", ac.UserHandler.GetUserByID)
		adminGroup.PUT("/:id", ac.UserHandler.UpdateUser)
		adminGroup.DELETE("/:id", ac.UserHandler.DeleteUser)
	}
}
