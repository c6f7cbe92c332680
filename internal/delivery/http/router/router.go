// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"academy/internal/delivery/http/middleware"
	"academy/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler  *handler.AccountHandler
	ProfileHandler  *handler.ProfileHandler
	IdentityHandler *handler.IdentityHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler  *handler.AccountHandler
	profileHandler  *handler.ProfileHandler
	identityHandler *handler.IdentityHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:  params.AccountHandler,
		profileHandler:  params.ProfileHandler,
		identityHandler: params.IdentityHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
	}

	// Identity resolution requires a session; the caller resolves their own
	// account against a declared role.
	identityGroup := e.Group("/auth/identity")
	identityGroup.Use(r.authMiddleware.Authenticate)
	{
		identityGroup.GET("/:role", r.identityHandler.Resolve)
	}

	// Profile routes that require authentication
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("/:accountId", r.profileHandler.GetProfile)
		profileGroup.PATCH("/:accountId", r.profileHandler.UpdateProfile)
	}
}
