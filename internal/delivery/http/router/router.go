// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"spotter/internal/delivery/http/middleware"
	"spotter/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	AuthHandler *handler.AuthHandler
	UserHandler *handler.UserHandler
	SpotHandler *handler.SpotHandler

	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.params.RequestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/google", r.params.AuthHandler.GoogleSignIn)
		authGroup.POST("/refresh", r.params.AuthHandler.Refresh)
		authGroup.POST("/logout", r.params.AuthHandler.Logout)
	}

	// Routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.params.UserHandler.Me)
		userGroup.POST("/me/image", r.params.UserHandler.UpdateImage)
	}

	// Spot catalogue: listings are public, publishing requires a session.
	spotGroup := e.Group("/spots")
	{
		spotGroup.GET("", r.params.SpotHandler.List)
		spotGroup.GET("/non-active", r.params.SpotHandler.ListNonActive)
		spotGroup.POST("", r.params.SpotHandler.Create, r.params.AuthMiddleware.Authenticate)
	}
}
