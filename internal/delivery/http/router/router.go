// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"registrar/internal/delivery/http/middleware"
	"registrar/internal/delivery/http/router/handler"
	"registrar/internal/domain/constants"
	"registrar/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RegistrationHandler *handler.RegistrationHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	Collectors          *metrics.Collectors `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	registrationHandler *handler.RegistrationHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	collectors          *metrics.Collectors
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		registrationHandler: params.RegistrationHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
		collectors:          params.Collectors,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.collectors != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.collectors.Registry, promhttp.HandlerOpts{})))
	}

	registrationGroup := e.Group("/registrations")
	registrationGroup.Use(r.rateLimitMiddleware.Limit)
	{
		registrationGroup.POST("", r.registrationHandler.Submit)
		registrationGroup.POST("/confirm", r.registrationHandler.Confirm)
		registrationGroup.GET("/confirm", r.registrationHandler.ConfirmPage)
	}

	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(constants.RoleAdmin))
	{
		adminGroup.POST("/registrations/:username/reject", r.adminHandler.Reject)
	}
}
