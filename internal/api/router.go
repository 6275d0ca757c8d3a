// Package api assembles the Planora contract stub: an Echo server that
// mirrors the backend's REST surface from in-memory fixtures so the client
// can be developed and integration-tested with zero external services.
package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/planora/planora-app/internal/api/handler"
	"github.com/planora/planora-app/internal/api/middleware"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(fixtures *handler.Fixtures, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("planora_stub"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(fixtures, jwtSecret)
	vendorHandler := handler.NewVendorHandler(fixtures)
	accountHandler := handler.NewAccountHandler(fixtures)
	authRequired := middleware.Auth(jwtSecret)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/search", vendorHandler.Search)
	e.GET("/auth/vendor-search", vendorHandler.SearchWithFilters)
	e.GET("/vendor/:id", vendorHandler.ByID)
	e.GET("/categories", accountHandler.Categories)

	// --- Authenticated routes ---
	e.PATCH("/auth/update-profile/:id", accountHandler.UpdateProfile, authRequired)
	e.POST("/auth/push-token", accountHandler.RegisterPushToken, authRequired)
	e.GET("/notifications/:userId", accountHandler.Notifications, authRequired)

	// --- Probes & metrics ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
