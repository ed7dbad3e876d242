package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/DiveshR/property-booking-api/internal/handler"
	"github.com/DiveshR/property-booking-api/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and monitoring systems use this endpoint to verify
	// that the service is up.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware. Unauthenticated operations live under /v1/auth,
// while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Operations under /v1/auth do not require an existing session.
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Refresh rotates the refresh token and issues a new access token.
	g.POST("/refresh", a.Refresh)
	// Logout accepts a JSON body with a `refresh_token` and invalidates it.
	// A 204 is returned on success; 400/401/500 are possible on error.
	g.POST("/logout", a.Logout)

	// Routes in this group require a valid access token. JWTAuth runs
	// before every handler registered on it.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterPublic registers unauthenticated browse endpoints on the provided
// Echo instance. The PublicHandler exposes property search plus the
// reference geo data (countries, cities, geoobjects). These routes apply no
// JWT or ability middleware; the optional cache middleware speeds up
// repeated reads when Redis is available.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cache echo.MiddlewareFunc) {
	mw := []echo.MiddlewareFunc{}
	if cache != nil {
		mw = append(mw, cache)
	}
	// Search listed properties by city and/or country. Filters combine,
	// so ?city=1&country=2 only matches properties satisfying both.
	e.GET("/v1/search", p.SearchProperties, mw...)
	// Reference data for building search filters client-side.
	e.GET("/v1/countries", p.ListCountries, mw...)
	e.GET("/v1/cities", p.ListCities, mw...)
	e.GET("/v1/geoobjects", p.ListGeoobjects, mw...)
}
