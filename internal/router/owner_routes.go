package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/DiveshR/property-booking-api/internal/auth"
	"github.com/DiveshR/property-booking-api/internal/handler"
	"github.com/DiveshR/property-booking-api/internal/middleware"
)

// RegisterOwner registers owner-scoped endpoints under /v1/owner.
// All routes require a valid JWT and the properties-manage ability,
// which only the Owner role holds.
func RegisterOwner(e *echo.Echo, o *handler.OwnerHandler, jwtSecret string) {
	// Attach middlewares at group construction time for clarity.
	g := e.Group(
		"/v1/owner",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireAbility(auth.AbilityManageProperties),
	)

	g.GET("/properties", o.ListProperties)
	g.POST("/properties", o.CreateProperty)
}
