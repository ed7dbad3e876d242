package router

import (
	"github.com/labstack/echo/v4"

	"github.com/DiveshR/property-booking-api/internal/auth"
	"github.com/DiveshR/property-booking-api/internal/handler"
	"github.com/DiveshR/property-booking-api/internal/middleware"
)

// RegisterUser registers booking endpoints under /v1/user. All routes
// require a valid JWT and the bookings-manage ability, held only by the
// User role; Owners and Administrators receive 403 here.
func RegisterUser(e *echo.Echo, h *handler.UserHandler, jwtSecret string) {
	g := e.Group(
		"/v1/user",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireAbility(auth.AbilityManageBookings),
	)

	g.GET("/bookings", h.ListBookings)
	g.POST("/bookings", h.CreateBooking)
}
