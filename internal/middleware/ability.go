package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DiveshR/property-booking-api/internal/auth"
)

// RequireAbility returns a middleware that enforces the authorization
// policy for one named ability. The principal's role comes from the
// role_id claim stored in context by JWTAuth. A missing role or a policy
// denial aborts the request with 403 Forbidden before any handler side
// effect runs.
func RequireAbility(a auth.Ability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roleID, err := RoleID(c)
			if err != nil || !auth.Can(roleID, a) {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
