package middleware

// identity.go holds helpers for reading the authenticated principal out
// of the Echo context, where JWTAuth stored the raw claim values.

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
)

// UserID extracts the principal's user id from context. JWT numeric
// claims arrive as float64; other encodings are tolerated.
func UserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// RoleID extracts the principal's role id from context.
func RoleID(c echo.Context) (uint8, error) {
	switch t := c.Get("role_id").(type) {
	case uint8:
		return t, nil
	case int:
		return uint8(t), nil
	case int64:
		return uint8(t), nil
	case float64:
		return uint8(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 8); err == nil {
			return uint8(n), nil
		}
	}
	return 0, errors.New("invalid role_id in context")
}
