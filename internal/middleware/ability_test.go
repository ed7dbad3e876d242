package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/DiveshR/property-booking-api/internal/auth"
)

func runAbility(t *testing.T, a auth.Ability, roleID any) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if roleID != nil {
		c.Set("role_id", roleID)
	}
	h := RequireAbility(a)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec
}

func TestRequireAbility(t *testing.T) {
	cases := []struct {
		name    string
		ability auth.Ability
		roleID  any
		want    int
	}{
		{"owner allowed on properties", auth.AbilityManageProperties, float64(auth.RoleOwner), http.StatusOK},
		{"user forbidden on properties", auth.AbilityManageProperties, float64(auth.RoleUser), http.StatusForbidden},
		{"user allowed on bookings", auth.AbilityManageBookings, float64(auth.RoleUser), http.StatusOK},
		{"owner forbidden on bookings", auth.AbilityManageBookings, float64(auth.RoleOwner), http.StatusForbidden},
		{"admin forbidden on properties", auth.AbilityManageProperties, float64(auth.RoleAdministrator), http.StatusForbidden},
		{"missing role forbidden", auth.AbilityManageProperties, nil, http.StatusForbidden},
		{"garbage role forbidden", auth.AbilityManageBookings, "not-a-role", http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := runAbility(t, tc.ability, tc.roleID)
			if rec.Code != tc.want {
				t.Errorf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}
