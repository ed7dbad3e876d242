package auth

import "testing"

func TestCan(t *testing.T) {
	cases := []struct {
		name    string
		role    uint8
		ability Ability
		want    bool
	}{
		{"owner manages properties", RoleOwner, AbilityManageProperties, true},
		{"owner cannot manage bookings", RoleOwner, AbilityManageBookings, false},
		{"user manages bookings", RoleUser, AbilityManageBookings, true},
		{"user cannot manage properties", RoleUser, AbilityManageProperties, false},
		{"admin has no property grant", RoleAdministrator, AbilityManageProperties, false},
		{"admin has no booking grant", RoleAdministrator, AbilityManageBookings, false},
		{"unknown role denied", 99, AbilityManageProperties, false},
		{"unknown ability denied", RoleOwner, Ability("users-manage"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Can(tc.role, tc.ability); got != tc.want {
				t.Errorf("Can(%d, %q) = %v, want %v", tc.role, tc.ability, got, tc.want)
			}
		})
	}
}

func TestAssignable(t *testing.T) {
	if Assignable(RoleAdministrator) {
		t.Error("Administrator must not be assignable at registration")
	}
	if !Assignable(RoleOwner) || !Assignable(RoleUser) {
		t.Error("Owner and User must be assignable at registration")
	}
	if Assignable(0) || Assignable(42) {
		t.Error("unknown role ids must not be assignable")
	}
}

func TestRoleName(t *testing.T) {
	if RoleName(RoleOwner) != "Owner" || RoleName(RoleUser) != "User" || RoleName(RoleAdministrator) != "Administrator" {
		t.Error("known roles must map to their names")
	}
	if RoleName(7) != "" {
		t.Error("unknown role must map to empty name")
	}
}
