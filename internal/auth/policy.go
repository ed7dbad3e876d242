// Package auth defines the fixed role registry and the authorization
// policy that maps roles to named abilities. The policy is a static
// permission table evaluated before any side effect; there is no
// dynamic dispatch and no per-request state.
package auth

// Role identifiers match the ids of the seeded `roles` table rows.
const (
	RoleAdministrator uint8 = 1
	RoleOwner         uint8 = 2
	RoleUser          uint8 = 3
)

// Ability is a named permission checked before a gated operation.
type Ability string

const (
	// AbilityManageProperties gates listing and creating properties.
	AbilityManageProperties Ability = "properties-manage"
	// AbilityManageBookings gates listing and creating bookings.
	AbilityManageBookings Ability = "bookings-manage"
)

// permissions is the full grant table. A role absent from the table, or
// an ability absent from a role's row, is a denial. Administrator is
// deliberately not granted either ability here; any admin access must be
// an explicit new grant, not an implied superuser rule.
var permissions = map[uint8]map[Ability]bool{
	RoleOwner: {
		AbilityManageProperties: true,
	},
	RoleUser: {
		AbilityManageBookings: true,
	},
}

// Can reports whether the given role may perform the given ability.
// It is a pure lookup with no side effects.
func Can(roleID uint8, a Ability) bool {
	return permissions[roleID][a]
}

// Assignable reports whether a role may be chosen at self-registration.
// Administrator accounts are only ever created by seeding, never via
// the public registration endpoint.
func Assignable(roleID uint8) bool {
	return roleID == RoleOwner || roleID == RoleUser
}

// RoleName returns a human-readable name for a role id, or "" when the
// id is unknown. Used for logging and the /v1/me response.
func RoleName(roleID uint8) string {
	switch roleID {
	case RoleAdministrator:
		return "Administrator"
	case RoleOwner:
		return "Owner"
	case RoleUser:
		return "User"
	}
	return ""
}
