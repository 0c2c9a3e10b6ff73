package domain

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

// AllRoles is the fixed role set seeded at startup.
var AllRoles = []string{RoleAdmin, RoleUser, RoleManager}

// IsKnownRole reports whether name belongs to the fixed role set.
func IsKnownRole(name string) bool {
	for _, r := range AllRoles {
		if r == name {
			return true
		}
	}
	return false
}

// Roles is a set of role memberships.
type Roles []string

// Has reports whether role is a member of the set.
func (rs Roles) Has(role string) bool {
	for _, r := range rs {
		if r == role {
			return true
		}
	}
	return false
}

// HasAny reports whether at least one of roles is a member of the set.
func (rs Roles) HasAny(roles ...string) bool {
	for _, r := range roles {
		if rs.Has(r) {
			return true
		}
	}
	return false
}
