// Package admin derives the admin-scoped projection of the authenticated
// user: a role-based permission set plus the UI preference state the admin
// layout shares with it.
package admin

// Role is the coarse identity category permissions derive from.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleOperator   Role = "operator"
	RoleTechnician Role = "technician"
)

// Wildcard grants every permission.
const Wildcard = "*"

// PermissionSet is the set of permission tags granted to a role.
type PermissionSet map[string]struct{}

// Has reports whether the set grants tag, either directly or via the
// wildcard.
func (ps PermissionSet) Has(tag string) bool {
	if _, ok := ps[Wildcard]; ok {
		return true
	}
	_, ok := ps[tag]
	return ok
}

// Tags returns the raw tags in the set, for display.
func (ps PermissionSet) Tags() []string {
	tags := make([]string, 0, len(ps))
	for tag := range ps {
		tags = append(tags, tag)
	}
	return tags
}

// Permissions maps a role to its static permission set. The mapping is pure
// and not editable at runtime; unknown roles get an empty set, so every
// permission check on them fails.
func Permissions(role Role) PermissionSet {
	switch role {
	case RoleAdmin:
		return newSet(Wildcard)
	case RoleManager:
		return newSet(
			"users.read",
			"orders.read", "orders.update",
			"services.read", "services.update",
			"staff.read",
		)
	case RoleOperator:
		return newSet(
			"orders.read", "orders.update",
			"services.read",
		)
	}
	return PermissionSet{}
}

func newSet(tags ...string) PermissionSet {
	set := make(PermissionSet, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
	return set
}
