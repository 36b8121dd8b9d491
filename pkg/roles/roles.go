package roles

import "strings"

// Role is an operator's job function. Arkan roles are not a hierarchy but
// named capability sets: what a role can do is defined solely by its
// navigation table and the route guards that reference it.
type Role string

const (
	Admin           Role = "admin"
	AccountManager  Role = "account manager"
	DesignerManager Role = "designer manager"
	Designer        Role = "designer"
	Finance         Role = "finance"
)

// Parse normalizes a raw role string from the backend or a token claim.
// Unknown roles are returned as-is so they can still be displayed, but
// they resolve to no navigation and no permissions.
func Parse(raw string) Role {
	return Role(strings.ToLower(strings.TrimSpace(raw)))
}

func (r Role) IsValid() bool {
	switch r {
	case Admin, AccountManager, DesignerManager, Designer, Finance:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}

// IsAny reports whether the role belongs to the given set.
func (r Role) IsAny(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}
