package shared

import "github.com/google/uuid"

// Role values stamped into tokens. Kept here (not in the user domain)
// so middleware can check them without importing domain packages.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Principal is the identity attached to the current request.
// A nil *Principal means the request is anonymous.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// IsAdmin reports whether the principal is authenticated with the admin role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// ContextKeyPrincipal is the gin context key the auth middleware sets.
const ContextKeyPrincipal = "principal"
