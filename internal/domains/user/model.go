package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity-store entity, mapped 1:1 to the users table.
// Accounts are never mutated or deleted after registration.
type User struct {
	ID    uuid.UUID `db:"id" json:"id"`
	Email string    `db:"email" json:"email"`

	PasswordHash string `db:"password_hash" json:"-"` // Never expose in JSON

	FullName string `db:"full_name" json:"full_name"`

	Role Role `db:"role" json:"role"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Role enum. The first account ever registered is created with RoleAdmin
// (bootstrap rule); everyone after that is a regular user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// IsValid reports whether the role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

// String implements Stringer interface
func (r Role) String() string {
	return string(r)
}
