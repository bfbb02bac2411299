package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role is the account flavor of a marketplace user. Role-specific attributes
// live in separate profile records keyed by the same user ID; there is no
// entity inheritance.
type Role string

const (
	RoleClient   Role = "client"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleProvider, RoleAdmin:
		return true
	default:
		return false
	}
}
