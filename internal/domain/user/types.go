package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
	// RoleSystem is used for callers authenticated by other means than a user token,
	// such as signed payment gateway webhooks.
	RoleSystem Role = "system"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSystem:
		return true
	default:
		return false
	}
}

func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleSystem
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() || role == RoleSystem {
		return "", ErrInvalidRole
	}
	return role, nil
}
