package shared

import (
	"field-reservation/internal/domain/user"

	"github.com/google/uuid"
)

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
}

// Actor is the authenticated caller of a lifecycle operation.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func NewActor(id uuid.UUID, role user.Role) Actor {
	return Actor{ID: id, Role: role}
}

func SystemActor() Actor {
	return Actor{ID: uuid.Nil, Role: user.RoleSystem}
}

// CanAccess reports whether the actor may act on something owned by ownerID.
func (a Actor) CanAccess(ownerID uuid.UUID) bool {
	return a.Role.IsPrivileged() || a.ID == ownerID
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}
