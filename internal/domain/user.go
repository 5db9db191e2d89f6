package domain

import "github.com/google/uuid"

type User struct {
	ID       uuid.UUID
	Role     UserRole
	IsActive bool
}

// Actor is the identity performing an operation.
type Actor struct {
	ID   uuid.UUID
	Role UserRole
}

func (a Actor) Is(role UserRole) bool {
	return a.ID != uuid.Nil && a.Role == role
}
