package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin       = "ADMIN"
	RoleDistributor = "DISTRIBUTOR"
)

// Estados válidos para User y Distributor.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// User representa una cuenta del portal (administrador o distribuidor).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	Role         string // ADMIN, DISTRIBUTOR
	Status       string // ACTIVE, INACTIVE
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
