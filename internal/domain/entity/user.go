package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin       = "admin"
	RoleAlmacenista = "almacenista"
	RoleCompras     = "compras"
)

// User representa un usuario interno del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, almacenista, compras
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
