package entity

import "time"

// User representa un usuario del sistema.
// PasswordHash vacío significa "sin configurar": la cuenta existe pero todavía
// no puede iniciar sesión (es el estado del admin provisorio antes del setup).
type User struct {
	ID           int64
	Email        string // siempre normalizado a minúsculas
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	IsAdmin      bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPassword indica si la cuenta tiene credenciales configuradas.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}
