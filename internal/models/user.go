package models

import "time"

// UserTipo distinguishes account kinds at registration.
type UserTipo string

const (
	TipoUsuario    UserTipo = "usuario"
	TipoInstructor UserTipo = "instructor"
)

// UserRol represents the authorization role carried in tokens.
type UserRol string

const (
	RolAdmin      UserRol = "ADMIN"
	RolInstructor UserRol = "INSTRUCTOR"
	RolUsuario    UserRol = "USUARIO"
)

// User is an application account: studio staff or an instructor.
// Email is optional for instructor accounts, which may log in by name.
type User struct {
	ID           string    `db:"id" json:"id"`
	Nombre       string    `db:"nombre" json:"nombre"`
	Email        *string   `db:"email" json:"email,omitempty"`
	Tipo         UserTipo  `db:"tipo" json:"tipo"`
	Rol          UserRol   `db:"rol" json:"rol"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Activo       bool      `db:"activo" json:"activo"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
