package entity

import (
	"time"
)

// Roles a user can hold.
const (
	RolUsuario = "usuario"
	RolAdmin   = "admin"
)

// Account statuses.
const (
	StatusActivo     = "activo"
	StatusInactivo   = "inactivo"
	StatusSuspendido = "suspendido"
)

// User is the aggregate root for the user domain. Password holds the bcrypt
// hash and is populated only on read paths that explicitly need it for
// comparison; it must never be serialized into a response.
type User struct {
	ID           string
	Nombre       string
	Apellidos    string
	Email        string
	Password     string
	Telefono     string
	Foto         string
	Rol          string
	Status       string
	Empresa      string
	Equipo       string
	UltimoAcceso time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EsAdmin reports whether the user holds the admin role.
func (u *User) EsAdmin() bool { return u.Rol == RolAdmin }

// ValidRol reports whether rol is one of the known roles.
func ValidRol(rol string) bool { return rol == RolUsuario || rol == RolAdmin }
