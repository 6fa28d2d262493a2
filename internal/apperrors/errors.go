// Package apperrors holds the sentinel errors the application layer hands
// back to the HTTP boundary, together with their mapping to status codes
// and stable user-facing messages. Nothing below the boundary formats HTTP
// responses; handlers translate through MapToHTTP.
package apperrors

import (
	"errors"
	"net/http"
)

var (
	// ErrCredencialesInvalidas is returned on login with an unknown email
	// or a wrong password; the two cases are indistinguishable on purpose.
	ErrCredencialesInvalidas = errors.New("Email o contraseña incorrectos")
	// ErrUsuarioYaExiste is returned when registering an email already taken.
	ErrUsuarioYaExiste = errors.New("El usuario ya existe")
	// ErrEmailEnUso is returned by init-admin when the email is taken.
	ErrEmailEnUso = errors.New("El email ya está en uso")
	// ErrAdminYaExiste is returned by init-admin once an admin account exists.
	ErrAdminYaExiste = errors.New("Ya existe un usuario administrador en el sistema")
	// ErrPasswordActualIncorrecta is returned on a password change when the
	// current password does not match.
	ErrPasswordActualIncorrecta = errors.New("Contraseña actual incorrecta")
	// ErrUsuarioNoEncontrado is returned when a user id resolves to nothing.
	ErrUsuarioNoEncontrado = errors.New("Usuario no encontrado")
	// ErrNotaNoEncontrada is returned when a note id resolves to nothing.
	ErrNotaNoEncontrada = errors.New("Nota no encontrada")
)

// MapToHTTP maps an application error to a status code and stable message.
// Unknown errors collapse into a generic 500 so no internal detail leaks.
func MapToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, ErrCredencialesInvalidas),
		errors.Is(err, ErrPasswordActualIncorrecta):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, ErrUsuarioYaExiste),
		errors.Is(err, ErrEmailEnUso),
		errors.Is(err, ErrAdminYaExiste):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrUsuarioNoEncontrado),
		errors.Is(err, ErrNotaNoEncontrada):
		return http.StatusNotFound, err.Error()
	default:
		return http.StatusInternalServerError, "Error interno del servidor"
	}
}
