package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/notasdev/api-notas/internal/apperrors"
	"github.com/notasdev/api-notas/internal/domain/entity"
	repo "github.com/notasdev/api-notas/internal/domain/repository"
	"github.com/notasdev/api-notas/pkg/helpers"
)

// UserService implements registration, login and profile management.
// Plaintext passwords enter exactly two write paths (Register/InitAdmin and
// CambiarPassword) and are hashed there; no other update touches the hash.
type UserService struct {
	Repo       repo.UserRepository
	JWT        *helpers.JWTManager
	Logger     *logrus.Logger
	BcryptCost int
}

func NewUserService(r repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger, bcryptCost int) *UserService {
	return &UserService{Repo: r, JWT: jwt, Logger: logger, BcryptCost: bcryptCost}
}

// RegisterInput carries the fields accepted when creating an account.
type RegisterInput struct {
	Nombre    string
	Apellidos string
	Email     string
	Password  string
	Telefono  string
	Foto      string
	Empresa   string
	Equipo    string
	Rol       string
}

// Register creates a user and returns it with a freshly minted token.
// The requested role is honored only when valid; the route itself is
// admin-gated, so no further caller check is needed here.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, string, error) {
	existing, err := s.Repo.GetByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, apperrors.ErrUsuarioNoEncontrado) {
		return nil, "", err
	}
	if existing != nil {
		s.Logger.WithField("email", in.Email).Warn("registro con email ya existente")
		return nil, "", apperrors.ErrUsuarioYaExiste
	}

	hash, err := helpers.HashPassword(in.Password, s.BcryptCost)
	if err != nil {
		return nil, "", err
	}

	rol := entity.RolUsuario
	if entity.ValidRol(in.Rol) {
		rol = in.Rol
	}

	u := &entity.User{
		Nombre:    in.Nombre,
		Apellidos: in.Apellidos,
		Email:     in.Email,
		Password:  hash,
		Telefono:  in.Telefono,
		Foto:      in.Foto,
		Empresa:   in.Empresa,
		Equipo:    in.Equipo,
		Rol:       rol,
		Status:    entity.StatusActivo,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, "", err
	}

	token, _, err := s.JWT.GenerateToken(u.ID)
	if err != nil {
		return nil, "", err
	}
	s.Logger.WithField("email", u.Email).Info("nuevo usuario registrado")
	return u, token, nil
}

// Login authenticates email/password and refreshes ultimo acceso. Unknown
// email and wrong password both collapse into ErrCredencialesInvalidas.
func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		s.Logger.WithField("email", email).Warn("login con email no existente")
		return nil, "", apperrors.ErrCredencialesInvalidas
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		s.Logger.WithField("email", email).Warn("login con contraseña incorrecta")
		return nil, "", apperrors.ErrCredencialesInvalidas
	}

	if err := s.Repo.UpdateUltimoAcceso(ctx, u.ID); err != nil {
		// no reason to fail the login over it
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("no se pudo actualizar ultimo acceso")
	}

	token, _, err := s.JWT.GenerateToken(u.ID)
	if err != nil {
		return nil, "", err
	}
	s.Logger.WithField("email", email).Info("usuario autenticado")
	return u, token, nil
}

// InitAdmin bootstraps the first administrator. It only works while no
// admin account exists.
func (s *UserService) InitAdmin(ctx context.Context, in RegisterInput) (*entity.User, string, error) {
	n, err := s.Repo.CountAdmins(ctx)
	if err != nil {
		return nil, "", err
	}
	if n > 0 {
		s.Logger.Warn("intento de inicializar admin cuando ya existe uno")
		return nil, "", apperrors.ErrAdminYaExiste
	}
	existing, err := s.Repo.GetByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, apperrors.ErrUsuarioNoEncontrado) {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", apperrors.ErrEmailEnUso
	}

	hash, err := helpers.HashPassword(in.Password, s.BcryptCost)
	if err != nil {
		return nil, "", err
	}
	u := &entity.User{
		Nombre:    in.Nombre,
		Apellidos: in.Apellidos,
		Email:     in.Email,
		Password:  hash,
		Telefono:  in.Telefono,
		Foto:      in.Foto,
		Empresa:   in.Empresa,
		Equipo:    in.Equipo,
		Rol:       entity.RolAdmin,
		Status:    entity.StatusActivo,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, "", err
	}
	token, _, err := s.JWT.GenerateToken(u.ID)
	if err != nil {
		return nil, "", err
	}
	s.Logger.WithField("email", u.Email).Info("primer usuario administrador creado")
	return u, token, nil
}

// GetPerfil loads a user's profile without the password hash.
func (s *UserService) GetPerfil(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil || u == nil {
		return nil, apperrors.ErrUsuarioNoEncontrado
	}
	return u, nil
}

// UpdatePerfilInput carries the profile fields a user may change. The
// password is never updated through this path.
type UpdatePerfilInput struct {
	Nombre    string
	Apellidos string
	Email     string
	Telefono  string
	Foto      string
	Empresa   string
	Equipo    string
}

// UpdatePerfil merges the provided (non-empty) fields into the stored
// profile and returns the updated user with a fresh token.
func (s *UserService) UpdatePerfil(ctx context.Context, id string, in UpdatePerfilInput) (*entity.User, string, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil || u == nil {
		return nil, "", apperrors.ErrUsuarioNoEncontrado
	}

	if in.Nombre != "" {
		u.Nombre = in.Nombre
	}
	if in.Apellidos != "" {
		u.Apellidos = in.Apellidos
	}
	if in.Email != "" {
		u.Email = in.Email
	}
	if in.Telefono != "" {
		u.Telefono = in.Telefono
	}
	if in.Foto != "" {
		u.Foto = in.Foto
	}
	if in.Empresa != "" {
		u.Empresa = in.Empresa
	}
	if in.Equipo != "" {
		u.Equipo = in.Equipo
	}

	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, "", err
	}
	token, _, err := s.JWT.GenerateToken(u.ID)
	if err != nil {
		return nil, "", err
	}
	s.Logger.WithField("email", u.Email).Info("perfil actualizado")
	return u, token, nil
}

// CambiarPassword verifies the current password and stores the hash of the
// new one. This is the only update path that rehashes.
func (s *UserService) CambiarPassword(ctx context.Context, id, actual, nueva string) error {
	u, err := s.Repo.GetByIDWithPassword(ctx, id)
	if err != nil || u == nil {
		return apperrors.ErrUsuarioNoEncontrado
	}
	if !helpers.CompareHashAndPassword(u.Password, actual) {
		s.Logger.WithField("email", u.Email).Warn("cambio de contraseña con contraseña actual incorrecta")
		return apperrors.ErrPasswordActualIncorrecta
	}
	hash, err := helpers.HashPassword(nueva, s.BcryptCost)
	if err != nil {
		return err
	}
	if err := s.Repo.UpdatePassword(ctx, id, hash); err != nil {
		return err
	}
	s.Logger.WithField("email", u.Email).Info("contraseña actualizada")
	return nil
}

// List returns all users (password hashes excluded by the repository).
func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.Repo.List(ctx)
}

// Delete removes a user permanently.
func (s *UserService) Delete(ctx context.Context, id string) error {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil || u == nil {
		s.Logger.WithField("user_id", id).Warn("eliminación de usuario no existente")
		return apperrors.ErrUsuarioNoEncontrado
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.Logger.WithField("email", u.Email).Info("usuario eliminado")
	return nil
}
