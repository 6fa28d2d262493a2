package repository

import (
	"context"

	"github.com/notasdev/api-notas/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
// GetByID omits the password hash; GetByIDWithPassword and GetByEmail load
// it for credential checks.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByIDWithPassword(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	UpdatePassword(ctx context.Context, id, hash string) error
	UpdateUltimoAcceso(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	CountAdmins(ctx context.Context) (int, error)
}
