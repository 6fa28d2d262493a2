package repository

import (
	"context"

	"github.com/notasdev/api-notas/internal/domain/entity"
)

// NoteRepository defines the interface for note persistence.
type NoteRepository interface {
	Create(ctx context.Context, n *entity.Note) error
	GetByID(ctx context.Context, id string) (*entity.Note, error)
	List(ctx context.Context) ([]entity.Note, error)
	Update(ctx context.Context, n *entity.Note) error
	Delete(ctx context.Context, id string) error
}
