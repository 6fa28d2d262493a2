package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/notasdev/api-notas/internal/apperrors"
	"github.com/notasdev/api-notas/internal/domain/entity"
	"github.com/notasdev/api-notas/internal/domain/repository"
)

type NoteRepository struct {
	pool *pgxpool.Pool
}

func NewNoteRepository(pool *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{pool: pool}
}

const noteColumns = `id, nota, categoria, etiquetas, color, autor,
	recordatorio_fecha, recordatorio_hora, recordatorio_activo,
	estado, prioridad, fecha_vencimiento, adjuntos, colaboradores,
	created_at, updated_at`

func (r *NoteRepository) Create(ctx context.Context, n *entity.Note) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO notes (nota, categoria, etiquetas, color, autor,
			recordatorio_fecha, recordatorio_hora, recordatorio_activo,
			estado, prioridad, fecha_vencimiento, adjuntos, colaboradores)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`, n.Nota, n.Categoria, n.Etiquetas, n.Color, n.Autor,
		n.Recordatorio.Fecha, n.Recordatorio.Hora, n.Recordatorio.Activo,
		n.Estado, n.Prioridad, n.FechaVencimiento, n.Adjuntos, n.Colaboradores)

	return row.Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
}

func scanNote(row pgx.Row) (*entity.Note, error) {
	n := &entity.Note{}
	err := row.Scan(
		&n.ID, &n.Nota, &n.Categoria, &n.Etiquetas, &n.Color, &n.Autor,
		&n.Recordatorio.Fecha, &n.Recordatorio.Hora, &n.Recordatorio.Activo,
		&n.Estado, &n.Prioridad, &n.FechaVencimiento, &n.Adjuntos, &n.Colaboradores,
		&n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotaNoEncontrada
		}
		return nil, err
	}
	return n, nil
}

func (r *NoteRepository) GetByID(ctx context.Context, id string) (*entity.Note, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+noteColumns+` FROM notes WHERE id = $1`, id)
	return scanNote(row)
}

func (r *NoteRepository) List(ctx context.Context) ([]entity.Note, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+noteColumns+` FROM notes ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []entity.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *n)
	}
	return notes, rows.Err()
}

func (r *NoteRepository) Update(ctx context.Context, n *entity.Note) error {
	n.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE notes
		SET nota = $1, categoria = $2, etiquetas = $3, color = $4, autor = $5,
		    recordatorio_fecha = $6, recordatorio_hora = $7, recordatorio_activo = $8,
		    estado = $9, prioridad = $10, fecha_vencimiento = $11,
		    adjuntos = $12, colaboradores = $13, updated_at = $14
		WHERE id = $15
	`, n.Nota, n.Categoria, n.Etiquetas, n.Color, n.Autor,
		n.Recordatorio.Fecha, n.Recordatorio.Hora, n.Recordatorio.Activo,
		n.Estado, n.Prioridad, n.FechaVencimiento, n.Adjuntos, n.Colaboradores,
		n.UpdatedAt, n.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return apperrors.ErrNotaNoEncontrada
	}
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return apperrors.ErrNotaNoEncontrada
	}
	return nil
}

var _ repository.NoteRepository = (*NoteRepository)(nil)
