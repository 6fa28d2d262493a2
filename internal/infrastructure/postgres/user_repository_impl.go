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

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, nombre, apellidos, email, telefono, foto, rol, status, empresa, equipo, ultimo_acceso, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (nombre, apellidos, email, password_hash, telefono, foto, rol, status, empresa, equipo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, ultimo_acceso, created_at, updated_at
	`, u.Nombre, u.Apellidos, u.Email, u.Password, u.Telefono, u.Foto, u.Rol, u.Status, u.Empresa, u.Equipo)

	return row.Scan(&u.ID, &u.UltimoAcceso, &u.CreatedAt, &u.UpdatedAt)
}

func scanUser(row pgx.Row, withPassword bool) (*entity.User, error) {
	u := &entity.User{}
	dest := []interface{}{
		&u.ID, &u.Nombre, &u.Apellidos, &u.Email, &u.Telefono, &u.Foto,
		&u.Rol, &u.Status, &u.Empresa, &u.Equipo, &u.UltimoAcceso,
		&u.CreatedAt, &u.UpdatedAt,
	}
	if withPassword {
		dest = append(dest, &u.Password)
	}
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUsuarioNoEncontrado
		}
		return nil, err
	}
	return u, nil
}

// GetByID loads a user without the password hash.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row, false)
}

// GetByIDWithPassword loads a user including the password hash, used only
// by credential checks.
func (r *UserRepository) GetByIDWithPassword(ctx context.Context, id string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+`, password_hash FROM users WHERE id = $1`, id)
	return scanUser(row, true)
}

// GetByEmail loads a user including the password hash (login path).
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+`, password_hash FROM users WHERE email = $1`, email)
	return scanUser(row, true)
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []entity.User
	for rows.Next() {
		u, err := scanUser(rows, false)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// Update writes profile fields. The password hash column is deliberately
// not part of this statement; see UpdatePassword.
func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET nombre = $1, apellidos = $2, email = $3, telefono = $4, foto = $5,
		    empresa = $6, equipo = $7, updated_at = $8
		WHERE id = $9
	`, u.Nombre, u.Apellidos, u.Email, u.Telefono, u.Foto, u.Empresa, u.Equipo, u.UpdatedAt, u.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return apperrors.ErrUsuarioNoEncontrado
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, hash string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2
	`, hash, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return apperrors.ErrUsuarioNoEncontrado
	}
	return nil
}

func (r *UserRepository) UpdateUltimoAcceso(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE users SET ultimo_acceso = now() WHERE id = $1`, id)
	return err
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return apperrors.ErrUsuarioNoEncontrado
	}
	return nil
}

func (r *UserRepository) CountAdmins(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM users WHERE rol = $1`, entity.RolAdmin).Scan(&n)
	return n, err
}

var _ repository.UserRepository = (*UserRepository)(nil)
