package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/notasdev/api-notas/internal/domain/entity"
	repo "github.com/notasdev/api-notas/internal/domain/repository"
	"github.com/notasdev/api-notas/pkg/helpers"
)

const (
	notesCacheKey = "notes:all"
	notesCacheTTL = time.Minute
)

// NoteService implements note CRUD on top of the repository, with a short
// lived Redis cache in front of the list read. Note writes always receive a
// payload that already passed the schema validator.
type NoteService struct {
	Repo   repo.NoteRepository
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewNoteService(r repo.NoteRepository, rdb *redis.Client, logger *logrus.Logger) *NoteService {
	return &NoteService{Repo: r, Redis: rdb, Logger: logger}
}

// List returns every note, serving from cache when possible. Cache faults
// fall back to the repository.
func (s *NoteService) List(ctx context.Context) ([]entity.Note, error) {
	if s.Redis != nil {
		var cached []entity.Note
		ok, err := helpers.CacheGetJSON(ctx, s.Redis, notesCacheKey, &cached)
		if err != nil {
			s.Logger.WithError(err).Warn("fallo leyendo cache de notas")
		} else if ok {
			return cached, nil
		}
	}

	notes, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.Redis != nil {
		if err := helpers.CacheSetJSON(ctx, s.Redis, notesCacheKey, notes, notesCacheTTL); err != nil {
			s.Logger.WithError(err).Warn("fallo escribiendo cache de notas")
		}
	}
	return notes, nil
}

// GetByID returns one note or ErrNotaNoEncontrada.
func (s *NoteService) GetByID(ctx context.Context, id string) (*entity.Note, error) {
	return s.Repo.GetByID(ctx, id)
}

// Create stores a new note built from a validated payload.
func (s *NoteService) Create(ctx context.Context, payload map[string]interface{}) (*entity.Note, error) {
	n := noteFromPayload(payload)
	if err := s.Repo.Create(ctx, n); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return n, nil
}

// Update replaces a note's content with the validated payload. The payload
// passed the full schema, so this is a whole-document write.
func (s *NoteService) Update(ctx context.Context, id string, payload map[string]interface{}) (*entity.Note, error) {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	n := noteFromPayload(payload)
	n.ID = id
	if err := s.Repo.Update(ctx, n); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.Repo.GetByID(ctx, id)
}

// Delete removes a note permanently.
func (s *NoteService) Delete(ctx context.Context, id string) error {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *NoteService) invalidate(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := helpers.CacheDel(ctx, s.Redis, notesCacheKey); err != nil {
		s.Logger.WithError(err).Warn("fallo invalidando cache de notas")
	}
}

// noteFromPayload maps a schema-validated payload onto the entity. Absent
// optional fields (no default in the schema) keep their zero value.
func noteFromPayload(p map[string]interface{}) *entity.Note {
	n := &entity.Note{
		Nota:          getString(p, "nota"),
		Categoria:     getString(p, "categoria"),
		Etiquetas:     getStringSlice(p, "etiquetas"),
		Color:         getString(p, "color"),
		Autor:         getString(p, "autor"),
		Estado:        getString(p, "estado"),
		Prioridad:     getString(p, "prioridad"),
		Adjuntos:      getStringSlice(p, "adjuntos"),
		Colaboradores: getStringSlice(p, "colaboradores"),
	}
	n.FechaVencimiento = getTime(p, "fechaVencimiento")
	if rec, ok := p["recordatorio"].(map[string]interface{}); ok {
		n.Recordatorio = entity.Recordatorio{
			Fecha:  getTime(rec, "fecha"),
			Hora:   getStringPtr(rec, "hora"),
			Activo: getBool(rec, "activo"),
		}
	}
	return n
}

func getString(p map[string]interface{}, key string) string {
	s, _ := p[key].(string)
	return s
}

func getStringPtr(p map[string]interface{}, key string) *string {
	if s, ok := p[key].(string); ok {
		return &s
	}
	return nil
}

func getBool(p map[string]interface{}, key string) bool {
	b, _ := p[key].(bool)
	return b
}

func getTime(p map[string]interface{}, key string) *time.Time {
	if t, ok := p[key].(time.Time); ok {
		return &t
	}
	return nil
}

func getStringSlice(p map[string]interface{}, key string) []string {
	items, ok := p[key].([]interface{})
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
