package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notasdev/api-notas/internal/apperrors"
	"github.com/notasdev/api-notas/internal/application"
	"github.com/notasdev/api-notas/internal/domain/entity"
	handlers "github.com/notasdev/api-notas/internal/interface/http"
	"github.com/notasdev/api-notas/internal/router/modules"
)

type memNoteRepo struct {
	notes map[string]*entity.Note
}

func newMemNoteRepo() *memNoteRepo {
	return &memNoteRepo{notes: map[string]*entity.Note{}}
}

func (r *memNoteRepo) Create(_ context.Context, n *entity.Note) error {
	n.ID = uuid.NewString()
	n.CreatedAt = time.Now()
	n.UpdatedAt = n.CreatedAt
	cp := *n
	r.notes[n.ID] = &cp
	return nil
}

func (r *memNoteRepo) GetByID(_ context.Context, id string) (*entity.Note, error) {
	n, ok := r.notes[id]
	if !ok {
		return nil, apperrors.ErrNotaNoEncontrada
	}
	cp := *n
	return &cp, nil
}

func (r *memNoteRepo) List(_ context.Context) ([]entity.Note, error) {
	out := make([]entity.Note, 0, len(r.notes))
	for _, n := range r.notes {
		out = append(out, *n)
	}
	return out, nil
}

func (r *memNoteRepo) Update(_ context.Context, n *entity.Note) error {
	stored, ok := r.notes[n.ID]
	if !ok {
		return apperrors.ErrNotaNoEncontrada
	}
	n.CreatedAt = stored.CreatedAt
	n.UpdatedAt = time.Now()
	cp := *n
	r.notes[n.ID] = &cp
	return nil
}

func (r *memNoteRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.notes[id]; !ok {
		return apperrors.ErrNotaNoEncontrada
	}
	delete(r.notes, id)
	return nil
}

func noteRouter(repo *memNoteRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	svc := application.NewNoteService(repo, nil, logger)
	handler := handlers.NewNoteHandler(svc, logger)

	r := gin.New()
	modules.NewNoteModule(handler).Register(r.Group("/api"))
	return r
}

type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func doJSON(r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestCreateNoteAppliesDefaults(t *testing.T) {
	r := noteRouter(newMemNoteRepo())

	w, env := doJSON(r, http.MethodPost, "/api/notes", gin.H{
		"nota":      "buy milk",
		"categoria": "home",
		"autor":     "Ana",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var note entity.Note
	require.NoError(t, json.Unmarshal(env.Data, &note))
	assert.Equal(t, "buy milk", note.Nota)
	assert.Equal(t, "pendiente", note.Estado)
	assert.Equal(t, "media", note.Prioridad)
	assert.Equal(t, "#ffffff", note.Color)
	assert.Empty(t, note.Etiquetas)
	assert.False(t, note.Recordatorio.Activo)
	assert.NotEmpty(t, note.ID)
}

func TestCreateNoteCollectsViolations(t *testing.T) {
	r := noteRouter(newMemNoteRepo())

	w, env := doJSON(r, http.MethodPost, "/api/notes", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Validación fallida", env.Message)

	var violations []string
	require.NoError(t, json.Unmarshal(env.Error, &violations))
	require.GreaterOrEqual(t, len(violations), 2)

	joined := ""
	for _, v := range violations {
		joined += v + "\n"
	}
	assert.Contains(t, joined, `"nota"`)
	assert.Contains(t, joined, `"categoria"`)
}

func TestCreateNoteStripsUnknownFields(t *testing.T) {
	repo := newMemNoteRepo()
	r := noteRouter(repo)

	w, _ := doJSON(r, http.MethodPost, "/api/notes", gin.H{
		"nota":      "buy milk",
		"categoria": "home",
		"autor":     "Ana",
		"isAdmin":   true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "isAdmin")
}

func TestGetNoteNotFound(t *testing.T) {
	r := noteRouter(newMemNoteRepo())

	w, env := doJSON(r, http.MethodGet, "/api/notes/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Nota no encontrada", env.Message)
}

func TestUpdateNoteUsesValidatedPayload(t *testing.T) {
	repo := newMemNoteRepo()
	r := noteRouter(repo)

	_, created := doJSON(r, http.MethodPost, "/api/notes", gin.H{
		"nota":      "buy milk",
		"categoria": "home",
		"autor":     "Ana",
	})
	var note entity.Note
	require.NoError(t, json.Unmarshal(created.Data, &note))

	w, env := doJSON(r, http.MethodPut, "/api/notes/"+note.ID, gin.H{
		"nota":      "buy milk and bread",
		"categoria": "home",
		"autor":     "Ana",
		"estado":    "completada",
		"_id":       "intento-de-cambio",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated entity.Note
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, note.ID, updated.ID)
	assert.Equal(t, "buy milk and bread", updated.Nota)
	assert.Equal(t, "completada", updated.Estado)
}

func TestUpdateNoteRequiresFullSchema(t *testing.T) {
	repo := newMemNoteRepo()
	r := noteRouter(repo)

	_, created := doJSON(r, http.MethodPost, "/api/notes", gin.H{
		"nota": "buy milk", "categoria": "home", "autor": "Ana",
	})
	var note entity.Note
	require.NoError(t, json.Unmarshal(created.Data, &note))

	w, _ := doJSON(r, http.MethodPut, "/api/notes/"+note.ID, gin.H{"estado": "completada"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateNoteNotFound(t *testing.T) {
	r := noteRouter(newMemNoteRepo())

	w, env := doJSON(r, http.MethodPut, "/api/notes/"+uuid.NewString(), gin.H{
		"nota": "x", "categoria": "home", "autor": "Ana",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Nota no encontrada", env.Message)
}

func TestDeleteNote(t *testing.T) {
	repo := newMemNoteRepo()
	r := noteRouter(repo)

	_, created := doJSON(r, http.MethodPost, "/api/notes", gin.H{
		"nota": "temp", "categoria": "home", "autor": "Ana",
	})
	var note entity.Note
	require.NoError(t, json.Unmarshal(created.Data, &note))

	w, env := doJSON(r, http.MethodDelete, "/api/notes/"+note.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Nota eliminada correctamente", env.Message)

	w, _ = doJSON(r, http.MethodGet, "/api/notes/"+note.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListNotes(t *testing.T) {
	repo := newMemNoteRepo()
	r := noteRouter(repo)

	for _, nota := range []string{"una", "otra"} {
		w, _ := doJSON(r, http.MethodPost, "/api/notes", gin.H{
			"nota": nota, "categoria": "home", "autor": "Ana",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, env := doJSON(r, http.MethodGet, "/api/notes", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var notes []entity.Note
	require.NoError(t, json.Unmarshal(env.Data, &notes))
	assert.Len(t, notes, 2)
}
