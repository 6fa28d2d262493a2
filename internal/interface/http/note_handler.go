package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/notasdev/api-notas/internal/apperrors"
	"github.com/notasdev/api-notas/internal/application"
	"github.com/notasdev/api-notas/internal/interface/middleware"
	"github.com/notasdev/api-notas/pkg/response"
)

type NoteHandler struct {
	Svc    *application.NoteService
	Logger *logrus.Logger
}

func NewNoteHandler(svc *application.NoteService, logger *logrus.Logger) *NoteHandler {
	return &NoteHandler{Svc: svc, Logger: logger}
}

// List handles GET /api/notes.
func (h *NoteHandler) List(c *gin.Context) {
	notes, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("error al obtener notas")
		status, msg := apperrors.MapToHTTP(err)
		response.Error(c, status, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, notes, "Lista de notas")
}

// GetByID handles GET /api/notes/:id.
func (h *NoteHandler) GetByID(c *gin.Context) {
	note, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		status, msg := apperrors.MapToHTTP(err)
		response.Error(c, status, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, note, "Nota")
}

// Create handles POST /api/notes. The body already passed the note schema;
// the validated payload, not the raw body, feeds the write.
func (h *NoteHandler) Create(c *gin.Context) {
	payload := middleware.ValidatedBody(c)
	note, err := h.Svc.Create(c.Request.Context(), payload)
	if err != nil {
		h.Logger.WithError(err).Error("error al crear nota")
		status, msg := apperrors.MapToHTTP(err)
		response.Error(c, status, msg, nil)
		return
	}
	response.Success(c, http.StatusCreated, note, "Nota creada")
}

// Update handles PUT /api/notes/:id.
func (h *NoteHandler) Update(c *gin.Context) {
	payload := middleware.ValidatedBody(c)
	note, err := h.Svc.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		status, msg := apperrors.MapToHTTP(err)
		response.Error(c, status, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, note, "Nota actualizada")
}

// Delete handles DELETE /api/notes/:id.
func (h *NoteHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		status, msg := apperrors.MapToHTTP(err)
		response.Error(c, status, msg, nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Nota eliminada correctamente")
}
