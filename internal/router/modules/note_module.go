package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/notasdev/api-notas/internal/interface/http"
	"github.com/notasdev/api-notas/internal/interface/middleware"
	"github.com/notasdev/api-notas/internal/validators"
)

// NoteModule wires note CRUD routes. Create and update run behind the note
// schema validator so handlers only ever see normalized payloads.
type NoteModule struct {
	Handler *handlers.NoteHandler
}

func NewNoteModule(h *handlers.NoteHandler) *NoteModule {
	return &NoteModule{Handler: h}
}

func (m *NoteModule) Register(rg *gin.RouterGroup) {
	validate := middleware.ValidateBody(validators.NoteSchema())

	notes := rg.Group("/notes")
	{
		notes.GET("", m.Handler.List)
		notes.POST("", validate, m.Handler.Create)
		notes.GET("/:id", m.Handler.GetByID)
		notes.PUT("/:id", validate, m.Handler.Update)
		notes.DELETE("/:id", m.Handler.Delete)
	}
}
