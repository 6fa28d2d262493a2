// Package validators declares the request schemas checked before note
// writes reach a handler.
package validators

import (
	"github.com/notasdev/api-notas/internal/domain/entity"
	"github.com/notasdev/api-notas/pkg/schema"
)

// NoteSchema builds the ruleset for note create and update payloads.
// Unknown fields are stripped and every violation is reported at once.
func NoteSchema() *schema.Spec {
	recordatorio := schema.New().
		Field("fecha", schema.Date().AllowNull()).
		Field("hora", schema.String().AllowNull()).
		Field("activo", schema.Bool())

	return schema.New().
		Field("nota", schema.String().Required().Max(1000)).
		Field("categoria", schema.String().Required().Max(100)).
		Field("etiquetas", schema.Array(schema.String().Max(50)).Default([]string{})).
		Field("color", schema.String().Default("#ffffff")).
		Field("autor", schema.String().Required()).
		Field("recordatorio", schema.Object(recordatorio).Default(map[string]interface{}{
			"fecha":  nil,
			"hora":   nil,
			"activo": false,
		})).
		Field("estado", schema.String().
			Enum(entity.EstadoPendiente, entity.EstadoEnProgreso, entity.EstadoCompletada, entity.EstadoArchivada).
			Default(entity.EstadoPendiente)).
		Field("prioridad", schema.String().
			Enum(entity.PrioridadBaja, entity.PrioridadMedia, entity.PrioridadAlta, entity.PrioridadUrgente).
			Default(entity.PrioridadMedia)).
		Field("fechaVencimiento", schema.Date().AllowNull()).
		Field("adjuntos", schema.Array(schema.String().URI()).Default([]string{})).
		Field("colaboradores", schema.Array(schema.String()).Default([]string{}))
}
