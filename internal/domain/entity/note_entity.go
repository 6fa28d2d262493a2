package entity

import "time"

// Note states.
const (
	EstadoPendiente  = "pendiente"
	EstadoEnProgreso = "en_progreso"
	EstadoCompletada = "completada"
	EstadoArchivada  = "archivada"
)

// Note priorities.
const (
	PrioridadBaja    = "baja"
	PrioridadMedia   = "media"
	PrioridadAlta    = "alta"
	PrioridadUrgente = "urgente"
)

// Recordatorio is the reminder attached to a note. Fecha and Hora stay nil
// until the user schedules one.
type Recordatorio struct {
	Fecha  *time.Time `json:"fecha"`
	Hora   *string    `json:"hora"`
	Activo bool       `json:"activo"`
}

// Note is a user note with optional reminder, due date and collaborators.
type Note struct {
	ID               string       `json:"_id"`
	Nota             string       `json:"nota"`
	Categoria        string       `json:"categoria"`
	Etiquetas        []string     `json:"etiquetas"`
	Color            string       `json:"color"`
	Autor            string       `json:"autor"`
	Recordatorio     Recordatorio `json:"recordatorio"`
	Estado           string       `json:"estado"`
	Prioridad        string       `json:"prioridad"`
	FechaVencimiento *time.Time   `json:"fechaVencimiento"`
	Adjuntos         []string     `json:"adjuntos"`
	Colaboradores    []string     `json:"colaboradores"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}
