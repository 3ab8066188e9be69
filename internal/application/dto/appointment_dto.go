package dto

import "time"

// CreateAppointmentRequest entrada para agendar una reunión.
type CreateAppointmentRequest struct {
	ClientID string    `json:"cliente_id" validate:"required"`
	At       time.Time `json:"fecha_hora" validate:"required"`
	Reason   string    `json:"motivo" validate:"required"`
}

// AppointmentResponse salida de una cita de la agenda.
type AppointmentResponse struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"usuario_id"`
	ClientID   string    `json:"cliente_id"`
	ClientName string    `json:"cliente_nombre"`
	At         time.Time `json:"fecha_hora"`
	Reason     string    `json:"motivo"`
	OwnerName  string    `json:"creado_por,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
