package entity

import "time"

// Appointment representa una reunión agendada con un cliente (tabla agencia_citas).
// No existe edición ni borrado de citas.
type Appointment struct {
	ID         string
	OwnerID    string
	ClientID   string
	At         time.Time // fecha_hora de la reunión
	Reason     string
	ClientName string // nombre del cliente asociado (join en listados)
	OwnerName  string // solo en listados de DIRECTOR
	CreatedAt  time.Time
}
