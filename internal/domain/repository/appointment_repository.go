package repository

import "github.com/devstudio/agencia-api/internal/domain/entity"

// AppointmentRepository define el puerto de persistencia para Appointment.
// Las citas solo se crean y se listan; no existe edición ni borrado.
type AppointmentRepository interface {
	Create(appointment *entity.Appointment) error
	// ListAll devuelve todas las citas (vista DIRECTOR) ordenadas por fecha_hora
	// ascendente, con ClientName y OwnerName resueltos.
	ListAll() ([]*entity.Appointment, error)
	// ListByOwner devuelve solo las citas del usuario, mismo orden.
	ListByOwner(ownerID string) ([]*entity.Appointment, error)
}
