package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/devstudio/agencia-api/internal/application/dto"
	"github.com/devstudio/agencia-api/internal/domain"
	"github.com/devstudio/agencia-api/internal/domain/entity"
	"github.com/devstudio/agencia-api/internal/domain/repository"
)

// AppointmentUseCase casos de uso de la agenda de reuniones.
type AppointmentUseCase struct {
	repo    repository.AppointmentRepository
	clients repository.ClientRepository
}

// NewAppointmentUseCase construye el caso de uso.
func NewAppointmentUseCase(repo repository.AppointmentRepository, clients repository.ClientRepository) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo, clients: clients}
}

// List devuelve la agenda visible para la sesión, ordenada por fecha de la
// reunión ascendente (próximos eventos primero).
func (uc *AppointmentUseCase) List(s domain.Session) ([]*dto.AppointmentResponse, error) {
	var list []*entity.Appointment
	var err error
	if s.CanReadAll() {
		list, err = uc.repo.ListAll()
	} else {
		list, err = uc.repo.ListByOwner(s.UserID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AppointmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAppointmentResponse(a))
	}
	return out, nil
}

// Create agenda una reunión con un cliente visible para la sesión. El dueño de
// la cita es siempre el usuario de la sesión. Un cliente inexistente resuelve a
// ErrNotFound (referencia obsoleta, p.ej. cliente ya borrado); uno ajeno a
// ErrForbidden para un rol no DIRECTOR.
func (uc *AppointmentUseCase) Create(s domain.Session, in dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if in.ClientID == "" || in.Reason == "" || in.At.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clients.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if client.OwnerID != s.UserID && !s.CanReadAll() {
		return nil, domain.ErrForbidden
	}
	appointment := &entity.Appointment{
		ID:         uuid.New().String(),
		OwnerID:    s.UserID,
		ClientID:   client.ID,
		At:         in.At,
		Reason:     in.Reason,
		ClientName: client.Name,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(appointment); err != nil {
		return nil, err
	}
	return toAppointmentResponse(appointment), nil
}

func toAppointmentResponse(a *entity.Appointment) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		ID:         a.ID,
		OwnerID:    a.OwnerID,
		ClientID:   a.ClientID,
		ClientName: a.ClientName,
		At:         a.At,
		Reason:     a.Reason,
		OwnerName:  a.OwnerName,
		CreatedAt:  a.CreatedAt,
	}
}
