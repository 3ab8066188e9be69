package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devstudio/agencia-api/internal/application/dto"
	"github.com/devstudio/agencia-api/internal/application/usecase"
	"github.com/devstudio/agencia-api/internal/domain"
	"github.com/devstudio/agencia-api/internal/domain/entity"
)

func TestAppointmentCreate_ConClienteVisible(t *testing.T) {
	clients := newFakeClientRepo(
		&entity.Client{ID: "c1", OwnerID: sesionAna.UserID, Name: "Juan", Company: "Kiosco Sur"},
	)
	repo := &fakeAppointmentRepo{}
	uc := usecase.NewAppointmentUseCase(repo, clients)

	out, err := uc.Create(sesionAna, dto.CreateAppointmentRequest{
		ClientID: "c1",
		At:       time.Now().Add(24 * time.Hour),
		Reason:   "Demo inicial",
	})
	require.NoError(t, err)

	assert.Equal(t, sesionAna.UserID, out.OwnerID)
	assert.Equal(t, "Juan", out.ClientName)
	require.Len(t, repo.appointments, 1)
}

func TestAppointmentCreate_ClienteAjeno(t *testing.T) {
	clients := newFakeClientRepo(
		&entity.Client{ID: "c1", OwnerID: sesionAna.UserID, Name: "Juan", Company: "Kiosco Sur"},
	)
	uc := usecase.NewAppointmentUseCase(&fakeAppointmentRepo{}, clients)

	in := dto.CreateAppointmentRequest{ClientID: "c1", At: time.Now(), Reason: "Visita"}

	// Otro vendedor no puede agendar sobre un cliente ajeno
	_, err := uc.Create(sesionBruno, in)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// DIRECTOR sí: ve todos los clientes
	out, err := uc.Create(sesionDirector, in)
	require.NoError(t, err)
	assert.Equal(t, sesionDirector.UserID, out.OwnerID, "la cita queda a nombre de quien la agenda")
}

func TestAppointmentCreate_ClienteInexistenteYValidacion(t *testing.T) {
	uc := usecase.NewAppointmentUseCase(&fakeAppointmentRepo{}, newFakeClientRepo())

	_, err := uc.Create(sesionAna, dto.CreateAppointmentRequest{ClientID: "c-borrado", At: time.Now(), Reason: "Visita"})
	assert.ErrorIs(t, err, domain.ErrNotFound, "referencia obsoleta: NotFound, no fallo duro")

	_, err = uc.Create(sesionAna, dto.CreateAppointmentRequest{ClientID: "c1", Reason: "Visita"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin fecha no hay cita")

	_, err = uc.Create(sesionAna, dto.CreateAppointmentRequest{ClientID: "c1", At: time.Now()})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin motivo no hay cita")
}

func TestAppointmentList_VisibilidadPorRol(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*entity.Appointment{
		{ID: "a1", OwnerID: sesionAna.UserID, ClientID: "c1", Reason: "Demo"},
		{ID: "a2", OwnerID: sesionBruno.UserID, ClientID: "c2", Reason: "Cierre"},
	}}
	uc := usecase.NewAppointmentUseCase(repo, newFakeClientRepo())

	own, err := uc.List(sesionAna)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "a1", own[0].ID)

	all, err := uc.List(sesionDirector)
	require.NoError(t, err)
	assert.Len(t, all, 2, "DIRECTOR ve la unión de todas las agendas")
}
