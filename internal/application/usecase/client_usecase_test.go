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

func TestClientCreate_EstampaSiempreElDuenoDeLaSesion(t *testing.T) {
	repo := newFakeClientRepo()
	uc := usecase.NewClientUseCase(repo)

	// La entrada no trae dueño: se estampa el de la sesión, incluso para DIRECTOR
	out, err := uc.Create(sesionDirector, dto.CreateClientRequest{Name: "Juan", Company: "Kiosco Sur"})
	require.NoError(t, err)

	assert.Equal(t, sesionDirector.UserID, out.OwnerID)
	assert.Equal(t, sesionDirector.UserID, repo.clients[out.ID].OwnerID)
}

func TestClientCreate_ValidacionDePresencia(t *testing.T) {
	repo := newFakeClientRepo()
	uc := usecase.NewClientUseCase(repo)

	_, err := uc.Create(sesionAna, dto.CreateClientRequest{Name: "Juan"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "empresa ausente no se persiste")

	_, err = uc.Create(sesionAna, dto.CreateClientRequest{Company: "Kiosco Sur"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre ausente no se persiste")

	assert.Empty(t, repo.clients, "una validación fallida no deja filas")
}

func TestClientList_VisibilidadPorRol(t *testing.T) {
	repo := newFakeClientRepo(
		&entity.Client{ID: "c1", OwnerID: sesionAna.UserID, Name: "Juan", Company: "Kiosco Sur", CreatedAt: time.Now()},
	)
	uc := usecase.NewClientUseCase(repo)

	// La dueña lo ve
	own, err := uc.List(sesionAna)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "Juan", own[0].Name)

	// Otro vendedor no ve nada
	foreign, err := uc.List(sesionBruno)
	require.NoError(t, err)
	assert.Empty(t, foreign)

	// DIRECTOR lo ve anotado con su creador
	all, err := uc.List(sesionDirector)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.NotEmpty(t, all[0].OwnerName)
}

func TestClientDelete_ReglaDeEscritura(t *testing.T) {
	repo := newFakeClientRepo(
		&entity.Client{ID: "c1", OwnerID: sesionAna.UserID, Name: "Juan", Company: "Kiosco Sur"},
	)
	uc := usecase.NewClientUseCase(repo)

	// Un vendedor ajeno no puede borrar
	err := uc.Delete(sesionBruno, "c1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Contains(t, repo.clients, "c1")

	// La dueña sí
	require.NoError(t, uc.Delete(sesionAna, "c1"))
	assert.NotContains(t, repo.clients, "c1")

	// Registro inexistente: NotFound, no fallo duro
	err = uc.Delete(sesionAna, "c1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClientDelete_DirectorPuedeBorrarAjeno(t *testing.T) {
	repo := newFakeClientRepo(
		&entity.Client{ID: "c1", OwnerID: sesionAna.UserID, Name: "Juan", Company: "Kiosco Sur"},
	)
	uc := usecase.NewClientUseCase(repo)

	require.NoError(t, uc.Delete(sesionDirector, "c1"))
	assert.Equal(t, []string{"c1"}, repo.deleted)
}
