package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devstudio/agencia-api/internal/application/dto"
	"github.com/devstudio/agencia-api/internal/application/usecase"
	"github.com/devstudio/agencia-api/internal/domain"
	"github.com/devstudio/agencia-api/internal/domain/entity"
)

func TestUpdateEstado_CambiaYEsIdempotente(t *testing.T) {
	repo := newFakeProposalRepo(
		&entity.Proposal{ID: "p1", OwnerID: sesionAna.UserID, Estado: entity.EstadoEnPreparacion},
	)
	uc := usecase.NewProposalUseCase(repo)

	in := dto.UpdateEstadoRequest{Estado: entity.EstadoGanado}

	require.NoError(t, uc.UpdateEstado(sesionAna, "p1", in))
	assert.Equal(t, entity.EstadoGanado, repo.proposals["p1"].Estado)
	assert.Equal(t, 1, repo.estadoWrites)

	// Repetir con el mismo estado no ejecuta una segunda escritura
	require.NoError(t, uc.UpdateEstado(sesionAna, "p1", in))
	assert.Equal(t, 1, repo.estadoWrites, "el segundo cambio al mismo estado es un no-op")
}

func TestUpdateEstado_EstadoInvalido(t *testing.T) {
	repo := newFakeProposalRepo(
		&entity.Proposal{ID: "p1", OwnerID: sesionAna.UserID, Estado: entity.EstadoEnPreparacion},
	)
	uc := usecase.NewProposalUseCase(repo)

	err := uc.UpdateEstado(sesionAna, "p1", dto.UpdateEstadoRequest{Estado: "CANCELADO"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	assert.Zero(t, repo.estadoWrites)
}

func TestUpdateEstado_ReglaDeEscritura(t *testing.T) {
	repo := newFakeProposalRepo(
		&entity.Proposal{ID: "p1", OwnerID: sesionAna.UserID, Estado: entity.EstadoEnPreparacion},
	)
	uc := usecase.NewProposalUseCase(repo)

	in := dto.UpdateEstadoRequest{Estado: entity.EstadoEnviado}

	err := uc.UpdateEstado(sesionBruno, "p1", in)
	assert.ErrorIs(t, err, domain.ErrForbidden, "vendedor ajeno no modifica")

	require.NoError(t, uc.UpdateEstado(sesionDirector, "p1", in), "DIRECTOR sí")

	err = uc.UpdateEstado(sesionAna, "p-inexistente", in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateEstado_EstadoAlmacenadoCorrupto(t *testing.T) {
	// Un valor no reconocido en la fila se trata como EN_PREPARACION: pedir
	// EN_PREPARACION sobre él es entonces un no-op, no un error de integridad.
	repo := newFakeProposalRepo(
		&entity.Proposal{ID: "p1", OwnerID: sesionAna.UserID, Estado: "BORRADOR"},
	)
	uc := usecase.NewProposalUseCase(repo)

	require.NoError(t, uc.UpdateEstado(sesionAna, "p1", dto.UpdateEstadoRequest{Estado: entity.EstadoEnPreparacion}))
	assert.Zero(t, repo.estadoWrites)
}

func TestUpdateContent_SobreescrituraCompleta(t *testing.T) {
	repo := newFakeProposalRepo(
		&entity.Proposal{ID: "p1", OwnerID: sesionAna.UserID, Problem: "viejo", Solution: "vieja"},
	)
	uc := usecase.NewProposalUseCase(repo)

	err := uc.UpdateContent(sesionBruno, "p1", dto.UpdateContentRequest{Problem: "x", Solution: "y"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.UpdateContent(sesionAna, "p1", dto.UpdateContentRequest{Problem: "", Solution: "y"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, uc.UpdateContent(sesionAna, "p1", dto.UpdateContentRequest{
		Problem: "necesita control de stock", Solution: "# Propuesta actualizada",
	}))
	assert.Equal(t, "necesita control de stock", repo.proposals["p1"].Problem)
	assert.Equal(t, "# Propuesta actualizada", repo.proposals["p1"].Solution)
	assert.Equal(t, 1, repo.contentWrites)
}

func TestProposalList_VisibilidadYNormalizacion(t *testing.T) {
	repo := newFakeProposalRepo(
		&entity.Proposal{ID: "p1", OwnerID: sesionAna.UserID, Estado: "BORRADOR"},
		&entity.Proposal{ID: "p2", OwnerID: sesionBruno.UserID, Estado: entity.EstadoEnviado},
	)
	uc := usecase.NewProposalUseCase(repo)

	own, err := uc.List(sesionAna)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, entity.EstadoEnPreparacion, own[0].Estado,
		"un estado almacenado no reconocido se expone como EN_PREPARACION")

	all, err := uc.List(sesionDirector)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
