package usecase

import (
	"github.com/devstudio/agencia-api/internal/application/dto"
	"github.com/devstudio/agencia-api/internal/domain"
	"github.com/devstudio/agencia-api/internal/domain/entity"
	"github.com/devstudio/agencia-api/internal/domain/repository"
)

// ProposalUseCase casos de uso sobre propuestas ya persistidas (el pipeline de
// generación vive en internal/application/pipeline). Las propuestas no se borran.
type ProposalUseCase struct {
	repo repository.ProposalRepository
}

// NewProposalUseCase construye el caso de uso.
func NewProposalUseCase(repo repository.ProposalRepository) *ProposalUseCase {
	return &ProposalUseCase{repo: repo}
}

// List devuelve el pipeline visible para la sesión, más reciente primero.
func (uc *ProposalUseCase) List(s domain.Session) ([]*dto.ProposalResponse, error) {
	var list []*entity.Proposal
	var err error
	if s.CanReadAll() {
		list, err = uc.repo.ListAll()
	} else {
		list, err = uc.repo.ListByOwner(s.UserID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProposalResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToProposalResponse(p))
	}
	return out, nil
}

// UpdateEstado cambia el estado de una propuesta. Valida contra los cuatro
// estados enumerados y es idempotente: si el nuevo estado coincide con el
// almacenado no se ejecuta ninguna escritura.
func (uc *ProposalUseCase) UpdateEstado(s domain.Session, id string, in dto.UpdateEstadoRequest) error {
	if !entity.IsValidEstado(in.Estado) {
		return domain.ErrInvalidStatus
	}
	proposal, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if proposal == nil {
		return domain.ErrNotFound
	}
	if !s.CanWrite(proposal.OwnerID) {
		return domain.ErrForbidden
	}
	if entity.NormalizeEstado(proposal.Estado) == in.Estado {
		return nil // sin cambio: evita la escritura redundante
	}
	return uc.repo.UpdateEstado(id, in.Estado)
}

// UpdateContent sobreescribe problema y solución completos (sin merge), bajo la
// misma regla de escritura que el cambio de estado.
func (uc *ProposalUseCase) UpdateContent(s domain.Session, id string, in dto.UpdateContentRequest) error {
	if in.Problem == "" || in.Solution == "" {
		return domain.ErrInvalidInput
	}
	proposal, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if proposal == nil {
		return domain.ErrNotFound
	}
	if !s.CanWrite(proposal.OwnerID) {
		return domain.ErrForbidden
	}
	return uc.repo.UpdateContent(id, in.Problem, in.Solution)
}

// ToProposalResponse mapea la entidad a su DTO. El estado almacenado se
// normaliza en la salida: un valor no reconocido se expone como EN_PREPARACION.
func ToProposalResponse(p *entity.Proposal) *dto.ProposalResponse {
	return &dto.ProposalResponse{
		ID:            p.ID,
		OwnerID:       p.OwnerID,
		ClientID:      p.ClientID,
		ClientCompany: p.ClientCompany,
		Problem:       p.Problem,
		Solution:      p.Solution,
		DeliveryDate:  p.DeliveryDate,
		Estado:        entity.NormalizeEstado(p.Estado),
		OwnerName:     p.OwnerName,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
