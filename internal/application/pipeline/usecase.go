package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/devstudio/agencia-api/internal/application/dto"
	"github.com/devstudio/agencia-api/internal/application/ports"
	"github.com/devstudio/agencia-api/internal/domain"
	"github.com/devstudio/agencia-api/internal/domain/entity"
	"github.com/devstudio/agencia-api/internal/domain/repository"
)

// generationTimeout acota la llamada al generador externo: redactar una
// propuesta completa puede tardar varios segundos, pero nunca bloquea sin límite.
const generationTimeout = 30 * time.Second

// retryDelay pausa breve antes del único reintento.
const retryDelay = 500 * time.Millisecond

// UseCase orquesta el pipeline de propuestas: recolectar entradas → llamar al
// generador externo → retener el texto en estado transitorio → persistir solo
// ante confirmación explícita del usuario.
type UseCase struct {
	clients   repository.ClientRepository
	proposals repository.ProposalRepository
	generator ports.TextGenerator
	drafts    *DraftStore
}

// NewUseCase construye el caso de uso del pipeline.
func NewUseCase(clients repository.ClientRepository, proposals repository.ProposalRepository, generator ports.TextGenerator, drafts *DraftStore) *UseCase {
	return &UseCase{clients: clients, proposals: proposals, generator: generator, drafts: drafts}
}

// Draft genera un borrador de propuesta para un cliente visible por la sesión.
// La llamada al generador lleva timeout explícito y un único reintento; si falla
// se devuelve el mensaje del proveedor tal cual y no queda estado transitorio:
// un Commit posterior no tiene nada que persistir.
func (uc *UseCase) Draft(ctx context.Context, s domain.Session, in dto.DraftRequest) (*dto.DraftResponse, error) {
	if in.ClientID == "" || in.Problem == "" || in.Angle == "" {
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

	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	solution, err := uc.generator.GenerateProposal(ctx, client.Rubro, in.Problem, in.Angle)
	if err != nil && ctx.Err() == nil {
		// Un único reintento ante fallos transitorios; nunca tras timeout/cancelación.
		select {
		case <-time.After(retryDelay):
		case <-ctx.Done():
			return nil, fmt.Errorf("generación IA: %w", ctx.Err())
		}
		solution, err = uc.generator.GenerateProposal(ctx, client.Rubro, in.Problem, in.Angle)
	}
	if err != nil {
		return nil, fmt.Errorf("generación IA: %w", err)
	}

	draft := Draft{
		ClientID:  client.ID,
		Problem:   in.Problem,
		Solution:  solution,
		Angle:     in.Angle,
		CreatedAt: time.Now(),
	}
	uc.drafts.Put(s.UserID, draft)
	return toDraftResponse(draft), nil
}

// GetDraft devuelve el borrador retenido para la sesión, o ErrNoDraft.
func (uc *UseCase) GetDraft(s domain.Session) (*dto.DraftResponse, error) {
	draft, ok := uc.drafts.Get(s.UserID)
	if !ok {
		return nil, domain.ErrNoDraft
	}
	return toDraftResponse(draft), nil
}

// Discard descarta el borrador retenido sin persistir nada.
func (uc *UseCase) Discard(s domain.Session) {
	uc.drafts.Delete(s.UserID)
}

// Commit persiste el borrador retenido como propuesta en EN_PREPARACION y lo
// limpia, de modo que un borrador ya confirmado no pueda confirmarse dos veces.
// Sin borrador retenido la operación se rechaza: nunca se crea una propuesta vacía.
func (uc *UseCase) Commit(s domain.Session, in dto.CommitProposalRequest) (*dto.ProposalResponse, error) {
	draft, ok := uc.drafts.Get(s.UserID)
	if !ok {
		return nil, domain.ErrNoDraft
	}
	if in.DeliveryDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	proposal := &entity.Proposal{
		ID:           uuid.New().String(),
		OwnerID:      s.UserID,
		ClientID:     draft.ClientID,
		Problem:      draft.Problem,
		Solution:     draft.Solution,
		DeliveryDate: in.DeliveryDate,
		Estado:       entity.EstadoEnPreparacion,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.proposals.Create(proposal); err != nil {
		return nil, err
	}
	uc.drafts.Delete(s.UserID)
	return toCommittedResponse(proposal), nil
}

func toDraftResponse(d Draft) *dto.DraftResponse {
	return &dto.DraftResponse{
		ClientID:  d.ClientID,
		Problem:   d.Problem,
		Solution:  d.Solution,
		Angle:     d.Angle,
		CreatedAt: d.CreatedAt,
	}
}

func toCommittedResponse(p *entity.Proposal) *dto.ProposalResponse {
	return &dto.ProposalResponse{
		ID:           p.ID,
		OwnerID:      p.OwnerID,
		ClientID:     p.ClientID,
		Problem:      p.Problem,
		Solution:     p.Solution,
		DeliveryDate: p.DeliveryDate,
		Estado:       p.Estado,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
