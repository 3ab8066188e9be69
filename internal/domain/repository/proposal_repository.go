package repository

import "github.com/devstudio/agencia-api/internal/domain/entity"

// ProposalRepository define el puerto de persistencia para Proposal.
// Las propuestas nunca se eliminan.
type ProposalRepository interface {
	Create(proposal *entity.Proposal) error
	GetByID(id string) (*entity.Proposal, error)
	// ListAll devuelve todas las propuestas (vista DIRECTOR) ordenadas por
	// created_at descendente, con ClientCompany y OwnerName resueltos.
	ListAll() ([]*entity.Proposal, error)
	// ListByOwner devuelve solo las propuestas del usuario, mismo orden.
	ListByOwner(ownerID string) ([]*entity.Proposal, error)
	UpdateEstado(id, estado string) error
	// UpdateContent sobreescribe problema y solución completos, sin merge.
	UpdateContent(id, problem, solution string) error
}
