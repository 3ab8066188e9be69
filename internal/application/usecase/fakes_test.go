package usecase_test

import (
	"sort"

	"github.com/devstudio/agencia-api/internal/domain"
	"github.com/devstudio/agencia-api/internal/domain/entity"
)

// Sesiones de referencia para los tests de visibilidad por rol.
var (
	sesionAna      = domain.Session{UserID: "u-ana", Username: "ana", Role: entity.RoleVendedor}
	sesionBruno    = domain.Session{UserID: "u-bruno", Username: "bruno", Role: entity.RoleVendedor}
	sesionDirector = domain.Session{UserID: "u-dir", Username: "directora", Role: entity.RoleDirector}
)

// fakeClientRepo directorio en memoria.
type fakeClientRepo struct {
	clients map[string]*entity.Client
	deleted []string
}

func newFakeClientRepo(clients ...*entity.Client) *fakeClientRepo {
	r := &fakeClientRepo{clients: map[string]*entity.Client{}}
	for _, c := range clients {
		r.clients[c.ID] = c
	}
	return r
}

func (r *fakeClientRepo) Create(c *entity.Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.clients[id], nil
}

func (r *fakeClientRepo) ListAll() ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		copia := *c
		copia.OwnerName = "dueño-" + c.OwnerID
		out = append(out, &copia)
	}
	sortByCreatedDesc(out)
	return out, nil
}

func (r *fakeClientRepo) ListByOwner(ownerID string) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	sortByCreatedDesc(out)
	return out, nil
}

func (r *fakeClientRepo) Delete(id string) error {
	delete(r.clients, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func sortByCreatedDesc(list []*entity.Client) {
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
}

// fakeAppointmentRepo agenda en memoria.
type fakeAppointmentRepo struct {
	appointments []*entity.Appointment
}

func (r *fakeAppointmentRepo) Create(a *entity.Appointment) error {
	r.appointments = append(r.appointments, a)
	return nil
}

func (r *fakeAppointmentRepo) ListAll() ([]*entity.Appointment, error) {
	return r.appointments, nil
}

func (r *fakeAppointmentRepo) ListByOwner(ownerID string) ([]*entity.Appointment, error) {
	var out []*entity.Appointment
	for _, a := range r.appointments {
		if a.OwnerID == ownerID {
			out = append(out, a)
		}
	}
	return out, nil
}

// fakeProposalRepo pipeline en memoria; cuenta las escrituras para verificar
// la idempotencia del cambio de estado.
type fakeProposalRepo struct {
	proposals     map[string]*entity.Proposal
	estadoWrites  int
	contentWrites int
}

func newFakeProposalRepo(proposals ...*entity.Proposal) *fakeProposalRepo {
	r := &fakeProposalRepo{proposals: map[string]*entity.Proposal{}}
	for _, p := range proposals {
		r.proposals[p.ID] = p
	}
	return r
}

func (r *fakeProposalRepo) Create(p *entity.Proposal) error {
	r.proposals[p.ID] = p
	return nil
}

func (r *fakeProposalRepo) GetByID(id string) (*entity.Proposal, error) {
	return r.proposals[id], nil
}

func (r *fakeProposalRepo) ListAll() ([]*entity.Proposal, error) {
	var out []*entity.Proposal
	for _, p := range r.proposals {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProposalRepo) ListByOwner(ownerID string) ([]*entity.Proposal, error) {
	var out []*entity.Proposal
	for _, p := range r.proposals {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProposalRepo) UpdateEstado(id, estado string) error {
	r.proposals[id].Estado = estado
	r.estadoWrites++
	return nil
}

func (r *fakeProposalRepo) UpdateContent(id, problem, solution string) error {
	r.proposals[id].Problem = problem
	r.proposals[id].Solution = solution
	r.contentWrites++
	return nil
}
