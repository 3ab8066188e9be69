package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devstudio/agencia-api/internal/domain/entity"
	"github.com/devstudio/agencia-api/internal/domain/repository"
)

var _ repository.ProposalRepository = (*ProposalRepo)(nil)

// ProposalRepo implementación del puerto ProposalRepository sobre agencia_proyectos.
type ProposalRepo struct {
	pool *pgxpool.Pool
}

// NewProposalRepository construye el adaptador.
func NewProposalRepository(pool *pgxpool.Pool) *ProposalRepo {
	return &ProposalRepo{pool: pool}
}

// Create persiste una nueva propuesta.
func (r *ProposalRepo) Create(proposal *entity.Proposal) error {
	query := `
		INSERT INTO agencia_proyectos (id, usuario_id, cliente_id, problema_cliente, solucion_ia, fecha_limite_entrega, estado_proyecto, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		proposal.ID, proposal.OwnerID, proposal.ClientID, proposal.Problem, proposal.Solution,
		proposal.DeliveryDate, proposal.Estado, proposal.CreatedAt, proposal.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert propuesta: %w", err)
	}
	return nil
}

// GetByID obtiene una propuesta por ID.
func (r *ProposalRepo) GetByID(id string) (*entity.Proposal, error) {
	query := `
		SELECT id, usuario_id, cliente_id, problema_cliente, solucion_ia, fecha_limite_entrega, estado_proyecto, created_at, updated_at
		FROM agencia_proyectos WHERE id = $1`
	var p entity.Proposal
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.OwnerID, &p.ClientID, &p.Problem, &p.Solution,
		&p.DeliveryDate, &p.Estado, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get propuesta: %w", err)
	}
	return &p, nil
}

// ListAll lista todas las propuestas (vista DIRECTOR) con empresa del cliente y
// dueño resueltos, más reciente primero. Un cliente ya borrado se devuelve con
// la empresa vacía.
func (r *ProposalRepo) ListAll() ([]*entity.Proposal, error) {
	query := `
		SELECT p.id, p.usuario_id, p.cliente_id, COALESCE(cl.empresa, ''), p.problema_cliente, p.solucion_ia, p.fecha_limite_entrega, p.estado_proyecto, u.nombre_completo, p.created_at, p.updated_at
		FROM agencia_proyectos p
		LEFT JOIN agencia_clientes cl ON cl.id = p.cliente_id
		JOIN agencia_usuarios u ON u.id = p.usuario_id
		ORDER BY p.created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list propuestas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proposal
	for rows.Next() {
		var p entity.Proposal
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.ClientID, &p.ClientCompany, &p.Problem, &p.Solution,
			&p.DeliveryDate, &p.Estado, &p.OwnerName, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan propuesta: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListByOwner lista las propuestas de un usuario, más reciente primero.
func (r *ProposalRepo) ListByOwner(ownerID string) ([]*entity.Proposal, error) {
	query := `
		SELECT p.id, p.usuario_id, p.cliente_id, COALESCE(cl.empresa, ''), p.problema_cliente, p.solucion_ia, p.fecha_limite_entrega, p.estado_proyecto, p.created_at, p.updated_at
		FROM agencia_proyectos p
		LEFT JOIN agencia_clientes cl ON cl.id = p.cliente_id
		WHERE p.usuario_id = $1
		ORDER BY p.created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list propuestas by owner: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proposal
	for rows.Next() {
		var p entity.Proposal
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.ClientID, &p.ClientCompany, &p.Problem, &p.Solution,
			&p.DeliveryDate, &p.Estado, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan propuesta: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// UpdateEstado cambia el estado de la propuesta.
func (r *ProposalRepo) UpdateEstado(id, estado string) error {
	query := `UPDATE agencia_proyectos SET estado_proyecto = $2, updated_at = $3 WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, id, estado, time.Now())
	if err != nil {
		return fmt.Errorf("update estado propuesta: %w", err)
	}
	return nil
}

// UpdateContent sobreescribe problema y solución completos.
func (r *ProposalRepo) UpdateContent(id, problem, solution string) error {
	query := `UPDATE agencia_proyectos SET problema_cliente = $2, solucion_ia = $3, updated_at = $4 WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, id, problem, solution, time.Now())
	if err != nil {
		return fmt.Errorf("update contenido propuesta: %w", err)
	}
	return nil
}
