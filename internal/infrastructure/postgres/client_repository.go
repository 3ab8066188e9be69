package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devstudio/agencia-api/internal/domain/entity"
	"github.com/devstudio/agencia-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del puerto ClientRepository sobre agencia_clientes.
type ClientRepo struct {
	pool *pgxpool.Pool
}

// NewClientRepository construye el adaptador.
func NewClientRepository(pool *pgxpool.Pool) *ClientRepo {
	return &ClientRepo{pool: pool}
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO agencia_clientes (id, usuario_id, nombre, empresa, rubro, telefono, direccion, email, notas_personales, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		client.ID, client.OwnerID, client.Name, client.Company, client.Rubro,
		client.Phone, client.Address, client.Email, client.Notes, client.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `
		SELECT id, usuario_id, nombre, empresa, rubro, telefono, direccion, email, notas_personales, created_at
		FROM agencia_clientes WHERE id = $1`
	var c entity.Client
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.OwnerID, &c.Name, &c.Company, &c.Rubro,
		&c.Phone, &c.Address, &c.Email, &c.Notes, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// ListAll lista todos los clientes (vista DIRECTOR) con el nombre del dueño
// resuelto, más reciente primero.
func (r *ClientRepo) ListAll() ([]*entity.Client, error) {
	query := `
		SELECT c.id, c.usuario_id, c.nombre, c.empresa, c.rubro, c.telefono, c.direccion, c.email, c.notas_personales, u.nombre_completo, c.created_at
		FROM agencia_clientes c
		JOIN agencia_usuarios u ON u.id = c.usuario_id
		ORDER BY c.created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Company, &c.Rubro,
			&c.Phone, &c.Address, &c.Email, &c.Notes, &c.OwnerName, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ListByOwner lista los clientes de un usuario, más reciente primero.
func (r *ClientRepo) ListByOwner(ownerID string) ([]*entity.Client, error) {
	query := `
		SELECT id, usuario_id, nombre, empresa, rubro, telefono, direccion, email, notas_personales, created_at
		FROM agencia_clientes WHERE usuario_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list clientes by owner: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Company, &c.Rubro,
			&c.Phone, &c.Address, &c.Email, &c.Notes, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un cliente por ID. Borrado duro, sin cascada sobre citas o
// propuestas que lo referencien.
func (r *ClientRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM agencia_clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}
