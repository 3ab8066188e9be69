package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devstudio/agencia-api/internal/domain/entity"
	"github.com/devstudio/agencia-api/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

// AppointmentRepo implementación del puerto AppointmentRepository sobre agencia_citas.
type AppointmentRepo struct {
	pool *pgxpool.Pool
}

// NewAppointmentRepository construye el adaptador.
func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepo {
	return &AppointmentRepo{pool: pool}
}

// Create persiste una nueva cita.
func (r *AppointmentRepo) Create(appointment *entity.Appointment) error {
	query := `
		INSERT INTO agencia_citas (id, usuario_id, cliente_id, fecha_hora, motivo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		appointment.ID, appointment.OwnerID, appointment.ClientID,
		appointment.At, appointment.Reason, appointment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cita: %w", err)
	}
	return nil
}

// ListAll lista todas las citas (vista DIRECTOR) con cliente y dueño resueltos,
// ordenadas por fecha de reunión ascendente. Una cita cuyo cliente ya fue
// borrado se devuelve con el nombre vacío, no falla.
func (r *AppointmentRepo) ListAll() ([]*entity.Appointment, error) {
	query := `
		SELECT a.id, a.usuario_id, a.cliente_id, COALESCE(cl.nombre, ''), a.fecha_hora, a.motivo, u.nombre_completo, a.created_at
		FROM agencia_citas a
		LEFT JOIN agencia_clientes cl ON cl.id = a.cliente_id
		JOIN agencia_usuarios u ON u.id = a.usuario_id
		ORDER BY a.fecha_hora ASC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list citas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Appointment
	for rows.Next() {
		var a entity.Appointment
		if err := rows.Scan(&a.ID, &a.OwnerID, &a.ClientID, &a.ClientName,
			&a.At, &a.Reason, &a.OwnerName, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cita: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// ListByOwner lista las citas de un usuario, fecha ascendente.
func (r *AppointmentRepo) ListByOwner(ownerID string) ([]*entity.Appointment, error) {
	query := `
		SELECT a.id, a.usuario_id, a.cliente_id, COALESCE(cl.nombre, ''), a.fecha_hora, a.motivo, a.created_at
		FROM agencia_citas a
		LEFT JOIN agencia_clientes cl ON cl.id = a.cliente_id
		WHERE a.usuario_id = $1
		ORDER BY a.fecha_hora ASC`
	rows, err := r.pool.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list citas by owner: %w", err)
	}
	defer rows.Close()
	var list []*entity.Appointment
	for rows.Next() {
		var a entity.Appointment
		if err := rows.Scan(&a.ID, &a.OwnerID, &a.ClientID, &a.ClientName,
			&a.At, &a.Reason, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cita: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
