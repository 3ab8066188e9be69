package repository

import "github.com/devstudio/agencia-api/internal/domain/entity"

// UserRepository define el puerto de lectura del almacén de credenciales.
// Los usuarios se crean fuera de banda (cmd/seed); el servicio solo los consulta.
type UserRepository interface {
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
}
