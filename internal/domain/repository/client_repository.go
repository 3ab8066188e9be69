package repository

import "github.com/devstudio/agencia-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
// Los métodos de lectura devuelven (nil, nil) cuando no hay fila.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	// ListAll devuelve todos los clientes (vista DIRECTOR), con OwnerName
	// resuelto, ordenados por created_at descendente.
	ListAll() ([]*entity.Client, error)
	// ListByOwner devuelve solo los clientes del usuario, mismo orden.
	ListByOwner(ownerID string) ([]*entity.Client, error)
	Delete(id string) error
}
