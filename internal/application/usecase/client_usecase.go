package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/devstudio/agencia-api/internal/application/dto"
	"github.com/devstudio/agencia-api/internal/domain"
	"github.com/devstudio/agencia-api/internal/domain/entity"
	"github.com/devstudio/agencia-api/internal/domain/repository"
)

// ClientUseCase casos de uso del directorio de clientes, con visibilidad por rol.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// List devuelve el directorio visible para la sesión: un DIRECTOR ve todos los
// clientes anotados con su creador; cualquier otro rol ve solo los propios.
func (uc *ClientUseCase) List(s domain.Session) ([]*dto.ClientResponse, error) {
	var list []*entity.Client
	var err error
	if s.CanReadAll() {
		list, err = uc.repo.ListAll()
	} else {
		list, err = uc.repo.ListByOwner(s.UserID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// Create da de alta un cliente. El dueño se estampa siempre desde la sesión:
// la entrada no puede fijar otro dueño, ni siquiera para un DIRECTOR.
// Nombre y empresa son obligatorios; si faltan no se persiste nada.
func (uc *ClientUseCase) Create(s domain.Session, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" || in.Company == "" {
		return nil, domain.ErrInvalidInput
	}
	client := &entity.Client{
		ID:        uuid.New().String(),
		OwnerID:   s.UserID,
		Name:      in.Name,
		Company:   in.Company,
		Rubro:     in.Rubro,
		Phone:     in.Phone,
		Address:   in.Address,
		Email:     in.Email,
		Notes:     in.Notes,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente. Permitido para el dueño o para un DIRECTOR;
// cualquier otra sesión recibe ErrForbidden. El borrado es duro, sin cascada
// sobre citas o propuestas que lo referencien.
func (uc *ClientUseCase) Delete(s domain.Session, id string) error {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	if !s.CanWrite(client.OwnerID) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		OwnerID:   c.OwnerID,
		Name:      c.Name,
		Company:   c.Company,
		Rubro:     c.Rubro,
		Phone:     c.Phone,
		Address:   c.Address,
		Email:     c.Email,
		Notes:     c.Notes,
		OwnerName: c.OwnerName,
		CreatedAt: c.CreatedAt,
	}
}
