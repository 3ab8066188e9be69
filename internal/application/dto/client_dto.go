package dto

import "time"

// CreateClientRequest entrada para alta de cliente. Solo nombre y empresa son
// obligatorios (validación de presencia); el resto es texto libre opcional.
// El dueño NO se recibe del caller: se estampa siempre desde la sesión.
type CreateClientRequest struct {
	Name    string `json:"nombre" validate:"required"`
	Company string `json:"empresa" validate:"required"`
	Rubro   string `json:"rubro"`
	Phone   string `json:"telefono"`
	Address string `json:"direccion"`
	Email   string `json:"email"`
	Notes   string `json:"notas_personales"`
}

// ClientResponse salida de un cliente del directorio.
// OwnerName solo viene poblado en listados de DIRECTOR.
type ClientResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"usuario_id"`
	Name      string    `json:"nombre"`
	Company   string    `json:"empresa"`
	Rubro     string    `json:"rubro"`
	Phone     string    `json:"telefono"`
	Address   string    `json:"direccion"`
	Email     string    `json:"email"`
	Notes     string    `json:"notas_personales"`
	OwnerName string    `json:"creado_por,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
