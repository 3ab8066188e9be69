package dto

import "time"

// DraftRequest entrada para generar un borrador de propuesta con IA.
// Enfoques habituales: Eficiencia Operativa, Control Total, Aumento de Ventas,
// Imagen Profesional (texto libre, se valida solo presencia).
type DraftRequest struct {
	ClientID string `json:"cliente_id" validate:"required"`
	Problem  string `json:"problema" validate:"required"`
	Angle    string `json:"enfoque" validate:"required"`
}

// DraftResponse el borrador transitorio: vive solo en memoria del proceso hasta
// que el usuario lo confirma o lo descarta. Nunca se persiste tal cual.
type DraftResponse struct {
	ClientID  string    `json:"cliente_id"`
	Problem   string    `json:"problema"`
	Solution  string    `json:"solucion"`
	Angle     string    `json:"enfoque"`
	CreatedAt time.Time `json:"created_at"`
}

// CommitProposalRequest confirma el borrador retenido y lo persiste como propuesta.
type CommitProposalRequest struct {
	DeliveryDate time.Time `json:"fecha_limite_entrega" validate:"required"`
}

// UpdateEstadoRequest cambio de estado de una propuesta.
type UpdateEstadoRequest struct {
	Estado string `json:"estado_proyecto" validate:"required"`
}

// UpdateContentRequest sobreescritura completa de problema y solución.
type UpdateContentRequest struct {
	Problem  string `json:"problema_cliente" validate:"required"`
	Solution string `json:"solucion_ia" validate:"required"`
}

// ProposalResponse salida de una propuesta del pipeline.
type ProposalResponse struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"usuario_id"`
	ClientID      string    `json:"cliente_id"`
	ClientCompany string    `json:"cliente_empresa"`
	Problem       string    `json:"problema_cliente"`
	Solution      string    `json:"solucion_ia"`
	DeliveryDate  time.Time `json:"fecha_limite_entrega"`
	Estado        string    `json:"estado_proyecto"`
	OwnerName     string    `json:"creado_por,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
