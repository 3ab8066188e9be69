package entity

import "time"

// Estados del pipeline de propuestas. Cuatro etiquetas planas, sin reglas de transición.
const (
	EstadoEnPreparacion = "EN_PREPARACION"
	EstadoEnviado       = "ENVIADO"
	EstadoGanado        = "GANADO"
	EstadoPerdido       = "PERDIDO"
)

// Estados devuelve los estados válidos en el orden del pipeline.
func Estados() []string {
	return []string{EstadoEnPreparacion, EstadoEnviado, EstadoGanado, EstadoPerdido}
}

// IsValidEstado indica si s es uno de los cuatro estados enumerados.
func IsValidEstado(s string) bool {
	switch s {
	case EstadoEnPreparacion, EstadoEnviado, EstadoGanado, EstadoPerdido:
		return true
	}
	return false
}

// NormalizeEstado devuelve s si es un estado válido; un valor almacenado no
// reconocido se trata como EN_PREPARACION en lugar de fallar (comportamiento
// heredado del sistema original, preservado a propósito).
func NormalizeEstado(s string) string {
	if IsValidEstado(s) {
		return s
	}
	return EstadoEnPreparacion
}

// Proposal representa una propuesta comercial generada con IA (tabla agencia_proyectos).
// El texto de la solución se almacena tal cual lo devolvió el generador.
// Las propuestas nunca se eliminan; problema/solución y estado son mutables por separado.
type Proposal struct {
	ID            string
	OwnerID       string
	ClientID      string
	Problem       string
	Solution      string
	DeliveryDate  time.Time
	Estado        string
	ClientCompany string // empresa del cliente asociado (join en listados)
	OwnerName     string // solo en listados de DIRECTOR
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
