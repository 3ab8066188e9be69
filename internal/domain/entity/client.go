package entity

import "time"

// Rubros sugeridos para clientes. Se validan solo por presencia: el valor
// almacenado es texto libre, igual que en el directorio original.
var Rubros = []string{
	"Comercio", "Logística", "Servicios", "Agro", "Gastronomía", "Construcción", "Otro",
}

// Client representa un cliente del directorio (tabla agencia_clientes).
// OwnerID se estampa al crear y nunca cambia; no hay actualización en sitio,
// solo alta y baja.
type Client struct {
	ID        string
	OwnerID   string
	Name      string
	Company   string
	Rubro     string
	Phone     string
	Address   string
	Email     string
	Notes     string
	OwnerName string // nombre_completo del dueño; solo se rellena en listados de DIRECTOR
	CreatedAt time.Time
}
