package entity

import "time"

// Roles válidos para User.
const (
	RoleDirector = "DIRECTOR" // ve los registros de todos los usuarios
	RoleVendedor = "VENDEDOR" // ve únicamente sus propios registros
)

// User representa un usuario del portal. La tabla agencia_usuarios se alimenta
// fuera de banda (cmd/seed o directamente en Supabase); el servicio nunca la modifica.
type User struct {
	ID        string
	Username  string
	Password  string // bcrypt hash, o texto plano en filas semilla heredadas
	FullName  string
	Role      string // DIRECTOR, VENDEDOR
	CreatedAt time.Time
}
