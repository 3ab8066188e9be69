package domain

import "github.com/devstudio/agencia-api/internal/domain/entity"

// Session es la identidad viva de una sesión restaurada: se reconstruye desde la
// fila actual de agencia_usuarios en cada petición, de modo que un cambio de rol
// o de nombre surte efecto en la siguiente restauración.
type Session struct {
	UserID   string
	Username string
	Role     string
}

// IsDirector indica si la sesión tiene el rol elevado.
func (s Session) IsDirector() bool {
	return s.Role == entity.RoleDirector
}

// CanReadAll indica si la sesión puede listar los registros de todos los usuarios.
func (s Session) CanReadAll() bool {
	return s.IsDirector()
}

// CanWrite es el predicado único de escritura: el dueño del registro o un
// DIRECTOR. Todas las operaciones de escritura (borrar cliente, cambiar estado
// o contenido de una propuesta) pasan por aquí; no se duplica en ningún caso de uso.
func (s Session) CanWrite(ownerID string) bool {
	return ownerID == s.UserID || s.IsDirector()
}
