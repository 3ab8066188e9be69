package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrUserNotFound  = errors.New("usuario no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrUnauthorized  = errors.New("credenciales inválidas")
	ErrForbidden     = errors.New("acceso denegado")
	ErrInvalidStatus = errors.New("estado de propuesta inválido")
	ErrNoDraft       = errors.New("no hay borrador pendiente")
)
