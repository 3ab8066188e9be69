package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/devstudio/agencia-api/internal/application/auth"
	"github.com/devstudio/agencia-api/internal/application/dto"
	"github.com/devstudio/agencia-api/internal/domain"
)

// SessionCookie nombre de la cookie HttpOnly que transporta el token de sesión.
const SessionCookie = "agencia_session"

// localSession clave de Locals para la sesión restaurada.
const localSession = "session"

// SessionMiddleware restaura la sesión en cada petición: toma el token del
// header Bearer o de la cookie, lo valida y vuelve a leer la fila del usuario,
// de modo que un cambio de rol o un usuario eliminado surten efecto de inmediato.
// Cualquier fallo deja al caller sin sesión (401), nunca con estado parcial.
func SessionMiddleware(authUC *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "sesión requerida"})
		}
		user, err := authUC.RestoreSession(token)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if user == nil {
			// Token inválido/expirado o usuario que ya no existe: de vuelta al login.
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_SESSION", Message: "sesión inválida o expirada"})
		}
		c.Locals(localSession, domain.Session{
			UserID:   user.ID,
			Username: user.Username,
			Role:     user.Role,
		})
		return c.Next()
	}
}

// tokenFromRequest extrae el token del header Authorization (Bearer) o, en su
// defecto, de la cookie de sesión.
func tokenFromRequest(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return c.Cookies(SessionCookie)
}

// GetSession devuelve la sesión restaurada del contexto (después del middleware).
func GetSession(c *fiber.Ctx) domain.Session {
	v := c.Locals(localSession)
	if v == nil {
		return domain.Session{}
	}
	s, _ := v.(domain.Session)
	return s
}
